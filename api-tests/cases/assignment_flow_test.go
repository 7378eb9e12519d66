package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestAssignmentModule kiểm tra nghiệp vụ chia số: chống chia trùng khi chạy
// đồng thời, giới hạn theo pool, claim assignment và ghi nhận kết quả gọi.
func TestAssignmentModule(t *testing.T) {
	baseURL := testBaseURL()
	waitForHealth(baseURL, 10, 1*time.Second, t)

	admin := newAdminClient(t, baseURL)
	agentAID, _ := createAgent(t, admin, baseURL)
	agentBID, agentB := createAgent(t, admin, baseURL)

	t.Run("⚔️ Hai lần chia đồng thời không chia trùng số", func(t *testing.T) {
		ids := insertClientRecords(t, admin, 10, fmt.Sprintf("RACE-%d", time.Now().UnixNano()))

		type assignOutcome struct {
			status      int
			assigned    int
			assignments int
		}
		results := make([]assignOutcome, 2)
		agents := []string{agentAID, agentBID}

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				resp, body, err := admin.POST("/client/assign", map[string]interface{}{
					"ids":     ids,
					"agentId": agents[idx],
				})
				if err != nil {
					t.Errorf("❌ Lỗi khi chia số: %v", err)
					return
				}
				out := assignOutcome{status: resp.StatusCode}
				if resp.StatusCode == http.StatusOK {
					// Không dùng t.Fatal trong goroutine, parse tay và báo qua t.Errorf
					var result map[string]interface{}
					if err := json.Unmarshal(body, &result); err != nil {
						t.Errorf("❌ Không parse được response chia số: %v", err)
						return
					}
					if data, ok := result["data"].(map[string]interface{}); ok {
						if v, ok := data["assigned"].(float64); ok {
							out.assigned = int(v)
						}
						if list, ok := data["assignments"].([]interface{}); ok {
							out.assignments = len(list)
						}
					}
				}
				results[idx] = out
			}(i)
		}
		wg.Wait()

		total := results[0].assigned + results[1].assigned
		totalAssignments := results[0].assignments + results[1].assignments
		assert.Equal(t, 10, total,
			"Tổng số đã chia của hai lần đồng thời phải đúng bằng pool, không được chia trùng (A=%d, B=%d)",
			results[0].assigned, results[1].assigned)
		assert.Equal(t, 10, totalAssignments, "Mỗi số chỉ được tạo đúng một assignment")
		for _, r := range results {
			if r.status == http.StatusOK {
				assert.Equal(t, r.assigned, r.assignments, "Số assignment tạo ra phải khớp với số bản ghi thắng được")
			}
		}
	})

	t.Run("📏 Filter count vượt pool chỉ chia đúng số còn lại", func(t *testing.T) {
		nonce := fmt.Sprintf("CAP-%d", time.Now().UnixNano())
		insertClientRecords(t, admin, 3, nonce)

		resp, body, err := admin.POST("/client/assign", map[string]interface{}{
			"flightInfo": nonce,
			"count":      50,
			"agentId":    agentAID,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi chia số theo filter: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data := envelopeData(t, body)
		assert.Equal(t, float64(3), data["assigned"], "Count vượt pool phải chia đúng số bản ghi khớp filter")
	})

	t.Run("🚫 Body rỗng bị từ chối 400", func(t *testing.T) {
		resp, body, err := admin.POST("/client/assign", map[string]interface{}{})
		if err != nil {
			t.Fatalf("❌ Lỗi khi gửi request: %v", err)
		}
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
			"Chia số không chọn gì phải trả 400, không được chia mặc định (body: %s)", string(body))
	})

	// Assignment dùng chung cho các subtest claim và mark-called
	var assignmentID string

	t.Run("🙋 Claim assignment đang active", func(t *testing.T) {
		ids := insertClientRecords(t, admin, 1, fmt.Sprintf("CLAIM-%d", time.Now().UnixNano()))
		resp, body, err := admin.POST("/client/assign", map[string]interface{}{
			"ids":     ids,
			"agentId": agentAID,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi chia số: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data := envelopeData(t, body)
		list, ok := data["assignments"].([]interface{})
		if !ok || len(list) != 1 {
			t.Fatalf("❌ Chia 1 số phải tạo đúng 1 assignment (body: %s)", string(body))
		}
		assignmentID, _ = list[0].(string)

		resp, body, err = agentB.POST("/assignment/claim", map[string]interface{}{
			"assignmentId": assignmentID,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi claim: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		claimed := envelopeData(t, body)
		assert.Equal(t, agentBID, claimed["agentId"], "Claim phải gắn assignment vào người gọi")
	})

	t.Run("🙅 Claim id không tồn tại trả 404", func(t *testing.T) {
		resp, body, err := agentB.POST("/assignment/claim", map[string]interface{}{
			"assignmentId": "64ffffffffffffffffffffff",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi claim: %v", err)
		}
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "body: %s", string(body))
	})

	t.Run("🔁 Mark-called ghi đè kết quả theo lần gọi cuối", func(t *testing.T) {
		if assignmentID == "" {
			t.Skip("Skipping: Chưa có assignment ID")
		}
		for _, outcome := range []string{"callback", "not-interested"} {
			resp, body, err := agentB.POST("/assignment/mark-called", map[string]interface{}{
				"assignmentId": assignmentID,
				"outcome":      outcome,
			})
			if err != nil {
				t.Fatalf("❌ Lỗi khi mark-called: %v", err)
			}
			assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		}

		resp, body, err := agentB.GET("/assignment/find-by-id/" + assignmentID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc assignment: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data := envelopeData(t, body)
		assert.Equal(t, true, data["called"])
		assert.Equal(t, "not-interested", data["outcome"], "Kết quả phải theo lần gọi cuối cùng")
	})
}
