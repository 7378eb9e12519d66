package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestArchiveModule kiểm tra vòng lưu trữ → khôi phục: bản ghi rời pool khi
// lưu trữ, quay lại pool với cùng _id, trạng thái available và callbackCount
// tăng thêm 1.
func TestArchiveModule(t *testing.T) {
	baseURL := testBaseURL()
	waitForHealth(baseURL, 10, 1*time.Second, t)

	admin := newAdminClient(t, baseURL)

	recordIds := insertClientRecords(t, admin, 1, fmt.Sprintf("ARC-%d", time.Now().UnixNano()))
	recordID := recordIds[0]
	var archiveEntryID string

	t.Run("🗄️ Lưu trữ đưa bản ghi rời pool", func(t *testing.T) {
		resp, body, err := admin.POST("/archive/create", map[string]interface{}{
			"entityType": "client",
			"recordId":   recordID,
			"notes":      "Lưu trữ trong test vòng khôi phục",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi lưu trữ: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data := envelopeData(t, body)
		id, ok := data["id"].(string)
		if !ok || id == "" {
			t.Fatalf("❌ Response lưu trữ không có id (body: %s)", string(body))
		}
		archiveEntryID = id

		// Bản ghi sống phải biến mất khỏi pool
		resp, body, err = admin.GET("/client/find-by-id/" + recordID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc bản ghi: %v", err)
		}
		assert.Equal(t, http.StatusNotFound, resp.StatusCode,
			"Bản ghi đã lưu trữ không được còn trong pool (body: %s)", string(body))
	})

	t.Run("♻️ Khôi phục trả bản ghi về pool với callbackCount +1", func(t *testing.T) {
		if archiveEntryID == "" {
			t.Skip("Skipping: Chưa có archive entry ID")
		}
		resp, body, err := admin.POST("/archive/restore", map[string]interface{}{
			"archiveIds": []string{archiveEntryID},
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi khôi phục: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		data := envelopeData(t, body)
		assert.Equal(t, float64(1), data["restored"])

		// Bản ghi quay lại pool với CÙNG _id cũ
		resp, body, err = admin.GET("/client/find-by-id/" + recordID)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc bản ghi sau khôi phục: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode,
			"Khôi phục phải giữ nguyên _id gốc (body: %s)", string(body))
		record := envelopeData(t, body)
		assert.Equal(t, "available", record["status"], "Bản ghi khôi phục phải về trạng thái available")
		assert.Equal(t, true, record["isCallback"], "Bản ghi khôi phục phải đánh dấu isCallback")
		assert.Equal(t, float64(1), record["callbackCount"], "callbackCount phải tăng từ 0 lên 1")
		_, hasAssignedTo := record["assignedTo"]
		assert.False(t, hasAssignedTo, "Thông tin chia số cũ phải bị gỡ khi khôi phục")
	})

	t.Run("🙅 Khôi phục một id không tồn tại trả 404", func(t *testing.T) {
		resp, body, err := admin.POST("/archive/restore", map[string]interface{}{
			"archiveIds": []string{"64ffffffffffffffffffffff"},
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi khôi phục: %v", err)
		}
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "body: %s", string(body))
	})
}
