package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"crm_be_api_tests/utils"
)

// testBaseURL trả về base URL của server đang chạy, override bằng TEST_BASE_URL.
func testBaseURL() string {
	if v := os.Getenv("TEST_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080/api/v1"
}

// waitForHealth chờ server sẵn sàng. Không có server thì skip cả bộ test
// thay vì fail (bộ test API cần server + MongoDB đang chạy).
func waitForHealth(baseURL string, attempts int, delay time.Duration, t *testing.T) {
	for i := 0; i < attempts; i++ {
		resp, err := http.Get(baseURL + "/system/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(delay)
	}
	t.Skipf("⚠️ Server chưa sẵn sàng tại %s, bỏ qua bộ test API", baseURL)
}

// parseEnvelope parse response chuẩn {code, message, data, status}.
func parseEnvelope(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		t.Fatalf("❌ Không parse được JSON response: %v (body: %s)", err, string(body))
	}
	return result
}

// envelopeData lấy result["data"] dạng object, fail nếu không phải object.
func envelopeData(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	result := parseEnvelope(t, body)
	data, ok := result["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("❌ Response data không phải object (body: %s)", string(body))
	}
	return data
}

// adminCredentials đọc thông tin đăng nhập admin từ env. Thiếu mật khẩu thì
// skip (không hardcode mật khẩu thật trong test).
func adminCredentials(t *testing.T) (string, string) {
	t.Helper()
	username := os.Getenv("TEST_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("TEST_ADMIN_PASSWORD")
	if password == "" {
		t.Skip("⚠️ Thiếu TEST_ADMIN_PASSWORD, bỏ qua bộ test API")
	}
	return username, password
}

// loginClient đăng nhập và trả về client đã gắn token.
func loginClient(t *testing.T, baseURL string, username string, password string) *utils.HTTPClient {
	t.Helper()
	client := utils.NewHTTPClient(baseURL, 10)
	resp, body, err := client.POST("/auth/login", map[string]interface{}{
		"username": username,
		"password": password,
	})
	if err != nil {
		t.Fatalf("❌ Lỗi khi đăng nhập %s: %v", username, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("❌ Đăng nhập %s thất bại (status: %d, body: %s)", username, resp.StatusCode, string(body))
	}
	data := envelopeData(t, body)
	token, ok := data["token"].(string)
	if !ok || token == "" {
		t.Fatalf("❌ Response đăng nhập không có token (body: %s)", string(body))
	}
	client.SetToken(token)
	return client
}

// newAdminClient đăng nhập admin từ env credentials.
func newAdminClient(t *testing.T, baseURL string) *utils.HTTPClient {
	t.Helper()
	username, password := adminCredentials(t)
	return loginClient(t, baseURL, username, password)
}

const testAgentPassword = "Test@12345"

// createAgent tạo một tài khoản agent mới, trả về id và client đã đăng nhập
// bằng tài khoản đó.
func createAgent(t *testing.T, admin *utils.HTTPClient, baseURL string) (string, *utils.HTTPClient) {
	t.Helper()
	username := fmt.Sprintf("agent_%d", time.Now().UnixNano())
	resp, body, err := admin.POST("/admin/user/create", map[string]interface{}{
		"username": username,
		"fullName": "Agent Test " + username,
		"password": testAgentPassword,
		"role":     "agent",
	})
	if err != nil {
		t.Fatalf("❌ Lỗi khi tạo agent: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("❌ Tạo agent thất bại (status: %d, body: %s)", resp.StatusCode, string(body))
	}
	data := envelopeData(t, body)
	id, ok := data["id"].(string)
	if !ok || id == "" {
		t.Fatalf("❌ Response tạo agent không có id (body: %s)", string(body))
	}
	return id, loginClient(t, baseURL, username, testAgentPassword)
}

// insertClientRecords thêm n bản ghi vào pool client với flightInfo cho trước,
// trả về danh sách id.
func insertClientRecords(t *testing.T, admin *utils.HTTPClient, n int, flightInfo string) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		resp, body, err := admin.POST("/client/insert-one", map[string]interface{}{
			"name":       fmt.Sprintf("KH Test %d-%d", time.Now().UnixNano(), i),
			"phone":      fmt.Sprintf("09%09d", time.Now().UnixNano()%1000000000),
			"flightInfo": flightInfo,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi thêm bản ghi pool: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("❌ Thêm bản ghi pool thất bại (status: %d, body: %s)", resp.StatusCode, string(body))
		}
		data := envelopeData(t, body)
		id, ok := data["id"].(string)
		if !ok || id == "" {
			t.Fatalf("❌ Response thêm bản ghi không có id (body: %s)", string(body))
		}
		ids = append(ids, id)
	}
	return ids
}
