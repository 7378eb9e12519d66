package tests

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"crm_be_api_tests/utils"

	"github.com/stretchr/testify/assert"
)

// TestAuthAuditModule kiểm tra nhật ký đăng nhập và việc không bao giờ lộ
// mật khẩu (hash) qua bất kỳ response nào.
func TestAuthAuditModule(t *testing.T) {
	baseURL := testBaseURL()
	waitForHealth(baseURL, 10, 1*time.Second, t)

	adminUsername, adminPassword := adminCredentials(t)
	admin := loginClient(t, baseURL, adminUsername, adminPassword)

	t.Run("🔐 Response đăng nhập không chứa password hash", func(t *testing.T) {
		client := utils.NewHTTPClient(baseURL, 10)
		resp, body, err := client.POST("/auth/login", map[string]interface{}{
			"username": adminUsername,
			"password": adminPassword,
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi đăng nhập: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		assert.NotContains(t, string(body), "passwordHash", "Response không được chứa trường passwordHash")
		assert.NotContains(t, string(body), "$2a$", "Response không được chứa bcrypt hash")
		assert.NotContains(t, string(body), adminPassword, "Response không được chứa mật khẩu")
	})

	t.Run("🧾 Đăng nhập sai mật khẩu ghi audit không gắn userId", func(t *testing.T) {
		client := utils.NewHTTPClient(baseURL, 10)
		resp, body, err := client.POST("/auth/login", map[string]interface{}{
			"username": adminUsername,
			"password": "Sai-mat-khau@123",
		})
		if err != nil {
			t.Fatalf("❌ Lỗi khi đăng nhập: %v", err)
		}
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "body: %s", string(body))

		filter := url.QueryEscape(fmt.Sprintf(`{"username":%q,"success":false}`, adminUsername))
		options := url.QueryEscape(`{"sort":{"timestamp":-1},"limit":1}`)
		resp, body, err = admin.GET("/login-audit/find?filter=" + filter + "&options=" + options)
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc nhật ký đăng nhập: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))

		result := parseEnvelope(t, body)
		entries, ok := result["data"].([]interface{})
		if !ok || len(entries) == 0 {
			t.Fatalf("❌ Phải có ít nhất một entry thất bại cho %s (body: %s)", adminUsername, string(body))
		}
		entry, ok := entries[0].(map[string]interface{})
		if !ok {
			t.Fatalf("❌ Entry nhật ký không phải object (body: %s)", string(body))
		}
		assert.Equal(t, false, entry["success"])
		assert.Equal(t, adminUsername, entry["username"])
		// Entry thất bại không được gắn với tài khoản nào, kể cả khi username khớp
		if raw, exists := entry["userId"]; exists {
			assert.Equal(t, "000000000000000000000000", raw,
				"Entry đăng nhập thất bại phải có userId rỗng")
		}
	})

	t.Run("👥 Danh sách user không lộ password hash", func(t *testing.T) {
		resp, body, err := admin.GET("/user/find")
		if err != nil {
			t.Fatalf("❌ Lỗi khi đọc danh sách user: %v", err)
		}
		assert.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", string(body))
		assert.False(t, strings.Contains(string(body), "passwordHash") || strings.Contains(string(body), "$2a$"),
			"Danh sách user không được chứa password hash")
	})
}
