// Package models - Test phân quyền theo role và serialize thông tin user.
package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestHasPermission_EmptyPermissionLuonCho(t *testing.T) {
	if !HasPermission(RoleAgent, nil, "") {
		t.Error("Permission rỗng phải luôn được cho qua (route chỉ cần đăng nhập)")
	}
}

func TestHasPermission_TheoRole(t *testing.T) {
	if !HasPermission(RoleAgent, nil, "Assignment.Insert") {
		t.Error("Agent phải có quyền Assignment.Insert để tự nhận số")
	}
	if HasPermission(RoleAgent, nil, "Contact.Insert") {
		t.Error("Agent không được có quyền Contact.Insert")
	}
	if HasPermission(RoleManager, nil, "User.Insert") {
		t.Error("Manager không được tạo user, chỉ admin")
	}
	if !HasPermission(RoleAdmin, nil, "Archive.Delete") {
		t.Error("Admin phải có quyền Archive.Delete")
	}
}

func TestHasPermission_PermissionCapThem(t *testing.T) {
	extra := []string{"Archive.Read"}
	if !HasPermission(RoleAgent, extra, "Archive.Read") {
		t.Error("Permission cấp thêm qua user.Permissions phải được tính")
	}
	if HasPermission(RoleAgent, extra, "Archive.Insert") {
		t.Error("Cấp thêm Archive.Read không kéo theo Archive.Insert")
	}
}

func TestHasPermission_RoleKhongTonTai(t *testing.T) {
	if HasPermission("superuser", nil, "Contact.Read") {
		t.Error("Role không khai báo trong RolePermissions không được có quyền nào")
	}
}

// Quyền của agent phải là tập con của manager, manager là tập con của admin.
func TestRolePermissions_PhanCap(t *testing.T) {
	contains := func(list []string, p string) bool {
		for _, x := range list {
			if x == p {
				return true
			}
		}
		return false
	}
	for _, p := range RolePermissions[RoleAgent] {
		if !contains(RolePermissions[RoleManager], p) {
			t.Errorf("Manager thiếu quyền %s của agent", p)
		}
	}
	for _, p := range RolePermissions[RoleManager] {
		if !contains(RolePermissions[RoleAdmin], p) {
			t.Errorf("Admin thiếu quyền %s của manager", p)
		}
	}
}

func TestUser_JSONKhongLoPasswordHashVaToken(t *testing.T) {
	u := User{
		Username:     "agent01",
		PasswordHash: "$2a$10$secret-hash",
		Token:        "eyJhbGciOiJIUzI1NiJ9.secret",
		Role:         RoleAgent,
	}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Marshal user lỗi: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "secret-hash") || strings.Contains(body, "passwordHash") {
		t.Error("JSON response không được chứa passwordHash")
	}
	if strings.Contains(body, "secret") {
		t.Error("JSON response không được chứa token đăng nhập")
	}
	if !strings.Contains(body, "agent01") {
		t.Error("JSON response phải chứa username")
	}
}
