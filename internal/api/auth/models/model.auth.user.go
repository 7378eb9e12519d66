package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các role cố định của hệ thống. Quyền của mỗi role khai báo trong RolePermissions.
const (
	RoleAdmin   = "admin"   // Quản trị hệ thống, full quyền
	RoleManager = "manager" // Quản lý nhóm sale, xem báo cáo và quản lý dữ liệu
	RoleAgent   = "agent"   // Nhân viên sale, nhận số và gọi điện
)

// RolePermissions ánh xạ role → danh sách permission mặc định.
// Permission dạng "<Resource>.<Action>", ví dụ "Contact.Read".
// User có thể được cấp thêm permission lẻ qua trường Permissions.
var RolePermissions = map[string][]string{
	RoleAgent: {
		"Contact.Read",
		"Assignment.Read", "Assignment.Insert", "Assignment.Update",
		"CallLog.Read", "CallLog.Insert",
		"Progress.Read", "Progress.Update",
	},
	RoleManager: {
		"Contact.Read", "Contact.Insert", "Contact.Update",
		"Assignment.Read", "Assignment.Insert", "Assignment.Update",
		"CallLog.Read", "CallLog.Insert", "CallLog.Update",
		"Progress.Read", "Progress.Update",
		"Archive.Read", "Archive.Insert", "Archive.Update",
		"Report.Read",
		"User.Read",
	},
	RoleAdmin: {
		"Contact.Read", "Contact.Insert", "Contact.Update", "Contact.Delete",
		"Assignment.Read", "Assignment.Insert", "Assignment.Update", "Assignment.Delete",
		"CallLog.Read", "CallLog.Insert", "CallLog.Update", "CallLog.Delete",
		"Progress.Read", "Progress.Update",
		"Archive.Read", "Archive.Insert", "Archive.Update", "Archive.Delete",
		"Report.Read",
		"User.Read", "User.Insert", "User.Update", "User.Delete",
		"LoginAudit.Read",
	},
}

// HasPermission kiểm tra role (cộng với các permission cấp thêm) có chứa permission cần thiết không.
func HasPermission(role string, extra []string, permission string) bool {
	if permission == "" {
		return true
	}
	for _, p := range RolePermissions[role] {
		if p == permission {
			return true
		}
	}
	for _, p := range extra {
		if p == permission {
			return true
		}
	}
	return false
}

// User đại diện cho tài khoản người dùng trong hệ thống.
// PasswordHash và Token không bao giờ trả ra ngoài qua JSON.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username" index:"unique"`                      // Tên đăng nhập, duy nhất
	FullName     string             `json:"fullName" bson:"fullName"`                                     // Tên hiển thị
	Email        string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"` // Email, duy nhất nếu có
	PasswordHash string             `json:"-" bson:"passwordHash"`                                        // Bcrypt hash của mật khẩu
	Role         string             `json:"role" bson:"role" default:"agent"`                             // admin | manager | agent
	Permissions  []string           `json:"permissions,omitempty" bson:"permissions,omitempty"`           // Permission cấp thêm ngoài role
	DailyTarget  int                `json:"dailyTarget" bson:"dailyTarget" default:"30"`                  // Chỉ tiêu cuộc gọi mỗi ngày
	Token        string             `json:"-" bson:"token,omitempty"`                                     // JWT đang hiệu lực, xóa khi logout
	IsBlock      bool               `json:"isBlock" bson:"isBlock"`                                       // Tài khoản bị khóa
	BlockNote    string             `json:"blockNote,omitempty" bson:"blockNote,omitempty"`               // Lý do khóa
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`                                   // Thời gian tạo (unix millis)
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`                                   // Thời gian cập nhật cuối (unix millis)
}
