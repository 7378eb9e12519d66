// Package dto định nghĩa các cấu trúc dữ liệu vào/ra cho domain auth.
package dto

// UserLoginInput dữ liệu đăng nhập.
type UserLoginInput struct {
	Username string `json:"username" validate:"required,no_xss"`
	Password string `json:"password" validate:"required"`
}

// UserCreateInput dữ liệu tạo tài khoản mới (admin).
// Password sẽ được băm bcrypt trước khi lưu, không bao giờ lưu plaintext.
type UserCreateInput struct {
	Username    string   `json:"username" validate:"required,min=3,max=64,no_xss"`
	FullName    string   `json:"fullName" validate:"required,no_xss"`
	Email       string   `json:"email,omitempty" validate:"omitempty,email"`
	Password    string   `json:"password" validate:"required,strong_password"`
	Role        string   `json:"role,omitempty" validate:"omitempty,oneof=admin manager agent"`
	Permissions []string `json:"permissions,omitempty"`
	DailyTarget int      `json:"dailyTarget,omitempty" validate:"omitempty,min=0"`
}

// UserChangeInfoInput dữ liệu cập nhật thông tin cá nhân.
type UserChangeInfoInput struct {
	FullName string `json:"fullName,omitempty" validate:"omitempty,no_xss"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// UserChangePasswordInput dữ liệu đổi mật khẩu.
type UserChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UserBlockInput dữ liệu khóa/mở khóa tài khoản (admin).
type UserBlockInput struct {
	IsBlock bool   `json:"isBlock"`
	Note    string `json:"note,omitempty" validate:"omitempty,no_xss"`
}

// UserSetRoleInput dữ liệu đổi role (admin).
type UserSetRoleInput struct {
	Role string `json:"role" validate:"required,oneof=admin manager agent"`
}

// UserSetDailyTargetInput dữ liệu đổi chỉ tiêu cuộc gọi mỗi ngày (admin).
type UserSetDailyTargetInput struct {
	DailyTarget int `json:"dailyTarget" validate:"min=0"`
}
