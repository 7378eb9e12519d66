package dto

// LoginAuditCreateInput dữ liệu tạo bản ghi nhật ký đăng nhập.
// Bình thường nhật ký do service Login tự ghi; input này chỉ dành cho
// công cụ nội bộ (import dữ liệu cũ).
type LoginAuditCreateInput struct {
	UserID    string `json:"userId,omitempty" transform:"str_objectid,optional,map=UserID"`
	Username  string `json:"username" validate:"required,no_xss"`
	Success   bool   `json:"success"`
	Ip        string `json:"ip,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Note      string `json:"note,omitempty" validate:"omitempty,no_xss"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// LoginAuditUpdateInput không có trường nào: nhật ký đăng nhập chỉ ghi thêm,
// không sửa. Khai báo để thỏa interface CRUD, route update không được mở.
type LoginAuditUpdateInput struct{}
