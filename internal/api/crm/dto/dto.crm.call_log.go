package dto

// CallLogCreateInput dữ liệu ghi một dòng lịch sử gọi.
// AgentID bỏ trống sẽ lấy theo người đang đăng nhập.
type CallLogCreateInput struct {
	AgentID     string `json:"agentId,omitempty" transform:"str_objectid,optional,map=AgentID"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=8,max=20"`
	ContactName string `json:"contactName,omitempty" validate:"omitempty,no_xss"`
	Duration    int    `json:"duration,omitempty" validate:"omitempty,min=0"`
	Status      string `json:"status,omitempty" validate:"omitempty,oneof=completed callback no-answer wrong-number not-interested"`
	CallTime    int64  `json:"callTime,omitempty"` // Bỏ trống sẽ lấy thời điểm hiện tại
	Notes       string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// CallLogUpdateInput dữ liệu sửa một dòng lịch sử gọi (ghi chú, kết quả).
type CallLogUpdateInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=completed callback no-answer wrong-number not-interested"`
	Notes  string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}
