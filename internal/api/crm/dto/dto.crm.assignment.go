package dto

// AssignmentCreateInput dữ liệu tạo assignment trực tiếp. Bình thường
// assignment do nghiệp vụ chia số tạo; input này dành cho import dữ liệu cũ.
type AssignmentCreateInput struct {
	NumberID   string `json:"numberId" validate:"required" transform:"str_objectid,map=NumberID"`
	Collection string `json:"collection" validate:"required,oneof=client customer"`
	AgentID    string `json:"agentId" validate:"required" transform:"str_objectid,map=AgentID"`
}

// AssignmentUpdateInput dữ liệu cập nhật assignment qua route CRUD chung.
type AssignmentUpdateInput struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active done"`
}

// ClaimInput dữ liệu nhận một assignment về mình.
type ClaimInput struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
}

// MarkCalledInput dữ liệu ghi nhận đã gọi một assignment.
// Outcome bỏ trống sẽ mặc định "completed". Gọi lại lần nữa ghi đè kết quả cũ.
type MarkCalledInput struct {
	AssignmentID string `json:"assignmentId" validate:"required"`
	Outcome      string `json:"outcome,omitempty" validate:"omitempty,oneof=completed callback no-answer wrong-number not-interested"`
}
