// Package dto định nghĩa cấu trúc dữ liệu vào/ra cho domain CRM.
package dto

// RecordCreateInput dữ liệu tạo một bản ghi pool số.
type RecordCreateInput struct {
	Name         string `json:"name" validate:"required,no_xss"`
	Phone        string `json:"phone" validate:"required,min=8,max=20"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Company      string `json:"company,omitempty" validate:"omitempty,no_xss"`
	CustomerType string `json:"customerType,omitempty" validate:"omitempty,oneof=Corporate Retails Channel"`
	FlightInfo   string `json:"flightInfo,omitempty" validate:"omitempty,no_xss"`
	Notes        string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// RecordUpdateInput dữ liệu cập nhật bản ghi pool số. Trạng thái chia số
// (status, assignedTo, assignedAt, version) chỉ đổi qua nghiệp vụ chia số,
// không qua update thường.
type RecordUpdateInput struct {
	Name         string `json:"name,omitempty" validate:"omitempty,no_xss"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,min=8,max=20"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Company      string `json:"company,omitempty" validate:"omitempty,no_xss"`
	CustomerType string `json:"customerType,omitempty" validate:"omitempty,oneof=Corporate Retails Channel"`
	FlightInfo   string `json:"flightInfo,omitempty" validate:"omitempty,no_xss"`
	Notes        string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// RecordImportInput dữ liệu import hàng loạt vào pool số.
// Item thiếu customerType sẽ mặc định "Retails".
type RecordImportInput struct {
	Records []RecordCreateInput `json:"records" validate:"required,min=1,dive"`
}

// RecordImportResult kết quả import: số dòng đã ghi và các dòng bị loại.
type RecordImportResult struct {
	Inserted int      `json:"inserted"`
	Skipped  []string `json:"skipped,omitempty"` // Lý do loại theo từng dòng
}

// AssignInput dữ liệu chia số cho một agent. Chọn số theo đúng một trong hai
// cách (không dùng cả hai, cũng không được bỏ trống cả hai):
//   - Ids: danh sách id chỉ định; id đã chia bị loại lặng lẽ
//   - Filter: customerType/flightInfo + giới hạn count (mặc định 100)
//
// AgentID bỏ trống nghĩa là chia cho chính người gọi. Pool (client/customer)
// xác định theo đường dẫn route.
type AssignInput struct {
	AgentID      string   `json:"agentId,omitempty"`
	Ids          []string `json:"ids,omitempty"`
	CustomerType string   `json:"customerType,omitempty" validate:"omitempty,oneof=Corporate Retails Channel"`
	FlightInfo   string   `json:"flightInfo,omitempty" validate:"omitempty,no_xss"`
	Count        int      `json:"count,omitempty" validate:"omitempty,min=1,max=1000"`
}

// AssignResult kết quả chia số.
type AssignResult struct {
	Assigned    int      `json:"assigned"`              // Số bản ghi thực sự chia được
	Requested   int      `json:"requested"`             // Số ứng viên trước khi tranh chấp
	Assignments []string `json:"assignments,omitempty"` // Id các assignment vừa tạo
}
