package dto

// ArchiveInput dữ liệu lưu trữ một bản ghi khỏi pool.
type ArchiveInput struct {
	EntityType string `json:"entityType" validate:"required,oneof=client customer number"`
	RecordID   string `json:"recordId" validate:"required"`
	Notes      string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// RestoreInput dữ liệu khôi phục các bản ghi từ lưu trữ về pool.
type RestoreInput struct {
	ArchiveIds []string `json:"archiveIds" validate:"required,min=1"`
}

// RestoreResult kết quả khôi phục: chấp nhận thất bại từng phần.
// Id lỗi (không tồn tại, snapshot hỏng) nằm trong Failed, các id còn lại
// vẫn được khôi phục bình thường.
type RestoreResult struct {
	Restored int      `json:"restored"`
	Failed   []string `json:"failed,omitempty"`
}

// SweepResult kết quả quét lưu trữ các assignment đã hoàn tất, đếm theo loại thực thể.
type SweepResult struct {
	Archived map[string]int `json:"archived"` // entityType → số bản ghi đã lưu trữ
	Total    int            `json:"total"`
}

// ArchiveCreateInput dữ liệu tạo bản ghi lưu trữ qua route CRUD chung
// (công cụ nội bộ; luồng bình thường đi qua ArchiveInput).
type ArchiveCreateInput struct {
	EntityType string                 `json:"entityType" validate:"required,oneof=client customer number"`
	Data       map[string]interface{} `json:"data" validate:"required"`
	Notes      string                 `json:"notes,omitempty" validate:"omitempty,no_xss"`
}

// ArchiveUpdateInput dữ liệu sửa ghi chú của một bản ghi lưu trữ.
type ArchiveUpdateInput struct {
	Notes string `json:"notes,omitempty" validate:"omitempty,no_xss"`
}
