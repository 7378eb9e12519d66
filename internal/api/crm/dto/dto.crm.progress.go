package dto

// ProgressRecordInput dữ liệu ghi tiến độ gọi trong ngày của một agent.
// UserID bỏ trống sẽ lấy theo người đang đăng nhập.
type ProgressRecordInput struct {
	UserID       string `json:"userId,omitempty"`
	CallsToday   int    `json:"callsToday" validate:"min=0"`
	LastCallTime int64  `json:"lastCallTime,omitempty"`
}

// ProgressCheckResetResult kết quả kiểm tra reset ngày.
type ProgressCheckResetResult struct {
	WasReset  bool  `json:"wasReset"`
	LastReset int64 `json:"lastReset"`
}
