package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một assignment.
const (
	AssignmentStatusActive = "active" // Agent đang giữ số, chưa lưu trữ
	AssignmentStatusDone   = "done"   // Số đã lưu trữ, assignment đóng lại
)

// Kết quả cuộc gọi. Tập đóng, server từ chối giá trị ngoài danh sách.
const (
	OutcomeCompleted     = "completed"
	OutcomeCallback      = "callback"
	OutcomeNoAnswer      = "no-answer"
	OutcomeWrongNumber   = "wrong-number"
	OutcomeNotInterested = "not-interested"
)

// IsValidOutcome kiểm tra kết quả cuộc gọi có thuộc tập cố định không.
func IsValidOutcome(outcome string) bool {
	switch outcome {
	case OutcomeCompleted, OutcomeCallback, OutcomeNoAnswer, OutcomeWrongNumber, OutcomeNotInterested:
		return true
	}
	return false
}

// Assignment ghi nhận một số đã chia cho một agent.
// NumberData là snapshot của bản ghi tại thời điểm chia, không thay đổi dù
// bản ghi gốc có được cập nhật sau đó.
type Assignment struct {
	ID         primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	NumberID   primitive.ObjectID     `json:"numberId" bson:"numberId" index:"single"`
	Collection string                 `json:"collection" bson:"collection"` // client | customer
	NumberData map[string]interface{} `json:"numberData" bson:"numberData"` // Snapshot tại thời điểm chia
	AgentID    primitive.ObjectID     `json:"agentId" bson:"agentId"`
	AssignedAt int64                  `json:"assignedAt" bson:"assignedAt"`
	ClaimedAt  int64                  `json:"claimedAt,omitempty" bson:"claimedAt,omitempty"` // Thời điểm agent nhận assignment về mình
	Status     string                 `json:"status" bson:"status" default:"active"`          // active | done
	Called     bool                   `json:"called" bson:"called"`
	CalledAt   int64                  `json:"calledAt,omitempty" bson:"calledAt,omitempty"`
	Outcome    string                 `json:"outcome,omitempty" bson:"outcome,omitempty"` // Ghi đè theo lần gọi cuối
	CreatedAt  int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64                  `json:"updatedAt" bson:"updatedAt"`
}
