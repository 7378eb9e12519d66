package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CallLog là một dòng lịch sử gọi. Không ràng buộc tham chiếu với assignment:
// agent có thể log cuộc gọi ngoài luồng chia số (số tự tìm, gọi lại cũ).
type CallLog struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AgentID     primitive.ObjectID `json:"agentId" bson:"agentId"`
	PhoneNumber string             `json:"phoneNumber" bson:"phoneNumber"`
	ContactName string             `json:"contactName,omitempty" bson:"contactName,omitempty"`
	Duration    int                `json:"duration,omitempty" bson:"duration,omitempty"` // Giây
	Status      string             `json:"status,omitempty" bson:"status,omitempty"`     // Kết quả cuộc gọi
	CallTime    int64              `json:"callTime" bson:"callTime"`                     // Thời điểm gọi (unix millis)
	Notes       string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
