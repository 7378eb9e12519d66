package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginAudit ghi lại mỗi lần đăng nhập (thành công lẫn thất bại).
// Collection chỉ ghi thêm, không sửa không xóa.
type LoginAudit struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"` // Rỗng với mọi lần đăng nhập thất bại
	Username  string             `json:"username" bson:"username"`                 // Username được gửi lên
	Success   bool               `json:"success" bson:"success"`                   // Đăng nhập thành công hay không
	Ip        string             `json:"ip" bson:"ip"`                             // IP của client
	UserAgent string             `json:"userAgent" bson:"userAgent"`               // User-Agent của client
	Note      string             `json:"note,omitempty" bson:"note,omitempty"`     // Lý do thất bại (sai mật khẩu, bị khóa...)
	Timestamp int64              `json:"timestamp" bson:"timestamp"`               // Thời điểm đăng nhập (unix millis)
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
