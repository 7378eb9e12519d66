package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Loại thực thể được lưu trữ.
const (
	ArchiveEntityClient   = "client"
	ArchiveEntityCustomer = "customer"
	ArchiveEntityNumber   = "number"
)

// ArchiveEntry là một bản ghi đã đưa khỏi pool. Data giữ snapshot đầy đủ để
// khôi phục nguyên trạng; các trường phẳng bên cạnh phục vụ hiển thị danh
// sách lưu trữ mà không phải đào vào snapshot.
type ArchiveEntry struct {
	ID             primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	EntityType     string                 `json:"entityType" bson:"entityType" index:"single"` // client | customer | number
	Data           map[string]interface{} `json:"data" bson:"data"`                            // Snapshot đầy đủ của bản ghi gốc
	Name           string                 `json:"name,omitempty" bson:"name,omitempty"`
	Phone          string                 `json:"phone,omitempty" bson:"phone,omitempty"`
	Email          string                 `json:"email,omitempty" bson:"email,omitempty"`
	Company        string                 `json:"company,omitempty" bson:"company,omitempty"`
	AssignedToName string                 `json:"assignedToName,omitempty" bson:"assignedToName,omitempty"`
	AssignedAt     int64                  `json:"assignedAt,omitempty" bson:"assignedAt,omitempty"`
	Notes          string                 `json:"notes,omitempty" bson:"notes,omitempty"`
	IsCallback     bool                   `json:"isCallback,omitempty" bson:"isCallback,omitempty"`
	CallbackCount  int                    `json:"callbackCount,omitempty" bson:"callbackCount,omitempty"`
	ArchivedAt     int64                  `json:"archivedAt" bson:"archivedAt"`
	ArchivedBy     primitive.ObjectID     `json:"archivedBy,omitempty" bson:"archivedBy,omitempty"`
	CreatedAt      int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64                  `json:"updatedAt" bson:"updatedAt"`
}
