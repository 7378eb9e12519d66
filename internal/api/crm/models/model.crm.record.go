// Package models định nghĩa các model MongoDB cho domain CRM:
// pool số (client/customer), phân bổ số, nhật ký gọi, lưu trữ và tiến độ ngày.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái của một bản ghi trong pool số.
const (
	RecordStatusAvailable = "available" // Chưa chia cho agent nào
	RecordStatusAssigned  = "assigned"  // Đã chia cho một agent
)

// Phân khúc khách hàng. Import không ghi rõ sẽ mặc định Retails.
const (
	CustomerTypeCorporate = "Corporate"
	CustomerTypeRetails   = "Retails"
	CustomerTypeChannel   = "Channel"
)

// Loại bản ghi, dùng làm discriminator giữa hai collection pool.
const (
	RecordCollectionClient   = "client"
	RecordCollectionCustomer = "customer"
)

// IsValidCustomerType kiểm tra phân khúc có thuộc tập cố định không.
func IsValidCustomerType(t string) bool {
	switch t {
	case CustomerTypeCorporate, CustomerTypeRetails, CustomerTypeChannel:
		return true
	}
	return false
}

// ContactRecord là một số điện thoại trong pool (khách tiềm năng hoặc khách
// hiện hữu, hai collection riêng cùng shape).
//
// Bất biến: Status == "assigned" ⇔ AssignedTo != nil và AssignedAt != 0.
// Version tăng 1 mỗi lần đổi trạng thái, dùng cho update có điều kiện khi chia số.
type ContactRecord struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Name          string              `json:"name" bson:"name"`
	Phone         string              `json:"phone" bson:"phone" index:"single"` // Bắt buộc
	Email         string              `json:"email,omitempty" bson:"email,omitempty"`
	Company       string              `json:"company,omitempty" bson:"company,omitempty"`
	CustomerType  string              `json:"customerType" bson:"customerType" default:"Retails"` // Corporate | Retails | Channel
	FlightInfo    string              `json:"flightInfo,omitempty" bson:"flightInfo,omitempty"`   // Tuyến bay quan tâm, lọc substring
	Status        string              `json:"status" bson:"status" default:"available"`           // available | assigned
	AssignedTo    *primitive.ObjectID `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`   // Agent đang giữ số
	AssignedAt    int64               `json:"assignedAt,omitempty" bson:"assignedAt,omitempty"`   // Thời điểm chia số (unix millis)
	Version       int64               `json:"version" bson:"version"`                             // Tăng mỗi lần đổi trạng thái
	IsCallback    bool                `json:"isCallback,omitempty" bson:"isCallback,omitempty"`   // Đã từng khôi phục từ lưu trữ
	CallbackCount int                 `json:"callbackCount,omitempty" bson:"callbackCount,omitempty"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64               `json:"updatedAt" bson:"updatedAt"`
}
