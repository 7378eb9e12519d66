package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyProgressType là giá trị khóa của document singleton tiến độ ngày.
const DailyProgressType = "daily"

// UserProgress là tiến độ gọi trong ngày của một agent.
type UserProgress struct {
	CallsToday   int   `json:"callsToday" bson:"callsToday"`
	LastCallTime int64 `json:"lastCallTime,omitempty" bson:"lastCallTime,omitempty"`
	UpdatedAt    int64 `json:"updatedAt" bson:"updatedAt"`
}

// DailyProgress là document singleton (Type = "daily") chứa tiến độ của tất cả
// agent trong ngày hiện tại. UserProgress key là ObjectID hex của user.
// LastReset dùng để so sánh ngày lịch khi reset.
type DailyProgress struct {
	ID           primitive.ObjectID      `json:"id" bson:"_id,omitempty"`
	Type         string                  `json:"type" bson:"type" index:"unique" default:"daily"`
	UserProgress map[string]UserProgress `json:"userProgress" bson:"userProgress"`
	LastReset    int64                   `json:"lastReset" bson:"lastReset"` // Unix millis của lần reset gần nhất
	CreatedAt    int64                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                   `json:"updatedAt" bson:"updatedAt"`
}
