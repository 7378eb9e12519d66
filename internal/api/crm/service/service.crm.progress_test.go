// Package crmsvc - Test quy tắc reset tiến độ theo ngày lịch.
package crmsvc

import (
	"testing"
	"time"

	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
)

func TestSameCalendarDay_CungNgay(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 0, 1, 0, time.Local).UnixMilli()
	night := time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local).UnixMilli()
	if !sameCalendarDay(morning, night) {
		t.Error("Hai mốc trong cùng một ngày lịch phải trả về true (không reset)")
	}
}

func TestSameCalendarDay_QuaNuaDem(t *testing.T) {
	before := time.Date(2025, 3, 10, 23, 59, 59, 0, time.Local).UnixMilli()
	after := time.Date(2025, 3, 11, 0, 0, 1, 0, time.Local).UnixMilli()
	if sameCalendarDay(before, after) {
		t.Error("Qua nửa đêm phải trả về false dù chỉ cách nhau 2 giây (phải reset)")
	}
}

func TestSameCalendarDay_CachNhieuNgay(t *testing.T) {
	old := time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local).UnixMilli()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local).UnixMilli()
	if sameCalendarDay(old, now) {
		t.Error("Server ngủ nhiều ngày thì lần kiểm tra đầu tiên phải reset")
	}
}

func TestSingletonFilter_TheoType(t *testing.T) {
	filter := singletonFilter()
	if filter["type"] != models.DailyProgressType {
		t.Errorf("Filter singleton phải theo type=%q, có: %v", models.DailyProgressType, filter["type"])
	}
	if len(filter) != 1 {
		t.Errorf("Filter singleton chỉ được có đúng 1 điều kiện, có: %v", filter)
	}
}
