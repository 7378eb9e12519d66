// Package crmsvc - Test filter pool khả dụng và escape regex cho tuyến bay.
package crmsvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
)

func TestAvailableFilter_ChiLocStatusKhiKhongCoDieuKien(t *testing.T) {
	filter := availableFilter("", "")
	if filter["status"] != models.RecordStatusAvailable {
		t.Errorf("Filter phải luôn giữ status=available, có: %v", filter["status"])
	}
	if _, ok := filter["customerType"]; ok {
		t.Error("Không truyền phân khúc thì filter không được chứa customerType")
	}
	if _, ok := filter["flightInfo"]; ok {
		t.Error("Không truyền tuyến bay thì filter không được chứa flightInfo")
	}
}

func TestAvailableFilter_PhanKhucExactMatch(t *testing.T) {
	filter := availableFilter(models.CustomerTypeCorporate, "")
	if filter["customerType"] != models.CustomerTypeCorporate {
		t.Errorf("Phân khúc phải so khớp chính xác, có: %v", filter["customerType"])
	}
}

func TestAvailableFilter_TuyenBayRegexKhongPhanBietHoaThuong(t *testing.T) {
	filter := availableFilter("", "SGN-HAN")
	regex, ok := filter["flightInfo"].(primitive.Regex)
	if !ok {
		t.Fatalf("flightInfo phải là primitive.Regex, có: %T", filter["flightInfo"])
	}
	if regex.Options != "i" {
		t.Errorf("Regex phải có option i (không phân biệt hoa thường), có: %q", regex.Options)
	}
	if regex.Pattern != "SGN-HAN" {
		t.Errorf("Pattern không đúng: %q", regex.Pattern)
	}
}

func TestRegexEscape_ThoatKyTuDacBiet(t *testing.T) {
	cases := map[string]string{
		"SGN-HAN":     "SGN-HAN",
		"SGN.HAN":     `SGN\.HAN`,
		"a+b*c?":      `a\+b\*c\?`,
		"(x)|[y]":     `\(x\)\|\[y\]`,
		"{1}^$":       `\{1\}\^\$`,
		`a\b`:         `a\\b`,
		"bình thường": "bình thường",
	}
	for input, want := range cases {
		if got := regexEscape(input); got != want {
			t.Errorf("regexEscape(%q) = %q, muốn %q", input, got, want)
		}
	}
}
