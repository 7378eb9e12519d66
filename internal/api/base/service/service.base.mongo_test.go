// Package basesvc - Test áp dụng default từ struct tag và chuyển DTO thành UpdateData.
package basesvc

import (
	"reflect"
	"testing"
)

type defaultedModel struct {
	Name   string `bson:"name"`
	Status string `bson:"status" default:"available"`
	Role   string `bson:"role" default:"agent"`
	Target int    `bson:"dailyTarget" default:"30"`
	Active bool   `bson:"active" default:"true"`
}

func TestApplyInsertDefaults_ChiSetFieldZero(t *testing.T) {
	m := defaultedModel{Name: "A", Status: "assigned"}
	applyInsertDefaultsToModel(&m)

	if m.Status != "assigned" {
		t.Errorf("Field đã có giá trị không được ghi đè, có: %q", m.Status)
	}
	if m.Role != "agent" {
		t.Errorf("Field zero phải nhận default, có: %q", m.Role)
	}
	if m.Target != 30 {
		t.Errorf("Default kiểu int phải parse đúng, có: %d", m.Target)
	}
	if !m.Active {
		t.Error("Default kiểu bool phải parse đúng")
	}
}

func TestGetInsertDefaults_TheoBsonKey(t *testing.T) {
	defaults := getInsertDefaultsFromModelType(reflect.TypeOf(defaultedModel{}))
	if _, ok := defaults["status"]; !ok {
		t.Errorf("Map default phải key theo tên bson, có: %v", defaults)
	}
	if _, ok := defaults["name"]; ok {
		t.Error("Field không có tag default không được xuất hiện")
	}
	if defaults["dailyTarget"] != int32(30) {
		t.Errorf("dailyTarget phải là 30, có: %v (%T)", defaults["dailyTarget"], defaults["dailyTarget"])
	}
}

type updateDTO struct {
	FullName string `bson:"fullName,omitempty"`
	Email    string `bson:"email,omitempty"`
	Target   int    `bson:"dailyTarget,omitempty"`
}

func TestToUpdateData_BoQuaFieldRong(t *testing.T) {
	ud, err := ToUpdateData(updateDTO{FullName: "Nguyễn Văn A"})
	if err != nil {
		t.Fatalf("ToUpdateData lỗi: %v", err)
	}
	if ud.Set["fullName"] != "Nguyễn Văn A" {
		t.Errorf("Set phải chứa fullName, có: %v", ud.Set)
	}
	if _, ok := ud.Set["email"]; ok {
		t.Error("Field rỗng với omitempty không được vào Set")
	}
}
