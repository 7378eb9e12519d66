// Package crmsvc - Test quy tắc chọn số của nghiệp vụ chia số.
package crmsvc

import (
	"errors"
	"testing"

	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/common"
)

func TestValidateAssignSelection_BodyRongBiTuChoi(t *testing.T) {
	err := validateAssignSelection(&dto.AssignInput{})
	if err == nil {
		t.Fatal("Body rỗng (không id, không filter) phải bị từ chối, không được chia mặc định cả pool")
	}
	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Lỗi phải là *common.Error, nhận được %T", err)
	}
	if cerr.StatusCode != common.StatusBadRequest {
		t.Errorf("Body rỗng phải trả 400, nhận được %d", cerr.StatusCode)
	}
}

func TestValidateAssignSelection_KhongDungCaIdsVaFilter(t *testing.T) {
	err := validateAssignSelection(&dto.AssignInput{
		Ids:          []string{"64a000000000000000000001"},
		CustomerType: "Corporate",
	})
	if err == nil {
		t.Fatal("Truyền cả ids lẫn filter phải bị từ chối")
	}
	var cerr *common.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("Lỗi phải là *common.Error, nhận được %T", err)
	}
	if cerr.StatusCode != common.StatusBadRequest {
		t.Errorf("Ids + filter phải trả 400, nhận được %d", cerr.StatusCode)
	}
}

func TestValidateAssignSelection_ChapNhanTungCachRieng(t *testing.T) {
	cases := map[string]*dto.AssignInput{
		"chỉ ids":          {Ids: []string{"64a000000000000000000001"}},
		"chỉ customerType": {CustomerType: "Retails"},
		"chỉ flightInfo":   {FlightInfo: "SGN-HAN"},
		"chỉ count":        {Count: 10},
	}
	for name, input := range cases {
		if err := validateAssignSelection(input); err != nil {
			t.Errorf("Input %s phải hợp lệ, nhận được lỗi: %v", name, err)
		}
	}
}
