// Package crmsvc - Service nghiệp vụ CRM: pool số, chia số, kết quả gọi,
// tiến độ ngày và lưu trữ/khôi phục.
package crmsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
)

// DefaultAssignCount giới hạn mặc định khi chia số theo filter.
const DefaultAssignCount = 100

// RecordService thao tác trên một pool số (crm_clients hoặc crm_customers,
// cùng shape, hai collection riêng).
type RecordService struct {
	*basesvc.BaseServiceMongoImpl[models.ContactRecord]
	collectionKind string // client | customer
}

// NewClientService tạo RecordService trên pool khách tiềm năng.
func NewClientService() (*RecordService, error) {
	return newRecordService(global.MongoDB_ColNames.Clients, models.RecordCollectionClient)
}

// NewCustomerService tạo RecordService trên pool khách hiện hữu.
func NewCustomerService() (*RecordService, error) {
	return newRecordService(global.MongoDB_ColNames.Customers, models.RecordCollectionCustomer)
}

// NewRecordServiceFor trả về RecordService theo discriminator ("client" | "customer" | "number").
// "number" là thực thể pool khách tiềm năng dưới tên cũ, dùng chung collection clients.
func NewRecordServiceFor(kind string) (*RecordService, error) {
	switch kind {
	case models.RecordCollectionClient, models.ArchiveEntityNumber:
		return NewClientService()
	case models.RecordCollectionCustomer:
		return NewCustomerService()
	}
	return nil, common.NewError(common.ErrCodeValidationInput,
		fmt.Sprintf("Loại pool không hợp lệ: %s", kind), common.StatusBadRequest, nil)
}

func newRecordService(collectionName string, kind string) (*RecordService, error) {
	coll, exist := global.RegistryCollections.Get(collectionName)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", collectionName, common.ErrNotFound)
	}
	return &RecordService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ContactRecord](coll),
		collectionKind:       kind,
	}, nil
}

// Kind trả về discriminator của pool ("client" | "customer").
func (s *RecordService) Kind() string {
	return s.collectionKind
}

// Import ghi hàng loạt bản ghi vào pool. Dòng thiếu customerType mặc định
// "Retails", trạng thái luôn bắt đầu ở "available".
func (s *RecordService) Import(ctx context.Context, input *dto.RecordImportInput) (*dto.RecordImportResult, error) {
	result := &dto.RecordImportResult{}
	records := make([]models.ContactRecord, 0, len(input.Records))
	for i, item := range input.Records {
		if item.Phone == "" {
			result.Skipped = append(result.Skipped, fmt.Sprintf("dòng %d: thiếu số điện thoại", i+1))
			continue
		}
		customerType := item.CustomerType
		if customerType == "" {
			customerType = models.CustomerTypeRetails
		}
		if !models.IsValidCustomerType(customerType) {
			result.Skipped = append(result.Skipped, fmt.Sprintf("dòng %d: phân khúc không hợp lệ %q", i+1, item.CustomerType))
			continue
		}
		records = append(records, models.ContactRecord{
			Name:         item.Name,
			Phone:        item.Phone,
			Email:        item.Email,
			Company:      item.Company,
			CustomerType: customerType,
			FlightInfo:   item.FlightInfo,
			Status:       models.RecordStatusAvailable,
			Notes:        item.Notes,
		})
	}
	if len(records) == 0 {
		return nil, common.NewError(common.ErrCodeValidationInput, "Không có dòng hợp lệ nào để import", common.StatusBadRequest, result.Skipped)
	}

	inserted, err := s.InsertMany(ctx, records)
	if err != nil {
		return nil, err
	}
	result.Inserted = len(inserted)
	return result, nil
}

// availableFilter dựng filter pool khả dụng theo phân khúc và tuyến bay.
// FlightInfo so khớp substring không phân biệt hoa thường.
func availableFilter(customerType string, flightInfo string) bson.M {
	filter := bson.M{"status": models.RecordStatusAvailable}
	if customerType != "" {
		filter["customerType"] = customerType
	}
	if flightInfo != "" {
		filter["flightInfo"] = primitive.Regex{Pattern: regexEscape(flightInfo), Options: "i"}
	}
	return filter
}

// Available liệt kê các bản ghi khả dụng theo filter, giới hạn limit.
func (s *RecordService) Available(ctx context.Context, customerType string, flightInfo string, limit int64) ([]models.ContactRecord, error) {
	if limit <= 0 {
		limit = DefaultAssignCount
	}
	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return s.Find(ctx, availableFilter(customerType, flightInfo), opts)
}

// regexEscape thoát các ký tự đặc biệt của regex để so khớp như chuỗi thường.
func regexEscape(s string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		for j := 0; j < len(special); j++ {
			if ch == special[j] {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, ch)
	}
	return string(out)
}
