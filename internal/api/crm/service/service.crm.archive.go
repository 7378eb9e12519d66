package crmsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
	"github.com/PlatformTravel/crm-sub000/internal/utility"
)

// ArchiveService xử lý lưu trữ bản ghi khỏi pool và khôi phục ngược lại.
type ArchiveService struct {
	*basesvc.BaseServiceMongoImpl[models.ArchiveEntry]
	assignmentService *AssignmentService
}

// NewArchiveService tạo ArchiveService mới.
func NewArchiveService() (*ArchiveService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Archives)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Archives, common.ErrNotFound)
	}
	assignmentService, err := NewAssignmentService()
	if err != nil {
		return nil, err
	}
	return &ArchiveService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ArchiveEntry](coll),
		assignmentService:    assignmentService,
	}, nil
}

// resolveUserName tra tên hiển thị của một user. Không tìm thấy trả về chuỗi rỗng.
func resolveUserName(ctx context.Context, userID primitive.ObjectID) string {
	coll, ok := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !ok {
		return ""
	}
	var user authmodels.User
	if err := coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		return ""
	}
	if user.FullName != "" {
		return user.FullName
	}
	return user.Username
}

// Archive chuyển một bản ghi khỏi pool: chụp snapshot vào crm_archives, xóa
// bản ghi sống và đóng các assignment đang active của nó.
func (s *ArchiveService) Archive(ctx context.Context, entityType string, recordID primitive.ObjectID, archivedBy primitive.ObjectID, notes string) (models.ArchiveEntry, error) {
	var zero models.ArchiveEntry

	recordService, err := NewRecordServiceFor(entityType)
	if err != nil {
		return zero, err
	}

	record, err := recordService.FindOneById(ctx, recordID)
	if err != nil {
		return zero, err
	}

	snapshot, err := utility.ToMap(record)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không tạo được snapshot bản ghi", common.StatusInternalServerError, err.Error())
	}

	entry := models.ArchiveEntry{
		EntityType:    entityType,
		Data:          snapshot,
		Name:          record.Name,
		Phone:         record.Phone,
		Email:         record.Email,
		Company:       record.Company,
		AssignedAt:    record.AssignedAt,
		Notes:         notes,
		IsCallback:    record.IsCallback,
		CallbackCount: record.CallbackCount,
		ArchivedAt:    time.Now().UnixMilli(),
		ArchivedBy:    archivedBy,
	}
	if record.AssignedTo != nil {
		entry.AssignedToName = resolveUserName(ctx, *record.AssignedTo)
	}

	entry, err = s.InsertOne(ctx, entry)
	if err != nil {
		return zero, err
	}

	if err := recordService.DeleteById(ctx, recordID); err != nil {
		return zero, err
	}

	// Đóng các assignment đang giữ số này
	if _, err := s.assignmentService.UpdateMany(ctx,
		bson.M{"numberId": recordID, "status": models.AssignmentStatusActive},
		&basesvc.UpdateData{Set: map[string]interface{}{"status": models.AssignmentStatusDone}},
		nil); err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Không đóng được assignment của bản ghi %s", recordID.Hex())
	}

	return entry, nil
}

// SweepCompleted quét toàn bộ assignment đã gọi xong với kết quả "completed"
// và lưu trữ bản ghi tương ứng. Chạy hàng ngày từ worker, admin cũng có thể
// gọi tay. Trả về số bản ghi đã lưu trữ theo từng loại thực thể.
func (s *ArchiveService) SweepCompleted(ctx context.Context) (*dto.SweepResult, error) {
	completed, err := s.assignmentService.Find(ctx, bson.M{
		"status":  models.AssignmentStatusActive,
		"called":  true,
		"outcome": models.OutcomeCompleted,
	}, nil)
	if err != nil {
		return nil, err
	}

	result := &dto.SweepResult{Archived: map[string]int{}}
	for _, assignment := range completed {
		if _, err := s.Archive(ctx, assignment.Collection, assignment.NumberID, assignment.AgentID, "Lưu trữ tự động sau khi hoàn tất"); err != nil {
			// Bản ghi có thể đã lưu trữ bởi assignment khác cùng số
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			logger.GetAppLogger().WithError(err).Warnf("Sweep bỏ qua assignment %s", assignment.ID.Hex())
			continue
		}
		result.Archived[assignment.Collection]++
		result.Total++
	}
	return result, nil
}

// Restore khôi phục các bản ghi từ lưu trữ về pool tương ứng: trạng thái về
// "available", bỏ thông tin chia số, đánh dấu isCallback và tăng callbackCount.
//
// Chấp nhận thất bại từng phần: id lỗi nằm trong Failed, các id còn lại vẫn
// được khôi phục. Riêng trường hợp chỉ truyền một id và id đó không tồn tại
// thì trả về NotFound.
func (s *ArchiveService) Restore(ctx context.Context, archiveIds []string) (*dto.RestoreResult, error) {
	result := &dto.RestoreResult{}
	for _, raw := range archiveIds {
		if err := s.restoreOne(ctx, raw); err != nil {
			if len(archiveIds) == 1 && errors.Is(err, common.ErrNotFound) {
				return nil, err
			}
			logger.GetAppLogger().WithError(err).Warnf("Không khôi phục được bản ghi lưu trữ %s", raw)
			result.Failed = append(result.Failed, raw)
			continue
		}
		result.Restored++
	}
	return result, nil
}

// restoreOne khôi phục một bản ghi lưu trữ.
func (s *ArchiveService) restoreOne(ctx context.Context, rawID string) error {
	entryID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("ID lưu trữ không hợp lệ: %s", rawID), common.StatusBadRequest, nil)
	}

	entry, err := s.FindOneById(ctx, entryID)
	if err != nil {
		return err
	}

	recordService, err := NewRecordServiceFor(entry.EntityType)
	if err != nil {
		return err
	}

	// Dựng lại bản ghi từ snapshot, giữ nguyên _id gốc
	raw, err := bson.Marshal(entry.Data)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Snapshot lưu trữ hỏng", common.StatusInternalServerError, err.Error())
	}
	var record models.ContactRecord
	if err := bson.Unmarshal(raw, &record); err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Snapshot lưu trữ hỏng", common.StatusInternalServerError, err.Error())
	}

	record.Status = models.RecordStatusAvailable
	record.AssignedTo = nil
	record.AssignedAt = 0
	record.IsCallback = true
	record.CallbackCount++
	record.Version++

	if _, err := recordService.InsertOne(ctx, record); err != nil {
		return err
	}
	return s.DeleteById(ctx, entryID)
}
