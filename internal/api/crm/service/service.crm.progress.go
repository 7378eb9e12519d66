package crmsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// ProgressService quản lý document singleton tiến độ gọi theo ngày.
// Mọi thao tác đọc đều gọi CheckAndReset trước nên qua nửa đêm bộ đếm tự về 0
// kể cả khi worker reset chưa kịp chạy.
type ProgressService struct {
	*basesvc.BaseServiceMongoImpl[models.DailyProgress]
}

// NewProgressService tạo ProgressService mới.
func NewProgressService() (*ProgressService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DailyProgress)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.DailyProgress, common.ErrNotFound)
	}
	return &ProgressService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DailyProgress](coll),
	}, nil
}

// singletonFilter là filter của document duy nhất.
func singletonFilter() bson.M {
	return bson.M{"type": models.DailyProgressType}
}

// sameCalendarDay báo hai mốc unix-millis có cùng ngày lịch (giờ server) hay không.
func sameCalendarDay(a int64, b int64) bool {
	ay, am, ad := time.UnixMilli(a).Date()
	by, bm, bd := time.UnixMilli(b).Date()
	return ay == by && am == bm && ad == bd
}

// Get trả về tiến độ ngày hiện tại, tạo document nếu chưa có và reset nếu đã sang ngày mới.
func (s *ProgressService) Get(ctx context.Context) (models.DailyProgress, error) {
	var zero models.DailyProgress
	if _, _, err := s.CheckAndReset(ctx); err != nil {
		return zero, err
	}
	return s.FindOne(ctx, singletonFilter(), nil)
}

// ensureSingleton tạo document singleton nếu chưa tồn tại, trả về bản hiện hành.
func (s *ProgressService) ensureSingleton(ctx context.Context) (models.DailyProgress, error) {
	doc, err := s.FindOne(ctx, singletonFilter(), nil)
	if err == nil {
		return doc, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return doc, err
	}
	return s.Upsert(ctx, singletonFilter(), &basesvc.UpdateData{
		SetOnInsert: map[string]interface{}{
			"userProgress": map[string]interface{}{},
			"lastReset":    time.Now().UnixMilli(),
		},
	})
}

// RecordCall ghi đè tiến độ gọi trong ngày của một agent (client tự báo số liệu).
func (s *ProgressService) RecordCall(ctx context.Context, userID primitive.ObjectID, input *dto.ProgressRecordInput) (models.DailyProgress, error) {
	var zero models.DailyProgress
	if _, _, err := s.CheckAndReset(ctx); err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	lastCallTime := input.LastCallTime
	if lastCallTime == 0 {
		lastCallTime = now
	}
	key := "userProgress." + userID.Hex()
	return s.UpdateOne(ctx, singletonFilter(), &basesvc.UpdateData{
		Set: map[string]interface{}{
			key + ".callsToday":   input.CallsToday,
			key + ".lastCallTime": lastCallTime,
			key + ".updatedAt":    now,
		},
	}, nil)
}

// IncrementCall tăng bộ đếm tiến độ của một agent thêm 1 (gọi từ MarkCalled).
func (s *ProgressService) IncrementCall(ctx context.Context, userID primitive.ObjectID, callTime int64) error {
	if _, _, err := s.CheckAndReset(ctx); err != nil {
		return err
	}

	key := "userProgress." + userID.Hex()
	_, err := s.UpdateOne(ctx, singletonFilter(), &basesvc.UpdateData{
		Inc: map[string]interface{}{key + ".callsToday": 1},
		Set: map[string]interface{}{
			key + ".lastCallTime": callTime,
			key + ".updatedAt":    callTime,
		},
	}, nil)
	return err
}

// CheckAndReset so sánh ngày lịch (giờ server) của lastReset với hôm nay;
// sang ngày mới thì xóa toàn bộ userProgress và cập nhật lastReset.
// Idempotent trong cùng một ngày: gọi bao nhiêu lần cũng chỉ reset một lần.
func (s *ProgressService) CheckAndReset(ctx context.Context) (bool, int64, error) {
	doc, err := s.ensureSingleton(ctx)
	if err != nil {
		return false, 0, err
	}

	now := time.Now().UnixMilli()
	if sameCalendarDay(doc.LastReset, now) {
		return false, doc.LastReset, nil
	}

	// Điều kiện lastReset cũ chống reset đúp khi hai tiến trình cùng qua đây
	newReset := now
	filter := singletonFilter()
	filter["lastReset"] = doc.LastReset
	modified, err := s.UpdateMany(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"userProgress": map[string]interface{}{},
			"lastReset":    newReset,
		},
	}, nil)
	if err != nil {
		return false, 0, err
	}
	if modified == 0 {
		// Tiến trình khác vừa reset trước mình, coi như đã reset trong ngày
		current, err := s.FindOne(ctx, singletonFilter(), nil)
		if err != nil {
			return false, 0, err
		}
		return false, current.LastReset, nil
	}

	logger.GetAppLogger().Info("Đã reset tiến độ gọi sang ngày mới")
	return true, newReset, nil
}
