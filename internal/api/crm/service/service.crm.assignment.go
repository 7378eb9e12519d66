package crmsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
	"github.com/PlatformTravel/crm-sub000/internal/utility"
)

// AssignmentService xử lý chia số cho agent và ghi nhận kết quả gọi.
type AssignmentService struct {
	*basesvc.BaseServiceMongoImpl[models.Assignment]
	progressService *ProgressService
}

// NewAssignmentService tạo AssignmentService mới.
func NewAssignmentService() (*AssignmentService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Assignments)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Assignments, common.ErrNotFound)
	}
	progressService, err := NewProgressService()
	if err != nil {
		return nil, err
	}
	return &AssignmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Assignment](coll),
		progressService:      progressService,
	}, nil
}

// Assign chia số từ một pool cho agent. Chọn ứng viên theo danh sách id chỉ
// định hoặc theo filter (không dùng cả hai); id đã chia bị loại lặng lẽ.
//
// Chống tranh chấp giữa hai lần chia đồng thời: flip trạng thái bằng MỘT
// UpdateMany có điều kiện status="available". ModifiedCount cho biết số bản
// ghi mình thực sự thắng; nếu ít hơn số ứng viên thì query lại để biết thắng
// bản ghi nào, chỉ tạo Assignment cho những bản ghi đó. Hai lần chia đồng
// thời không bao giờ chia trùng một số.
func (s *AssignmentService) Assign(ctx context.Context, recordService *RecordService, agentID primitive.ObjectID, input *dto.AssignInput) (*dto.AssignResult, error) {
	if err := validateAssignSelection(input); err != nil {
		return nil, err
	}

	candidates, err := s.findCandidates(ctx, recordService, input)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, common.ErrNoCandidates
	}

	candidateIds := make([]primitive.ObjectID, len(candidates))
	snapshots := make(map[primitive.ObjectID]map[string]interface{}, len(candidates))
	for i, record := range candidates {
		candidateIds[i] = record.ID
		snapshot, err := utility.ToMap(record)
		if err != nil {
			return nil, common.NewError(common.ErrCodeInternalServer, "Không tạo được snapshot bản ghi", common.StatusInternalServerError, err.Error())
		}
		snapshots[record.ID] = snapshot
	}

	// Flip có điều kiện: chỉ thắng những bản ghi còn available tại thời điểm này
	now := time.Now().UnixMilli()
	modified, err := recordService.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": candidateIds}, "status": models.RecordStatusAvailable},
		&basesvc.UpdateData{
			Set: map[string]interface{}{
				"status":     models.RecordStatusAssigned,
				"assignedTo": agentID,
				"assignedAt": now,
			},
			Inc: map[string]interface{}{"version": 1},
		}, nil)
	if err != nil {
		return nil, err
	}
	if modified == 0 {
		return nil, common.ErrNoCandidates
	}

	// Query lại những bản ghi mình thắng (assignedAt đúng mốc thời gian của lần flip này)
	won := candidateIds
	if modified < int64(len(candidateIds)) {
		wonRecords, err := recordService.Find(ctx, bson.M{
			"_id":        bson.M{"$in": candidateIds},
			"status":     models.RecordStatusAssigned,
			"assignedTo": agentID,
			"assignedAt": now,
		}, nil)
		if err != nil {
			return nil, err
		}
		won = make([]primitive.ObjectID, len(wonRecords))
		for i, record := range wonRecords {
			won[i] = record.ID
		}
	}

	assignments := make([]models.Assignment, 0, len(won))
	for _, id := range won {
		assignments = append(assignments, models.Assignment{
			NumberID:   id,
			Collection: recordService.Kind(),
			NumberData: snapshots[id],
			AgentID:    agentID,
			AssignedAt: now,
			Status:     models.AssignmentStatusActive,
			Called:     false,
		})
	}
	created, err := s.InsertMany(ctx, assignments)
	if err != nil {
		return nil, err
	}

	result := &dto.AssignResult{
		Assigned:  int(modified),
		Requested: len(candidates),
	}
	for _, a := range created {
		result.Assignments = append(result.Assignments, a.ID.Hex())
	}
	logger.GetAppLogger().Infof("Chia %d/%d số pool %s cho agent %s", result.Assigned, result.Requested, recordService.Kind(), agentID.Hex())
	return result, nil
}

// validateAssignSelection kiểm tra input chia số phải chọn theo đúng một cách:
// danh sách id HOẶC filter. Body rỗng (không id, không filter) bị từ chối để
// tránh chia nhầm cả pool theo filter mặc định.
func validateAssignSelection(input *dto.AssignInput) error {
	hasIds := len(input.Ids) > 0
	hasFilter := input.CustomerType != "" || input.FlightInfo != "" || input.Count > 0
	if hasIds && hasFilter {
		return common.NewError(common.ErrCodeValidationInput,
			"Chọn số theo danh sách id hoặc theo filter, không dùng cả hai", common.StatusBadRequest, nil)
	}
	if !hasIds && !hasFilter {
		return common.NewError(common.ErrCodeValidationInput,
			"Chưa chọn số cần chia: truyền ids hoặc filter (customerType/flightInfo/count)", common.StatusBadRequest, nil)
	}
	return nil
}

// findCandidates đọc các bản ghi ứng viên còn available trước khi flip.
func (s *AssignmentService) findCandidates(ctx context.Context, recordService *RecordService, input *dto.AssignInput) ([]models.ContactRecord, error) {
	if len(input.Ids) > 0 {
		ids := make([]primitive.ObjectID, 0, len(input.Ids))
		for _, raw := range input.Ids {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return nil, common.NewError(common.ErrCodeValidationFormat,
					fmt.Sprintf("ID không hợp lệ: %s", raw), common.StatusBadRequest, nil)
			}
			ids = append(ids, id)
		}
		return recordService.Find(ctx, bson.M{
			"_id":    bson.M{"$in": ids},
			"status": models.RecordStatusAvailable,
		}, nil)
	}

	count := int64(input.Count)
	if count <= 0 {
		count = DefaultAssignCount
	}
	opts := options.Find().SetLimit(count).SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return recordService.Find(ctx, availableFilter(input.CustomerType, input.FlightInfo), opts)
}

// Claim gắn người gọi vào một assignment đang active (nhận số về mình).
// Assignment không tồn tại hoặc đã đóng đều trả về NotFound.
func (s *AssignmentService) Claim(ctx context.Context, assignmentID primitive.ObjectID, claimant primitive.ObjectID) (models.Assignment, error) {
	var zero models.Assignment

	assignment, err := s.FindOneById(ctx, assignmentID)
	if err != nil {
		return zero, err
	}
	if assignment.Status != models.AssignmentStatusActive {
		return zero, common.NewError(common.ErrCodeBusinessState,
			"Assignment không còn active", common.StatusNotFound, nil)
	}

	return s.UpdateById(ctx, assignmentID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"agentId":   claimant,
			"claimedAt": time.Now().UnixMilli(),
		},
	})
}

// MarkCalled ghi nhận agent đã gọi một assignment. Gọi lại lần nữa ghi đè
// kết quả cũ (last write wins). Đồng thời tăng bộ đếm tiến độ ngày của agent.
func (s *AssignmentService) MarkCalled(ctx context.Context, input *dto.MarkCalledInput) (models.Assignment, error) {
	var zero models.Assignment

	assignmentID, err := primitive.ObjectIDFromHex(input.AssignmentID)
	if err != nil {
		return zero, common.NewError(common.ErrCodeValidationFormat, "ID assignment không hợp lệ", common.StatusBadRequest, nil)
	}

	outcome := input.Outcome
	if outcome == "" {
		outcome = models.OutcomeCompleted
	}
	if !models.IsValidOutcome(outcome) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Kết quả cuộc gọi không hợp lệ: %s", input.Outcome), common.StatusBadRequest, nil)
	}

	now := time.Now().UnixMilli()
	assignment, err := s.UpdateById(ctx, assignmentID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"called":   true,
			"calledAt": now,
			"outcome":  outcome,
		},
	})
	if err != nil {
		return zero, err
	}

	// Lỗi tiến độ không làm hỏng việc ghi kết quả gọi, chỉ log lại
	if err := s.progressService.IncrementCall(ctx, assignment.AgentID, now); err != nil {
		logger.GetAppLogger().WithError(err).Warnf("Không tăng được tiến độ ngày cho agent %s", assignment.AgentID.Hex())
	}
	return assignment, nil
}

// FindByAgent liệt kê assignment của một agent, mặc định chỉ các assignment active.
func (s *AssignmentService) FindByAgent(ctx context.Context, agentID primitive.ObjectID, includeDone bool) ([]models.Assignment, error) {
	filter := bson.M{"agentId": agentID}
	if !includeDone {
		filter["status"] = models.AssignmentStatusActive
	}
	opts := options.Find().SetSort(bson.D{{Key: "assignedAt", Value: -1}})
	return s.Find(ctx, filter, opts)
}
