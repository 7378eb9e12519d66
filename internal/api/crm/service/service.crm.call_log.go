package crmsvc

import (
	"fmt"

	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
)

// CallLogService ghi và tra cứu lịch sử gọi. Không ràng buộc tham chiếu với
// assignment: dòng log có thể trỏ tới số không còn trong pool.
type CallLogService struct {
	*basesvc.BaseServiceMongoImpl[models.CallLog]
}

// NewCallLogService tạo CallLogService mới.
func NewCallLogService() (*CallLogService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.CallLogs)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.CallLogs, common.ErrNotFound)
	}
	return &CallLogService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.CallLog](coll),
	}, nil
}
