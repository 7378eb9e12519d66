// Package authsvc - Service xác thực người dùng và nhật ký đăng nhập.
package authsvc

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// LoginAuditService ghi nhật ký đăng nhập. Collection chỉ ghi thêm.
type LoginAuditService struct {
	*basesvc.BaseServiceMongoImpl[models.LoginAudit]
}

// NewLoginAuditService tạo LoginAuditService mới.
func NewLoginAuditService() (*LoginAuditService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.LoginAudits)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.LoginAudits, common.ErrNotFound)
	}
	return &LoginAuditService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.LoginAudit](coll),
	}, nil
}

// Record ghi một lần đăng nhập. Lỗi ghi audit không chặn luồng đăng nhập,
// chỉ log lại để theo dõi.
func (s *LoginAuditService) Record(ctx context.Context, userID primitive.ObjectID, username string, success bool, ip string, userAgent string, note string) {
	entry := models.LoginAudit{
		UserID:    userID,
		Username:  username,
		Success:   success,
		Ip:        ip,
		UserAgent: userAgent,
		Note:      note,
		Timestamp: time.Now().UnixMilli(),
	}
	if _, err := s.InsertOne(ctx, entry); err != nil {
		logger.GetAppLogger().WithError(err).WithField("username", username).Warn("Không ghi được nhật ký đăng nhập")
	} else {
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"username": username,
			"success":  success,
			"ip":       ip,
		}).Info("Đăng nhập")
	}
}
