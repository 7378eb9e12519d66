package authhdl

import (
	"fmt"

	authdto "github.com/PlatformTravel/crm-sub000/internal/api/auth/dto"
	models "github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	authsvc "github.com/PlatformTravel/crm-sub000/internal/api/auth/service"
	basehdl "github.com/PlatformTravel/crm-sub000/internal/api/base/handler"
)

// LoginAuditHandler xử lý request tra cứu nhật ký đăng nhập (chỉ đọc).
type LoginAuditHandler struct {
	*basehdl.BaseHandler[models.LoginAudit, authdto.LoginAuditCreateInput, authdto.LoginAuditUpdateInput]
}

// NewLoginAuditHandler tạo instance mới của LoginAuditHandler
func NewLoginAuditHandler() (*LoginAuditHandler, error) {
	auditService, err := authsvc.NewLoginAuditService()
	if err != nil {
		return nil, fmt.Errorf("failed to create login audit service: %v", err)
	}
	return &LoginAuditHandler{
		BaseHandler: basehdl.NewBaseHandler[models.LoginAudit, authdto.LoginAuditCreateInput, authdto.LoginAuditUpdateInput](auditService.BaseServiceMongoImpl),
	}, nil
}
