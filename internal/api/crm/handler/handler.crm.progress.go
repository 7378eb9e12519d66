package crmhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/PlatformTravel/crm-sub000/internal/api/base/handler"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	crmsvc "github.com/PlatformTravel/crm-sub000/internal/api/crm/service"
	"github.com/PlatformTravel/crm-sub000/internal/common"
)

// ProgressHandler xử lý request tiến độ gọi theo ngày. Không mở route CRUD
// chung: document singleton chỉ thao tác qua các nghiệp vụ bên dưới.
type ProgressHandler struct {
	*basehdl.BaseHandler[models.DailyProgress, dto.ProgressRecordInput, dto.ProgressRecordInput]
	progressService *crmsvc.ProgressService
}

// NewProgressHandler tạo instance mới của ProgressHandler
func NewProgressHandler() (*ProgressHandler, error) {
	progressService, err := crmsvc.NewProgressService()
	if err != nil {
		return nil, fmt.Errorf("failed to create progress service: %v", err)
	}
	return &ProgressHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.DailyProgress, dto.ProgressRecordInput, dto.ProgressRecordInput](progressService.BaseServiceMongoImpl),
		progressService: progressService,
	}, nil
}

// HandleGet trả về tiến độ ngày hiện tại (đã reset lười nếu sang ngày mới).
func (h *ProgressHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		progress, err := h.progressService.Get(c.Context())
		h.HandleResponse(c, progress, err)
		return nil
	})
}

// HandleRecord ghi tiến độ gọi của một agent. userId bỏ trống lấy theo
// người đang đăng nhập.
func (h *ProgressHandler) HandleRecord(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ProgressRecordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var userID primitive.ObjectID
		var err error
		if input.UserID != "" {
			if userID, err = primitive.ObjectIDFromHex(input.UserID); err != nil {
				h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, nil))
				return nil
			}
		} else {
			if userID, err = currentUserID(c); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		progress, err := h.progressService.RecordCall(c.Context(), userID, &input)
		h.HandleResponse(c, progress, err)
		return nil
	})
}

// HandleCheckReset kiểm tra và reset tiến độ nếu đã sang ngày mới.
func (h *ProgressHandler) HandleCheckReset(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		wasReset, lastReset, err := h.progressService.CheckAndReset(c.Context())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, dto.ProgressCheckResetResult{
			WasReset:  wasReset,
			LastReset: lastReset,
		}, nil)
		return nil
	})
}
