package crmhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/PlatformTravel/crm-sub000/internal/api/base/handler"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/crm/models"
	crmsvc "github.com/PlatformTravel/crm-sub000/internal/api/crm/service"
)

// CallLogHandler xử lý request trên lịch sử gọi.
type CallLogHandler struct {
	*basehdl.BaseHandler[models.CallLog, dto.CallLogCreateInput, dto.CallLogUpdateInput]
	callLogService *crmsvc.CallLogService
}

// NewCallLogHandler tạo instance mới của CallLogHandler
func NewCallLogHandler() (*CallLogHandler, error) {
	callLogService, err := crmsvc.NewCallLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create call log service: %v", err)
	}
	return &CallLogHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.CallLog, dto.CallLogCreateInput, dto.CallLogUpdateInput](callLogService.BaseServiceMongoImpl),
		callLogService: callLogService,
	}, nil
}

// HandleLogCall ghi một dòng lịch sử gọi. agentId bỏ trống lấy theo người
// đang đăng nhập, callTime bỏ trống lấy thời điểm hiện tại.
func (h *CallLogHandler) HandleLogCall(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CallLogCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var agentID primitive.ObjectID
		if input.AgentID != "" {
			var err error
			if agentID, err = primitive.ObjectIDFromHex(input.AgentID); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		} else {
			var err error
			if agentID, err = currentUserID(c); err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		callTime := input.CallTime
		if callTime == 0 {
			callTime = time.Now().UnixMilli()
		}

		entry := models.CallLog{
			AgentID:     agentID,
			PhoneNumber: input.PhoneNumber,
			ContactName: input.ContactName,
			Duration:    input.Duration,
			Status:      input.Status,
			CallTime:    callTime,
			Notes:       input.Notes,
		}
		created, err := h.callLogService.InsertOne(c.Context(), entry)
		h.HandleResponse(c, created, err)
		return nil
	})
}
