// Package crmhdl xử lý request cho domain CRM: pool số, chia số, kết quả gọi,
// tiến độ ngày và lưu trữ.
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
	"github.com/PlatformTravel/crm-sub000/internal/logger"
	"github.com/PlatformTravel/crm-sub000/internal/utility"
)

// RecordHandler xử lý request trên một pool số (client hoặc customer).
// Hai instance đăng ký lên hai prefix /client và /customer.
type RecordHandler struct {
	*basehdl.BaseHandler[models.ContactRecord, dto.RecordCreateInput, dto.RecordUpdateInput]
	recordService     *crmsvc.RecordService
	assignmentService *crmsvc.AssignmentService
}

// NewClientHandler tạo RecordHandler trên pool khách tiềm năng.
func NewClientHandler() (*RecordHandler, error) {
	recordService, err := crmsvc.NewClientService()
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %v", err)
	}
	return newRecordHandler(recordService)
}

// NewCustomerHandler tạo RecordHandler trên pool khách hiện hữu.
func NewCustomerHandler() (*RecordHandler, error) {
	recordService, err := crmsvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %v", err)
	}
	return newRecordHandler(recordService)
}

func newRecordHandler(recordService *crmsvc.RecordService) (*RecordHandler, error) {
	assignmentService, err := crmsvc.NewAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment service: %v", err)
	}
	return &RecordHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.ContactRecord, dto.RecordCreateInput, dto.RecordUpdateInput](recordService.BaseServiceMongoImpl),
		recordService:     recordService,
		assignmentService: assignmentService,
	}, nil
}

// currentUserID lấy ObjectID của user đang đăng nhập từ context.
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "Chưa đăng nhập", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleImport import hàng loạt vào pool. Dòng thiếu customerType mặc định "Retails".
func (h *RecordHandler) HandleImport(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.RecordImportInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.recordService.Import(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("import", h.recordService.Kind(), "", c, map[string]interface{}{
				"inserted": result.Inserted,
				"skipped":  len(result.Skipped),
			})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAssign chia số từ pool này cho một agent. agentId bỏ trống nghĩa là
// chia cho chính người gọi.
func (h *RecordHandler) HandleAssign(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.AssignInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		agentID, err := resolveAgentID(c, input.AgentID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.assignmentService.Assign(c.Context(), h.recordService, agentID, &input)
		if err == nil {
			logger.LogCRUD("assign", h.recordService.Kind(), agentID.Hex(), c, map[string]interface{}{
				"assigned":  result.Assigned,
				"requested": result.Requested,
			})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleAvailable liệt kê số khả dụng theo customerType/flightInfo, giới hạn limit.
func (h *RecordHandler) HandleAvailable(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		limit := utility.P2Int64(c.Query("limit"))
		records, err := h.recordService.Available(c.Context(), c.Query("customerType"), c.Query("flightInfo"), limit)
		h.HandleResponse(c, records, err)
		return nil
	})
}

// resolveAgentID trả về agent đích: agentId truyền lên (admin chia hộ) hoặc
// chính người gọi nếu bỏ trống.
func resolveAgentID(c fiber.Ctx, rawAgentID string) (primitive.ObjectID, error) {
	if rawAgentID == "" {
		return currentUserID(c)
	}
	agentID, err := primitive.ObjectIDFromHex(rawAgentID)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Agent ID không hợp lệ", common.StatusBadRequest, nil)
	}
	return agentID, nil
}
