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
)

// AssignmentHandler xử lý request trên assignment: danh sách số của agent,
// nhận assignment về mình và ghi nhận kết quả gọi.
type AssignmentHandler struct {
	*basehdl.BaseHandler[models.Assignment, dto.AssignmentCreateInput, dto.AssignmentUpdateInput]
	assignmentService *crmsvc.AssignmentService
}

// NewAssignmentHandler tạo instance mới của AssignmentHandler
func NewAssignmentHandler() (*AssignmentHandler, error) {
	assignmentService, err := crmsvc.NewAssignmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment service: %v", err)
	}
	return &AssignmentHandler{
		BaseHandler:       basehdl.NewBaseHandler[models.Assignment, dto.AssignmentCreateInput, dto.AssignmentUpdateInput](assignmentService.BaseServiceMongoImpl),
		assignmentService: assignmentService,
	}, nil
}

// HandleFindMine liệt kê assignment của người đang đăng nhập.
// Query includeDone=true để lấy cả assignment đã đóng.
func (h *AssignmentHandler) HandleFindMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		agentID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		includeDone := c.Query("includeDone") == "true"
		assignments, err := h.assignmentService.FindByAgent(c.Context(), agentID, includeDone)
		h.HandleResponse(c, assignments, err)
		return nil
	})
}

// HandleClaim gắn người đang đăng nhập vào một assignment đang active.
// Assignment không tồn tại hoặc đã đóng trả về 404.
func (h *AssignmentHandler) HandleClaim(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ClaimInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		assignmentID, err := primitive.ObjectIDFromHex(input.AssignmentID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat,
				"ID assignment không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}

		agentID, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		assignment, err := h.assignmentService.Claim(c.Context(), assignmentID, agentID)
		if err == nil {
			logger.LogCRUD("claim", "assignment", agentID.Hex(), c, map[string]interface{}{
				"assignmentId": input.AssignmentID,
			})
		}
		h.HandleResponse(c, assignment, err)
		return nil
	})
}

// HandleMarkCalled ghi nhận đã gọi một assignment, mặc định kết quả "completed".
// Gọi lại lần nữa ghi đè kết quả cũ.
func (h *AssignmentHandler) HandleMarkCalled(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.MarkCalledInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		assignment, err := h.assignmentService.MarkCalled(c.Context(), &input)
		h.HandleResponse(c, assignment, err)
		return nil
	})
}
