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

// ArchiveHandler xử lý request lưu trữ/khôi phục bản ghi.
type ArchiveHandler struct {
	*basehdl.BaseHandler[models.ArchiveEntry, dto.ArchiveCreateInput, dto.ArchiveUpdateInput]
	archiveService *crmsvc.ArchiveService
}

// NewArchiveHandler tạo instance mới của ArchiveHandler
func NewArchiveHandler() (*ArchiveHandler, error) {
	archiveService, err := crmsvc.NewArchiveService()
	if err != nil {
		return nil, fmt.Errorf("failed to create archive service: %v", err)
	}
	return &ArchiveHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.ArchiveEntry, dto.ArchiveCreateInput, dto.ArchiveUpdateInput](archiveService.BaseServiceMongoImpl),
		archiveService: archiveService,
	}, nil
}

// HandleArchive lưu trữ một bản ghi khỏi pool.
func (h *ArchiveHandler) HandleArchive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ArchiveInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		recordID, err := primitive.ObjectIDFromHex(input.RecordID)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID bản ghi không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		archivedBy, err := currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		entry, err := h.archiveService.Archive(c.Context(), input.EntityType, recordID, archivedBy, input.Notes)
		if err == nil {
			logger.LogCRUD("archive", input.EntityType, recordID.Hex(), c, nil)
		}
		h.HandleResponse(c, entry, err)
		return nil
	})
}

// HandleRestore khôi phục các bản ghi từ lưu trữ về pool. Trả về
// {restored, failed}: id lỗi không chặn các id còn lại.
func (h *ArchiveHandler) HandleRestore(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.RestoreInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.archiveService.Restore(c.Context(), input.ArchiveIds)
		if err == nil {
			logger.LogCRUD("restore", "archive", "", c, map[string]interface{}{
				"restored": result.Restored,
				"failed":   len(result.Failed),
			})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleSweep chạy quét lưu trữ các assignment đã hoàn tất (admin gọi tay,
// worker chạy cùng nghiệp vụ này theo lịch).
func (h *ArchiveHandler) HandleSweep(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.archiveService.SweepCompleted(c.Context())
		if err == nil {
			logger.LogCRUD("sweep", "archive", "", c, map[string]interface{}{"total": result.Total})
		}
		h.HandleResponse(c, result, err)
		return nil
	})
}
