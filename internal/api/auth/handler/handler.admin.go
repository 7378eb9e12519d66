package authhdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/PlatformTravel/crm-sub000/internal/api/auth/dto"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// Các handler quản trị tài khoản (chỉ admin): tạo user, khóa/mở khóa,
// đổi role, đổi chỉ tiêu ngày.

// targetUserID lấy ObjectID của user đích từ path param :id.
func (h *UserHandler) targetUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	id := h.GetIDFromContext(c)
	if id == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationInput, "Thiếu ID người dùng", common.StatusBadRequest, nil)
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID người dùng không hợp lệ", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleCreateUser tạo tài khoản mới với mật khẩu băm bcrypt
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.CreateUser(c.Context(), &input)
		if err == nil {
			logger.LogCRUD("create", "user", user.ID.Hex(), c, map[string]interface{}{"username": user.Username})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleBlockUser khóa hoặc mở khóa tài khoản. Khóa sẽ thu hồi token ngay.
func (h *UserHandler) HandleBlockUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.targetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserBlockInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.SetBlock(c.Context(), objID, input.IsBlock, input.Note)
		if err == nil {
			logger.LogCRUD("block", "user", objID.Hex(), c, map[string]interface{}{
				"isBlock": input.IsBlock,
				"note":    input.Note,
			})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleSetRole đổi role của tài khoản
func (h *UserHandler) HandleSetRole(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.targetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserSetRoleInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.SetRole(c.Context(), objID, input.Role)
		if err == nil {
			logger.LogCRUD("set_role", "user", objID.Hex(), c, map[string]interface{}{"role": input.Role})
		}
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleSetDailyTarget đổi chỉ tiêu cuộc gọi mỗi ngày của tài khoản
func (h *UserHandler) HandleSetDailyTarget(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.targetUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserSetDailyTargetInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.SetDailyTarget(c.Context(), objID, input.DailyTarget)
		h.HandleResponse(c, user, err)
		return nil
	})
}
