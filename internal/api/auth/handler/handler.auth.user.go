// Package authhdl xử lý các request xác thực và quản lý người dùng.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "github.com/PlatformTravel/crm-sub000/internal/api/auth/dto"
	models "github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	authsvc "github.com/PlatformTravel/crm-sub000/internal/api/auth/service"
	basehdl "github.com/PlatformTravel/crm-sub000/internal/api/base/handler"
	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/api/middleware"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// currentUserID lấy ObjectID của user đang đăng nhập từ context (do AuthMiddleware set).
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
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

// HandleLogin xử lý đăng nhập: xác thực username/password và trả về JWT
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, token, err := h.userService.Login(c.Context(), &input, c.IP(), c.Get("User-Agent"))
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.LogAuth("login", c, map[string]interface{}{"username": user.Username})
		h.HandleResponse(c, fiber.Map{
			"token": token,
			"user":  user,
		}, nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất: thu hồi token hiện tại
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Xóa token khỏi cache xác thực để thu hồi có hiệu lực ngay
		if user, ok := c.Locals("user").(*models.User); ok {
			middleware.InvalidateAuthCache(user.Token)
		}

		err = h.userService.Logout(c.Context(), objID)
		if err == nil {
			logger.LogAuth("logout", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), objID)
		h.HandleResponse(c, user, err)
		return nil
	})
}

// HandleUpdateProfile cập nhật thông tin cá nhân (tên hiển thị, email)
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		set := map[string]interface{}{}
		if input.FullName != "" {
			set["fullName"] = input.FullName
		}
		if input.Email != "" {
			set["email"] = input.Email
		}
		if len(set) == 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Không có trường nào để cập nhật", common.StatusBadRequest, nil))
			return nil
		}

		updatedUser, err := h.userService.UpdateById(c.Context(), objID, &basesvc.UpdateData{Set: set})
		h.HandleResponse(c, updatedUser, err)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của người dùng đang đăng nhập.
// Thành công sẽ thu hồi token hiện tại, client phải đăng nhập lại.
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		objID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input authdto.UserChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if user, ok := c.Locals("user").(*models.User); ok {
			middleware.InvalidateAuthCache(user.Token)
		}

		err = h.userService.ChangePassword(c.Context(), objID, &input)
		if err == nil {
			logger.LogAuth("change_password", c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}
