package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	authsvc "github.com/PlatformTravel/crm-sub000/internal/api/auth/service"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
	"github.com/PlatformTravel/crm-sub000/internal/utility"
)

// authManager giữ các phụ thuộc dùng chung cho mọi instance của AuthMiddleware.
// Cache user theo token 5 phút để tránh query DB mỗi request.
type authManager struct {
	userService *authsvc.UserService
	cache       *utility.Cache
}

var (
	authManagerOnce sync.Once
	authManagerInst *authManager
	authManagerErr  error
)

// getAuthManager khởi tạo authManager một lần duy nhất (sau khi registry collection đã sẵn sàng).
func getAuthManager() (*authManager, error) {
	authManagerOnce.Do(func() {
		userService, err := authsvc.NewUserService()
		if err != nil {
			authManagerErr = err
			return
		}
		authManagerInst = &authManager{
			userService: userService,
			cache:       utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInst, authManagerErr
}

// resolveUser xác thực token và trả về user tương ứng.
// Token hợp lệ phải: (1) đúng chữ ký và còn hạn, (2) còn khớp với token
// đang lưu trong DB của user (bị thu hồi khi logout hoặc khóa tài khoản).
func (m *authManager) resolveUser(ctx context.Context, token string) (*models.User, error) {
	if cached, ok := m.cache.Get(token); ok {
		if user, ok := cached.(*models.User); ok {
			return user, nil
		}
	}

	userIDHex, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token)
	if err != nil {
		return nil, err
	}

	userID, err := primitive.ObjectIDFromHex(userIDHex)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	user, err := m.userService.FindOneById(ctx, userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	// Token đã bị thu hồi (logout, đổi mật khẩu, bị khóa)
	if user.Token != token {
		return nil, common.ErrTokenExpired
	}

	m.cache.Set(token, &user)
	return &user, nil
}

// AuthMiddleware xác thực JWT từ header Authorization và kiểm tra permission.
//
// requirePermission dạng "<Resource>.<Action>" (ví dụ "Contact.Read").
// Truyền chuỗi rỗng nếu route chỉ cần đăng nhập, không cần permission cụ thể.
//
// Khi xác thực thành công, middleware set vào context:
//   - "user_id": ID của user dạng hex string
//   - "user": *models.User đầy đủ
//
// ⚠️ Đăng ký middleware này qua RegisterRouteWithMiddleware, KHÔNG truyền
// trực tiếp vào router.Get/Post (xem comment đầu file router/routes.go).
func AuthMiddleware(requirePermission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		manager, err := getAuthManager()
		if err != nil {
			logger.GetErrorLogger().WithError(err).Error("Không khởi tạo được auth manager")
			HandleErrorResponse(c, common.NewError(common.ErrCodeInternalServer, "Lỗi khởi tạo xác thực", common.StatusInternalServerError, nil))
			return nil
		}

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader || token == "" {
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		user, err := manager.resolveUser(c.Context(), token)
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		if user.IsBlock {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil))
			return nil
		}

		if !models.HasPermission(user.Role, user.Permissions, requirePermission) {
			HandleErrorResponse(c, common.NewError(common.ErrCodeAuthRole,
				"Không có quyền thực hiện thao tác này", common.StatusForbidden, map[string]interface{}{
					"required": requirePermission,
				}))
			return nil
		}

		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", user)
		return c.Next()
	}
}

// InvalidateAuthCache xóa token khỏi cache xác thực. Gọi khi logout hoặc
// khóa tài khoản để thu hồi có hiệu lực ngay thay vì đợi cache hết hạn.
func InvalidateAuthCache(token string) {
	if manager, err := getAuthManager(); err == nil && token != "" {
		manager.cache.Delete(token)
	}
}
