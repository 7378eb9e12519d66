package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/PlatformTravel/crm-sub000/internal/api/auth/dto"
	"github.com/PlatformTravel/crm-sub000/internal/api/auth/models"
	basesvc "github.com/PlatformTravel/crm-sub000/internal/api/base/service"
	"github.com/PlatformTravel/crm-sub000/internal/common"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/utility"
)

// UserService xử lý logic tài khoản người dùng: đăng nhập, đăng xuất,
// đổi mật khẩu, khóa tài khoản, phân role và chỉ tiêu ngày.
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
	auditService *LoginAuditService
}

// NewUserService tạo UserService mới.
func NewUserService() (*UserService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.MongoDB_ColNames.Users, common.ErrNotFound)
	}
	auditService, err := NewLoginAuditService()
	if err != nil {
		return nil, err
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](coll),
		auditService:         auditService,
	}, nil
}

// isValidRole kiểm tra role có thuộc tập role cố định của hệ thống không.
func isValidRole(role string) bool {
	_, ok := models.RolePermissions[role]
	return ok
}

// CreateUser tạo tài khoản mới với mật khẩu đã băm bcrypt.
// Username trùng sẽ trả về lỗi conflict từ unique index.
func (s *UserService) CreateUser(ctx context.Context, input *dto.UserCreateInput) (models.User, error) {
	var zero models.User

	role := input.Role
	if role == "" {
		role = models.RoleAgent
	}
	if !isValidRole(role) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Role không hợp lệ: %s", input.Role), common.StatusBadRequest, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không băm được mật khẩu", common.StatusInternalServerError, err.Error())
	}

	user := models.User{
		Username:     input.Username,
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Permissions:  input.Permissions,
		DailyTarget:  input.DailyTarget,
	}
	return s.InsertOne(ctx, user)
}

// Login xác thực username/password, phát hành JWT và lưu token vào user
// để có thể thu hồi khi logout. Mọi lần đăng nhập (kể cả thất bại) đều
// được ghi vào nhật ký đăng nhập.
//
// Trả về user đã đăng nhập và token mới phát hành.
func (s *UserService) Login(ctx context.Context, input *dto.UserLoginInput, ip string, userAgent string) (models.User, string, error) {
	var zero models.User

	user, err := s.FindOne(ctx, bson.M{"username": input.Username}, nil)
	if err != nil {
		// Không phân biệt "không tồn tại" và "sai mật khẩu" trong response
		s.auditService.Record(ctx, primitive.NilObjectID, input.Username, false, ip, userAgent, "username không tồn tại")
		return zero, "", common.ErrInvalidCredentials
	}

	// Lần đăng nhập thất bại luôn ghi userId rỗng, kể cả khi username khớp:
	// entry thất bại không gắn với tài khoản nào, chỉ giữ username đã gửi lên
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.auditService.Record(ctx, primitive.NilObjectID, input.Username, false, ip, userAgent, "sai mật khẩu")
		return zero, "", common.ErrInvalidCredentials
	}

	if user.IsBlock {
		s.auditService.Record(ctx, primitive.NilObjectID, input.Username, false, ip, userAgent, "tài khoản bị khóa")
		return zero, "", common.NewError(common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	token, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex())
	if err != nil {
		return zero, "", common.NewError(common.ErrCodeInternalServer, "Không phát hành được token", common.StatusInternalServerError, err.Error())
	}

	user, err = s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return zero, "", err
	}

	s.auditService.Record(ctx, user.ID, input.Username, true, ip, userAgent, "")
	return user, token, nil
}

// Logout thu hồi token hiện tại của user. Token cũ sẽ bị middleware
// từ chối ở request tiếp theo vì không còn khớp với DB.
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": 1},
	})
	return err
}

// ChangePassword đổi mật khẩu sau khi xác nhận mật khẩu cũ.
// Token hiện tại bị thu hồi để buộc đăng nhập lại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *dto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
		return common.NewError(common.ErrCodeAuthCredentials, "Mật khẩu cũ không chính xác", common.StatusUnauthorized, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không băm được mật khẩu", common.StatusInternalServerError, err.Error())
	}

	_, err = s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set:   map[string]interface{}{"passwordHash": string(hash)},
		Unset: map[string]interface{}{"token": 1},
	})
	return err
}

// SetBlock khóa hoặc mở khóa tài khoản. Khi khóa, token bị thu hồi ngay.
func (s *UserService) SetBlock(ctx context.Context, userID primitive.ObjectID, isBlock bool, note string) (models.User, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"isBlock":   isBlock,
			"blockNote": note,
		},
	}
	if isBlock {
		update.Unset = map[string]interface{}{"token": 1}
	}
	return s.UpdateById(ctx, userID, update)
}

// SetRole đổi role của user. Role phải thuộc tập cố định của hệ thống.
func (s *UserService) SetRole(ctx context.Context, userID primitive.ObjectID, role string) (models.User, error) {
	var zero models.User
	if !isValidRole(role) {
		return zero, common.NewError(common.ErrCodeValidationInput,
			fmt.Sprintf("Role không hợp lệ: %s", role), common.StatusBadRequest, nil)
	}
	return s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"role": role},
	})
}

// SetDailyTarget đổi chỉ tiêu cuộc gọi mỗi ngày của user.
func (s *UserService) SetDailyTarget(ctx context.Context, userID primitive.ObjectID, target int) (models.User, error) {
	var zero models.User
	if target < 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Chỉ tiêu ngày phải >= 0", common.StatusBadRequest, nil)
	}
	return s.UpdateById(ctx, userID, &basesvc.UpdateData{
		Set: map[string]interface{}{"dailyTarget": target},
	})
}

// EnsureAdminUser tạo tài khoản admin mặc định nếu chưa tồn tại.
// Dùng khi khởi động server với username/password từ cấu hình.
func (s *UserService) EnsureAdminUser(ctx context.Context, username string, password string) error {
	if username == "" || password == "" {
		return nil
	}
	exists, err := s.DocumentExists(ctx, bson.M{"username": username})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = s.CreateUser(ctx, &dto.UserCreateInput{
		Username: username,
		FullName: "Administrator",
		Password: password,
		Role:     models.RoleAdmin,
	})
	return err
}
