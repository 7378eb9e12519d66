package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PlatformTravel/crm-sub000/internal/common"
)

func TestCreateAndVerifyToken(t *testing.T) {
	secret := "test-secret"
	userID := "64f0c2a1b3d4e5f601234567"

	token, err := CreateToken(secret, userID)
	assert.NoError(t, err, "Tạo token không được lỗi")
	assert.NotEmpty(t, token, "Token không được rỗng")

	gotUserID, err := VerifyToken(secret, token)
	assert.NoError(t, err, "Verify token vừa tạo không được lỗi")
	assert.Equal(t, userID, gotUserID, "user_id trong claims phải khớp")
}

func TestVerifyToken_SaiSecret(t *testing.T) {
	token, err := CreateToken("secret-a", "64f0c2a1b3d4e5f601234567")
	assert.NoError(t, err)

	_, err = VerifyToken("secret-b", token)
	assert.Equal(t, common.ErrTokenInvalid, err, "Token ký bằng secret khác phải bị từ chối")
}

func TestVerifyToken_ChuoiRac(t *testing.T) {
	_, err := VerifyToken("test-secret", "khong-phai-jwt")
	assert.Equal(t, common.ErrTokenInvalid, err, "Chuỗi không phải JWT phải bị từ chối")
}
