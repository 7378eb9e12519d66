package main

import (
	"context"

	authsvc "github.com/PlatformTravel/crm-sub000/internal/api/auth/service"
	"github.com/PlatformTravel/crm-sub000/internal/global"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	// Tạo tài khoản administrator ban đầu (nếu có cấu hình và chưa tồn tại)
	cfg := global.MongoDB_ServerConfig
	if cfg.InitialAdminPassword == "" {
		log.Info("INITIAL_ADMIN_PASSWORD not set, skipping admin user creation")
		log.Info("✅ [INIT] InitDefaultData completed")
		return
	}

	if err := userService.EnsureAdminUser(context.TODO(), cfg.InitialAdminUsername, cfg.InitialAdminPassword); err != nil {
		log.Fatalf("Failed to initialize admin user: %v", err)
	}
	log.Infof("✅ [INIT] Admin user %q ensured", cfg.InitialAdminUsername)

	log.Info("✅ [INIT] InitDefaultData completed")
}
