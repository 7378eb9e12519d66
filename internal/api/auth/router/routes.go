// Package router đăng ký các route thuộc domain auth: Auth, Admin, System, nhật ký đăng nhập.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "github.com/PlatformTravel/crm-sub000/internal/api/auth/handler"
	basehdl "github.com/PlatformTravel/crm-sub000/internal/api/base/handler"
	"github.com/PlatformTravel/crm-sub000/internal/api/middleware"
	apirouter "github.com/PlatformTravel/crm-sub000/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, admin, user, login-audit) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	// Login là route public duy nhất ngoài health check
	router.Post("/auth/login", userHandler.HandleLogin)

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/profile", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	createMiddleware := middleware.AuthMiddleware("User.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/create", []fiber.Handler{createMiddleware}, userHandler.HandleCreateUser)

	updateMiddleware := middleware.AuthMiddleware("User.Update")
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/block/:id", []fiber.Handler{updateMiddleware}, userHandler.HandleBlockUser)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/role/:id", []fiber.Handler{updateMiddleware}, userHandler.HandleSetRole)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/user", "POST", "/daily-target/:id", []fiber.Handler{updateMiddleware}, userHandler.HandleSetDailyTarget)
	return nil
}

func registerUserRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/user", userHandler, apirouter.ReadOnlyConfig, "User")

	auditHandler, err := authhdl.NewLoginAuditHandler()
	if err != nil {
		return fmt.Errorf("failed to create login audit handler: %w", err)
	}
	r.RegisterCRUDRoutes(router, "/login-audit", auditHandler, apirouter.ReadOnlyConfig, "LoginAudit")
	return nil
}
