// Package router đăng ký các route thuộc domain CRM: pool số, chia số,
// lịch sử gọi, tiến độ ngày và lưu trữ.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "github.com/PlatformTravel/crm-sub000/internal/api/crm/handler"
	"github.com/PlatformTravel/crm-sub000/internal/api/middleware"
	apirouter "github.com/PlatformTravel/crm-sub000/internal/api/router"
)

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerRecordRoutes(v1, r); err != nil {
		return err
	}
	if err := registerAssignmentRoutes(v1, r); err != nil {
		return err
	}
	if err := registerCallLogRoutes(v1, r); err != nil {
		return err
	}
	if err := registerProgressRoutes(v1); err != nil {
		return err
	}
	if err := registerArchiveRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

// registerRecordRoutes đăng ký hai pool /client và /customer với cùng route set.
func registerRecordRoutes(router fiber.Router, r *apirouter.Router) error {
	clientHandler, err := crmhdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("failed to create client handler: %w", err)
	}
	customerHandler, err := crmhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("failed to create customer handler: %w", err)
	}

	insertMiddleware := middleware.AuthMiddleware("Contact.Insert")
	readMiddleware := middleware.AuthMiddleware("Contact.Read")
	assignMiddleware := middleware.AuthMiddleware("Assignment.Insert")

	for prefix, handler := range map[string]*crmhdl.RecordHandler{
		"/client":   clientHandler,
		"/customer": customerHandler,
	} {
		r.RegisterCRUDRoutes(router, prefix, handler, apirouter.ReadWriteConfig, "Contact")
		apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/import", []fiber.Handler{insertMiddleware}, handler.HandleImport)
		apirouter.RegisterRouteWithMiddleware(router, prefix, "POST", "/assign", []fiber.Handler{assignMiddleware}, handler.HandleAssign)
		apirouter.RegisterRouteWithMiddleware(router, prefix, "GET", "/available", []fiber.Handler{readMiddleware}, handler.HandleAvailable)
	}
	return nil
}

func registerAssignmentRoutes(router fiber.Router, r *apirouter.Router) error {
	assignmentHandler, err := crmhdl.NewAssignmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create assignment handler: %w", err)
	}

	readMiddleware := middleware.AuthMiddleware("Assignment.Read")
	claimMiddleware := middleware.AuthMiddleware("Assignment.Update") // Claim sửa assignment có sẵn
	markMiddleware := middleware.AuthMiddleware("Assignment.Update")

	apirouter.RegisterRouteWithMiddleware(router, "/assignment", "GET", "/mine", []fiber.Handler{readMiddleware}, assignmentHandler.HandleFindMine)
	apirouter.RegisterRouteWithMiddleware(router, "/assignment", "POST", "/claim", []fiber.Handler{claimMiddleware}, assignmentHandler.HandleClaim)
	apirouter.RegisterRouteWithMiddleware(router, "/assignment", "POST", "/mark-called", []fiber.Handler{markMiddleware}, assignmentHandler.HandleMarkCalled)
	r.RegisterCRUDRoutes(router, "/assignment", assignmentHandler, apirouter.ReadOnlyConfig, "Assignment")
	return nil
}

func registerCallLogRoutes(router fiber.Router, r *apirouter.Router) error {
	callLogHandler, err := crmhdl.NewCallLogHandler()
	if err != nil {
		return fmt.Errorf("failed to create call log handler: %w", err)
	}

	insertMiddleware := middleware.AuthMiddleware("CallLog.Insert")
	apirouter.RegisterRouteWithMiddleware(router, "/call-log", "POST", "/log", []fiber.Handler{insertMiddleware}, callLogHandler.HandleLogCall)
	r.RegisterCRUDRoutes(router, "/call-log", callLogHandler, apirouter.NoDeleteConfig, "CallLog")
	return nil
}

func registerProgressRoutes(router fiber.Router) error {
	progressHandler, err := crmhdl.NewProgressHandler()
	if err != nil {
		return fmt.Errorf("failed to create progress handler: %w", err)
	}

	readMiddleware := middleware.AuthMiddleware("Progress.Read")
	updateMiddleware := middleware.AuthMiddleware("Progress.Update")

	apirouter.RegisterRouteWithMiddleware(router, "/daily-progress", "GET", "/current", []fiber.Handler{readMiddleware}, progressHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(router, "/daily-progress", "POST", "/record", []fiber.Handler{updateMiddleware}, progressHandler.HandleRecord)
	apirouter.RegisterRouteWithMiddleware(router, "/daily-progress", "GET", "/check-reset", []fiber.Handler{readMiddleware}, progressHandler.HandleCheckReset)
	return nil
}

func registerArchiveRoutes(router fiber.Router, r *apirouter.Router) error {
	archiveHandler, err := crmhdl.NewArchiveHandler()
	if err != nil {
		return fmt.Errorf("failed to create archive handler: %w", err)
	}

	archiveMiddleware := middleware.AuthMiddleware("Archive.Insert")
	restoreMiddleware := middleware.AuthMiddleware("Archive.Update")
	sweepMiddleware := middleware.AuthMiddleware("Archive.Delete") // Sweep xóa bản ghi sống, chỉ admin có quyền này

	apirouter.RegisterRouteWithMiddleware(router, "/archive", "POST", "/create", []fiber.Handler{archiveMiddleware}, archiveHandler.HandleArchive)
	apirouter.RegisterRouteWithMiddleware(router, "/archive", "POST", "/restore", []fiber.Handler{restoreMiddleware}, archiveHandler.HandleRestore)
	apirouter.RegisterRouteWithMiddleware(router, "/archive", "POST", "/sweep", []fiber.Handler{sweepMiddleware}, archiveHandler.HandleSweep)
	r.RegisterCRUDRoutes(router, "/archive", archiveHandler, apirouter.ReadOnlyConfig, "Archive")
	return nil
}
