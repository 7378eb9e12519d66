package router

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

// Middleware của route nào chỉ được chạy cho đúng route đó. Hai route cùng
// prefix với middleware khác nhau không được "dính" middleware của nhau.
func TestRegisterRouteWithMiddleware_KhongDinhMiddlewareSangRouteCungPrefix(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})

	insertGuard := func(c fiber.Ctx) error {
		return c.Status(403).SendString("thiếu quyền Contact.Insert")
	}
	readGuardChay := false
	readGuard := func(c fiber.Ctx) error {
		readGuardChay = true
		return c.Next()
	}
	okHandler := func(c fiber.Ctx) error {
		return c.SendString("ok")
	}

	RegisterRouteWithMiddleware(app, "/client", "POST", "/insert-one", []fiber.Handler{insertGuard}, okHandler)
	RegisterRouteWithMiddleware(app, "/client", "GET", "/available", []fiber.Handler{readGuard}, okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/client/available", nil))
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("GET /client/available phải trả 200, nhận được %d (middleware của route khác cùng prefix đã chạy nhầm)", resp.StatusCode)
	}
	if !readGuardChay {
		t.Error("Middleware của chính route /available phải được chạy")
	}
}

// Middleware chạy trước handler và có thể chặn request.
func TestRegisterRouteWithMiddleware_MiddlewareChanDuocRequest(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true, CaseSensitive: true})

	insertGuard := func(c fiber.Ctx) error {
		return c.Status(403).SendString("thiếu quyền Contact.Insert")
	}
	handlerChay := false
	okHandler := func(c fiber.Ctx) error {
		handlerChay = true
		return c.SendString("ok")
	}

	RegisterRouteWithMiddleware(app, "/client", "POST", "/insert-one", []fiber.Handler{insertGuard}, okHandler)

	resp, err := app.Test(httptest.NewRequest("POST", "/client/insert-one", nil))
	if err != nil {
		t.Fatalf("Request thất bại: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Errorf("Route có middleware chặn phải trả 403, nhận được %d", resp.StatusCode)
	}
	if handlerChay {
		t.Error("Handler không được chạy khi middleware đã chặn request")
	}
}
