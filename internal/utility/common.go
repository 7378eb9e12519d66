package utility

import (
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// GoProtect chạy một hàm trong goroutine với recover, tránh panic làm crash server
func GoProtect(f func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithField("panic", r).Error("Goroutine panic recovered")
			}
		}()
		f()
	}()
}
