package worker

import (
	"context"
	"time"

	crmsvc "github.com/PlatformTravel/crm-sub000/internal/api/crm/service"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// ProgressResetWorker worker reset tiến độ gọi khi sang ngày mới.
// CheckAndReset vốn idempotent và đã chạy lười trên mọi lần đọc; worker này
// làm cho việc reset qua nửa đêm diễn ra chủ động thay vì đợi request đầu tiên.
type ProgressResetWorker struct {
	progressService *crmsvc.ProgressService
	interval        time.Duration // Khoảng thời gian giữa các lần kiểm tra
}

// NewProgressResetWorker tạo mới ProgressResetWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần kiểm tra (mặc định: 10 phút, tối thiểu: 1 phút)
func NewProgressResetWorker(interval time.Duration) (*ProgressResetWorker, error) {
	progressService, err := crmsvc.NewProgressService()
	if err != nil {
		return nil, err
	}

	if interval < 1*time.Minute {
		interval = 10 * time.Minute
	}

	return &ProgressResetWorker{
		progressService: progressService,
		interval:        interval,
	}, nil
}

// Start bắt đầu background worker kiểm tra reset ngày.
func (w *ProgressResetWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("⏰ [PROGRESS_RESET] Starting Progress Reset Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("⏰ [PROGRESS_RESET] Progress Reset Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("⏰ [PROGRESS_RESET] Panic khi kiểm tra reset, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				wasReset, _, err := w.progressService.CheckAndReset(ctx)
				if err != nil {
					log.WithError(err).Error("⏰ [PROGRESS_RESET] Failed to check daily reset")
					return
				}
				if wasReset {
					log.Info("⏰ [PROGRESS_RESET] Daily progress reset for the new day")
				}
			}()
		}
	}
}
