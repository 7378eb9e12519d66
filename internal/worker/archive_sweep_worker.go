package worker

import (
	"context"
	"time"

	crmsvc "github.com/PlatformTravel/crm-sub000/internal/api/crm/service"
	"github.com/PlatformTravel/crm-sub000/internal/logger"
)

// ArchiveSweepWorker worker quét lưu trữ định kỳ: mọi assignment đã gọi xong
// với kết quả "completed" sẽ được lưu trữ và giải phóng khỏi pool.
type ArchiveSweepWorker struct {
	archiveService *crmsvc.ArchiveService
	interval       time.Duration // Khoảng thời gian giữa các lần chạy
}

// NewArchiveSweepWorker tạo mới ArchiveSweepWorker
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 24 giờ, tối thiểu: 1 phút)
func NewArchiveSweepWorker(interval time.Duration) (*ArchiveSweepWorker, error) {
	archiveService, err := crmsvc.NewArchiveService()
	if err != nil {
		return nil, err
	}

	if interval < 1*time.Minute {
		interval = 24 * time.Hour // Mặc định mỗi ngày một lần
	}

	return &ArchiveSweepWorker{
		archiveService: archiveService,
		interval:       interval,
	}, nil
}

// Start bắt đầu background worker quét lưu trữ.
// Worker chạy định kỳ theo interval, panic trong một lần quét không làm chết worker.
func (w *ArchiveSweepWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🗄️ [ARCHIVE_SWEEP] Starting Archive Sweep Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🗄️ [ARCHIVE_SWEEP] Archive Sweep Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🗄️ [ARCHIVE_SWEEP] Panic khi quét lưu trữ, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				result, err := w.archiveService.SweepCompleted(ctx)
				if err != nil {
					log.WithError(err).Error("🗄️ [ARCHIVE_SWEEP] Failed to sweep completed assignments")
					return
				}

				if result.Total > 0 {
					log.WithFields(map[string]interface{}{
						"archived": result.Archived,
						"total":    result.Total,
					}).Info("🗄️ [ARCHIVE_SWEEP] Archived completed assignments")
				}
				// Total = 0 thì không log (giảm log noise)
			}()
		}
	}
}
