package workers

import (
	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers this deployment needs. Workers
// whose configuration is absent are simply not created.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	workers := &Workers{}

	if cfg.WebhookSyncInterval > 0 && services.BotService.Configured() {
		workers.workers = append(workers.workers, newWebhookKeeper(services.BotService, cfg.WebhookSyncInterval, logger))
	}

	return workers
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
