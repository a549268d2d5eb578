// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"github.com/konstrukt-app/konstrukt-be/internal/logger"
	"github.com/konstrukt-app/konstrukt-be/internal/service"
)

// webhookKeeper periodically checks the Bot API webhook registration and
// re-registers it when it has drifted from the configured URL. Hosting
// platforms occasionally reset webhooks on redeploys; this worker heals that
// without manual intervention.
type webhookKeeper struct {
	bot      service.BotService
	interval time.Duration
	logger   *logger.Logger
}

func newWebhookKeeper(bot service.BotService, interval time.Duration, logger *logger.Logger) *webhookKeeper {
	return &webhookKeeper{
		bot:      bot,
		interval: interval,
		logger:   logger,
	}
}

func (k *webhookKeeper) Run() {
	go k.loop()
}

func (k *webhookKeeper) loop() {
	log := k.logger.GetChildLogger()
	log.Info().Dur("interval", k.interval).Msg("webhook keeper started")

	ticker := time.NewTicker(k.interval)
	defer ticker.Stop()

	// first check right away, then on every tick
	for {
		ctx, cancel := context.WithTimeout(context.Background(), k.interval)
		if err := k.bot.EnsureWebhook(ctx); err != nil {
			log.Err(err).Str("func", "webhookKeeper.loop").Msg("webhook check failed")
		}
		cancel()

		<-ticker.C
	}
}
