package fx

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/santiagopugliese/personal-finances/config"
	"github.com/santiagopugliese/personal-finances/internal/domain/rate"
	"github.com/santiagopugliese/personal-finances/internal/logger"
)

// RatesModule keeps the daily quote warm: one fetch on boot (optional)
// and one per refresh interval until shutdown.
var RatesModule = fx.Module("rates",
	fx.Invoke(
		startRateRefresher,
	),
)

func startRateRefresher(lc fx.Lifecycle, cfg *config.Config, rateSvc *rate.Service) {
	if cfg.Rates.RefreshInterval <= 0 {
		logger.Warn().Msg("Actualización periódica de cotización deshabilitada (RATES_REFRESH_INTERVAL <= 0)")
		return
	}

	done := make(chan struct{})
	var ticker *time.Ticker

	refresh := func(ctx context.Context) {
		if _, err := rateSvc.Refresh(ctx); err != nil {
			logger.Error().Err(err).Msg("Fallo al actualizar la cotización")
		}
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ticker = time.NewTicker(cfg.Rates.RefreshInterval)

			go func() {
				if cfg.Rates.RefreshOnStart {
					refreshCtx, cancel := context.WithTimeout(context.Background(), cfg.Rates.FetchTimeout)
					refresh(refreshCtx)
					cancel()
				}

				for {
					select {
					case <-ticker.C:
						refreshCtx, cancel := context.WithTimeout(context.Background(), cfg.Rates.FetchTimeout)
						refresh(refreshCtx)
						cancel()
					case <-done:
						return
					}
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ticker.Stop()
			close(done)
			return nil
		},
	})
}
