package fx

import (
	"go.uber.org/fx"

	"github.com/santiagopugliese/personal-finances/config"
	"github.com/santiagopugliese/personal-finances/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.Auth)
}
