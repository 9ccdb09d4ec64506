package main

import (
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	appfx "github.com/santiagopugliese/personal-finances/internal/fx"
)

func init() {
	// Montos como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
