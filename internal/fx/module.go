package fx

import "go.uber.org/fx"

// AppModule reúne todos los módulos de la aplicación.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	MiddlewareModule,
	RoutesModule,
	RatesModule,
	ServerModule,
)
