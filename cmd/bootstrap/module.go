package bootstrap

import (
	"place-booking/cmd/bootstrap/components"
	"place-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// Module assembles the application graph. The store driver decides which
// persistence implementation is wired, so the config is loaded up front.
func Module(cfg config.Config) fx.Option {
	opts := []fx.Option{
		fx.Supply(cfg),
		LoggerModule,
		TracingModule,
		JWTModule,
	}

	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		opts = append(opts, components.MemoryPersistenceModule)
	default:
		opts = append(opts, DBModule, components.PersistenceModule)
		if cfg.Kafka.Enabled() {
			opts = append(opts, MessagingModule)
		}
	}

	return fx.Options(append(opts,
		components.UseCaseModule,
		components.HandlerModule,
	)...)
}
