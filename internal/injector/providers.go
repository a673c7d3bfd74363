package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/interactionsdk/internal/app"
	"github.com/zeusync/interactionsdk/internal/config"
	"github.com/zeusync/interactionsdk/internal/core/observability/log"
	"github.com/zeusync/interactionsdk/internal/core/scene/loader"
)

var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	ProvideScene,
	app.Provide,
)

// ProvideLogger builds the process logger from the logging section.
func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	return log.New(cfg.Logging)
}

// ProvideScene loads the scene file named by the config. No file means an
// empty scene.
func ProvideScene(cfg *config.Config) (*loader.Scene, error) {
	if cfg.Scene == "" {
		return &loader.Scene{}, nil
	}
	return loader.Load(cfg.Scene)
}
