//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/interactionsdk/internal/app"
	"github.com/zeusync/interactionsdk/internal/config"
)

func InitializeApp(cfg *config.Config) (*app.App, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
