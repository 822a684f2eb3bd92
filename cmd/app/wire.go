//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/kundali/internal/bootstrap"
	"github.com/yanqian/kundali/internal/domain/kundali"
	"github.com/yanqian/kundali/internal/infra/config"
	httpiface "github.com/yanqian/kundali/internal/interface/http"
	"github.com/yanqian/kundali/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideKundaliConfig,
		provideChartStore,
		provideChartRepository,
		kundali.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
