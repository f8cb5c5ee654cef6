package components

import (
	"log/slog"

	"slotbook/internal/gateway"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/pkg/config"
	"slotbook/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewWizardService,
		NewBoardService,
	),
)

func NewWizardService(gw gateway.Gateway, clk clock.Clock, logger *slog.Logger, cfg config.Config) *usecase.WizardService {
	return usecase.NewWizardService(gw, clk, logger, cfg.Session)
}

func NewBoardService(gw gateway.Gateway, clk clock.Clock, logger *slog.Logger, cfg config.Config) *usecase.BoardService {
	return usecase.NewBoardService(gw, clk, logger, cfg.Session)
}
