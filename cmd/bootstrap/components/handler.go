package components

import (
	"slotbook/internal/handler"
	"slotbook/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewBoardHandler,
	),
	fx.Invoke(handler.NewRouter),
)
