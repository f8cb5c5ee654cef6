package components

import (
	"log/slog"

	"slotbook/internal/gateway"
	"slotbook/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewContextCredentials,
			fx.As(new(gateway.CredentialProvider)),
		),
		NewUpstreamGateway,
	),
)

func NewUpstreamGateway(cfg config.Config, creds gateway.CredentialProvider, logger *slog.Logger) gateway.Gateway {
	return gateway.NewHTTPGateway(cfg.Upstream, creds, logger)
}
