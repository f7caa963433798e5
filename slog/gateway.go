package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docskill"
)

var _ docskill.Gateway = (*LoggingGateway)(nil)

// LoggingGateway wraps a Gateway with logging. Prompts and replies are
// not logged, only their sizes.
type LoggingGateway struct {
	next     docskill.Gateway
	provider docskill.ProviderConfig
	logger   *slog.Logger
}

// NewLoggingGateway creates a new LoggingGateway. The provider config is
// logged through its String method, which omits the API key.
func NewLoggingGateway(next docskill.Gateway, provider docskill.ProviderConfig, logger *slog.Logger) *LoggingGateway {
	return &LoggingGateway{next: next, provider: provider, logger: logger}
}

// Send delegates to the wrapped gateway and logs the exchange.
func (g *LoggingGateway) Send(ctx context.Context, req *docskill.Request) (resp *docskill.Response, err error) {
	defer func(begin time.Time) {
		var replyLen int
		if resp != nil {
			replyLen = len(resp.Text)
		}
		g.logger.Info("llm request",
			"provider", g.provider.String(),
			"prompt_bytes", len(req.Prompt),
			"reply_bytes", replyLen,
			"duration", time.Since(begin),
			"code", docskill.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return g.next.Send(ctx, req)
}
