package mock

import (
	"context"

	"github.com/fwojciec/docskill"
)

var _ docskill.Gateway = (*Gateway)(nil)

// Gateway is a mock implementation of docskill.Gateway.
type Gateway struct {
	SendFn func(ctx context.Context, req *docskill.Request) (*docskill.Response, error)
}

func (g *Gateway) Send(ctx context.Context, req *docskill.Request) (*docskill.Response, error) {
	return g.SendFn(ctx, req)
}
