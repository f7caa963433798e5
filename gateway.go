package docskill

import "context"

// Request is a single prompt exchange with a language model.
type Request struct {
	System string // optional
	Prompt string
}

// Response holds the model's plain-text reply.
type Response struct {
	Text string
}

// Gateway sends prompts to one LLM provider.
//
// Failures carry one of the gateway error codes: ENOTCONFIGURED, EAUTH,
// ERATELIMIT, EPROVIDER or ENETWORK. Implementations do not retry;
// callers decide whether a failure is fatal to their step.
type Gateway interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Ensure NopGateway implements Gateway at compile time.
var _ Gateway = NopGateway{}

// NopGateway is the gateway used when no provider is configured.
// Send never performs I/O and always fails with ENOTCONFIGURED.
type NopGateway struct{}

// Send returns an ENOTCONFIGURED error.
func (NopGateway) Send(context.Context, *Request) (*Response, error) {
	return nil, Errorf(ENOTCONFIGURED, "no LLM provider configured")
}
