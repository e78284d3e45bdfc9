package unfold

import "go.uber.org/zap"

// NetOption customizes BuildNet.
type NetOption func(*netConfig)

type netConfig struct {
	logger  *zap.Logger
	stripes []StripeEdge
}

func defaultNetConfig() netConfig {
	return netConfig{
		logger:  zap.NewNop(),
		stripes: DefaultStripeEdges,
	}
}

// WithLogger routes construction diagnostics (debug level) to l. Panics on
// nil.
func WithLogger(l *zap.Logger) NetOption {
	if l == nil {
		panic("unfold: WithLogger(nil)")
	}
	return func(c *netConfig) {
		c.logger = l
	}
}

// WithStripeEdges replaces DefaultStripeEdges. An empty list builds a net
// without glue tabs.
func WithStripeEdges(edges ...StripeEdge) NetOption {
	cp := append([]StripeEdge(nil), edges...)
	return func(c *netConfig) {
		c.stripes = cp
	}
}
