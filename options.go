package client

// This file defines functional options that configure a Codec during
// construction, plus the environment knobs parsed ahead of them.

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Option configures a Codec during construction in NewCodec.
type Option func(*Codec)

// WithWireDebug enables payload tracing for failed decodes. Traces
// include full wire documents, so keep this out of production logs.
func WithWireDebug(enabled bool) Option {
	return func(c *Codec) { c.debug = enabled }
}

// WithMetrics toggles the Prometheus decode/encode counters. Enabled
// by default; disable when several codecs would double-count.
func WithMetrics(enabled bool) Option {
	return func(c *Codec) { c.metrics = enabled }
}

// envOpts are the OMNIDEX_-prefixed environment knobs.
// Example: OMNIDEX_DEBUG=true, OMNIDEX_METRICS=false.
type envOpts struct {
	Debug   bool `envconfig:"DEBUG" default:"false"`
	Metrics bool `envconfig:"METRICS" default:"true"`
}

func envOptions() envOpts {
	var env envOpts
	if err := envconfig.Process("OMNIDEX", &env); err != nil {
		// Bad values fall back to defaults; construction never fails.
		log.Warn().Err(err).Msg("invalid OMNIDEX_* environment, using defaults")
		return envOpts{Metrics: true}
	}
	return env
}
