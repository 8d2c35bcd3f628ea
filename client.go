// Package client holds the typed wire models a client application
// uses against the OmniDex connector-management and data-indexing
// backend, together with the codec that enforces the wire contract:
// snake_case field mapping, declared defaults, numeric coercion,
// ISO-8601 timestamps, microsecond durations, and strict enum tags.
//
// The package owns no I/O. Transport, retries, and caching belong to
// whatever HTTP layer the application pairs it with.
package client

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// --------------------------------------------------------------------
// Codec core
// --------------------------------------------------------------------

// Codec decodes and encodes wire documents. The zero configuration is
// production-ready; options and OMNIDEX_* environment variables add
// payload tracing and toggle metrics.
type Codec struct {
	debug   bool
	metrics bool
}

// NewCodec constructs a Codec. Environment-derived options are applied
// first, then functional options in order.
func NewCodec(opts ...Option) *Codec {
	env := envOptions()

	c := &Codec{
		debug:   env.Debug || wireDebugRequested(),
		metrics: env.Metrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Unmarshal decodes one wire document into v, which must be a pointer
// to a model type. Failures are decode errors naming the offending
// model and field.
func (c *Codec) Unmarshal(data []byte, v any) error {
	model := modelName(v)
	if err := json.Unmarshal(data, v); err != nil {
		if c.metrics {
			decodeFailuresTotal.WithLabelValues(model).Inc()
		}
		if c.debug {
			logDecodeFailure(model, data, err)
		}
		return err
	}
	if c.metrics {
		decodesTotal.WithLabelValues(model).Inc()
	}
	return nil
}

// Marshal encodes a model to its wire form.
func (c *Codec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", modelName(v), err)
	}
	if c.metrics {
		encodesTotal.WithLabelValues(modelName(v)).Inc()
	}
	return data, nil
}

var defaultCodec = NewCodec()

// Default returns the shared process-wide codec.
func Default() *Codec { return defaultCodec }

// Decode decodes one wire document into a fresh T using the default
// codec.
func Decode[T any](data []byte) (*T, error) {
	v := new(T)
	if err := defaultCodec.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode encodes a model to its wire form using the default codec.
func Encode(v any) ([]byte, error) {
	return defaultCodec.Marshal(v)
}

// Equal reports deep structural equality of two models, comparing
// nested maps, slices, and records field by field.
func Equal(a, b any) bool { return reflect.DeepEqual(a, b) }

// modelName derives the metrics/log label for a value, e.g.
// "HealthResponse" from *types.HealthResponse.
func modelName(v any) string {
	name := fmt.Sprintf("%T", v)
	name = strings.TrimLeft(name, "*[]")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
