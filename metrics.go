package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnidex_client",
			Name:      "decodes_total",
			Help:      "Wire documents decoded successfully, by model.",
		},
		[]string{"model"},
	)

	decodeFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnidex_client",
			Name:      "decode_failures_total",
			Help:      "Wire documents rejected by the model contract, by model.",
		},
		[]string{"model"},
	)

	encodesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "omnidex_client",
			Name:      "encodes_total",
			Help:      "Models encoded to wire form, by model.",
		},
		[]string{"model"},
	)
)
