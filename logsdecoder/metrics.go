// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsdecoder // import "go.opentelemetry.io/collector/logsview/logsdecoder"

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Reasons reported on the rejected payloads counter.
const (
	reasonTooLarge   = "too_large"
	reasonDecompress = "decompress"
	reasonMalformed  = "malformed"
	reasonEmpty      = "empty"
	reasonUnmarshal  = "unmarshal"
)

type metrics struct {
	payloads     *prometheus.CounterVec
	rejected     *prometheus.CounterVec
	payloadBytes prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		payloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logsview",
			Subsystem: "decoder",
			Name:      "payloads_total",
			Help:      "Number of payloads decoded, by strategy.",
		}, []string{"strategy"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "logsview",
			Subsystem: "decoder",
			Name:      "rejected_payloads_total",
			Help:      "Number of payloads rejected, by reason.",
		}, []string{"reason"}),
		payloadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "logsview",
			Subsystem: "decoder",
			Name:      "payload_bytes_total",
			Help:      "Number of decompressed payload bytes decoded.",
		}),
	}
	if reg == nil {
		return m, nil
	}
	var err error
	m.payloads, err = register(reg, m.payloads)
	if err != nil {
		return nil, err
	}
	m.rejected, err = register(reg, m.rejected)
	if err != nil {
		return nil, err
	}
	m.payloadBytes, err = register(reg, m.payloadBytes)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, reusing the collector already registered under the
// same descriptor so several decoders can share one registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	return c, err
}
