// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

// Package logsdecoder turns raw OTLP logs request bodies into
// logsview.LogsView values using a configurable decoding strategy.
package logsdecoder // import "go.opentelemetry.io/collector/logsview/logsdecoder"

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"go.opentelemetry.io/collector/logsview"
	"go.opentelemetry.io/collector/logsview/eagerlogs"
	"go.opentelemetry.io/collector/logsview/lazylogs"
	"go.opentelemetry.io/collector/logsview/payload"
	"go.opentelemetry.io/collector/logsview/plogview"
)

// ErrEmptyPayload is returned in strict mode when a payload holds no resource logs.
var ErrEmptyPayload = errors.New("payload contains no resource logs")

// Settings holds the ambient dependencies of a Decoder.
type Settings struct {
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
	// Registerer receives the decoder metrics; nil disables registration.
	Registerer prometheus.Registerer
}

// Decoder decodes payloads according to a Config.
//
// A Decoder reuses its decompression buffer and eager tree across calls, so it
// is not safe for concurrent use and every returned view is only valid until
// the next call to Decode.
type Decoder struct {
	cfg     Config
	logger  *zap.Logger
	metrics *metrics

	eager *eagerlogs.Logs
	buf   []byte
}

// NewDecoder validates cfg and returns a Decoder for it.
func NewDecoder(cfg *Config, set Settings) (*Decoder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid decoder config: %w", err)
	}
	logger := set.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	m, err := newMetrics(set.Registerer)
	if err != nil {
		return nil, fmt.Errorf("failed to register decoder metrics: %w", err)
	}
	d := &Decoder{
		cfg:     *cfg,
		logger:  logger.With(zap.String("strategy", string(cfg.Strategy))),
		metrics: m,
	}
	if cfg.Strategy == StrategyEager {
		d.eager = eagerlogs.NewLogs()
	}
	return d, nil
}

// Decode decompresses body when configured, optionally validates it and
// returns a view over the result. body is retained by lazy views when no
// compression is configured and must not be modified while the view is used.
func (d *Decoder) Decode(body []byte) (logsview.LogsView, error) {
	buf, err := d.decompress(body)
	if err != nil {
		return nil, err
	}

	if d.cfg.Strict || logsview.StrictWireTypesGate.IsEnabled() {
		if err = Check(buf); err != nil {
			d.reject(reasonMalformed, err, len(buf))
			return nil, fmt.Errorf("malformed logs payload: %w", err)
		}
	}

	var ld logsview.LogsView
	switch d.cfg.Strategy {
	case StrategyLazy:
		ld = lazylogs.New(buf)
	case StrategyPdata:
		pl, perr := plogview.Unmarshal(buf)
		if perr != nil {
			d.reject(reasonUnmarshal, perr, len(buf))
			return nil, perr
		}
		ld = pl
	default:
		if !d.eager.Parse(buf) && d.cfg.Strict {
			d.reject(reasonEmpty, ErrEmptyPayload, len(buf))
			return nil, ErrEmptyPayload
		}
		ld = d.eager
	}

	d.metrics.payloads.WithLabelValues(string(d.cfg.Strategy)).Inc()
	d.metrics.payloadBytes.Add(float64(len(buf)))
	if ce := d.logger.Check(zap.DebugLevel, "Decoded logs payload"); ce != nil {
		ce.Write(zap.Int("compressed_size", len(body)), zap.Int("size", len(buf)))
	}
	return ld, nil
}

func (d *Decoder) decompress(body []byte) ([]byte, error) {
	if !d.cfg.Compression.IsCompressed() {
		if d.cfg.MaxPayloadSize > 0 && int64(len(body)) > d.cfg.MaxPayloadSize {
			d.reject(reasonTooLarge, payload.ErrPayloadTooLarge, len(body))
			return nil, payload.ErrPayloadTooLarge
		}
		return body, nil
	}
	buf, err := payload.Decompress(d.cfg.Compression, d.buf[:0], body, d.cfg.MaxPayloadSize)
	if err != nil {
		reason := reasonDecompress
		if errors.Is(err, payload.ErrPayloadTooLarge) {
			reason = reasonTooLarge
		}
		d.reject(reason, err, len(body))
		return nil, err
	}
	d.buf = buf
	return buf, nil
}

func (d *Decoder) reject(reason string, err error, size int) {
	d.metrics.rejected.WithLabelValues(reason).Inc()
	d.logger.Warn("Rejected logs payload",
		zap.String("reason", reason),
		zap.Int("size", size),
		zap.Error(err))
}
