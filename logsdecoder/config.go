// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsdecoder // import "go.opentelemetry.io/collector/logsview/logsdecoder"

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"go.opentelemetry.io/collector/logsview/payload"
)

// Strategy selects how a payload is turned into a logsview.LogsView.
type Strategy string

const (
	// StrategyEager materializes a reusable tree on every decode.
	StrategyEager Strategy = "eager"
	// StrategyLazy wraps the payload in a zero-copy view.
	StrategyLazy Strategy = "lazy"
	// StrategyPdata unmarshals into plog.Logs.
	StrategyPdata Strategy = "pdata"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(in []byte) error {
	switch st := Strategy(in); st {
	case StrategyEager, StrategyLazy, StrategyPdata:
		*s = st
		return nil
	default:
		return fmt.Errorf("unsupported decoding strategy %q", st)
	}
}

const defaultMaxPayloadSize = 20 * 1024 * 1024

var errNegativeMaxPayloadSize = errors.New("max_payload_size must not be negative")

// Config defines how payloads are decoded.
type Config struct {
	// Strategy is one of "eager", "lazy" or "pdata".
	Strategy Strategy `mapstructure:"strategy"`
	// Compression of incoming payloads. Empty or "none" means uncompressed.
	Compression payload.Compression `mapstructure:"compression"`
	// MaxPayloadSize caps the decompressed payload size in bytes; 0 disables the limit.
	MaxPayloadSize int64 `mapstructure:"max_payload_size"`
	// Strict rejects malformed payloads instead of silently truncating them.
	Strict bool `mapstructure:"strict"`
	// prevent unkeyed literal initialization
	_ struct{}
}

// NewDefaultConfig returns the default decoder configuration.
func NewDefaultConfig() Config {
	return Config{
		Strategy:       StrategyEager,
		MaxPayloadSize: defaultMaxPayloadSize,
	}
}

// Validate checks if the configuration is valid.
func (cfg *Config) Validate() error {
	var errs error
	st := cfg.Strategy
	if err := st.UnmarshalText([]byte(cfg.Strategy)); err != nil {
		errs = multierr.Append(errs, err)
	}
	c := cfg.Compression
	if err := c.UnmarshalText([]byte(cfg.Compression)); err != nil {
		errs = multierr.Append(errs, err)
	}
	if cfg.MaxPayloadSize < 0 {
		errs = multierr.Append(errs, errNegativeMaxPayloadSize)
	}
	return errs
}
