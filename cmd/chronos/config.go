package main

import (
	"github.com/chronodb/chronos/internal/options"
)

// encodeConfig controls WKB emission. Built from flags via functional
// options, the same pattern the engine packages use to configure
// codecs.
type encodeConfig struct {
	littleEndian bool
	hex          bool
}

func newEncodeConfig(opts ...options.Option[*encodeConfig]) (*encodeConfig, error) {
	cfg := &encodeConfig{littleEndian: true, hex: true}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func withBigEndian() options.Option[*encodeConfig] {
	return options.NoError(func(c *encodeConfig) { c.littleEndian = false })
}

func withRawBytes() options.Option[*encodeConfig] {
	return options.NoError(func(c *encodeConfig) { c.hex = false })
}
