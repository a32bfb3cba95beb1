package config

import (
	"io"
	"time"
)

// VariantBuilder provides a fluent API for building Variant values.
type VariantBuilder struct {
	v Variant
}

// NewVariantBuilder creates a VariantBuilder starting from the standard rules.
func NewVariantBuilder() *VariantBuilder {
	return &VariantBuilder{v: StandardVariant()}
}

// WithFogOfWar enables or disables fog of war.
func (b *VariantBuilder) WithFogOfWar(enabled bool) *VariantBuilder {
	b.v.FogOfWar = enabled
	return b
}

// WithCheckRule enables or disables the check flag.
func (b *VariantBuilder) WithCheckRule(enabled bool) *VariantBuilder {
	b.v.CheckRule = enabled
	return b
}

// WithCheckmateRule enables or disables legality filtering and mate detection.
func (b *VariantBuilder) WithCheckmateRule(enabled bool) *VariantBuilder {
	b.v.CheckmateRule = enabled
	return b
}

// WithClock enables clocks with the given base time and increment.
func (b *VariantBuilder) WithClock(base, perMove time.Duration) *VariantBuilder {
	b.v.Clock = NewClockConfig(base, perMove)
	return b
}

// WithoutClock disables clocks.
func (b *VariantBuilder) WithoutClock() *VariantBuilder {
	b.v.Clock = nil
	return b
}

// Build returns the built Variant after validating it.
func (b *VariantBuilder) Build() (Variant, error) {
	if err := b.v.Validate(); err != nil {
		return Variant{}, err
	}
	return b.v, nil
}

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVariant sets the rule variant.
func (b *ConfigBuilder) WithVariant(v Variant) *ConfigBuilder {
	b.cfg.Variant = v
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithPerspective sets whose view is rendered.
func (b *ConfigBuilder) WithPerspective(p Perspective) *ConfigBuilder {
	b.cfg.Output.Perspective = p
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithWorkers sets the number of parallel replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}
