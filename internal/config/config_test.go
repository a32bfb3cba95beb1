package config

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/lgbarn/fogchess-go/internal/chess"
	chesserrors "github.com/lgbarn/fogchess-go/internal/errors"
)

// TestVariant_Presets verifies the preset rule sets
func TestVariant_Presets(t *testing.T) {
	std := StandardVariant()
	if !std.CheckRule || !std.CheckmateRule || std.FogOfWar || std.Timed() {
		t.Errorf("StandardVariant() = %+v, want check and checkmate rules only", std)
	}

	fog := FogOfWarVariant()
	if !fog.FogOfWar || fog.CheckRule || fog.CheckmateRule || fog.Timed() {
		t.Errorf("FogOfWarVariant() = %+v, want fog only", fog)
	}
}

// TestVariant_Validate verifies variant validation
func TestVariant_Validate(t *testing.T) {
	tests := []struct {
		name    string
		v       Variant
		wantErr bool
	}{
		{
			name:    "standard is valid",
			v:       StandardVariant(),
			wantErr: false,
		},
		{
			name:    "fog is valid",
			v:       FogOfWarVariant(),
			wantErr: false,
		},
		{
			name:    "clock with increment",
			v:       Variant{CheckmateRule: true, Clock: NewClockConfig(5*time.Minute, 2*time.Second)},
			wantErr: false,
		},
		{
			name:    "zero base time",
			v:       Variant{Clock: NewClockConfig(0, time.Second)},
			wantErr: true,
		},
		{
			name:    "negative increment",
			v:       Variant{Clock: NewClockConfig(time.Minute, -time.Second)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestVariant_String(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{StandardVariant(), "standard"},
		{FogOfWarVariant(), "fog-of-war"},
		{Variant{CheckRule: true}, "king-capture"},
		{Variant{CheckmateRule: true, Clock: NewClockConfig(time.Minute, time.Second)}, "standard (1m0s+1s)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// TestVariantBuilder verifies the builder pattern works correctly
func TestVariantBuilder(t *testing.T) {
	v, err := NewVariantBuilder().
		WithFogOfWar(true).
		WithCheckRule(false).
		WithCheckmateRule(false).
		WithClock(3*time.Minute, 2*time.Second).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	if !v.FogOfWar {
		t.Error("FogOfWar should be true")
	}
	if v.CheckRule || v.CheckmateRule {
		t.Error("check rules should be disabled")
	}
	if v.Clock == nil || v.Clock.Base != 3*time.Minute || v.Clock.PerMove != 2*time.Second {
		t.Errorf("Clock = %+v, want 3m+2s", v.Clock)
	}

	v, err = NewVariantBuilder().WithClock(time.Minute, 0).WithoutClock().Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if v.Timed() {
		t.Error("WithoutClock() should disable clocks")
	}

	if _, err := NewVariantBuilder().WithClock(-time.Minute, 0).Build(); !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Build() error = %v, want ErrInvalidConfig", err)
	}
}

func TestParsePerspective(t *testing.T) {
	tests := []struct {
		in         string
		want       Perspective
		wantColour chess.Colour
		wantSide   bool
		wantErr    bool
	}{
		{in: "", want: PerspectiveAll},
		{in: "all", want: PerspectiveAll},
		{in: "White", want: PerspectiveWhite, wantColour: chess.White, wantSide: true},
		{in: "b", want: PerspectiveBlack, wantColour: chess.Black, wantSide: true},
		{in: "red", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePerspective(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePerspective(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParsePerspective(%q) = %v, want %v", tt.in, got, tt.want)
			}
			colour, side := got.Colour()
			if side != tt.wantSide || (side && colour != tt.wantColour) {
				t.Errorf("Colour() = %v, %v, want %v, %v", colour, side, tt.wantColour, tt.wantSide)
			}
		})
	}
}

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.Perspective != PerspectiveAll {
		t.Errorf("Perspective = %v, want all", cfg.Perspective)
	}
	if !cfg.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if !cfg.Coordinates {
		t.Error("Coordinates should be true by default")
	}
}

// TestConfig_Defaults verifies NewConfig defaults
func TestConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Variant != StandardVariant() {
		t.Errorf("Variant = %+v, want standard", cfg.Variant)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.Output == nil {
		t.Fatal("Output should not be nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}
	logBuf := &bytes.Buffer{}

	cfg.SetOutput(buf)
	cfg.SetLog(logBuf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != logBuf {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithVariant(FogOfWarVariant()).
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithJSONOutput(true).
		WithPerspective(PerspectiveBlack).
		WithOutput(buf).
		WithLog(buf).
		WithVerbosity(2).
		Build()

	if !cfg.Variant.FogOfWar {
		t.Error("Variant.FogOfWar should be true")
	}
	if cfg.StartFEN == "" {
		t.Error("StartFEN should be set")
	}
	if !cfg.Output.JSONFormat {
		t.Error("Output.JSONFormat should be true")
	}
	if cfg.Output.Perspective != PerspectiveBlack {
		t.Errorf("Perspective = %v, want black", cfg.Output.Perspective)
	}
	if cfg.OutputFile != buf || cfg.LogFile != buf {
		t.Error("writers not set")
	}
	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelError},
		{0, slog.LevelError},
		{1, slog.LevelWarn},
		{2, slog.LevelInfo},
		{3, slog.LevelDebug},
		{9, slog.LevelDebug},
	}
	for _, tt := range tests {
		cfg := NewConfigBuilder().WithVerbosity(tt.verbosity).Build()
		if got := cfg.LogLevel(); got != tt.want {
			t.Errorf("LogLevel() with verbosity %d = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestConfig_ValidateWorkers(t *testing.T) {
	if err := NewConfigBuilder().WithWorkers(4).Build().Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	err := NewConfigBuilder().WithWorkers(-1).Build().Validate()
	if !errors.Is(err, chesserrors.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}
