// Package config layers a named preset, an optional TOML file and CHAOS_* environment
// variables into one validated physics record
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/chaos-merge/parameter"
)

var (
	// ErrUnknownVariant is returned when the requested preset does not exist
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrUnknownKey is returned when the TOML file carries keys no field accepts
	ErrUnknownKey = errors.New("unknown config key")
)

// Environment variable names
const (
	EnvVariant      = "CHAOS_VARIANT"
	EnvSeed         = "CHAOS_SEED"
	EnvWidth        = "CHAOS_WIDTH"
	EnvHeight       = "CHAOS_HEIGHT"
	EnvInitialCount = "CHAOS_INITIAL_COUNT"
	EnvHardCap      = "CHAOS_HARD_CAP"
	EnvCullPolicy   = "CHAOS_CULL_POLICY"
	EnvCollision    = "CHAOS_COLLISION_MODE"
)

// Config is the resolved run configuration
type Config struct {
	Variant string
	Seed    uint64
	HasSeed bool // false = seed from wall clock
	Physics parameter.Physics
}

// Options selects the layers to apply
// Variant and Path may be empty; Getenv defaults to os.Getenv
type Options struct {
	Variant string
	Path    string
	Getenv  func(string) string
}

// fileHeader is the top-level shape of a config file
type fileHeader struct {
	Variant string  `toml:"variant"`
	Seed    *uint64 `toml:"seed"`
}

// fileBody decodes the physics table over an already populated preset
type fileBody struct {
	Variant string             `toml:"variant"`
	Seed    *uint64            `toml:"seed"`
	Physics *parameter.Physics `toml:"physics"`
}

// Load resolves preset → file → environment and validates the result
// Precedence for the variant name: Options.Variant, then environment, then file, then default
func Load(opts Options) (*Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var (
		raw    []byte
		header fileHeader
	)
	if opts.Path != "" {
		var err error
		raw, err = os.ReadFile(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.Path, err)
		}
		if _, err := toml.Decode(string(raw), &header); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", opts.Path, err)
		}
	}

	variant := firstNonEmpty(opts.Variant, getenv(EnvVariant), header.Variant, parameter.DefaultVariant)
	variant = strings.ToLower(strings.TrimSpace(variant))
	phys, ok := parameter.Preset(variant)
	if !ok {
		return nil, fmt.Errorf("%w %q (have %s)", ErrUnknownVariant, variant, strings.Join(parameter.Variants(), ", "))
	}

	cfg := &Config{Variant: variant}

	if raw != nil {
		body := fileBody{Physics: &phys}
		md, err := toml.Decode(string(raw), &body)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", opts.Path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, opts.Path, strings.Join(keys, ", "))
		}
		if body.Seed != nil {
			cfg.Seed, cfg.HasSeed = *body.Seed, true
		}
	}
	// The file may rename the record; the preset name stays authoritative
	phys.Name = variant

	if err := applyEnv(&phys, cfg, getenv); err != nil {
		return nil, err
	}

	if err := phys.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", variant, err)
	}
	cfg.Physics = phys
	return cfg, nil
}

// applyEnv overrides selected fields from CHAOS_* variables
// Malformed values are errors rather than silently ignored
func applyEnv(p *parameter.Physics, cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed, cfg.HasSeed = seed, true
	}
	if v := getenv(EnvWidth); v != "" {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWidth, err)
		}
		p.Width = w
	}
	if v := getenv(EnvHeight); v != "" {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHeight, err)
		}
		p.Height = h
	}
	if v := getenv(EnvInitialCount); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvInitialCount, err)
		}
		p.InitialCount = n
	}
	if v := getenv(EnvHardCap); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHardCap, err)
		}
		p.HardCap = n
	}
	if v := getenv(EnvCullPolicy); v != "" {
		p.CullPolicy = parameter.CullPolicy(strings.ToLower(v))
	}
	if v := getenv(EnvCollision); v != "" {
		p.CollisionMode = parameter.CollisionMode(strings.ToLower(v))
	}
	return nil
}

// Encode writes the physics record as TOML, suitable as a starting config file
func Encode(cfg *Config) (string, error) {
	var sb strings.Builder
	body := struct {
		Variant string            `toml:"variant"`
		Physics parameter.Physics `toml:"physics"`
	}{cfg.Variant, cfg.Physics}
	if err := toml.NewEncoder(&sb).Encode(body); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return sb.String(), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// EffectiveSeed returns the explicit seed when set, then the configured seed, then the wall clock
func (c *Config) EffectiveSeed(explicit uint64, set bool) uint64 {
	switch {
	case set:
		return explicit
	case c.HasSeed:
		return c.Seed
	default:
		return uint64(time.Now().UnixNano())
	}
}
