package fuzzy

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver"
	"howett.net/plist"
)

// ConfigVersionConstraint is the range of config schema versions this
// package understands.
const ConfigVersionConstraint = ">= 1.0.0, < 2.0.0"

// Config is a matcher configuration loaded from a property list.
type Config struct {
	Version    string
	Weights    Weights
	MaxResults int
}

// LoadConfig reads a matcher configuration from an XML property list.
// Missing keys fall back to the defaults, so a config file only needs to
// name the values it overrides. The file's version key, if present, must
// satisfy ConfigVersionConstraint.
func LoadConfig(filename string) (cfg Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var pc plistConfig
	if _, err = plist.Unmarshal(data, &pc); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", filename, err)
	}

	cfg.Version = pc.Version
	if err = checkConfigVersion(pc.Version); err != nil {
		return cfg, err
	}

	cfg.Weights = DefaultWeights()
	cfg.MaxResults = DefaultMaxResults

	setWeight(&cfg.Weights.ContinueMatch, pc.ContinueMatch)
	setWeight(&cfg.Weights.StartWord, pc.StartWord)
	setWeight(&cfg.Weights.InWord, pc.InWord)
	setWeight(&cfg.Weights.SkippedPenalty, pc.SkippedPenalty)
	setWeight(&cfg.Weights.CaseMismatchPenalty, pc.CaseMismatchPenalty)
	setWeight(&cfg.Weights.TrailingPenalty, pc.TrailingPenalty)

	if pc.Delimiters != nil {
		cfg.Weights.Delimiters = *pc.Delimiters
	}
	if pc.MaxResults != nil {
		if *pc.MaxResults < 0 {
			return cfg, fmt.Errorf("maxResults is %d, must be >= 0", *pc.MaxResults)
		}
		cfg.MaxResults = *pc.MaxResults
	}

	if err = cfg.Weights.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", filename, err)
	}

	dlog.Printf("loaded config from %s", filename)
	return cfg, nil
}

// support ---------------------------------------------------------------

// plistConfig is the property list schema. Pointer fields distinguish
// absent keys from explicit zero values.
type plistConfig struct {
	Version             string   `plist:"version"`
	ContinueMatch       *float64 `plist:"continueMatch"`
	StartWord           *float64 `plist:"startWord"`
	InWord              *float64 `plist:"inWord"`
	SkippedPenalty      *float64 `plist:"skippedPenalty"`
	CaseMismatchPenalty *float64 `plist:"caseMismatchPenalty"`
	TrailingPenalty     *float64 `plist:"trailingPenalty"`
	Delimiters          *string  `plist:"delimiters"`
	MaxResults          *int     `plist:"maxResults"`
}

func checkConfigVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("config version %q: %w", version, err)
	}

	constraint, err := semver.NewConstraint(ConfigVersionConstraint)
	if err != nil {
		return err
	}

	if !constraint.Check(v) {
		return fmt.Errorf("config version %s is outside the supported range %s",
			version, ConfigVersionConstraint)
	}

	return nil
}

func setWeight(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
