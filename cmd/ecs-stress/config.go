package main

import (
	"os"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// StressConfig controls the stress run. Flag values are the defaults,
// ECS_STRESS_* environment variables override them, and an optional YAML
// profile file overrides both.
type StressConfig struct {
	Duration         time.Duration `config:"ECS_STRESS_DURATION"`
	Entities         int           `config:"ECS_STRESS_ENTITIES"`
	MaxComponents    int           `config:"ECS_STRESS_MAX_COMPONENTS"`
	SpawnsPerFrame   int           `config:"ECS_STRESS_SPAWNS_PER_FRAME"`
	DespawnsPerFrame int           `config:"ECS_STRESS_DESPAWNS_PER_FRAME"`
	GCPauseMetrics   bool          `config:"ECS_STRESS_GC_PAUSE_METRICS"`
	LogLevel         string        `config:"ECS_STRESS_LOG_LEVEL"`
}

type stressProfile struct {
	Duration         time.Duration `yaml:"duration"`
	Entities         int           `yaml:"entities"`
	MaxComponents    int           `yaml:"max_components"`
	SpawnsPerFrame   int           `yaml:"spawns_per_frame"`
	DespawnsPerFrame int           `yaml:"despawns_per_frame"`
}

func loadConfig(base StressConfig, profilePath string) (StressConfig, error) {
	cfg := base
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "reading config from environment")
	}

	if profilePath == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(profilePath)
	if err != nil {
		return cfg, eris.Wrapf(err, "reading profile %q", profilePath)
	}

	var profile stressProfile
	if err := yaml.Unmarshal(raw, &profile); err != nil {
		return cfg, eris.Wrapf(err, "parsing profile %q", profilePath)
	}

	if profile.Duration > 0 {
		cfg.Duration = profile.Duration
	}
	if profile.Entities > 0 {
		cfg.Entities = profile.Entities
	}
	if profile.MaxComponents > 0 {
		cfg.MaxComponents = profile.MaxComponents
	}
	if profile.SpawnsPerFrame > 0 {
		cfg.SpawnsPerFrame = profile.SpawnsPerFrame
	}
	if profile.DespawnsPerFrame > 0 {
		cfg.DespawnsPerFrame = profile.DespawnsPerFrame
	}
	return cfg, nil
}
