package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	NumFloors           = 7
	GroundFloor         = 1
	StepDuration        = 500 * time.Millisecond
	DoorOpeningDuration = 2 * time.Second
	DoorOpenDuration    = 2 * time.Second
	DoorClosingDuration = 2 * time.Second
	EventBuffer         = 64
	LogLevel            = "info"
)

// Environment keys that override values from the config file.
const (
	EnvNumFloors    = "LIFTSIM_NUM_FLOORS"
	EnvStepDuration = "LIFTSIM_STEP_DURATION"
	EnvDoorOpening  = "LIFTSIM_DOOR_OPENING"
	EnvDoorOpen     = "LIFTSIM_DOOR_OPEN"
	EnvDoorClosing  = "LIFTSIM_DOOR_CLOSING"
	EnvLogLevel     = "LIFTSIM_LOG_LEVEL"
	EnvLogFile      = "LIFTSIM_LOG_FILE"
)

// Config holds the effective values for one simulation run.
type Config struct {
	NumFloors           int           `yaml:"NumFloors"`
	StepDuration        time.Duration `yaml:"StepDuration"`
	DoorOpeningDuration time.Duration `yaml:"DoorOpeningDuration"`
	DoorOpenDuration    time.Duration `yaml:"DoorOpenDuration"`
	DoorClosingDuration time.Duration `yaml:"DoorClosingDuration"`
	EventBuffer         int           `yaml:"EventBuffer"`
	LogLevel            string        `yaml:"LogLevel"`
	LogFile             string        `yaml:"LogFile"`
}

func Default() Config {
	return Config{
		NumFloors:           NumFloors,
		StepDuration:        StepDuration,
		DoorOpeningDuration: DoorOpeningDuration,
		DoorOpenDuration:    DoorOpenDuration,
		DoorClosingDuration: DoorClosingDuration,
		EventBuffer:         EventBuffer,
		LogLevel:            LogLevel,
	}
}

// Load builds a Config from the defaults, the YAML file at path (if any) and
// the environment. envFile is loaded into the environment first; a missing
// env file is ignored.
func Load(path string, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return cfg, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvNumFloors); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvNumFloors, err)
		}
		cfg.NumFloors = n
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvStepDuration, &cfg.StepDuration},
		{EnvDoorOpening, &cfg.DoorOpeningDuration},
		{EnvDoorOpen, &cfg.DoorOpenDuration},
		{EnvDoorClosing, &cfg.DoorClosingDuration},
	}
	for _, d := range durations {
		v, ok := os.LookupEnv(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogFile = v
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.NumFloors < 2 {
		return fmt.Errorf("NumFloors must be at least 2, got %d", cfg.NumFloors)
	}
	if cfg.StepDuration <= 0 {
		return fmt.Errorf("StepDuration must be positive, got %v", cfg.StepDuration)
	}
	if cfg.DoorOpeningDuration < 0 || cfg.DoorOpenDuration < 0 || cfg.DoorClosingDuration < 0 {
		return errors.New("door durations must not be negative")
	}
	if cfg.EventBuffer < 1 {
		return fmt.Errorf("EventBuffer must be at least 1, got %d", cfg.EventBuffer)
	}
	return nil
}

// DoorCycle is the total time the car spends at a stop.
func (cfg Config) DoorCycle() time.Duration {
	return cfg.DoorOpeningDuration + cfg.DoorOpenDuration + cfg.DoorClosingDuration
}
