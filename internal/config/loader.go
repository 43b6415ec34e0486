package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load builds the configuration: defaults, then the TOML file at path (if
// path is not empty), then .env, then AGEOFWAR_* environment variables.
// The returned Config has NOT been validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// envVars maps each AGEOFWAR_* variable to the field it overrides. A value
// that does not parse leaves the field unchanged.
func envVars(cfg *Config) map[string]func(string) error {
	return map[string]func(string) error{
		"AGEOFWAR_LOG_LEVEL":  asString(&cfg.Log.Level),
		"AGEOFWAR_LOG_FORMAT": asString(&cfg.Log.Format),

		"AGEOFWAR_SERVER_PORT":             asInt(&cfg.Server.Port),
		"AGEOFWAR_SERVER_CORS_ORIGINS":     asList(&cfg.Server.CORSOrigins),
		"AGEOFWAR_SERVER_READ_TIMEOUT":     cfg.Server.ReadTimeout.set,
		"AGEOFWAR_SERVER_WRITE_TIMEOUT":    cfg.Server.WriteTimeout.set,
		"AGEOFWAR_SERVER_SHUTDOWN_TIMEOUT": cfg.Server.ShutdownTimeout.set,

		"AGEOFWAR_PLAY_STEP":       asInt(&cfg.Play.Step),
		"AGEOFWAR_PLAY_STEP_DELAY": cfg.Play.StepDelay.set,
	}
}

func applyEnvOverrides(cfg *Config) {
	for key, apply := range envVars(cfg) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			_ = apply(v)
		}
	}
}

func asString(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func asInt(dst *int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*dst = n
		return nil
	}
}

// asList splits on commas and drops empty entries
func asList(dst *[]string) func(string) error {
	return func(v string) error {
		var out []string
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		*dst = out
		return nil
	}
}

// set parses v into d, leaving d unchanged on error
func (d *Duration) set(v string) error {
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}
