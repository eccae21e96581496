package main

import (
	"fmt"
	"runtime"

	"github.com/mstoykov/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v3"
)

// Config holds the settings of all commands. Values are consolidated from
// defaults, environment variables and flags, in that order.
type Config struct {
	Format   null.String `envconfig:"BUILDLUA_FORMAT"`
	LogLevel null.String `envconfig:"BUILDLUA_LOG_LEVEL"`
	Jobs     null.Int    `envconfig:"BUILDLUA_JOBS"`
	NoColor  null.Bool   `envconfig:"BUILDLUA_NO_COLOR"`
}

func defaultConfig() Config {
	return Config{
		Format:   null.NewString("json", false),
		LogLevel: null.NewString("warn", false),
		Jobs:     null.NewInt(int64(runtime.NumCPU()), false),
		NoColor:  null.NewBool(false, false),
	}
}

// Apply overwrites every field of c that is set in cfg.
func (c Config) Apply(cfg Config) Config {
	if cfg.Format.Valid {
		c.Format = cfg.Format
	}
	if cfg.LogLevel.Valid {
		c.LogLevel = cfg.LogLevel
	}
	if cfg.Jobs.Valid {
		c.Jobs = cfg.Jobs
	}
	if cfg.NoColor.Valid {
		c.NoColor = cfg.NoColor
	}
	return c
}

func readEnvConfig(lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg, lookupEnv); err != nil {
		return Config{}, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// configFromFlags returns a config in which only explicitly set flags are
// valid.
func configFromFlags(flags *pflag.FlagSet) Config {
	return Config{
		Format:   getNullString(flags, "format"),
		LogLevel: getNullString(flags, "log-level"),
		Jobs:     getNullInt64(flags, "jobs"),
		NoColor:  getNullBool(flags, "no-color"),
	}
}

func consolidateConfig(flags *pflag.FlagSet, lookupEnv func(string) (string, bool)) (Config, error) {
	env, err := readEnvConfig(lookupEnv)
	if err != nil {
		return Config{}, err
	}
	cfg := defaultConfig().Apply(env).Apply(configFromFlags(flags))
	if cfg.Jobs.Int64 < 1 {
		return Config{}, fmt.Errorf("jobs must be at least 1, got %d", cfg.Jobs.Int64)
	}
	return cfg, nil
}

// The getNull* helpers return an invalid value for flags that the command
// does not define.

func getNullBool(flags *pflag.FlagSet, key string) null.Bool {
	if flags.Lookup(key) == nil {
		return null.Bool{}
	}
	v, err := flags.GetBool(key)
	if err != nil {
		panic(err)
	}
	return null.NewBool(v, flags.Changed(key))
}

func getNullInt64(flags *pflag.FlagSet, key string) null.Int {
	if flags.Lookup(key) == nil {
		return null.Int{}
	}
	v, err := flags.GetInt64(key)
	if err != nil {
		panic(err)
	}
	return null.NewInt(v, flags.Changed(key))
}

func getNullString(flags *pflag.FlagSet, key string) null.String {
	if flags.Lookup(key) == nil {
		return null.String{}
	}
	v, err := flags.GetString(key)
	if err != nil {
		panic(err)
	}
	return null.NewString(v, flags.Changed(key))
}
