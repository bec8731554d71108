package store

import (
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
)

// DefaultDelay simulates the load latency of a remote notes service.
const DefaultDelay = 400 * time.Millisecond

type Config interface {
	// Delay is the simulated latency applied when a profile is selected.
	Delay() time.Duration
	// User optionally names a profile id to select at startup.
	User() string
}

// LoadConfig reads .chairside(.yaml) from the working directory, with
// CHAIRSIDE_* env overrides. Missing config files are fine; every key has
// a default.
func LoadConfig() (Config, error) {
	viper.SetDefault("delay", DefaultDelay.String())
	viper.SetDefault("user", "")
	viper.SetConfigName(".chairside") // .yaml is implicit
	viper.SetEnvPrefix("CHAIRSIDE")
	viper.AutomaticEnv()

	if override := os.Getenv("CHAIRSIDE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	return &fileConfig{
		RawDelay: viper.GetString("delay"),
		UserID:   viper.GetString("user"),
	}, nil
}

type fileConfig struct {
	RawDelay string `json:"delay"`
	UserID   string `json:"user"`
}

func (f *fileConfig) Delay() time.Duration {
	d, err := time.ParseDuration(f.RawDelay)
	if err != nil || d < 0 {
		return DefaultDelay
	}
	return d
}

func (f *fileConfig) User() string {
	return f.UserID
}
