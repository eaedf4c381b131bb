package config

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr" env:"SERVER_ADDR,default=:8080"`
	} `mapstructure:"server"`

	Downloader struct {
		OutputDir     string        `mapstructure:"output_dir" env:"DOWNLOADER_OUTPUT_DIR,default=./downloads"`
		Binary        string        `mapstructure:"binary" env:"DOWNLOADER_BINARY,default=yt-dlp"`
		SocketTimeout time.Duration `mapstructure:"socket_timeout" env:"DOWNLOADER_SOCKET_TIMEOUT,default=30s"`
		Retries       int           `mapstructure:"retries" env:"DOWNLOADER_RETRIES,default=3"`
		InfoAttempts  uint          `mapstructure:"info_attempts" env:"DOWNLOADER_INFO_ATTEMPTS,default=2"`
	} `mapstructure:"downloader"`

	Cache struct {
		Enabled bool          `mapstructure:"enabled" env:"CACHE_ENABLED,default=false"`
		TTL     time.Duration `mapstructure:"ttl" env:"CACHE_TTL,default=30m"`
	} `mapstructure:"cache"`

	Results struct {
		Size int `mapstructure:"size" env:"RESULTS_SIZE,default=1000"`
	} `mapstructure:"results"`
}

func NewConfig(ctx context.Context, configPath string) (*Config, error) {
	var conf Config
	if len(configPath) == 0 {
		if err := envconfig.Process(ctx, &conf); err != nil {
			return nil, errors.Wrap(err, "failed to process config environment variables")
		}
		return &conf, nil
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file '%s'", configPath)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(f); err != nil {
		return nil, errors.Wrap(err, "failed to read config yaml file")
	}
	if err := v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "failed to decode config yaml file")
	}

	return &conf, nil
}
