package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the selection blob is kept.
type Config interface {
	BasePath() string
	Key() string
	YearGap() int
	LogFile() string
}

// LoadConfig reads .daymark config files and DAYMARK_ environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.daymark")
	v.SetDefault("key", DefaultKey)
	v.SetDefault("year_gap", 4)
	v.SetDefault("log_file", "")
	v.SetConfigName(".daymark") // .yaml is implicit
	v.SetEnvPrefix("DAYMARK")
	v.AutomaticEnv()

	if override := os.Getenv("DAYMARK_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(v.GetString("log_file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log_file: %w", err)
	}

	cfg := &fileConfig{
		Path: path,
		Name: v.GetString("key"),
		Gap:  v.GetInt("year_gap"),
		Log:  logFile,
	}
	if cfg.Name == "" {
		cfg.Name = DefaultKey
	}
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	return cfg, nil
}

type fileConfig struct {
	Path string `json:"path"`
	Name string `json:"key"`
	Gap  int    `json:"year_gap"`
	Log  string `json:"log_file"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Key() string { return f.Name }

func (f *fileConfig) YearGap() int { return f.Gap }

func (f *fileConfig) LogFile() string { return f.Log }
