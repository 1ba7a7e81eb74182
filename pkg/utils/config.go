package utils

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the process configuration shared by the pokedex commands.
// Every key can be overridden with a POKEDEX_ prefixed environment variable,
// e.g. POKEDEX_DATA_PATH or POKEDEX_HTTP_ADDR.
type Config struct {
	HTTPAddr  string `mapstructure:"http_addr"`
	GRPCAddr  string `mapstructure:"grpc_addr"`
	DataPath  string `mapstructure:"data_path"`
	IndexPath string `mapstructure:"index_path"`
	StaticDir string `mapstructure:"static_dir"`
	DBPath    string `mapstructure:"db_path"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
	GinMode   string `mapstructure:"gin_mode"`
}

var defaults = map[string]any{
	"http_addr":  ":8080",
	"grpc_addr":  ":9090",
	"data_path":  "static/data/PokemonData2.json",
	"index_path": "templates/index.html",
	"static_dir": "static",
	"db_path":    "data/pokedex.db",
	"log_level":  "info",
	"log_format": "json",
	"gin_mode":   "release",
}

// LoadConfig reads defaults and environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix("POKEDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
