package store

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"tableflip.dev/lanes/pkg/board"
)

const (
	BackendDisk  = "disk"
	BackendRedis = "redis"

	// DefaultKey is the key the board blob is stored under.
	DefaultKey = "todos"
)

// Config describes where and how the board is persisted.
type Config interface {
	BasePath() string
	Key() string
	Backend() string
	Redis() RedisOptions
	Layout() board.Layout
	LogLevel() string
}

// RedisOptions configures the redis backend.
type RedisOptions struct {
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	Prefix   string `json:"prefix"`
}

// LoadConfig reads `.lanes.yaml` from $LANES_CONFIG_PATH or the working
// directory, with LANES_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.lanes")
	viper.SetDefault("key", DefaultKey)
	viper.SetDefault("backend", BackendDisk)
	viper.SetDefault("redis.addr", "127.0.0.1:6379")
	viper.SetDefault("redis.prefix", "lanes")
	viper.SetDefault("lanes", []string(board.DefaultLayout()))
	viper.SetDefault("log.level", "warn")
	viper.SetConfigName(".lanes") // .yaml is implicit
	viper.SetEnvPrefix("LANES")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("LANES_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	layout := board.Layout(viper.GetStringSlice("lanes"))
	if err := layout.Validate(); err != nil {
		log.WithError(err).Warn("store: configured lanes rejected, using defaults")
		layout = board.DefaultLayout()
	}

	return &fileConfig{
		Path:      path,
		StoreKey:  viper.GetString("key"),
		StoreType: strings.ToLower(viper.GetString("backend")),
		RedisConfig: RedisOptions{
			Addr:     viper.GetString("redis.addr"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
			Prefix:   viper.GetString("redis.prefix"),
		},
		Lanes: layout,
		Level: viper.GetString("log.level"),
	}, nil
}

type fileConfig struct {
	Path        string       `json:"path"`
	StoreKey    string       `json:"key"`
	StoreType   string       `json:"backend"`
	RedisConfig RedisOptions `json:"redis"`
	Lanes       board.Layout `json:"lanes"`
	Level       string       `json:"logLevel"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Key() string {
	if f.StoreKey == "" {
		return DefaultKey
	}
	return f.StoreKey
}

func (f *fileConfig) Backend() string {
	if f.StoreType == "" {
		return BackendDisk
	}
	return f.StoreType
}

func (f *fileConfig) Redis() RedisOptions { return f.RedisConfig }

func (f *fileConfig) Layout() board.Layout {
	if len(f.Lanes) == 0 {
		return board.DefaultLayout()
	}
	return f.Lanes
}

func (f *fileConfig) LogLevel() string { return f.Level }
