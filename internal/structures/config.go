package structures

import (
	"io"
	"time"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type LedgerConfig struct {
	UserName       string `yaml:"userName" validate:"required"`
	PointsPerLevel int    `yaml:"pointsPerLevel" validate:"required|int|min:1"`
}

type Persistence struct {
	Driver   string `yaml:"driver" validate:"required|in:file,sqlite"`
	FilePath string `yaml:"filePath" validate:"required"`
	Compress bool   `yaml:"compress"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Textfile string `yaml:"textfile"`
}

type Config struct {
	AppName     string
	Debug       bool
	Path        string
	Ledger      LedgerConfig  `yaml:"ledger"`
	Persistence Persistence   `yaml:"persistence"`
	Logger      LoggerConfig  `yaml:"logger"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

// Console is the terminal the menu talks to.
type Console struct {
	In  io.Reader
	Out io.Writer
}
