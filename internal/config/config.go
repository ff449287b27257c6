package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/cheats/internal/constants"
)

type RemoteConfig struct {
	Owner             string        `yaml:"owner"              json:"owner"              validate:"required"`
	Repo              string        `yaml:"repo"               json:"repo"               validate:"required"`
	Branch            string        `yaml:"branch"             json:"branch"             validate:"required"`
	APIBase           string        `yaml:"api_base"           json:"api_base"           validate:"required,url"`
	RawBase           string        `yaml:"raw_base"           json:"raw_base"           validate:"required,url"`
	SiteBase          string        `yaml:"site_base"          json:"site_base"          validate:"required,url"`
	ListTimeout       time.Duration `yaml:"list_timeout"       json:"list_timeout"       validate:"required"`
	ContentTimeout    time.Duration `yaml:"content_timeout"    json:"content_timeout"    validate:"required,gtefield=ListTimeout"`
	RequestsPerSecond float64       `yaml:"requests_per_second" json:"requests_per_second" validate:"min=0"`
	Burst             int           `yaml:"burst"              json:"burst"              validate:"min=1"`
	DownloadWorkers   int           `yaml:"download_workers"   json:"download_workers"   validate:"min=1,max=32"`
	Token             string        `yaml:"token,omitempty"    json:"-"`
}

type RenderConfig struct {
	Style string `yaml:"style" json:"style" validate:"required"`
	Width int    `yaml:"width" json:"width" validate:"min=20"`
}

type Config struct {
	DataDir  string       `yaml:"data_dir"  json:"data_dir"`
	LogLevel string       `yaml:"log_level" json:"log_level" validate:"oneof=debug info warn error"`
	Remote   RemoteConfig `yaml:"remote"    json:"remote"`
	Render   RenderConfig `yaml:"render"    json:"render"`

	path string `yaml:"-"`
}

// Default mirrors the public rstacruz/cheatsheets repository that backs
// devhints.io.
var Default = Config{
	LogLevel: "warn",
	Remote: RemoteConfig{
		Owner:             "rstacruz",
		Repo:              "cheatsheets",
		Branch:            "master",
		APIBase:           "https://api.github.com",
		RawBase:           "https://raw.githubusercontent.com",
		SiteBase:          "https://devhints.io",
		ListTimeout:       5 * time.Second,
		ContentTimeout:    15 * time.Second,
		RequestsPerSecond: 8,
		Burst:             4,
		DownloadWorkers:   4,
	},
	Render: RenderConfig{
		Style: "dracula",
		Width: 100,
	},
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

func ValidateLogLevel(level string) error {
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}

	return fmt.Errorf(
		"invalid log level: %q. Please choose from %s",
		level,
		strings.Join(validLogLevels, ", "),
	)
}

// Load reads the config file at path. An empty or whitespace-only file
// yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default
	if len(strings.TrimSpace(string(data))) != 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("unable to unmarshal config: %w", err)
		}
	}
	cfg.path = path

	cfg.bindViper()
	cfg.resolveViper()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (cfg *Config) Validate() error {
	if err := ValidateLogLevel(cfg.LogLevel); err != nil {
		return err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}

	return nil
}

// Path returns the file the config was loaded from.
func (cfg *Config) Path() string {
	return cfg.path
}

// bindViper seeds viper with the file values so that flags and environment
// variables (CHEATS_*, GITHUB_TOKEN) take precedence over the file.
func (cfg *Config) bindViper() {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	_ = viper.BindEnv("remote.token", constants.EnvPrefix+"_REMOTE_TOKEN", "GITHUB_TOKEN")

	viper.SetDefault("data_dir", cfg.DataDir)
	viper.SetDefault("log_level", cfg.LogLevel)
	viper.SetDefault("remote.owner", cfg.Remote.Owner)
	viper.SetDefault("remote.repo", cfg.Remote.Repo)
	viper.SetDefault("remote.branch", cfg.Remote.Branch)
	viper.SetDefault("remote.token", cfg.Remote.Token)
	viper.SetDefault("remote.list_timeout", cfg.Remote.ListTimeout)
	viper.SetDefault("remote.content_timeout", cfg.Remote.ContentTimeout)
	viper.SetDefault("render.style", cfg.Render.Style)
	viper.SetDefault("render.width", cfg.Render.Width)
}

func (cfg *Config) resolveViper() {
	cfg.DataDir = viper.GetString("data_dir")
	cfg.LogLevel = strings.ToLower(viper.GetString("log_level"))
	cfg.Remote.Owner = viper.GetString("remote.owner")
	cfg.Remote.Repo = viper.GetString("remote.repo")
	cfg.Remote.Branch = viper.GetString("remote.branch")
	cfg.Remote.Token = viper.GetString("remote.token")
	cfg.Remote.ListTimeout = viper.GetDuration("remote.list_timeout")
	cfg.Remote.ContentTimeout = viper.GetDuration("remote.content_timeout")
	cfg.Render.Style = viper.GetString("render.style")
	cfg.Render.Width = viper.GetInt("render.width")
}
