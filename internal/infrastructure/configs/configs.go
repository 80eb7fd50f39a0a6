package config

import (
	"errors"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	ServerHost             string `mapstructure:"SERVER_HOST"`
	ServerPort             int    `mapstructure:"SERVER_PORT" validate:"required,gte=1023,lte=65535"`
	GeminiModel            string `mapstructure:"GEMINI_MODEL" validate:"required"`
	GeminiAPI              string `mapstructure:"GEMINI_API" validate:"required"`
	SessionStyle           string `mapstructure:"SESSION_STYLE" validate:"required,oneof=prompt chat"`
	MaxUploadBytes         int    `mapstructure:"MAX_UPLOAD_BYTES" validate:"required,gt=0"`
	LogFile                string `mapstructure:"LOGGING_FILE"`
	ServerShutdownTimeout  int    `mapstructure:"SERVER_SHUTDOWN_TIMEOUT" validate:"gte=0"`
	AnalysisTimeoutSeconds int    `mapstructure:"ANALYSIS_TIMEOUT_SECONDS" validate:"gte=0"`
	GinMode                string `mapstructure:"GIN_MODE" validate:"required,oneof=debug release test"`
}

var defaults = map[string]any{
	"SERVER_HOST":              "",
	"SERVER_PORT":              8501,
	"GEMINI_MODEL":             "gemini-1.5-flash",
	"GEMINI_API":               "",
	"SESSION_STYLE":            "prompt",
	"MAX_UPLOAD_BYTES":         10 << 20,
	"LOGGING_FILE":             "",
	"SERVER_SHUTDOWN_TIMEOUT":  10,
	"ANALYSIS_TIMEOUT_SECONDS": 0,
	"GIN_MODE":                 "release",
}

// LoadConfigs reads the env-style file at path, if it exists, and lets
// environment variables override it.
func LoadConfigs(path string) (*Config, error) {

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var Cfg Config

	err := v.Unmarshal(&Cfg)
	if err != nil {
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(Cfg)
	if err != nil {
		return nil, err
	}

	return &Cfg, nil

}
