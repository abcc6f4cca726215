package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Alerts   AlertsConfig   `yaml:"alerts"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// RedisConfig holds session store connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// OpenAIConfig holds chat completion settings
type OpenAIConfig struct {
	Enabled bool   `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// ScoringConfig holds tunable targets for the scoring engines
type ScoringConfig struct {
	TargetROAS float64 `yaml:"target_roas"`
	TargetROI  float64 `yaml:"target_roi"`
	TargetCPA  float64 `yaml:"target_cpa"`
	AverageCLV float64 `yaml:"average_clv"`
}

// AlertsConfig holds threshold overrides for the alert engine
type AlertsConfig struct {
	ROASCritical    float64 `yaml:"roas_critical"`
	ROASWarning     float64 `yaml:"roas_warning"`
	ROICritical     float64 `yaml:"roi_critical"`
	ROIWarning      float64 `yaml:"roi_warning"`
	UtilizationLow  float64 `yaml:"utilization_low"`
	UtilizationHigh float64 `yaml:"utilization_high"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-4o"
	}
	if cfg.Scoring.TargetROAS == 0 {
		cfg.Scoring.TargetROAS = 400
	}
	if cfg.Scoring.TargetROI == 0 {
		cfg.Scoring.TargetROI = 100
	}
	if cfg.Scoring.TargetCPA == 0 {
		cfg.Scoring.TargetCPA = 50
	}
	if cfg.Scoring.AverageCLV == 0 {
		cfg.Scoring.AverageCLV = 500
	}
	if cfg.Alerts.ROASCritical == 0 {
		cfg.Alerts.ROASCritical = 1.0
	}
	if cfg.Alerts.ROASWarning == 0 {
		cfg.Alerts.ROASWarning = 2.0
	}
	if cfg.Alerts.ROIWarning == 0 {
		cfg.Alerts.ROIWarning = 50
	}
	if cfg.Alerts.UtilizationLow == 0 {
		cfg.Alerts.UtilizationLow = 50
	}
	if cfg.Alerts.UtilizationHigh == 0 {
		cfg.Alerts.UtilizationHigh = 95
	}
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars in production.
// A missing config file is not an error; defaults plus env vars apply.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if os.IsNotExist(err) {
		cfg = &Config{}
		cfg.applyDefaults()
	} else if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
		cfg.OpenAI.Enabled = true
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAI.Model = v
	}

	return cfg, nil
}
