package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // sqlite or postgres
		DSN    string `yaml:"dsn"`    // file path for sqlite, URL for postgres
	} `yaml:"database"`

	Session struct {
		Secret string `yaml:"secret"`
	} `yaml:"session"`

	Admin struct {
		// StatsKey protects /admin_stats. Empty disables the endpoint.
		StatsKey string `yaml:"stats_key"`
	} `yaml:"admin"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. When DATABASE_URL is present the whole
// configuration comes from environment variables (test and container
// deployments); otherwise it is read from config/config.yaml.
func LoadConfig() {
	var cfg Config

	// .env is optional; ignore a missing file.
	_ = godotenv.Load()

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Database.Driver = envOr("DATABASE_DRIVER", "sqlite")
		cfg.Server.Env = envOr("SERVER_ENV", "development")
		cfg.Server.Port, _ = strconv.Atoi(envOr("SERVER_PORT", "5000"))
		cfg.Session.Secret = envOr("SESSION_SECRET", "dev-session-secret")
		cfg.Admin.StatsKey = os.Getenv("ADMIN_STATS_KEY")

		AppConfig = &cfg
		return
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Failed to open config file at %s: %v", configPath, err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
	}

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "farmers_market.db"
	}
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "dev-session-secret"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
