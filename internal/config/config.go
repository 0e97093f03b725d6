// Package config carga la configuración desde el entorno y un .env opcional usando Viper.
// La configuración es inmutable después de Load y se inyecta; no hay globals.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Backends de tickets soportados.
const (
	BackendGitHub   = "github"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	Port     string `mapstructure:"PORT"`
	AppEnv   string `mapstructure:"APP_ENV"`
	AppName  string `mapstructure:"APP_NAME"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// TicketBackend: github|postgres|memory. Vacío = auto (ver Backend).
	TicketBackend string `mapstructure:"TICKET_BACKEND"`

	GitHubToken      string `mapstructure:"GH_TOKEN"`
	GitHubRepo       string `mapstructure:"GH_REPO_FULLNAME"`
	GitHubBaseURL    string `mapstructure:"GH_API_BASE_URL"`
	GitHubAPIVersion string `mapstructure:"GH_API_VERSION"`

	CreateTimeout time.Duration `mapstructure:"STORE_CREATE_TIMEOUT"`
	ListTimeout   time.Duration `mapstructure:"STORE_LIST_TIMEOUT"`

	// AdminToken es el único secreto que habilita el export. Vacío = export cerrado.
	AdminToken string `mapstructure:"ADMIN_TOKEN"`

	DBDSN string `mapstructure:"DB_DSN"`

	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPInsecure bool   `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`
}

// Load lee .env (si existe) y luego el entorno; el entorno pisa al .env.
func Load() (*Config, error) {
	return load(".env")
}

func load(envFile string) (*Config, error) {
	v := viper.New()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		_ = v.ReadInConfig() // .env ausente se ignora (CI, contenedores)
	}

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", "")
	v.SetDefault("PORT", "")
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_NAME", "pet-insurance-leads")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("TICKET_BACKEND", "")
	v.SetDefault("GH_TOKEN", "")
	v.SetDefault("GH_REPO_FULLNAME", "")
	v.SetDefault("GH_API_BASE_URL", "https://api.github.com")
	v.SetDefault("GH_API_VERSION", "2022-11-28")
	v.SetDefault("STORE_CREATE_TIMEOUT", "8s")
	v.SetDefault("STORE_LIST_TIMEOUT", "10s")
	v.SetDefault("ADMIN_TOKEN", "")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.CreateTimeout <= 0 || cfg.ListTimeout <= 0 {
		return nil, errors.New("config: STORE_CREATE_TIMEOUT and STORE_LIST_TIMEOUT must be positive")
	}

	switch cfg.Backend() {
	case BackendGitHub:
		if strings.TrimSpace(cfg.GitHubToken) == "" || !strings.Contains(cfg.GitHubRepo, "/") {
			return nil, errors.New("config: github backend needs GH_TOKEN and GH_REPO_FULLNAME=owner/name")
		}
	case BackendPostgres:
		if strings.TrimSpace(cfg.DBDSN) == "" {
			return nil, errors.New("config: postgres backend needs DB_DSN")
		}
	case BackendMemory:
	default:
		return nil, fmt.Errorf("config: unknown TICKET_BACKEND %q", cfg.TicketBackend)
	}

	return &cfg, nil
}

// Addr devuelve HTTP_ADDR, o ":"+PORT, o ":8080".
func (c *Config) Addr() string {
	if a := strings.TrimSpace(c.HTTPAddr); a != "" {
		return a
	}
	if p := strings.TrimSpace(c.Port); p != "" {
		return ":" + p
	}
	return ":8080"
}

// Backend resuelve el store: explícito si TICKET_BACKEND está seteado; si no,
// github cuando hay credenciales, postgres cuando hay DB_DSN, y memoria en otro caso.
func (c *Config) Backend() string {
	if b := strings.ToLower(strings.TrimSpace(c.TicketBackend)); b != "" {
		return b
	}
	switch {
	case strings.TrimSpace(c.GitHubToken) != "" && strings.TrimSpace(c.GitHubRepo) != "":
		return BackendGitHub
	case strings.TrimSpace(c.DBDSN) != "":
		return BackendPostgres
	default:
		return BackendMemory
	}
}
