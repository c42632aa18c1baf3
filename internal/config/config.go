package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/latestcomment/interview-cards/internal/presenter"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig         `yaml:"server"`
	Log        LogConfig            `yaml:"log"`
	ScoreTiers presenter.Thresholds `yaml:"score_tiers"`
	Session    SessionConfig        `yaml:"session"`
	Cards      CardsConfig          `yaml:"cards"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// TemplatesDir serves views from disk with reload on each render. Empty
	// means the embedded views.
	TemplatesDir string        `yaml:"templates_dir"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// SessionConfig holds the figures shown on the landing page.
type SessionConfig struct {
	DurationMinutes int `yaml:"duration_minutes"`
	QuestionCount   int `yaml:"question_count"`
}

type CardsConfig struct {
	TechStackLimit int `yaml:"tech_stack_limit"`
	LatestLimit    int `yaml:"latest_limit"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":3000",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Log:        LogConfig{Level: "info"},
		ScoreTiers: presenter.DefaultThresholds,
		Session:    SessionConfig{DurationMinutes: 25, QuestionCount: 12},
		Cards:      CardsConfig{TechStackLimit: 3, LatestLimit: 20},
	}
}

// Load reads filename over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", filename, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", filename, err)
			}
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	t := c.ScoreTiers
	if !(t.Excellent >= t.Great && t.Great >= t.Good) {
		return fmt.Errorf("score_tiers must be descending, got excellent=%v great=%v good=%v",
			t.Excellent, t.Great, t.Good)
	}
	if c.Session.DurationMinutes <= 0 {
		return fmt.Errorf("session.duration_minutes must be greater than 0")
	}
	if c.Session.QuestionCount <= 0 {
		return fmt.Errorf("session.question_count must be greater than 0")
	}
	if c.Cards.TechStackLimit < 0 {
		return fmt.Errorf("cards.tech_stack_limit cannot be negative")
	}
	if c.Cards.LatestLimit < 0 {
		return fmt.Errorf("cards.latest_limit cannot be negative")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	return nil
}

func applyEnv(c *Config) {
	c.Server.Addr = getEnv("CARDS_ADDR", c.Server.Addr)
	c.Server.TemplatesDir = getEnv("CARDS_TEMPLATES_DIR", c.Server.TemplatesDir)
	c.Log.Level = getEnv("CARDS_LOG_LEVEL", c.Log.Level)
	c.Session.DurationMinutes = getEnvAsInt("CARDS_SESSION_MINUTES", c.Session.DurationMinutes)
	c.Session.QuestionCount = getEnvAsInt("CARDS_SESSION_QUESTIONS", c.Session.QuestionCount)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
