// internal/config/config.go
//
// Runtime configuration for the server and terminal client.
//
// Sources, lowest precedence first:
//   1. Built-in defaults.
//   2. An optional YAML file named by CONFIG_FILE (or passed to Load).
//   3. Environment variables, including those loaded from a .env file.
//
// Environment variables:
//   PORT, LOG_LEVEL, LOG_FORMAT, CLIENT_ORIGIN, DB_PATH,
//   JWT_SECRET, JWT_EXPIRES_DAYS, COOKIE_NAME, NODE_ENV,
//   WORDS_ANSWERS_FILE, WORDS_ALLOWED_FILE,
//   WORD_LENGTH, MAX_ATTEMPTS, ALPHABET, LANGUAGE, SESSION_TTL

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the application.
type Config struct {
	Port         string `yaml:"port"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"` // "json" or "console"
	ClientOrigin string `yaml:"client_origin"`
	Production   bool   `yaml:"production"`

	DBPath         string `yaml:"db_path"`
	JWTSecret      string `yaml:"jwt_secret"`
	JWTExpiresDays int    `yaml:"jwt_expires_days"`
	CookieName     string `yaml:"cookie_name"`

	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`
	WordLength  int    `yaml:"word_length"`
	MaxAttempts int    `yaml:"max_attempts"`
	Alphabet    string `yaml:"alphabet"`
	Language    string `yaml:"language"` // BCP 47 tag used for case folding

	SessionTTL time.Duration `yaml:"session_ttl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:           "5175",
		LogLevel:       "info",
		LogFormat:      "json",
		ClientOrigin:   "http://localhost:5173",
		DBPath:         "./data/app.db",
		JWTSecret:      "dev_secret_change_me",
		JWTExpiresDays: 14,
		CookieName:     "kelime_token",
		WordLength:     5,
		MaxAttempts:    6,
		Language:       "tr",
		SessionTTL:     2 * time.Hour,
	}
}

// Load builds the configuration. path names a YAML file; when empty,
// CONFIG_FILE is consulted. A missing .env file is not an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) loadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	str := func(k string, dst *string) {
		if v := os.Getenv(k); v != "" {
			*dst = v
		}
	}
	num := func(k string, dst *int) error {
		v := os.Getenv(k)
		if v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*dst = n
		return nil
	}

	str("PORT", &c.Port)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("CLIENT_ORIGIN", &c.ClientOrigin)
	str("DB_PATH", &c.DBPath)
	str("JWT_SECRET", &c.JWTSecret)
	str("COOKIE_NAME", &c.CookieName)
	str("WORDS_ANSWERS_FILE", &c.AnswersFile)
	str("WORDS_ALLOWED_FILE", &c.AllowedFile)
	str("ALPHABET", &c.Alphabet)
	str("LANGUAGE", &c.Language)
	if os.Getenv("NODE_ENV") == "production" {
		c.Production = true
	}

	for k, dst := range map[string]*int{
		"JWT_EXPIRES_DAYS": &c.JWTExpiresDays,
		"WORD_LENGTH":      &c.WordLength,
		"MAX_ATTEMPTS":     &c.MaxAttempts,
	} {
		if err := num(k, dst); err != nil {
			return err
		}
	}

	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	return nil
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.WordLength < 1 {
		errs = append(errs, fmt.Errorf("word length must be positive, got %d", c.WordLength))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max attempts must be positive, got %d", c.MaxAttempts))
	}
	if c.Production && c.JWTSecret == Default().JWTSecret {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}
	return errors.Join(errs...)
}
