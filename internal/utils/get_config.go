package utils

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Env     string `yaml:"ENV"`
	AppPort string `yaml:"APP_PORT"`
	AppURL  string `yaml:"APP_URL"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`

	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey  string `yaml:"GEMINI_API_KEY"`
	GeminiModel   string `yaml:"GEMINI_MODEL"`
	GeminiBaseURL string `yaml:"GEMINI_BASE_URL"`

	OpenFoodFactsURL string `yaml:"OPEN_FOOD_FACTS_URL"`
}

const (
	defaultAppPort          = "8080"
	defaultSMTPPort         = "587"
	defaultGeminiModel      = "gemini-1.5-flash"
	defaultGeminiBaseURL    = "https://generativelanguage.googleapis.com"
	defaultOpenFoodFactsURL = "https://world.openfoodfacts.org"
)

// LoadConfig reads the YAML file at path, then applies a .env file and the
// process environment on top. A missing YAML or .env file is not an error.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	for key, field := range cfg.envFields() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) envFields() map[string]*string {
	return map[string]*string{
		"ENV":                 &c.Env,
		"APP_PORT":            &c.AppPort,
		"APP_URL":             &c.AppURL,
		"DB_USER":             &c.DBUser,
		"DB_NAME":             &c.DBName,
		"DB_PASSWORD":         &c.DBPassword,
		"DB_PORT":             &c.DBPort,
		"DB_HOST":             &c.DBHost,
		"DB_TIMEZONE":         &c.DBTimeZone,
		"JWT_SECRET":          &c.JWTSecret,
		"SMTP_HOST":           &c.SMTPHost,
		"SMTP_PORT":           &c.SMTPPort,
		"SMTP_SENDER_NAME":    &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":     &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":  &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":       &c.AWSS3Bucket,
		"AWS_S3_REGION":       &c.AWSS3Region,
		"AWS_ACCESS_KEY":      &c.AWSAccessKey,
		"AWS_SECRET_KEY":      &c.AWSSecretKey,
		"GEMINI_API_KEY":      &c.GeminiAPIKey,
		"GEMINI_MODEL":        &c.GeminiModel,
		"GEMINI_BASE_URL":     &c.GeminiBaseURL,
		"OPEN_FOOD_FACTS_URL": &c.OpenFoodFactsURL,
	}
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "development"
	}
	if c.AppPort == "" {
		c.AppPort = defaultAppPort
	}
	if c.SMTPPort == "" {
		c.SMTPPort = defaultSMTPPort
	}
	if c.DBTimeZone == "" {
		c.DBTimeZone = "UTC"
	}
	if c.GeminiModel == "" {
		c.GeminiModel = defaultGeminiModel
	}
	if c.GeminiBaseURL == "" {
		c.GeminiBaseURL = defaultGeminiBaseURL
	}
	if c.OpenFoodFactsURL == "" {
		c.OpenFoodFactsURL = defaultOpenFoodFactsURL
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBTimeZone,
	)
}
