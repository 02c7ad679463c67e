package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env is the environment-variable surface of the server. Field
// semantics are documented on ServerConfig.
type Env struct {
	Port        string `env:"PORT" env-default:"8080"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	DatabaseURL string `env:"DATABASE_URL"`

	StorageURL         string `env:"STORAGE_URL"`
	AWSRegion          string `env:"AWS_REGION" env-default:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	S3Endpoint         string `env:"S3_ENDPOINT"`
	S3UsePathStyle     bool   `env:"S3_USE_PATH_STYLE" env-default:"false"`

	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	AuthMode          string `env:"AUTH_MODE" env-default:"jwt"`
	JWTSecret         string `env:"JWT_SECRET"`
	StaticAuthSubject string `env:"STATIC_AUTH_SUBJECT"`

	NewsletterAPIKey     string `env:"NEWSLETTER_API_KEY"`
	NewsletterAudienceID string `env:"NEWSLETTER_AUDIENCE_ID"`
}

// LoadFromEnv reads environment variables into a validated
// ServerConfig.
func LoadFromEnv() (*ServerConfig, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg := &ServerConfig{
		Port:                 env.Port,
		Environment:          env.Environment,
		DatabaseURL:          env.DatabaseURL,
		StorageURL:           env.StorageURL,
		AWSRegion:            env.AWSRegion,
		AWSAccessKeyID:       env.AWSAccessKeyID,
		AWSSecretAccessKey:   env.AWSSecretAccessKey,
		S3Endpoint:           env.S3Endpoint,
		S3UsePathStyle:       env.S3UsePathStyle,
		PublicBaseURL:        env.PublicBaseURL,
		AuthMode:             env.AuthMode,
		JWTSecret:            env.JWTSecret,
		StaticAuthSubject:    env.StaticAuthSubject,
		NewsletterAPIKey:     env.NewsletterAPIKey,
		NewsletterAudienceID: env.NewsletterAudienceID,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
