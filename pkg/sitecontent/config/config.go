// Package config builds the content service and its HTTP dependencies
// from environment-driven server configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jamalakbara/adana-sub001/pkg/newsletter"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/api"
	repomemory "github.com/jamalakbara/adana-sub001/pkg/sitecontent/repo/memory"
	repopg "github.com/jamalakbara/adana-sub001/pkg/sitecontent/repo/postgres"
	fsstorage "github.com/jamalakbara/adana-sub001/pkg/sitecontent/storage/fs"
	memorystorage "github.com/jamalakbara/adana-sub001/pkg/sitecontent/storage/memory"
	s3storage "github.com/jamalakbara/adana-sub001/pkg/sitecontent/storage/s3"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/urlstrategy"
)

// ServerConfig represents server configuration for the content service
type ServerConfig struct {
	Port        string
	Environment string // development, staging, production

	// Database configuration. "memory" or a postgres:// URL. Empty
	// means unconfigured: requests fail with a configuration error
	// instead of the process refusing to start.
	DatabaseURL string

	// Storage configuration. memory://, file:///path, or s3://bucket.
	// Empty means unconfigured, same degraded behavior as the database.
	StorageURL         string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Endpoint         string
	S3UsePathStyle     bool

	// PublicBaseURL, when set, makes persisted media URLs point at a
	// CDN/proxy prefix instead of presigned storage URLs.
	PublicBaseURL string

	// Authorization policy. "jwt" (default) or "static"; static is an
	// explicit opt-in, never derived from Environment.
	AuthMode          string
	JWTSecret         string
	StaticAuthSubject string

	// Newsletter integration. Both values are required to enable the
	// signup route.
	NewsletterAPIKey     string
	NewsletterAudienceID string
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Port == "" {
		return errors.New("port is required")
	}

	switch c.AuthMode {
	case "jwt":
		if c.JWTSecret == "" {
			return errors.New("jwt secret is required when auth_mode is jwt")
		}
	case "static":
	default:
		return fmt.Errorf("auth_mode must be 'jwt' or 'static', got %q", c.AuthMode)
	}

	if c.DatabaseURL != "" && c.DatabaseURL != "memory" &&
		!strings.HasPrefix(c.DatabaseURL, "postgres://") &&
		!strings.HasPrefix(c.DatabaseURL, "postgresql://") {
		return fmt.Errorf("database_url must be 'memory' or a postgres:// URL")
	}

	return nil
}

// BuildService creates a Service instance from the server
// configuration. Missing database or storage configuration installs a
// sentinel backend that fails affected requests with a configuration
// error; the process itself stays up.
func (c *ServerConfig) BuildService() (sitecontent.Service, error) {
	repo, err := c.buildRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to build repository: %w", err)
	}

	store, err := c.buildStorageBackend()
	if err != nil {
		return nil, fmt.Errorf("failed to build storage backend: %w", err)
	}

	options := []sitecontent.Option{
		sitecontent.WithRepository(repo),
		sitecontent.WithBlobStore(storageBackendName(c.StorageURL), store),
	}

	if c.PublicBaseURL != "" {
		options = append(options, sitecontent.WithURLStrategy(
			urlstrategy.NewCDNStrategy(c.PublicBaseURL)))
	}

	return sitecontent.New(options...)
}

// BuildAuthorizer creates the admin authorization policy
func (c *ServerConfig) BuildAuthorizer() (api.Authorizer, error) {
	switch c.AuthMode {
	case "static":
		return api.NewStaticAuthorizer(c.StaticAuthSubject), nil
	case "jwt":
		if c.JWTSecret == "" {
			return nil, errors.New("jwt secret is required when auth_mode is jwt")
		}
		return api.NewJWTAuthorizer([]byte(c.JWTSecret)), nil
	default:
		return nil, fmt.Errorf("unsupported auth_mode: %s", c.AuthMode)
	}
}

// BuildNewsletter creates the newsletter client, or (nil, nil) when
// the integration is not configured at all so the caller can disable
// the route. Half-configured credentials are an error.
func (c *ServerConfig) BuildNewsletter() (*newsletter.Client, error) {
	if c.NewsletterAPIKey == "" && c.NewsletterAudienceID == "" {
		return nil, nil
	}
	return newsletter.New(c.NewsletterAPIKey, c.NewsletterAudienceID)
}

// buildRepository creates a Repository based on the configuration
func (c *ServerConfig) buildRepository() (sitecontent.Repository, error) {
	switch {
	case c.DatabaseURL == "":
		return unconfiguredRepository{}, nil
	case c.DatabaseURL == "memory":
		return repomemory.New(), nil
	default:
		pool, err := pgxpool.New(context.Background(), c.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create pgx pool: %w", err)
		}
		return repopg.NewWithPool(pool), nil
	}
}

// buildStorageBackend creates a BlobStore based on the configuration
func (c *ServerConfig) buildStorageBackend() (sitecontent.BlobStore, error) {
	if c.StorageURL == "" {
		return unconfiguredBlobStore{}, nil
	}

	u, err := url.Parse(c.StorageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse storage URL: %w", err)
	}

	switch u.Scheme {
	case "memory":
		return memorystorage.New(), nil

	case "file":
		return fsstorage.New(fsstorage.Config{
			BaseDir:   u.Path,
			URLPrefix: c.PublicBaseURL,
		})

	case "s3":
		return s3storage.New(s3storage.Config{
			Region:          c.AWSRegion,
			Bucket:          u.Host,
			AccessKeyID:     c.AWSAccessKeyID,
			SecretAccessKey: c.AWSSecretAccessKey,
			Endpoint:        c.S3Endpoint,
			UsePathStyle:    c.S3UsePathStyle,
		})

	default:
		return nil, fmt.Errorf("unsupported storage scheme: %s", u.Scheme)
	}
}

func storageBackendName(storageURL string) string {
	u, err := url.Parse(storageURL)
	if err != nil || u.Scheme == "" {
		return "unconfigured"
	}
	switch u.Scheme {
	case "file":
		return "fs"
	default:
		return u.Scheme
	}
}
