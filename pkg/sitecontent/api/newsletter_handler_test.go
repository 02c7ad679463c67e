package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamalakbara/adana-sub001/pkg/sitecontent"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/api"
	"github.com/jamalakbara/adana-sub001/pkg/sitecontent/repo/memory"
	memorystorage "github.com/jamalakbara/adana-sub001/pkg/sitecontent/storage/memory"
)

type recordingSubscriber struct {
	emails []string
	err    error
}

func (s *recordingSubscriber) Subscribe(ctx context.Context, email string) error {
	if s.err != nil {
		return s.err
	}
	s.emails = append(s.emails, email)
	return nil
}

func setupRouterWithSubscriber(t *testing.T, subscriber api.NewsletterSubscriber) http.Handler {
	t.Helper()

	svc, err := sitecontent.New(
		sitecontent.WithRepository(memory.New()),
		sitecontent.WithBlobStore("memory", memorystorage.New()),
	)
	require.NoError(t, err)

	return api.NewRouter(api.RouterConfig{
		Service:    svc,
		Authorizer: api.NewStaticAuthorizer("test-admin"),
		Subscriber: subscriber,
	})
}

func TestNewsletterSignup(t *testing.T) {
	t.Run("subscribes a valid address", func(t *testing.T) {
		subscriber := &recordingSubscriber{}
		router := setupRouterWithSubscriber(t, subscriber)

		rec := doJSON(t, router, http.MethodPost, "/public/newsletter", map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"reader@example.com"}, subscriber.emails)
	})

	t.Run("rejects an invalid address", func(t *testing.T) {
		subscriber := &recordingSubscriber{}
		router := setupRouterWithSubscriber(t, subscriber)

		rec := doJSON(t, router, http.MethodPost, "/public/newsletter", map[string]string{
			"email": "not-an-email",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Error.Code)
		assert.Empty(t, subscriber.emails)
	})

	t.Run("surfaces provider failures", func(t *testing.T) {
		subscriber := &recordingSubscriber{err: errors.New("provider down")}
		router := setupRouterWithSubscriber(t, subscriber)

		rec := doJSON(t, router, http.MethodPost, "/public/newsletter", map[string]string{
			"email": "reader@example.com",
		})
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Error.Code)
	})

	t.Run("route absent without a subscriber", func(t *testing.T) {
		router := setupRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/public/newsletter", map[string]string{
			"email": "reader@example.com",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
