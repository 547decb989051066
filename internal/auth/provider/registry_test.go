package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarparveen48-netizen/Pro-Rooms/internal/auth"
)

type stubProvider struct {
	name string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) AuthCodeURL(state, codeChallenge string) string { return "" }

func (s *stubProvider) ExchangeCode(ctx context.Context, code, verifier string) (*auth.ExternalIdentity, error) {
	return nil, nil
}

func TestRegistry_Get(t *testing.T) {
	google := &stubProvider{name: "google"}
	registry := NewRegistry(google)

	p, err := registry.Get("google")
	require.NoError(t, err)
	assert.Same(t, google, p)

	_, err = registry.Get("linkedin")
	assert.ErrorContains(t, err, "unknown oauth provider")
}
