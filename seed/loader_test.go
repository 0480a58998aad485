package seed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint/mocks"
	"github.com/Greenrenge/cf-webhook-fanout/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeSeedFile(t, `
endpoints:
  - url: https://primary.example.com/hooks
    is_primary: true
    headers:
      X-Api-Key: secret
  - url: https://backup.example.com/hooks
    is_active: false
`)

		loader := seed.NewLoader()
		require.NoError(t, loader.Load(path))

		endpoints := loader.List()
		require.Len(t, endpoints, 2)
		assert.Equal(t, "https://primary.example.com/hooks", endpoints[0].URL)
		assert.True(t, endpoints[0].IsPrimary)
		assert.Equal(t, "secret", endpoints[0].Headers["X-Api-Key"])
		require.NotNil(t, endpoints[1].IsActive)
		assert.False(t, *endpoints[1].IsActive)
	})

	t.Run("missing file", func(t *testing.T) {
		loader := seed.NewLoader()
		err := loader.Load("/nonexistent/endpoints.yaml")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading seed file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeSeedFile(t, "endpoints: [broken")

		loader := seed.NewLoader()
		err := loader.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing seed YAML")
	})

	t.Run("endpoint without url", func(t *testing.T) {
		path := writeSeedFile(t, `
endpoints:
  - is_primary: true
`)

		loader := seed.NewLoader()
		err := loader.Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validating seed endpoint")
	})
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("creates missing endpoints", func(t *testing.T) {
		path := writeSeedFile(t, `
endpoints:
  - url: https://primary.example.com/hooks
    is_primary: true
`)

		loader := seed.NewLoader()
		require.NoError(t, loader.Load(path))

		registry := mocks.NewUseCase(t)
		registry.On("List", ctx).Return([]endpoint.Endpoint{}, nil)
		registry.On("Create", ctx, "https://primary.example.com/hooks", map[string]string(nil), true).
			Return(endpoint.Endpoint{ID: 1, URL: "https://primary.example.com/hooks", IsPrimary: true, IsActive: true}, nil)

		created, err := loader.Apply(ctx, registry)

		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})

	t.Run("known urls are skipped", func(t *testing.T) {
		path := writeSeedFile(t, `
endpoints:
  - url: https://primary.example.com/hooks
`)

		loader := seed.NewLoader()
		require.NoError(t, loader.Load(path))

		registry := mocks.NewUseCase(t)
		registry.On("List", ctx).Return([]endpoint.Endpoint{
			{ID: 1, URL: "https://primary.example.com/hooks"},
		}, nil)

		created, err := loader.Apply(ctx, registry)

		require.NoError(t, err)
		assert.Equal(t, 0, created)
		registry.AssertNotCalled(t, "Create")
	})

	t.Run("inactive seed is deactivated after creation", func(t *testing.T) {
		path := writeSeedFile(t, `
endpoints:
  - url: https://disabled.example.com/hooks
    is_active: false
`)

		loader := seed.NewLoader()
		require.NoError(t, loader.Load(path))

		registry := mocks.NewUseCase(t)
		registry.On("List", ctx).Return([]endpoint.Endpoint{}, nil)
		registry.On("Create", ctx, "https://disabled.example.com/hooks", map[string]string(nil), false).
			Return(endpoint.Endpoint{ID: 3, URL: "https://disabled.example.com/hooks", IsActive: true}, nil)
		registry.On("Update", ctx, int64(3), endpoint.MatchChanges(func(c endpoint.Changes) bool {
			return c.IsActive != nil && !*c.IsActive
		})).Return(endpoint.Endpoint{ID: 3, IsActive: false}, nil)

		created, err := loader.Apply(ctx, registry)

		require.NoError(t, err)
		assert.Equal(t, 1, created)
	})
}
