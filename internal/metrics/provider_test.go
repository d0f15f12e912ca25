package metrics

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	provider, err := NewProvider("gallery")

	require.NoError(t, err)
	require.NotNil(t, provider)
	assert.NotNil(t, provider.meterProvider)
	assert.NotNil(t, provider.exporter)
	assert.NotNil(t, provider.registry)
}

func TestNewProvider_EmptyNamespace(t *testing.T) {
	provider, err := NewProvider("")

	require.NoError(t, err)
	assert.NotNil(t, provider)
}

func TestProvider_MeterProvider(t *testing.T) {
	provider, err := NewProvider("gallery")
	require.NoError(t, err)

	assert.NotNil(t, provider.MeterProvider())
}

func TestProvider_HandlerServesExposition(t *testing.T) {
	provider, err := NewProvider("gallery")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	provider.Handler().ServeHTTP(rec, req)

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text")
}

func TestProvider_Shutdown(t *testing.T) {
	provider, err := NewProvider("gallery")
	require.NoError(t, err)

	assert.NoError(t, provider.Shutdown(context.Background()))
}

func TestProvider_ShutdownWithoutMeterProvider(t *testing.T) {
	provider := &Provider{}

	assert.NoError(t, provider.Shutdown(context.Background()))
}
