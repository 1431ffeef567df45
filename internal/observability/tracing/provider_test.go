package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExporterProtocol(t *testing.T) {
	assert.Equal(t, "http", exporterProtocol(Config{}))
	assert.Equal(t, "http", exporterProtocol(Config{ExporterProtocol: "thrift"}))
	assert.Equal(t, "grpc", exporterProtocol(Config{ExporterProtocol: " GRPC "}))
}

func TestNewProviderDisabledSamplesNothing(t *testing.T) {
	provider, err := NewProvider(nil, Config{ServiceName: "console"}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	_, span := provider.Tracer("test").Start(t.Context(), "op")
	defer span.End()
	assert.False(t, span.SpanContext().IsSampled())
	assert.True(t, span.SpanContext().IsValid())
}
