package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/RehahnC/shared-rexdb-fastapi-sql/internal/config"
)

func TestSetup_WithoutEndpointKeepsGlobalProvider(t *testing.T) {
	before := otel.GetTracerProvider()

	shutdown, err := Setup(context.Background(), config.Telemetry{ServiceName: "sqlgate"})
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	require.Equal(t, before, otel.GetTracerProvider())
	require.NoError(t, shutdown(context.Background()))
}
