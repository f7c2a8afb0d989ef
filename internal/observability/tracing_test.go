package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, Tracer)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_Stdout(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{
		ServiceName:  "skillswap-test",
		Enabled:      true,
		Exporter:     "stdout",
		SamplerRatio: 0.5,
	})
	require.NoError(t, err)
	defer func() { _ = shutdown(context.Background()) }()

	ctx, end := StartSpan(context.Background(), "SwapService.Create")
	assert.NotNil(t, ctx)
	end(errors.New("boom"))
}
