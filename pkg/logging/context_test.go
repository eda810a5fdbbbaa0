package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/spotmap/pkg/logging"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRegion(ctx, "chiba")
	ctx = logging.WithSpot(ctx, "naritasan")
	ctx = logging.WithField(ctx, "error", errors.New("boom"))

	logging.FromContext(ctx).Info().Msg("rendered")

	tl.AssertContains(t, `"region_id":"chiba"`)
	tl.AssertContains(t, `"spot_id":"naritasan"`)
	tl.AssertContains(t, `"error":"boom"`)
	assert.Len(t, tl.Lines(), 1)
}

func TestWithRequestID(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithRequestID(ctx, "req-42")

	assert.Equal(t, "req-42", logging.RequestID(ctx))
	assert.Equal(t, "", logging.RequestID(context.Background()))

	logging.FromContext(ctx).Debug().Msg("handled")
	tl.AssertContains(t, `"request_id":"req-42"`)
}
