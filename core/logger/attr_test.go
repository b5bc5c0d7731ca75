package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fixedstr/core/logger"
)

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

// ============================================================================
// Performance and Timing Tests
// ============================================================================

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	// Check that elapsed is at least 500ms
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

// ============================================================================
// Text and Code Generation Tests
// ============================================================================

func TestWidth(t *testing.T) {
	t.Parallel()
	attr := logger.Width("u16")
	require.Equal(t, "width", attr.Key)
	assert.Equal(t, "u16", attr.Value.String())
}

func TestSlots(t *testing.T) {
	t.Parallel()
	attr := logger.Slots(16)
	require.Equal(t, "slots", attr.Key)
	assert.Equal(t, int64(16), attr.Value.Int64())
}

func TestLiteral(t *testing.T) {
	t.Parallel()
	attr := logger.Literal("Greeting")
	require.Equal(t, "literal", attr.Key)
	assert.Equal(t, "Greeting", attr.Value.String())

	empty := logger.Literal("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestFile(t *testing.T) {
	t.Parallel()
	attr := logger.File("literals.yaml")
	require.Equal(t, "file", attr.Key)
	assert.Equal(t, "literals.yaml", attr.Value.String())

	empty := logger.File("")
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestOp(t *testing.T) {
	t.Parallel()
	attr := logger.Op("rfind")
	require.Equal(t, "op", attr.Key)
	assert.Equal(t, "rfind", attr.Value.String())
}

// ============================================================================
// Generic Metadata Tests
// ============================================================================

func TestComponent(t *testing.T) {
	t.Parallel()
	attr := logger.Component("auth")
	require.Equal(t, "component", attr.Key)
	assert.Equal(t, "auth", attr.Value.String())
}

func TestAction(t *testing.T) {
	t.Parallel()
	attr := logger.Action("create")
	require.Equal(t, "action", attr.Key)
	assert.Equal(t, "create", attr.Value.String())
}

func TestResult(t *testing.T) {
	t.Parallel()
	attr := logger.Result("success")
	require.Equal(t, "result", attr.Key)
	assert.Equal(t, "success", attr.Value.String())
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("attempts", 3)
	require.Equal(t, "attempts", attr.Key)
	assert.Equal(t, int64(3), attr.Value.Int64())
}

func TestVersion(t *testing.T) {
	t.Parallel()
	attr := logger.Version("1.2.3")
	require.Equal(t, "version", attr.Key)
	assert.Equal(t, "1.2.3", attr.Value.String())
}
