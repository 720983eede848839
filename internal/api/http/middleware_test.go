package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	httptransport "github.com/spec-kit/toy-store/internal/api/http"
	"github.com/spec-kit/toy-store/internal/observability"
	apperrors "github.com/spec-kit/toy-store/pkg/util"
)

func TestErrorStatusReachesLoggerAndCounters(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.New(core), metrics)
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("toy", nil)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	// The access log records the converted status, not the pre-error 200.
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])

	snap := metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Requests["GET /boom -> 404"])
	assert.Equal(t, int64(1), snap.ErrorCodes["NOT_FOUND"])
}

func TestSuccessStatusReachesLoggerAndCounters(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.New(core), metrics)
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, int64(1), metrics.Snapshot().Requests["GET /ok -> 200"])
}
