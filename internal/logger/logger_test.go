package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext() *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	return ctx
}

func TestFromGinContextCarriesUserAndRequestID(t *testing.T) {
	ctx := testContext()
	ctx.Set("email", "olivia@hand-therapy.example")
	ctx.Set("request_id", "req-123")

	log := FromGinContext(ctx)

	assert.Equal(t, "olivia@hand-therapy.example", log.Entry.Data["user"])
	assert.Equal(t, "req-123", log.Entry.Data["request_id"])
}

func TestFromGinContextCarriesApiKeyName(t *testing.T) {
	ctx := testContext()
	ctx.Set("api_key_name", "geometry-worker")

	log := FromGinContext(ctx)

	assert.Equal(t, "geometry-worker", log.Entry.Data["api_key"])
	assert.NotContains(t, log.Entry.Data, "user")
}

func TestWithFieldsReturnsEnrichedLogger(t *testing.T) {
	log := New().WithField("component", "print-queue").WithFields(map[string]interface{}{
		"status": 200,
	})

	assert.Equal(t, "print-queue", log.Entry.Data["component"])
	assert.Equal(t, 200, log.Entry.Data["status"])
}
