package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "github.com/RozoAI/rozo-app-backend-sub000/internal/domain/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()
	Success(c, http.StatusCreated, gin.H{"number": "2025010100000001"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2025010100000001", body["number"])
}

func TestError_AppError(t *testing.T) {
	c, w := newTestContext()
	Error(c, domainerrors.NotFound("no record for number 1"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ERR_NOT_FOUND", body["code"])
	assert.Equal(t, "no record for number 1", body["message"])
}

func TestError_UnknownErrorBecomesInternal(t *testing.T) {
	c, w := newTestContext()
	Error(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotContains(t, body["message"], "pq:")
}
