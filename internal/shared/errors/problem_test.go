package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsProblem_PassesThroughWrappedProblems(t *testing.T) {
	problem := Validation("Dish must include a %s", "name")
	wrapped := fmt.Errorf("create dish: %w", problem)

	got := AsProblem(wrapped)

	require.Same(t, problem, got)
	assert.Equal(t, http.StatusBadRequest, StatusFromError(wrapped))
	assert.True(t, IsClientError(wrapped))
}

func TestAsProblem_UnknownErrorsBecomeInternal(t *testing.T) {
	cause := errors.New("boom")

	got := AsProblem(cause)

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, InternalMessage, got.Message)
	assert.ErrorIs(t, got, cause)
	assert.False(t, IsClientError(cause))
	assert.Nil(t, AsProblem(nil))
}

func TestProblem_Kind(t *testing.T) {
	assert.Equal(t, "validation", Validation("x").Kind())
	assert.Equal(t, "not_found", NotFound("x").Kind())
	assert.Equal(t, "method_not_allowed", MethodNotAllowed(http.MethodPatch, "/dishes").Kind())
	assert.Equal(t, "internal", Internal(nil).Kind())
}

func TestResponder_RendersErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	responder := NewResponder(nil)
	router.Use(responder.Recovery())
	router.GET("/fail", func(c *gin.Context) {
		responder.RespondError(c, NotFound("Dish does not exist: %s.", "42"))
	})
	router.GET("/panic", func(*gin.Context) {
		panic("kaboom")
	})
	router.NoRoute(responder.NoRoute)

	cases := []struct {
		path    string
		status  int
		message string
	}{
		{"/fail", http.StatusNotFound, "Dish does not exist: 42."},
		{"/panic", http.StatusInternalServerError, InternalMessage},
		{"/nowhere", http.StatusNotFound, "Path not found: /nowhere"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, tc.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["error"])
		})
	}
}
