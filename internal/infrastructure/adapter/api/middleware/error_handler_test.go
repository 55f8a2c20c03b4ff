package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	coremocks "github.com/amirhossein-jamali/expense-tracker/mocks/port/core"
)

func newErrorHandlerRouter(t *testing.T, logged *int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error(mock.Anything, mock.Anything).Run(func(string, map[string]any) {
		*logged++
	}).Maybe()

	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/panic", func(*gin.Context) {
		panic("boom")
	})
	router.GET("/unanswered", func(c *gin.Context) {
		_ = c.Error(errors.New("lost"))
	})
	router.GET("/answered", func(c *gin.Context) {
		_ = c.Error(errors.New("already handled"))
		c.JSON(http.StatusConflict, gin.H{"code": 4090})
	})
	router.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
		wantLogs   int
	}{
		{"Panic becomes 500", "/panic", http.StatusInternalServerError, `{"code":5000,"message":"Internal server error"}`, 1},
		{"Unanswered error becomes 500", "/unanswered", http.StatusInternalServerError, `{"code":5000,"message":"Internal server error"}`, 1},
		{"Written response is kept", "/answered", http.StatusConflict, `{"code":4090}`, 0},
		{"Success passes through", "/ok", http.StatusNoContent, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logged := 0
			router := newErrorHandlerRouter(t, &logged)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			assert.Equal(t, tt.wantLogs, logged)
		})
	}
}
