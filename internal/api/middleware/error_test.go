package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandlerRecoversPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		panicWith interface{}
		wantMsg   string
	}{
		{name: "string panic", panicWith: "boom", wantMsg: "boom"},
		{name: "error panic", panicWith: errors.New("store unavailable"), wantMsg: "store unavailable"},
		{name: "other panic", panicWith: 42, wantMsg: "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/boom", func(c *gin.Context) { panic(tt.panicWith) })

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/boom", nil)
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}
