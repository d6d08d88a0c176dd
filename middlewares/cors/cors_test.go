package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func preflight(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/bookings", nil)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	r.ServeHTTP(w, req)
	return w
}

func newRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CorsMiddleware(origins))
	r.PUT("/bookings", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCorsMiddlewareRestrictsOrigins(t *testing.T) {
	r := newRouter([]string{"https://admin.example.com"})

	w := preflight(r, "https://admin.example.com")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight(r, "https://evil.example.com")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCorsMiddlewareWildcard(t *testing.T) {
	r := newRouter([]string{"*"})

	w := preflight(r, "http://localhost:3000")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
