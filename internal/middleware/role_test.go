package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func roleRouter(callerRole string, allowed ...string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if callerRole != "" {
			c.Set("role", callerRole)
		}
	})
	router.Use(RequireRole(allowed...))
	router.GET("/restricted", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireRole_Allowed(t *testing.T) {
	router := roleRouter("worker", "worker")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/restricted", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_WrongRoleIs403(t *testing.T) {
	// an authenticated customer on a worker route gets 403, never 401
	router := roleRouter("customer", "worker")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/restricted", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "User role not authorized to access this route")
}

func TestRequireRole_MissingRoleIs401(t *testing.T) {
	// chain mounted without Auth in front
	router := roleRouter("", "worker")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/restricted", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	router := roleRouter("admin", "customer", "admin")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/restricted", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOnly_RejectsWorker(t *testing.T) {
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("role", "worker") })
	router.Use(AdminOnly())
	router.GET("/admin", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
