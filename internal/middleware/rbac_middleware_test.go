package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-payroll/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeEnforcer struct {
	allowed bool
	err     error
	got     domain.EnforceRequest
}

func (f *fakeEnforcer) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func runRBAC(svc RBACService, role string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/runs", func(c *gin.Context) {
		if role != "" {
			c.Set(ContextRole, role)
			c.Set(ContextEmployeeID, "emp-9")
		}
		c.Next()
	}, RBACAuthorize(svc, "payroll_run", "create"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/runs", nil))
	return w
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeEnforcer{allowed: true}
		w := runRBAC(svc, "hr")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{
			EmployeeID: "emp-9",
			Role:       "hr",
			Resource:   "payroll_run",
			Action:     "create",
		}, svc.got)
	})

	t.Run("denied", func(t *testing.T) {
		w := runRBAC(&fakeEnforcer{allowed: false}, "employee")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "FORBIDDEN")
	})

	t.Run("no role", func(t *testing.T) {
		w := runRBAC(&fakeEnforcer{allowed: true}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := runRBAC(&fakeEnforcer{err: errors.New("casbin")}, "hr")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "casbin")
	})
}
