package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hris-payroll/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	enforceErr error
}

func (f *fakeService) LoadPolicy(ctx context.Context) error { return nil }

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	if f.enforceErr != nil {
		return false, f.enforceErr
	}
	return req.Role == domain.RoleHR && req.Resource == ResourcePayrollRun && req.Action == ActionCreate, nil
}

func (f *fakeService) Permissions() []domain.PermissionResponse {
	return []domain.PermissionResponse{{Role: domain.RoleHR, Resource: ResourcePayrollRun, Action: ActionCreate}}
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func doEnforce(t *testing.T, svc Service, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/rbac/enforce", NewHandler(svc).Enforce)

	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestHandler_Enforce(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		w, env := doEnforce(t, &fakeService{}, domain.EnforceRequest{
			EmployeeID: "emp-1", Role: "hr", Resource: ResourcePayrollRun, Action: ActionCreate,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.True(t, resp.Allowed)
	})

	t.Run("denied", func(t *testing.T) {
		w, env := doEnforce(t, &fakeService{}, domain.EnforceRequest{
			Role: "employee", Resource: ResourcePayrollRun, Action: ActionCreate,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp domain.EnforceResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.False(t, resp.Allowed)
	})

	t.Run("missing role", func(t *testing.T) {
		w, env := doEnforce(t, &fakeService{}, map[string]string{"resource": "x", "action": "y"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	})

	t.Run("blank after trim", func(t *testing.T) {
		w, _ := doEnforce(t, &fakeService{}, domain.EnforceRequest{Role: "  ", Resource: "x", Action: "y"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("enforcer error", func(t *testing.T) {
		w, env := doEnforce(t, &fakeService{enforceErr: errors.New("boom")}, domain.EnforceRequest{
			Role: "hr", Resource: "x", Action: "y",
		})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	})
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/rbac/permissions", NewHandler(&fakeService{}).Permissions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ResourcePayrollRun)
}
