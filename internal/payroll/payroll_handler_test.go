package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hris-payroll/internal/middleware"
	"hris-payroll/internal/payroll"
	payrollerrors "hris-payroll/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	createRunFn   func(ctx context.Context, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error)
	getAllRunsFn  func(ctx context.Context, req payroll.GetRunsFilterRequest) ([]payroll.RunResponse, error)
	getRunByIDFn  func(ctx context.Context, id string) (payroll.RunResponse, error)
	calculateFn   func(ctx context.Context, runID string) (payroll.CalculateResponse, error)
	recalculateFn func(ctx context.Context, employeeID string, start, end time.Time) (int, error)
	approveFn     func(ctx context.Context, runID, approverID string) (payroll.RunResponse, error)
	processFn     func(ctx context.Context, runID, actorID string) (payroll.RunResponse, error)
	deleteRunFn   func(ctx context.Context, runID string) error
	getEntryFn    func(ctx context.Context, id string) (payroll.EntryResponse, error)
	updateEntryFn func(ctx context.Context, entryID string, req payroll.UpdateEntryRequest) (payroll.EntryResponse, error)
	getSummaryFn  func(ctx context.Context, runID string) (payroll.SummaryResponse, error)
	payslipsFn    func(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error)
}

func (f *fakePayrollService) CreateRun(ctx context.Context, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
	return f.createRunFn(ctx, actorID, req)
}
func (f *fakePayrollService) GetAllRuns(ctx context.Context, req payroll.GetRunsFilterRequest) ([]payroll.RunResponse, error) {
	return f.getAllRunsFn(ctx, req)
}
func (f *fakePayrollService) GetRunByID(ctx context.Context, id string) (payroll.RunResponse, error) {
	return f.getRunByIDFn(ctx, id)
}
func (f *fakePayrollService) Calculate(ctx context.Context, runID string) (payroll.CalculateResponse, error) {
	return f.calculateFn(ctx, runID)
}
func (f *fakePayrollService) RecalculateDraftRuns(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	return f.recalculateFn(ctx, employeeID, start, end)
}
func (f *fakePayrollService) Approve(ctx context.Context, runID, approverID string) (payroll.RunResponse, error) {
	return f.approveFn(ctx, runID, approverID)
}
func (f *fakePayrollService) Process(ctx context.Context, runID, actorID string) (payroll.RunResponse, error) {
	return f.processFn(ctx, runID, actorID)
}
func (f *fakePayrollService) DeleteRun(ctx context.Context, runID string) error {
	return f.deleteRunFn(ctx, runID)
}
func (f *fakePayrollService) GetEntryByID(ctx context.Context, id string) (payroll.EntryResponse, error) {
	return f.getEntryFn(ctx, id)
}
func (f *fakePayrollService) UpdateEntry(ctx context.Context, entryID string, req payroll.UpdateEntryRequest) (payroll.EntryResponse, error) {
	return f.updateEntryFn(ctx, entryID, req)
}
func (f *fakePayrollService) GetSummary(ctx context.Context, runID string) (payroll.SummaryResponse, error) {
	return f.getSummaryFn(ctx, runID)
}
func (f *fakePayrollService) GetEmployeePayslips(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	return f.payslipsFn(ctx, employeeID)
}

func newTestContext(method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestPayrollHandler_CreateRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		actorID := uuid.NewString()
		svc := &fakePayrollService{
			createRunFn: func(ctx context.Context, gotActor string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, 3, req.Month)
				assert.Equal(t, 2026, req.Year)
				return payroll.RunResponse{ID: uuid.NewString(), Month: 3, Year: 2026, Status: "draft"}, nil
			},
		}

		c, w := newTestContext(http.MethodPost, "/payroll/runs", `{"month":3,"year":2026}`)
		c.Set(middleware.ContextUserID, actorID)
		payroll.NewHandler(svc).CreateRun(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)
		assert.Contains(t, string(env.Data), `"status":"draft"`)
	})

	t.Run("month out of range", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/payroll/runs", `{"month":13,"year":2026}`)
		payroll.NewHandler(&fakePayrollService{}).CreateRun(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		}
	})

	t.Run("duplicate period", func(t *testing.T) {
		svc := &fakePayrollService{
			createRunFn: func(ctx context.Context, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
				return payroll.RunResponse{}, payrollerrors.ErrRunExists
			},
		}

		c, w := newTestContext(http.MethodPost, "/payroll/runs", `{"month":3,"year":2026}`)
		payroll.NewHandler(svc).CreateRun(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "CONFLICT", env.Error.Code)
		}
	})

	t.Run("releases idempotency lock", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		svc := &fakePayrollService{
			createRunFn: func(ctx context.Context, actorID string, req payroll.CreateRunRequest) (payroll.RunResponse, error) {
				return payroll.RunResponse{}, payrollerrors.ErrRunExists
			},
		}
		mock.ExpectDel("idemp:lock").SetVal(1)

		c, w := newTestContext(http.MethodPost, "/payroll/runs", `{"month":3,"year":2026}`)
		c.Set(middleware.ContextIdempotencyLockKey, "idemp:lock")
		c.Set(middleware.ContextIdempotencyCacheKey, "idemp")
		payroll.NewHandlerWithRedis(svc, rdb).CreateRun(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPayrollHandler_GetAllRuns(t *testing.T) {
	svc := &fakePayrollService{
		getAllRunsFn: func(ctx context.Context, req payroll.GetRunsFilterRequest) ([]payroll.RunResponse, error) {
			assert.Equal(t, "approved", req.Status)
			assert.Equal(t, 2026, req.Year)
			return []payroll.RunResponse{{Month: 2}, {Month: 1}}, nil
		},
	}

	c, w := newTestContext(http.MethodGet, "/payroll/runs?status=approved&year=2026&page=2&page_size=1", "")
	payroll.NewHandler(svc).GetAllRuns(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"month":1`)
	assert.NotContains(t, w.Body.String(), `"month":2`)
}

func TestPayrollHandler_GetRunByID_InvalidID(t *testing.T) {
	svc := &fakePayrollService{
		getRunByIDFn: func(ctx context.Context, id string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrInvalidRunID
		},
	}

	c, w := newTestContext(http.MethodGet, "/payroll/runs/abc", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	payroll.NewHandler(svc).GetRunByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_Calculate(t *testing.T) {
	runID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			calculateFn: func(ctx context.Context, got string) (payroll.CalculateResponse, error) {
				assert.Equal(t, runID, got)
				return payroll.CalculateResponse{RunID: got, Count: 12}, nil
			},
		}

		c, w := newTestContext(http.MethodPost, "/payroll/runs/"+runID+"/calculate", "")
		c.Params = gin.Params{{Key: "id", Value: runID}}
		payroll.NewHandler(svc).Calculate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count":12`)
	})

	t.Run("not draft", func(t *testing.T) {
		svc := &fakePayrollService{
			calculateFn: func(ctx context.Context, got string) (payroll.CalculateResponse, error) {
				return payroll.CalculateResponse{}, payrollerrors.ErrCalculateOnlyDraft
			},
		}

		c, w := newTestContext(http.MethodPost, "/payroll/runs/"+runID+"/calculate", "")
		c.Params = gin.Params{{Key: "id", Value: runID}}
		payroll.NewHandler(svc).Calculate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "INVALID_STATE", env.Error.Code)
		}
	})
}

func TestPayrollHandler_ApproveAndProcess(t *testing.T) {
	runID := uuid.NewString()
	actorID := uuid.NewString()

	svc := &fakePayrollService{
		approveFn: func(ctx context.Context, gotRun, gotActor string) (payroll.RunResponse, error) {
			assert.Equal(t, runID, gotRun)
			assert.Equal(t, actorID, gotActor)
			return payroll.RunResponse{ID: gotRun, Status: "approved"}, nil
		},
		processFn: func(ctx context.Context, gotRun, gotActor string) (payroll.RunResponse, error) {
			return payroll.RunResponse{}, payrollerrors.ErrProcessOnlyApproved
		},
	}
	h := payroll.NewHandler(svc)

	c, w := newTestContext(http.MethodPost, "/payroll/runs/"+runID+"/approve", "")
	c.Params = gin.Params{{Key: "id", Value: runID}}
	c.Set(middleware.ContextUserID, actorID)
	h.Approve(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"approved"`)

	c, w = newTestContext(http.MethodPost, "/payroll/runs/"+runID+"/process", "")
	c.Params = gin.Params{{Key: "id", Value: runID}}
	h.Process(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayrollHandler_DeleteRun_Processed(t *testing.T) {
	svc := &fakePayrollService{
		deleteRunFn: func(ctx context.Context, runID string) error {
			return payrollerrors.ErrDeleteProcessed
		},
	}

	c, w := newTestContext(http.MethodDelete, "/payroll/runs/x", "")
	c.Params = gin.Params{{Key: "id", Value: "x"}}
	payroll.NewHandler(svc).DeleteRun(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPayrollHandler_UpdateEntry(t *testing.T) {
	entryID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			updateEntryFn: func(ctx context.Context, got string, req payroll.UpdateEntryRequest) (payroll.EntryResponse, error) {
				assert.Equal(t, entryID, got)
				if assert.NotNil(t, req.LopDays) {
					assert.Equal(t, 2, *req.LopDays)
				}
				assert.Nil(t, req.Notes)
				return payroll.EntryResponse{ID: got, LopDays: 2, NetSalary: "23633.33"}, nil
			},
		}

		c, w := newTestContext(http.MethodPatch, "/payroll/entries/"+entryID, `{"lop_days":2}`)
		c.Params = gin.Params{{Key: "id", Value: entryID}}
		payroll.NewHandler(svc).UpdateEntry(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"net_salary":"23633.33"`)
	})

	t.Run("negative lop days", func(t *testing.T) {
		c, w := newTestContext(http.MethodPatch, "/payroll/entries/"+entryID, `{"lop_days":-1}`)
		c.Params = gin.Params{{Key: "id", Value: entryID}}
		payroll.NewHandler(&fakePayrollService{}).UpdateEntry(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_GetSummary(t *testing.T) {
	runID := uuid.NewString()
	svc := &fakePayrollService{
		getSummaryFn: func(ctx context.Context, got string) (payroll.SummaryResponse, error) {
			return payroll.SummaryResponse{
				RunID:     got,
				NetSalary: "49133.33",
				Departments: []payroll.DepartmentSummary{
					{Department: "Engineering", EmployeeCount: 2, NetSalary: "49133.33"},
				},
			}, nil
		},
	}

	c, w := newTestContext(http.MethodGet, "/payroll/runs/"+runID+"/summary", "")
	c.Params = gin.Params{{Key: "id", Value: runID}}
	payroll.NewHandler(svc).GetSummary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"department":"Engineering"`)
}

func TestPayrollHandler_GetMyPayslips(t *testing.T) {
	t.Run("uses employee from token", func(t *testing.T) {
		employeeID := uuid.NewString()
		svc := &fakePayrollService{
			payslipsFn: func(ctx context.Context, got string) ([]payroll.PayslipResponse, error) {
				assert.Equal(t, employeeID, got)
				return []payroll.PayslipResponse{{Month: 3, Year: 2026, NetSalaryInWords: "seventeen and 00/100"}}, nil
			},
		}

		c, w := newTestContext(http.MethodGet, "/payroll/my-payslips", "")
		c.Set(middleware.ContextEmployeeID, employeeID)
		payroll.NewHandler(svc).GetMyPayslips(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"net_salary_in_words":"seventeen and 00/100"`)
	})

	t.Run("no employee record", func(t *testing.T) {
		svc := &fakePayrollService{
			payslipsFn: func(ctx context.Context, got string) ([]payroll.PayslipResponse, error) {
				assert.Empty(t, got)
				return nil, payrollerrors.ErrNoEmployeeRecord
			},
		}

		c, w := newTestContext(http.MethodGet, "/payroll/my-payslips", "")
		payroll.NewHandler(svc).GetMyPayslips(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
