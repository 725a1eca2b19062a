package route

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/padocadigital/gestao-padaria/internal/adapter/api/controller"
	"github.com/padocadigital/gestao-padaria/internal/domain/settlement"
	"github.com/padocadigital/gestao-padaria/internal/domain/user"
	"github.com/padocadigital/gestao-padaria/pkg/auth"
	"github.com/shopspring/decimal"
)

type fakeSettlementRunner struct {
	runs int
}

func (f *fakeSettlementRunner) Run(ctx context.Context, date time.Time) (*settlement.Summary, error) {
	f.runs++
	return &settlement.Summary{
		Date: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Result: settlement.Result{
			Repasse:     decimal.Zero,
			TotalVendas: decimal.Zero,
		},
	}, nil
}

func testToken(t *testing.T) string {
	t.Helper()

	svc, err := auth.NewJWTService()
	if err != nil {
		t.Fatalf("NewJWTService falhou: %v", err)
	}

	token, err := svc.GenerateToken(&user.User{
		ID:          "user-1",
		InstituteID: "inst-1",
		Email:       "maria@example.com",
		Name:        "Maria",
		Role:        user.RoleManager,
		Status:      user.StatusActive,
	})
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}
	return token
}

// O fechamento atende GET e POST: agendadores externos só sabem disparar
// requisições GET
func TestSettlementRouteAcceptsGetAndPost(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	gin.SetMode(gin.TestMode)
	router := gin.New()

	runner := &fakeSettlementRunner{}
	log := nopLogger{}
	SetupSettlementRoutes(router.Group("/api/v1"), controller.NewSettlementController(runner, log))

	token := testToken(t)

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		req := httptest.NewRequest(method, "/api/v1/settlements/daily?date=2025-03-15", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s: esperava status 200, obteve %d: %s", method, rec.Code, rec.Body)
		}
	}

	if runner.runs != 2 {
		t.Errorf("esperava 2 execuções do fechamento, obteve %d", runner.runs)
	}
}

// O fechamento usa a identidade configurada por ambiente; o cabeçalho
// institute-id não é exigido na rota
func TestSettlementRouteDoesNotRequireInstituteHeader(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "segredo-de-teste")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupSettlementRoutes(router.Group("/api/v1"), controller.NewSettlementController(&fakeSettlementRunner{}, nopLogger{}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settlements/daily?date=2025-03-15", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("sem cabeçalho institute-id: esperava status 200, obteve %d: %s", rec.Code, rec.Body)
	}
}

type nopLogger struct{}

func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
