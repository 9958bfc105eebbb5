package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/domain/product"
	"loan-origination/internal/testutil/applicantmock"
	"loan-origination/internal/testutil/catalogmock"
	"loan-origination/internal/testutil/publishermock"
	"loan-origination/internal/testutil/ratelimitmock"
	"loan-origination/internal/usecase/antifraud"
	"loan-origination/internal/usecase/decision"
	"loan-origination/internal/usecase/scoring"
)

const (
	knownPhone   = "71111111111"
	unknownPhone = "79999999999"
)

func storedApplicant() *applicant.Applicant {
	return &applicant.Applicant{
		Phone: knownPhone,
		Profile: applicant.Profile{
			Age:            35,
			MonthlyIncome:  6_000_000,
			EmploymentType: applicant.EmploymentFullTime,
			HasProperty:    true,
		},
		CreditHistory: []applicant.CreditEntry{{
			LoanID:    "loan_71111111111_20250101000000",
			Amount:    3_000_000,
			IssueDate: time.Now().AddDate(0, -3, 0),
			TermDays:  30,
			Status:    applicant.CreditClosed,
			CloseDate: func() *time.Time { d := time.Now().AddDate(0, -2, 0); return &d }(),
		}},
	}
}

// testServer wires the handlers to an orchestrator backed by in-memory mocks:
// knownPhone resolves, everything else is a pioneer.
func testServer(t *testing.T) (*echo.Echo, *publishermock.Publisher) {
	t.Helper()

	repo := &applicantmock.Repo{
		GetByPhoneFn: func(_ context.Context, phone string) (*applicant.Applicant, error) {
			if phone == knownPhone {
				return storedApplicant(), nil
			}
			return nil, applicant.ErrNotFound
		},
		UpsertProfileFn: func(_ context.Context, phone string, p applicant.Profile) (*applicant.Applicant, error) {
			return &applicant.Applicant{Phone: phone, Profile: p}, nil
		},
		AppendCreditEntryFn: func(context.Context, string, *applicant.CreditEntry) error { return nil },
	}
	catalog := &catalogmock.Catalog{
		ListByFlowFn: func(_ context.Context, flow product.FlowType) ([]product.Product, error) {
			out := []product.Product{}
			for _, p := range product.DefaultCatalog() {
				if p.FlowType == flow {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
	pub := &publishermock.Publisher{}
	orch := decision.NewOrchestrator(
		repo,
		catalog,
		antifraud.NewEngine(ratelimitmock.NewCounting()),
		scoring.NewEngine(),
		pub,
	)

	e := echo.New()
	e.Validator = NewValidator()
	e.GET("/health", NewHandler().Health)
	e.POST("/api/products/select", NewProductHandler(orch).SelectProducts)
	af := NewAntifraudHandler(orch)
	e.POST("/api/antifraud/pioneer/check", af.CheckPioneer)
	e.POST("/api/antifraud/repeater/check", af.CheckRepeater)
	sc := NewScoringHandler(orch)
	e.POST("/api/scoring/pioneer", sc.SubmitPioneer)
	e.POST("/api/scoring/repeater", sc.SubmitRepeater)
	return e, pub
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func itoa(v int) string { return strconv.Itoa(v) }

func itoa64(v int64) string { return strconv.FormatInt(v, 10) }

func TestHealth(t *testing.T) {
	e, _ := testServer(t)
	rec := doJSON(t, e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]any
	decodeBody(t, rec, &body)
	if body["status"] != "ok" || body["service"] != "loan-origination" {
		t.Fatalf("body = %v", body)
	}
}
