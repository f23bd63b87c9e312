package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/MoniqueRon/esim-dashboard/internal/config"
	"github.com/MoniqueRon/esim-dashboard/internal/events"
	"github.com/MoniqueRon/esim-dashboard/internal/nexuce"
	"github.com/MoniqueRon/esim-dashboard/internal/observability"
	apperrors "github.com/MoniqueRon/esim-dashboard/pkg/util"
)

func newESIMService(t *testing.T, providerToken string, upstream http.HandlerFunc) (*ESIMService, *observability.Metrics, *int64) {
	t.Helper()

	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		upstream(w, r)
	}))
	t.Cleanup(server.Close)

	session := nexuce.NewSession()
	if providerToken != "" {
		session.Set(providerToken)
	}
	client := nexuce.NewClient(config.NexuceConfig{BaseURL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
	metrics := observability.NewMetrics()
	svc := NewESIMService(client, session, events.NewInMemoryDispatcher(), metrics, zap.NewNop())
	return svc, metrics, &calls
}

func TestProxyForbiddenWithoutProviderToken(t *testing.T) {
	svc, _, calls := newESIMService(t, "", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := svc.List(context.Background())
	if err == nil {
		t.Fatal("expected error when no provider token is held")
	}
	if status := apperrors.ToDomainError(err).HTTPStatus; status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", status)
	}
	if atomic.LoadInt64(calls) != 0 {
		t.Errorf("upstream called %d times, want 0", atomic.LoadInt64(calls))
	}
}

func TestListPassesThroughLiveData(t *testing.T) {
	live := `[{"subscriberId":"REAL001"}]`
	svc, _, _ := newESIMService(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/subscribers/paged" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		var payload struct {
			Paging struct {
				PageNumber int `json:"pageNumber"`
				PageSize   int `json:"pageSize"`
			} `json:"paging"`
			SortDir string `json:"sortDir"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode paging body: %v", err)
		}
		if payload.Paging.PageSize != 100 || payload.SortDir != "ASC" {
			t.Errorf("paging body = %+v", payload)
		}
		_, _ = w.Write([]byte(live))
	})

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Origin != OriginLive {
		t.Errorf("origin = %q, want live", result.Origin)
	}
	if string(result.Body) != live {
		t.Errorf("body = %s, want verbatim pass-through", result.Body)
	}

	// Repeated identical calls against a stable upstream return identical bodies.
	again, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("second List: %v", err)
	}
	if string(again.Body) != string(result.Body) {
		t.Errorf("repeated call body = %s, want %s", again.Body, result.Body)
	}
}

func TestListFallsBackOnUpstreamError(t *testing.T) {
	svc, metrics, _ := newESIMService(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Origin != OriginFallback {
		t.Errorf("origin = %q, want fallback", result.Origin)
	}

	var list []map[string]any
	if err := json.Unmarshal(result.Body, &list); err != nil {
		t.Fatalf("fallback body is not a JSON array: %v", err)
	}
	if len(list) != 3 || list[0]["subscriberId"] != "SUB001" {
		t.Errorf("fallback list = %v", list)
	}
	if metrics.FallbackCount("esims_list") != 1 {
		t.Errorf("fallback count = %d, want 1", metrics.FallbackCount("esims_list"))
	}
}

func TestUsageFallbackEchoesRequestedPeriod(t *testing.T) {
	svc, _, _ := newESIMService(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("startDate") != "2025-06-01" || r.URL.Query().Get("endDate") != "2025-07-01" {
			t.Errorf("query = %v", r.URL.Query())
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	result, err := svc.Usage(context.Background(), "SUB001", "2025-06-01", "2025-07-01")
	if err != nil {
		t.Fatalf("Usage: %v", err)
	}
	if result.Origin != OriginFallback {
		t.Fatalf("origin = %q, want fallback", result.Origin)
	}

	var report struct {
		SubscriberID string `json:"subscriberId"`
		Period       struct {
			StartDate string `json:"startDate"`
			EndDate   string `json:"endDate"`
		} `json:"period"`
	}
	if err := json.Unmarshal(result.Body, &report); err != nil {
		t.Fatalf("decode fallback body: %v", err)
	}
	if report.SubscriberID != "SUB001" {
		t.Errorf("subscriberId = %q", report.SubscriberID)
	}
	if report.Period.StartDate != "2025-06-01" || report.Period.EndDate != "2025-07-01" {
		t.Errorf("period = %+v", report.Period)
	}
}

func TestSuspendPassesThrough201(t *testing.T) {
	svc, _, _ := newESIMService(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/subscriber/SUB001/suspend" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"result":"ok"}`))
	})

	result, err := svc.Suspend(context.Background(), "SUB001")
	if err != nil {
		t.Fatalf("Suspend: %v", err)
	}
	if result.Origin != OriginLive {
		t.Errorf("origin = %q, want live", result.Origin)
	}
	if string(result.Body) != `{"result":"ok"}` {
		t.Errorf("body = %s, want verbatim pass-through", result.Body)
	}
}

func TestActivateFallbackReportsSyntheticStatus(t *testing.T) {
	svc, _, _ := newESIMService(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	result, err := svc.Activate(context.Background(), "SUB001")
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if result.Origin != OriginFallback {
		t.Fatalf("origin = %q, want fallback", result.Origin)
	}

	var ack struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(result.Body, &ack); err != nil {
		t.Fatalf("decode ack: %v", err)
	}
	if ack.Status != "activated" {
		t.Errorf("status = %q, want activated", ack.Status)
	}
}

func TestDetailFallsBackOnTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	session := nexuce.NewSession()
	session.Set("tok")
	client := nexuce.NewClient(config.NexuceConfig{BaseURL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
	svc := NewESIMService(client, session, events.NewInMemoryDispatcher(), observability.NewMetrics(), zap.NewNop())
	server.Close()

	result, err := svc.Detail(context.Background(), "SUB001")
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if result.Origin != OriginFallback {
		t.Errorf("origin = %q, want fallback", result.Origin)
	}

	var detail map[string]any
	if err := json.Unmarshal(result.Body, &detail); err != nil {
		t.Fatalf("decode fallback detail: %v", err)
	}
	if detail["subscriberId"] != "SUB001" {
		t.Errorf("subscriberId = %v", detail["subscriberId"])
	}
}

func TestCreditFallbackShape(t *testing.T) {
	svc, _, _ := newESIMService(t, "tok", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	result, err := svc.Credit(context.Background())
	if err != nil {
		t.Fatalf("Credit: %v", err)
	}

	var credit map[string]any
	if err := json.Unmarshal(result.Body, &credit); err != nil {
		t.Fatalf("decode credit: %v", err)
	}
	for _, key := range []string{"accountId", "balance", "lastTopUp", "monthlySpend", "alerts"} {
		if _, ok := credit[key]; !ok {
			t.Errorf("credit payload missing %q", key)
		}
	}
}
