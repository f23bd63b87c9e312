package nexuce

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"go.uber.org/zap"

	"github.com/MoniqueRon/esim-dashboard/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.NexuceConfig{
		BaseURL:        server.URL,
		TimeoutSeconds: 5,
	}, zap.NewNop())
}

func TestAuthenticateReturnsJWT(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth" {
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		var payload map[string]string
		if err := json.Unmarshal(body, &payload); err != nil {
			t.Fatalf("bad auth payload: %v", err)
		}
		if payload["userName"] != "prov-user" || payload["password"] != "prov-pass" {
			t.Errorf("auth payload = %v", payload)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"jwt": "abc"})
	})

	token, err := client.Authenticate(context.Background(), "prov-user", "prov-pass")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if token != "abc" {
		t.Errorf("token = %q, want %q", token, "abc")
	}
}

func TestAuthenticateRejectsNon200(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if _, err := client.Authenticate(context.Background(), "u", "p"); err == nil {
		t.Fatal("expected error for 401 auth response")
	}
}

func TestDoCarriesBearerToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer tok")
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	body, err := client.Do(context.Background(), http.MethodGet, "/subscriber/SUB001", nil, nil, "tok", http.StatusOK)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %s", body)
	}
}

func TestDoForwardsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("startDate") != "2025-06-01" {
			t.Errorf("startDate = %q", r.URL.Query().Get("startDate"))
		}
		_, _ = w.Write([]byte(`{}`))
	})

	query := url.Values{}
	query.Set("startDate", "2025-06-01")
	if _, err := client.Do(context.Background(), http.MethodGet, "/subscriber/SUB001/usage", query, nil, "tok", http.StatusOK); err != nil {
		t.Fatalf("Do: %v", err)
	}
}

func TestDoStatusAcceptance(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		okStatuses []int
		wantErr    bool
	}{
		{"200 accepted", http.StatusOK, []int{http.StatusOK}, false},
		{"201 accepted for actions", http.StatusCreated, []int{http.StatusOK, http.StatusCreated}, false},
		{"201 rejected for reads", http.StatusCreated, []int{http.StatusOK}, true},
		{"500 rejected", http.StatusInternalServerError, []int{http.StatusOK}, true},
		{"404 rejected", http.StatusNotFound, []int{http.StatusOK}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{}`))
			})

			_, err := client.Do(context.Background(), http.MethodPost, "/subscriber/SUB001/activate", nil, nil, "tok", tt.okStatuses...)
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDoReportsTransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := NewClient(config.NexuceConfig{BaseURL: server.URL, TimeoutSeconds: 5}, zap.NewNop())
	server.Close()

	if _, err := client.Do(context.Background(), http.MethodGet, "/account/balance", nil, nil, "tok", http.StatusOK); err == nil {
		t.Fatal("expected error when upstream is unreachable")
	}
}
