package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/MoniqueRon/esim-dashboard/internal/events"
	"github.com/MoniqueRon/esim-dashboard/internal/fallback"
	"github.com/MoniqueRon/esim-dashboard/internal/nexuce"
	"github.com/MoniqueRon/esim-dashboard/internal/observability"
	apperrors "github.com/MoniqueRon/esim-dashboard/pkg/util"
)

// Origin tells the transport layer whether a result carries live provider
// data or the canned fallback.
type Origin string

const (
	OriginLive     Origin = "live"
	OriginFallback Origin = "fallback"
)

// Result is the outcome of one proxied call. Body is always valid JSON.
type Result struct {
	Origin Origin
	Body   json.RawMessage
}

// upstreamRoute describes one provider endpoint: how to call it and what to
// substitute when the call fails.
type upstreamRoute struct {
	name       string
	method     string
	path       func(id string) string
	body       any
	okStatuses []int
	mock       func(id string, query url.Values) any
}

var pagedSubscribersBody = map[string]any{
	"paging": map[string]any{
		"pageNumber": 0,
		"pageSize":   100,
	},
	"sortDir": "ASC",
	"sortBy":  "string",
}

// ESIMService proxies dashboard reads and actions to the provider portal,
// falling back to deterministic mock payloads on any upstream failure.
type ESIMService struct {
	client     *nexuce.Client
	session    *nexuce.Session
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewESIMService builds the service.
func NewESIMService(client *nexuce.Client, session *nexuce.Session, dispatcher events.Dispatcher, metrics *observability.Metrics, logger *zap.Logger) *ESIMService {
	return &ESIMService{
		client:     client,
		session:    session,
		dispatcher: dispatcher,
		metrics:    metrics,
		logger:     logger,
	}
}

// List fetches the paged subscriber roster.
func (s *ESIMService) List(ctx context.Context) (Result, error) {
	return s.proxy(ctx, upstreamRoute{
		name:       "esims_list",
		method:     http.MethodPost,
		path:       func(string) string { return "/subscribers/paged" },
		body:       pagedSubscribersBody,
		okStatuses: []int{http.StatusOK},
		mock:       func(string, url.Values) any { return fallback.ESIMList() },
	}, "", nil)
}

// Detail fetches one subscriber.
func (s *ESIMService) Detail(ctx context.Context, id string) (Result, error) {
	return s.proxy(ctx, upstreamRoute{
		name:       "esim_detail",
		method:     http.MethodGet,
		path:       func(id string) string { return "/subscriber/" + id },
		okStatuses: []int{http.StatusOK},
		mock:       func(id string, _ url.Values) any { return fallback.Detail(id) },
	}, id, nil)
}

// Location fetches the subscriber's current location.
func (s *ESIMService) Location(ctx context.Context, id string) (Result, error) {
	return s.proxy(ctx, upstreamRoute{
		name:       "esim_location",
		method:     http.MethodGet,
		path:       func(id string) string { return "/subscriber/" + id + "/location" },
		okStatuses: []int{http.StatusOK},
		mock:       func(id string, _ url.Values) any { return fallback.Location(id) },
	}, id, nil)
}

// Usage fetches usage statistics, forwarding the optional date range.
func (s *ESIMService) Usage(ctx context.Context, id, startDate, endDate string) (Result, error) {
	query := url.Values{}
	if startDate != "" {
		query.Set("startDate", startDate)
	}
	if endDate != "" {
		query.Set("endDate", endDate)
	}

	return s.proxy(ctx, upstreamRoute{
		name:       "esim_usage",
		method:     http.MethodGet,
		path:       func(id string) string { return "/subscriber/" + id + "/usage" },
		okStatuses: []int{http.StatusOK},
		mock: func(id string, q url.Values) any {
			return fallback.Usage(id, q.Get("startDate"), q.Get("endDate"))
		},
	}, id, query)
}

// Credit fetches the account balance.
func (s *ESIMService) Credit(ctx context.Context) (Result, error) {
	return s.proxy(ctx, upstreamRoute{
		name:       "account_credit",
		method:     http.MethodGet,
		path:       func(string) string { return "/account/balance" },
		okStatuses: []int{http.StatusOK},
		mock:       func(string, url.Values) any { return fallback.Credit() },
	}, "", nil)
}

// Activate requests activation of a subscriber.
func (s *ESIMService) Activate(ctx context.Context, id string) (Result, error) {
	result, err := s.proxy(ctx, upstreamRoute{
		name:       "esim_activate",
		method:     http.MethodPost,
		path:       func(id string) string { return "/subscriber/" + id + "/activate" },
		okStatuses: []int{http.StatusOK, http.StatusCreated},
		mock:       func(id string, _ url.Values) any { return fallback.ActivateAck(id) },
	}, id, nil)
	if err != nil {
		return result, err
	}
	s.publishAction(ctx, events.EventESIMActivated, id, "activate", result.Origin)
	return result, nil
}

// Suspend requests suspension of a subscriber.
func (s *ESIMService) Suspend(ctx context.Context, id string) (Result, error) {
	result, err := s.proxy(ctx, upstreamRoute{
		name:       "esim_suspend",
		method:     http.MethodPost,
		path:       func(id string) string { return "/subscriber/" + id + "/suspend" },
		okStatuses: []int{http.StatusOK, http.StatusCreated},
		mock:       func(id string, _ url.Values) any { return fallback.SuspendAck(id) },
	}, id, nil)
	if err != nil {
		return result, err
	}
	s.publishAction(ctx, events.EventESIMSuspended, id, "suspend", result.Origin)
	return result, nil
}

// proxy performs the shared call-or-fallback flow. A proxied call is never
// attempted without a provider token; failures past that point are swallowed
// and replaced with the route's mock payload.
func (s *ESIMService) proxy(ctx context.Context, route upstreamRoute, id string, query url.Values) (Result, error) {
	token := s.session.Token()
	if token == "" {
		return Result{}, apperrors.NewForbidden("not authenticated with provider")
	}

	body, err := s.client.Do(ctx, route.method, route.path(id), query, route.body, token, route.okStatuses...)
	if err == nil {
		return Result{Origin: OriginLive, Body: body}, nil
	}

	s.logger.Warn("provider call failed, serving fallback",
		zap.String("route", route.name),
		zap.Error(err),
	)
	s.metrics.RecordFallback(route.name)
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         events.EventFallbackServed,
		SubscriberID: id,
		Timestamp:    time.Now(),
		Payload:      events.FallbackServedPayload{Route: route.name, Reason: err.Error()},
	})

	mock, mErr := json.Marshal(route.mock(id, query))
	if mErr != nil {
		return Result{}, apperrors.NewInternalError(mErr)
	}
	return Result{Origin: OriginFallback, Body: mock}, nil
}

func (s *ESIMService) publishAction(ctx context.Context, eventType events.EventType, id, action string, origin Origin) {
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:           uuid.NewString(),
		Type:         eventType,
		SubscriberID: id,
		Timestamp:    time.Now(),
		Payload:      events.ESIMActionPayload{Action: action, Origin: string(origin)},
	})
}
