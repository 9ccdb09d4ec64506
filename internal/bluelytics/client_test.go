package bluelytics_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/santiagopugliese/personal-finances/config"
	"github.com/santiagopugliese/personal-finances/internal/bluelytics"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *bluelytics.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return bluelytics.NewClient(config.RatesConfig{
		BluelyticsURL: server.URL,
		FetchTimeout:  2 * time.Second,
	})
}

func TestClientFetchSellRate(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Errorf("missing Accept header")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"oficial": {"value_avg": 1000, "value_sell": 1010, "value_buy": 990},
			"blue": {"value_avg": 1195.5, "value_sell": 1200.50, "value_buy": 1190.5},
			"last_update": "2026-08-28T10:00:00-03:00"
		}`))
	})

	got, err := client.FetchSellRate(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("1200.50")) {
		t.Fatalf("expected 1200.50, got %s", got)
	}
}

func TestClientFetchSellRateHTTPError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if _, err := client.FetchSellRate(context.Background()); err == nil {
		t.Fatal("expected an error for non-200 status")
	}
}

func TestClientFetchSellRateMissingBlue(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oficial": {"value_sell": 1010}}`))
	})

	if _, err := client.FetchSellRate(context.Background()); err == nil {
		t.Fatal("expected an error when blue.value_sell is absent")
	}
}

func TestClientFetchSellRateMalformedBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	if _, err := client.FetchSellRate(context.Background()); err == nil {
		t.Fatal("expected a decode error")
	}
}
