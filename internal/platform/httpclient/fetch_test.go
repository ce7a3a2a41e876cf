package httpclient_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/identifiers/internal/platform/httpclient"
	"github.com/jsamuelsen11/identifiers/internal/platform/telemetry"
)

const page = `<html><body>See <a href="https://doi.org/10.1038/nplants.2015.3">10.1038/nplants.2015.3</a>.</body></html>`

func serve(t *testing.T, contentType, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_ReturnsBody(t *testing.T) {
	t.Parallel()

	srv := serve(t, "text/html; charset=utf-8", page)
	client := httpclient.New(testConfig(), nil, testLogger())

	got, err := client.Fetch(context.Background(), srv.URL+"/article")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != page {
		t.Errorf("Fetch() = %q, want the page body", got)
	}
}

func TestFetch_AcceptedContentTypes(t *testing.T) {
	t.Parallel()

	for _, ct := range []string{"", "text/plain", "application/json", "application/vnd.citationstyles.csl+json", "application/x-bibtex"} {
		t.Run(ct, func(t *testing.T) {
			t.Parallel()

			srv := serve(t, ct, "10.1234/abc")
			client := httpclient.New(testConfig(), nil, testLogger())

			if _, err := client.Fetch(context.Background(), srv.URL); err != nil {
				t.Errorf("Fetch() error = %v, want nil for %q", err, ct)
			}
		})
	}
}

func TestFetch_UnsupportedContentType(t *testing.T) {
	t.Parallel()

	srv := serve(t, "image/png", "\x89PNG")
	client := httpclient.New(testConfig(), nil, testLogger())

	_, err := client.Fetch(context.Background(), srv.URL+"/figure.png")
	if !errors.Is(err, httpclient.ErrUnsupportedContent) {
		t.Errorf("Fetch() error = %v, want ErrUnsupportedContent", err)
	}
}

func TestFetch_BodyTooLarge(t *testing.T) {
	t.Parallel()

	big := strings.Repeat("x", 2<<10)

	tests := []struct {
		name    string
		chunked bool
	}{
		{name: "declared length", chunked: false},
		{name: "chunked", chunked: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				if tt.chunked {
					// Flushing before the body forces chunked encoding.
					w.(http.Flusher).Flush()
				}
				_, _ = w.Write([]byte(big))
			}))
			t.Cleanup(srv.Close)

			client := httpclient.New(testConfig(), nil, testLogger())

			_, err := client.Fetch(context.Background(), srv.URL)
			if !errors.Is(err, httpclient.ErrBodyTooLarge) {
				t.Errorf("Fetch() error = %v, want ErrBodyTooLarge", err)
			}
		})
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	client := httpclient.New(testConfig(), nil, testLogger())

	_, err := client.Fetch(context.Background(), srv.URL+"/gone")

	var serr *httpclient.StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("Fetch() error = %v, want *StatusError", err)
	}
	if serr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want %d", serr.StatusCode, http.StatusNotFound)
	}
}

func TestFetch_BlocksPrivateAddresses(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig()
	cfg.AllowPrivateNetworks = false
	client := httpclient.New(cfg, nil, testLogger())

	_, err := client.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, httpclient.ErrBlockedAddress) {
		t.Errorf("Fetch() error = %v, want ErrBlockedAddress", err)
	}
	if hits.Load() != 0 {
		t.Errorf("server hits = %d, want 0", hits.Load())
	}
}

func TestFetch_RecordsClientMetrics(t *testing.T) {
	t.Parallel()

	reader := metric.NewManualReader()
	mp := metric.NewMeterProvider(metric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	metrics, err := telemetry.NewMetrics(mp, "identifiers-test")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	srv := serve(t, "text/plain", "10.1234/abc")
	client := httpclient.New(testConfig(), metrics, testLogger())

	if _, err := client.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.client.request.total" {
				continue
			}
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	if total != 1 {
		t.Errorf("http.client.request.total = %d, want 1", total)
	}
}
