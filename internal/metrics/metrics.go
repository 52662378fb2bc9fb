package metrics

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "outfit-advisor"

// Counter names recorded by the service.
const (
	HTTPRequests       = "http_requests_total"
	HTTPErrors         = "http_requests_errors_total"
	SchemesExtracted   = "outfit_schemes_extracted_total"
	SchemesSynthesized = "outfit_schemes_synthesized_total"
	SchemesDuplicate   = "outfit_schemes_duplicate_total"
	WeatherFetches     = "weather_fetch_total"
	LLMCompletions     = "llm_completions_total"
)

// Registry keeps an in-process copy of every counter for the /metrics
// endpoint and records each increment on the global OTel meter.
type Registry struct {
	mu       sync.RWMutex
	values   map[string]*atomic.Int64
	meter    metric.Meter
	counters map[string]metric.Int64Counter
}

func NewRegistry() *Registry {
	return &Registry{
		values:   make(map[string]*atomic.Int64),
		meter:    otel.GetMeterProvider().Meter(meterName),
		counters: make(map[string]metric.Int64Counter),
	}
}

// seriesKey renders name{k=v,...} with labels sorted by key.
func seriesKey(name string, labels map[string]string) string {
	if len(labels) == 0 {
		return name
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+labels[k])
	}
	return name + "{" + strings.Join(parts, ",") + "}"
}

// Inc adds n to the series identified by name and labels. A nil Registry
// is a no-op so callers can leave metrics unwired.
func (r *Registry) Inc(ctx context.Context, name string, labels map[string]string, n int64) {
	if r == nil {
		return
	}
	r.value(seriesKey(name, labels)).Add(n)

	if inst := r.instrument(name); inst != nil {
		attrs := make([]attribute.KeyValue, 0, len(labels))
		for k, v := range labels {
			attrs = append(attrs, attribute.String(k, v))
		}
		inst.Add(ctx, n, metric.WithAttributes(attrs...))
	}
}

func (r *Registry) value(key string) *atomic.Int64 {
	r.mu.RLock()
	v := r.values[key]
	r.mu.RUnlock()
	if v != nil {
		return v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v = r.values[key]; v == nil {
		v = new(atomic.Int64)
		r.values[key] = v
	}
	return v
}

func (r *Registry) instrument(name string) metric.Int64Counter {
	r.mu.RLock()
	inst, ok := r.counters[name]
	r.mu.RUnlock()
	if ok {
		return inst
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if inst, ok = r.counters[name]; !ok {
		inst, _ = r.meter.Int64Counter(name)
		r.counters[name] = inst
	}
	return inst
}

// Snapshot returns the current value of every series.
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64)
	if r == nil {
		return out
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for k, v := range r.values {
		out[k] = v.Load()
	}
	return out
}

// Handler serves the snapshot as JSON.
func (r *Registry) Handler(c echo.Context) error {
	return c.JSON(http.StatusOK, r.Snapshot())
}

// StatusClass buckets an HTTP status code as 2xx, 4xx and so on.
func StatusClass(code int) string {
	if code < 100 || code > 599 {
		return "0"
	}
	return string(rune('0'+code/100)) + "xx"
}
