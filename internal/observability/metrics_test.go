package observability

import (
	"testing"
	"time"
)

func TestMetrics_RecordRequest(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/products", "GET", 200, 5*time.Millisecond)
	metrics.RecordRequest("/products", "GET", 200, 7*time.Millisecond)
	metrics.RecordRequest("/products", "GET", 500, time.Millisecond)

	if got := metrics.RequestTotal("/products", "GET", 200); got != 2 {
		t.Fatalf("expected 2 successful requests, got %d", got)
	}
	if got := metrics.RequestTotal("/products", "GET", 500); got != 1 {
		t.Fatalf("expected 1 failed request, got %d", got)
	}
	if got := metrics.RequestTotal("/products", "POST", 200); got != 0 {
		t.Fatalf("expected 0 for unseen key, got %d", got)
	}
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/x", "GET", 200, 0)
	metrics.RecordError("/x", "GET", "INTERNAL_ERROR")
	if got := metrics.RequestTotal("/x", "GET", 200); got != 0 {
		t.Fatalf("nil metrics must report zero, got %d", got)
	}
}
