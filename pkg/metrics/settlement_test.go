package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestSettlementMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewSettlementMetrics(reg)
	op := "make_sale"

	metrics.ObserveDuration(op, 250*time.Millisecond)
	metrics.IncSuccess(op)
	metrics.IncFailure(op, "insufficient_funds")
	metrics.IncRetry()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "settlement_success_total", "operation", op); err != nil {
		t.Fatalf("fetch success: %v", err)
	} else if got != 1 {
		t.Fatalf("expected success=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "settlement_failure_total", "operation", op); err != nil {
		t.Fatalf("fetch failure: %v", err)
	} else if got != 1 {
		t.Fatalf("expected failure=1, got %f", got)
	}
	if got, err := fetchCounterValue(mfs, "settlement_tx_retries_total", "", ""); err != nil {
		t.Fatalf("fetch retries: %v", err)
	} else if got != 1 {
		t.Fatalf("expected retries=1, got %f", got)
	}

	found := false
	for _, mf := range mfs {
		if mf.GetName() == "settlement_duration_seconds" {
			found = true
			for _, m := range mf.GetMetric() {
				if m.GetHistogram().GetSampleCount() != 1 {
					t.Fatalf("expected one duration sample, got %d", m.GetHistogram().GetSampleCount())
				}
			}
		}
	}
	if !found {
		t.Fatal("duration histogram not exported")
	}
}

func TestNilBackedMetricsAreSafe(t *testing.T) {
	metrics := NewSettlementMetrics(nil)
	metrics.ObserveDuration("make_sale", time.Second)
	metrics.IncSuccess("make_sale")
	metrics.IncFailure("make_sale", "conflict")
	metrics.IncRetry()

	var zero *SettlementMetrics
	zero.IncSuccess("make_sale")
	zero.IncRetry()
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, labelKey, labelValue string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelKey == "" {
				return m.GetCounter().GetValue(), nil
			}
			for _, lp := range m.GetLabel() {
				if lp.GetName() == labelKey && lp.GetValue() == labelValue {
					return m.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %s with %s=%s not found", name, labelKey, labelValue)
}
