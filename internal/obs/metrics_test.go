package obs

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordTransaction("deposit")
	m.RecordTransaction("deposit")
	m.RecordTransaction("transfer")
	m.RecordRejection("insufficient_funds")
	m.SetBalance("rick", "Adv Plus Banking - 2332", decimal.RequireFromString("150.00"))

	if got := testutil.ToFloat64(m.transactions.WithLabelValues("deposit")); got != 2 {
		t.Fatalf("deposit count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.rejections.WithLabelValues("insufficient_funds")); got != 1 {
		t.Fatalf("rejection count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.balances.WithLabelValues("rick", "Adv Plus Banking - 2332")); got != 150 {
		t.Fatalf("balance gauge = %v, want 150", got)
	}
}

func TestMetricsHandlerServes(t *testing.T) {
	m := NewMetrics()
	m.SetBuildInfo("test")
	m.RecordTransaction("withdraw")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", nil))

	if rr.Code != 200 {
		t.Fatalf("status = %d", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{"bank_transactions_total", "build_info"} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}
