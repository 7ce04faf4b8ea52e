package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveOperationIncrementsCounters(t *testing.T) {
	before := testutil.ToFloat64(operationTotal.WithLabelValues("encapsulate", OutcomeSuccess))

	ObserveOperation("encapsulate", time.Now(), nil)

	after := testutil.ToFloat64(operationTotal.WithLabelValues("encapsulate", OutcomeSuccess))
	if after != before+1 {
		t.Fatalf("operation_total{operation=encapsulate,outcome=success} = %v, want %v", after, before+1)
	}
}

func TestObserveOperationRecordsErrorOutcome(t *testing.T) {
	before := testutil.ToFloat64(operationTotal.WithLabelValues("decapsulate", OutcomeError))

	ObserveOperation("decapsulate", time.Now(), fmt.Errorf("boom"))

	after := testutil.ToFloat64(operationTotal.WithLabelValues("decapsulate", OutcomeError))
	if after != before+1 {
		t.Fatalf("operation_total{operation=decapsulate,outcome=error} = %v, want %v", after, before+1)
	}
}
