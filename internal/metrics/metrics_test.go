package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/toys/{id}", "200"))

	RecordHTTPRequest("GET", "/toys/{id}", "200", 12*time.Millisecond)

	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/toys/{id}", "200"))
	if after-before != 1 {
		t.Errorf("request counter delta = %v, want 1", after-before)
	}
}

func TestRecordDBOperationCountsErrors(t *testing.T) {
	errCounter := DBOperationErrors.WithLabelValues("allToys", "find")
	before := testutil.ToFloat64(errCounter)

	RecordDBOperation("allToys", "find", time.Millisecond, nil)
	RecordDBOperation("allToys", "find", time.Millisecond, errors.New("boom"))

	if delta := testutil.ToFloat64(errCounter) - before; delta != 1 {
		t.Errorf("error counter delta = %v, want 1", delta)
	}
}
