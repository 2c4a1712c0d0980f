package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordTransferCountsItems(t *testing.T) {
	before := testutil.ToFloat64(transferItemsTotal.WithLabelValues("copy", "failure"))
	RecordTransfer("copy", 3, 2, 10*time.Millisecond)
	after := testutil.ToFloat64(transferItemsTotal.WithLabelValues("copy", "failure"))
	if after-before != 2 {
		t.Fatalf("expected 2 failures recorded, got %v", after-before)
	}
}

func TestRecordListOnlyCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(listErrorsTotal.WithLabelValues("not found"))
	RecordList(time.Millisecond, "")
	RecordList(time.Millisecond, "not found")
	after := testutil.ToFloat64(listErrorsTotal.WithLabelValues("not found"))
	if after-before != 1 {
		t.Fatalf("expected one error recorded, got %v", after-before)
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	RecordNavigation()
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	if !strings.Contains(rec.Body.String(), "rfm_navigations_total") {
		t.Fatalf("metrics output missing navigation counter")
	}
}
