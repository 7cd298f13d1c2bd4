package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(PortalOperations.WithLabelValues("dashboard", "success"))
	IncrementPortalOperation("dashboard", "success")
	assert.Equal(t, before+1, testutil.ToFloat64(PortalOperations.WithLabelValues("dashboard", "success")))

	before = testutil.ToFloat64(CacheLookups.WithLabelValues("categories", "hit"))
	IncrementCacheLookup("categories", "hit")
	assert.Equal(t, before+1, testutil.ToFloat64(CacheLookups.WithLabelValues("categories", "hit")))

	IncrementEventPublished("communication.added", "success")
	assert.GreaterOrEqual(t, testutil.ToFloat64(EventsPublished.WithLabelValues("communication.added", "success")), 1.0)
}

func TestRecordHTTPRequestDuration(t *testing.T) {
	RecordHTTPRequestDuration("GET", "/health", "200", 5*time.Millisecond)
	assert.GreaterOrEqual(t, testutil.CollectAndCount(HTTPRequestDuration), 1)
}
