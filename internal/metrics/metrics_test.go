package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, ImportAcceptedTotal)
	assert.NotNil(t, ImportSkippedTotal)
	assert.NotNil(t, ImportFailuresTotal)
	assert.NotNil(t, ImportDuration)
	assert.NotNil(t, ImportSchemaFallbacksTotal)
	assert.NotNil(t, ExtractionDuration)
	assert.NotNil(t, ExtractionFailuresTotal)
	assert.NotNil(t, QueueDepth)
	assert.NotNil(t, VisionAPICallsTotal)
	assert.NotNil(t, VisionDailyUsage)
	assert.NotNil(t, VisionDailyLimitHits)
}
