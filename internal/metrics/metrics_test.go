package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveClassification(t *testing.T) {
	counter := ClassificationsTotal.WithLabelValues("api", "Moderate")
	before := testutil.ToFloat64(counter)

	ObserveClassification("api", "Moderate", 63)
	ObserveClassification("api", "Moderate", 55.5)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
