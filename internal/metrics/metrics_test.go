package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePosting(t *testing.T) {
	before := testutil.ToFloat64(PostingsTotal.WithLabelValues("EXPENSE", OutcomeOK))

	ObservePosting("EXPENSE", OutcomeOK, 5*time.Millisecond)
	ObservePosting("EXPENSE", OutcomeOK, 7*time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(PostingsTotal.WithLabelValues("EXPENSE", OutcomeOK)))
}

func TestObservePosting_UnknownType(t *testing.T) {
	before := testutil.ToFloat64(PostingsTotal.WithLabelValues("unknown", OutcomeInvalid))

	ObservePosting("", OutcomeInvalid, time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(PostingsTotal.WithLabelValues("unknown", OutcomeInvalid)))
}
