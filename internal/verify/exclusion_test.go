package verify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExclusionHoldsTo100000(t *testing.T) {
	report, err := Exclusion(context.Background(), 2, 100000)
	require.NoError(t, err)

	assert.True(t, report.Holds)
	assert.Equal(t, int64(99999), report.Checked)
	assert.Equal(t, int64(2), report.From)
	assert.Equal(t, int64(100000), report.To)
}

func TestExclusionSingleValue(t *testing.T) {
	report, err := Exclusion(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.True(t, report.Holds)
	assert.Equal(t, int64(1), report.Checked)
}

func TestExclusionRejectsBadRanges(t *testing.T) {
	_, err := Exclusion(context.Background(), 1, 10)
	assert.Error(t, err, "identity only holds from n = 2")

	_, err = Exclusion(context.Background(), 10, 5)
	assert.Error(t, err)
}

func TestExclusionCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Exclusion(ctx, 2, 1000000)
	assert.ErrorIs(t, err, context.Canceled)
}
