package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestFireResult_SafeFinalValue(t *testing.T) {
	var nilResult *FireResult
	assert.Zero(t, nilResult.SafeFinalValue())
	assert.Zero(t, (&FireResult{}).SafeFinalValue())

	est := &FireResult{FinalEstimatedValue: f64(500000)}
	assert.Equal(t, 500000.0, est.SafeFinalValue())

	exact := &FireResult{FinalValue: f64(750000), FinalEstimatedValue: f64(500000)}
	assert.Equal(t, 750000.0, exact.SafeFinalValue(), "exact value wins over the estimate")
}

func TestFireResult_OmitsAbsentFields(t *testing.T) {
	reached := true
	out, err := json.Marshal(&FireResult{Reached: &reached, YearsSimulated: new(int)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"reached":true,"years_simulated":0}`, string(out),
		"present-but-zero fields must survive, absent fields must vanish")
}
