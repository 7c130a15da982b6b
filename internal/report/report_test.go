package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veracify/analysis-cli/internal/model"
)

func section(t *testing.T, out map[string]any, key string) map[string]any {
	t.Helper()
	sec, ok := out[key].(map[string]any)
	require.True(t, ok, "missing section %q", key)
	return sec
}

func TestDerive_EmptyInputProducesAllSections(t *testing.T) {
	out := Derive(model.Input{Raw: model.RawFeatures{}.Sanitize()}, Options{})

	for _, key := range []string{"rsl", "cff", "rc", "rfs"} {
		sec := section(t, out, key)
		assert.NotEmpty(t, sec, "section %q", key)
		assert.NotContains(t, sec, "error")
	}

	rslSec := section(t, out, "rsl")
	assert.Contains(t, rslSec, "level")
	assert.Contains(t, rslSec, "fri")

	rfsSec := section(t, out, "rfs")
	assert.Contains(t, rfsSec, "style")
}

func TestDerive_RoleValidationFailureIsolatedToRFS(t *testing.T) {
	in := model.Input{
		Raw: model.RawFeatures{}.Sanitize(),
		RoleConfigs: []model.RoleConfig{
			{Name: "broken", Group: "data_science", Weights: map[string]float64{"flow": 0.3}},
		},
	}

	out := Derive(in, Options{})

	rfsSec := section(t, out, "rfs")
	errMsg, ok := rfsSec["error"].(string)
	require.True(t, ok)
	assert.Contains(t, errMsg, "weights sum")

	// The other sections are unaffected.
	assert.NotContains(t, section(t, out, "rsl"), "error")
	assert.NotContains(t, section(t, out, "cff"), "error")
	assert.NotContains(t, section(t, out, "rc"), "error")
}

func TestDeriveJSON(t *testing.T) {
	out, err := DeriveJSON([]byte(`{"analysis_input":{"raw_features":{"units":10,"claims":4}}}`), Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "rsl")

	_, err = DeriveJSON([]byte(`{not json`), Options{})
	assert.ErrorContains(t, err, "parse input")
}

func TestStampMeta(t *testing.T) {
	meta := NewMeta("en", "https://veracify.io/verify/")
	_, err := uuid.Parse(meta.VerificationID)
	require.NoError(t, err)
	_, err = time.Parse(time.RFC3339, meta.GeneratedAt)
	require.NoError(t, err)
	assert.Equal(t, "https://veracify.io/verify/"+meta.VerificationID, meta.VerifyURL)
	assert.Equal(t, "en", meta.Language)

	out := Stamp(map[string]any{"rsl": map[string]any{}}, meta)
	metaSec, ok := out["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, meta.VerificationID, metaSec["verification_id"])
}
