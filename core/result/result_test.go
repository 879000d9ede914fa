package result_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synthesis-agents/runtime/core/result"
)

func TestSuccess(t *testing.T) {
	r := result.Success(map[string]any{"answer": 42}, "done")

	assert.True(t, r.OK())
	assert.NotEmpty(t, r.ID())
	assert.Equal(t, "done", r.Message())
	assert.Equal(t, 42, r.Data()["answer"])
	assert.Empty(t, r.ErrKind())
	assert.Empty(t, r.ErrMessage())
}

func TestFailure(t *testing.T) {
	r := result.Failure(result.ResourceError, "memory ceiling exceeded", map[string]any{
		"estimate_mb": 120.0,
	})

	assert.False(t, r.OK())
	assert.Equal(t, result.ResourceError, r.ErrKind())
	assert.Equal(t, "memory ceiling exceeded", r.ErrMessage())
	assert.Equal(t, 120.0, r.Details()["estimate_mb"])
	assert.Nil(t, r.Data())
}

func TestResult_Immutable(t *testing.T) {
	payload := map[string]any{"key": "original"}
	r := result.Success(payload, "ok")

	// Mutating the source map or an accessor copy must not leak through.
	payload["key"] = "changed"
	r.Data()["key"] = "also changed"

	assert.Equal(t, "original", r.Data()["key"])
}

func TestResult_NestedStructuresIsolated(t *testing.T) {
	r := result.Success(map[string]any{
		"nested": map[string]any{"key": "original"},
		"list":   []any{"first"},
	}, "ok")

	// Mutating nested structure in one accessor copy must not alter what
	// subsequent accessors return.
	first := r.Data()
	first["nested"].(map[string]any)["key"] = "changed"
	first["list"].([]any)[0] = "changed"

	second := r.Data()
	assert.Equal(t, "original", second["nested"].(map[string]any)["key"])
	assert.Equal(t, "first", second["list"].([]any)[0])
}

func TestFailure_DetailsIsolated(t *testing.T) {
	details := map[string]any{"ctx": map[string]any{"field": "task"}}
	r := result.Failure(result.ValidationError, "bad input", details)

	details["ctx"].(map[string]any)["field"] = "changed"
	r.Details()["ctx"].(map[string]any)["field"] = "also changed"

	assert.Equal(t, "task", r.Details()["ctx"].(map[string]any)["field"])
}

func TestWithMetrics_CopiesNotMutates(t *testing.T) {
	r := result.Success(nil, "ok")
	stamped := r.WithMetrics(result.Metrics{DurationMS: 7, InputUnits: 3})

	assert.Equal(t, int64(7), stamped.Metrics().DurationMS)
	assert.Equal(t, int64(0), r.Metrics().DurationMS)
	assert.Equal(t, r.ID(), stamped.ID())
}

func TestMarshalJSON(t *testing.T) {
	fail := result.Failure(result.ValidationError, "missing field: task", nil).
		WithMetrics(result.Metrics{DurationMS: 1})

	raw, err := json.Marshal(fail)
	require.NoError(t, err)

	var decoded struct {
		Success bool `json:"success"`
		Error   *struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
		Metrics result.Metrics `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.False(t, decoded.Success)
	require.NotNil(t, decoded.Error)
	assert.Equal(t, "validation_error", decoded.Error.Kind)
	assert.Equal(t, "missing field: task", decoded.Error.Message)
	assert.Equal(t, int64(1), decoded.Metrics.DurationMS)

	ok := result.Success(map[string]any{"n": 1}, "fine")
	raw, err = json.Marshal(ok)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"error"`)
}
