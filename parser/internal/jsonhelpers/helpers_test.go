package jsonhelpers

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalWithExtras(t *testing.T) {
	t.Run("without extras", func(t *testing.T) {
		base := map[string]any{
			"name":  "test",
			"value": 42,
		}
		data, err := MarshalWithExtras(base, nil)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(data, &result))

		assert.Equal(t, "test", result["name"])
		assert.Equal(t, float64(42), result["value"])
		assert.Len(t, result, 2)
	})

	t.Run("with extras", func(t *testing.T) {
		base := map[string]any{
			"name": "test",
		}
		extras := map[string]any{
			"x-custom": "value",
			"x-count":  10,
		}
		data, err := MarshalWithExtras(base, extras)
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal(data, &result))

		assert.Equal(t, "test", result["name"])
		assert.Equal(t, "value", result["x-custom"])
		assert.Equal(t, float64(10), result["x-count"])
		assert.Len(t, result, 3)
	})
}

func TestSetters(t *testing.T) {
	t.Run("SetIfNotEmpty", func(t *testing.T) {
		m := map[string]any{}
		SetIfNotEmpty(m, "empty", "")
		SetIfNotEmpty(m, "set", "value")
		assert.Equal(t, map[string]any{"set": "value"}, m)
	})

	t.Run("SetIfTrue", func(t *testing.T) {
		m := map[string]any{}
		SetIfTrue(m, "off", false)
		SetIfTrue(m, "on", true)
		assert.Equal(t, map[string]any{"on": true}, m)
	})

	t.Run("SetIfNotNil", func(t *testing.T) {
		m := map[string]any{}
		SetIfNotNil(m, "nil", nil)
		SetIfNotNil(m, "zero", 0)
		assert.Equal(t, map[string]any{"zero": 0}, m)
	})

	t.Run("SetIfPtr skips typed nil", func(t *testing.T) {
		m := map[string]any{}
		var missing *float64
		present := 1.5
		SetIfPtr(m, "missing", missing)
		SetIfPtr(m, "present", &present)
		require.Len(t, m, 1)
		assert.Equal(t, &present, m["present"])
	})

	t.Run("SetIfSlice keeps empty slices", func(t *testing.T) {
		m := map[string]any{}
		SetIfSlice[string](m, "nil", nil)
		SetIfSlice(m, "empty", []string{})
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"empty":[]}`, string(data))
	})

	t.Run("SetIfMap keeps empty maps", func(t *testing.T) {
		m := map[string]any{}
		SetIfMap[string, int](m, "nil", nil)
		SetIfMap(m, "empty", map[string]int{})
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"empty":{}}`, string(data))
	})
}
