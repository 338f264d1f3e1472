package llm

import (
	"encoding/json"
	"testing"

	"github.com/dailyenglish/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var personSchema = &Schema{
	Name: "person",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"pets": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"species": map[string]any{"type": "string"},
					},
					"required":             []any{"species"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"name", "pets"},
		"additionalProperties": false,
	},
}

func TestValidate(t *testing.T) {
	t.Run("accepts conforming JSON", func(t *testing.T) {
		raw := json.RawMessage(`{"name": "An", "pets": [{"species": "cat"}]}`)
		assert.NoError(t, Validate(personSchema, raw))
	})

	t.Run("rejects non-JSON input", func(t *testing.T) {
		err := Validate(personSchema, json.RawMessage("not json at all"))

		var me *models.MalformedResponseError
		require.ErrorAs(t, err, &me)
	})

	t.Run("rejects a missing required field", func(t *testing.T) {
		err := Validate(personSchema, json.RawMessage(`{"pets": []}`))

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
	})

	t.Run("rejects a wrong type with the field path", func(t *testing.T) {
		raw := json.RawMessage(`{"name": "An", "pets": [{"species": 7}]}`)
		err := Validate(personSchema, raw)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Path, "pets")
	})

	t.Run("rejects unexpected properties", func(t *testing.T) {
		raw := json.RawMessage(`{"name": "An", "pets": [], "age": 30}`)
		err := Validate(personSchema, raw)

		var ve *models.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("repeated validation reuses the compiled schema", func(t *testing.T) {
		raw := json.RawMessage(`{"name": "An", "pets": []}`)
		for i := 0; i < 3; i++ {
			assert.NoError(t, Validate(personSchema, raw))
		}
		_, ok := schemaCache.Load(personSchema.Name)
		assert.True(t, ok)
	})
}
