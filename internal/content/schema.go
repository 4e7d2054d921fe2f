package content

// packSchema is the JSON schema a content pack must satisfy before the
// index will accept it. Packs are a list of fact sets; every fact must
// carry its factors and name its owning set.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"fact_sets": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string"},
					"facts": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":          map[string]any{"type": "string", "minLength": 1},
								"factor_a":    map[string]any{"type": "integer", "minimum": 0},
								"factor_b":    map[string]any{"type": "integer", "minimum": 0},
								"text":        map[string]any{"type": "string"},
								"fact_set_id": map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"id", "factor_a", "factor_b", "fact_set_id"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "facts"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"fact_sets"},
	"additionalProperties": false,
}
