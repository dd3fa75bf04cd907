package predictor

// predictionSchema is the JSON schema every backend must return for a
// risk classification.
var predictionSchema = &responseSchema{
	Name:        "risk-prediction",
	Description: "Risk classification of a student from behavioral and psychological features",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"predicted_class": map[string]any{
				"type":        "string",
				"enum":        []any{"Low", "Moderate", "High"},
				"description": "Overall risk class for this student",
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0.0,
				"maximum":     1.0,
				"description": "Confidence in the predicted class (0.0–1.0)",
			},
			"attributions": map[string]any{
				"type":        "array",
				"description": "Per-feature signed contributions, most influential first",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"feature": map[string]any{
							"type":        "string",
							"description": "Feature name exactly as given in the input",
						},
						"impact": map[string]any{
							"type":        "number",
							"description": "Signed contribution; positive pushes toward higher risk",
						},
					},
					"required":             []any{"feature", "impact"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"predicted_class", "confidence", "attributions"},
		"additionalProperties": false,
	},
}
