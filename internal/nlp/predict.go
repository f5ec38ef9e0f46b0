package nlp

import (
	"fmt"
	"strings"
)

// DurationPrediction is the response for a task description.
type DurationPrediction struct {
	PredictedDuration string  `json:"predicted_duration"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning"`
}

// PredictDuration estimates how long a described task takes.
func (c *Catalog) PredictDuration(description string) DurationPrediction {
	description = strings.ToLower(description)
	d, _ := c.Duration.Match(description)
	return DurationPrediction{
		PredictedDuration: d.Duration,
		Confidence:        d.Confidence,
		Reasoning:         fmt.Sprintf("Based on keywords in '%s'", description),
	}
}

// Classification is the assistant's reading of a chat query.
type Classification struct {
	Intent     string            `json:"intent"`
	Confidence float64           `json:"confidence"`
	Response   string            `json:"response"`
	Action     map[string]string `json:"action"`
}

// Classify maps a chat query to an intent. Unmatched queries get the
// table's "unknown" intent with the same confidence.
func (c *Catalog) Classify(query string) Classification {
	in, _ := c.Intent.Match(query)
	return Classification{
		Intent:     in.Name,
		Confidence: c.IntentConfidence,
		Response:   in.Response,
		Action:     in.Action,
	}
}
