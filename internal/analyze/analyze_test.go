package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	a := Analyze(Request{URL: "https://example.com/go-123.pdf", Title: "GO Ms No 45"})

	assert.Equal(t, `This document titled "GO Ms No 45" contains critical information regarding government policies and administrative decisions.`, a.Summary)
	assert.Equal(t, "Government Order", a.Category)
	assert.Equal(t, []string{"Sri Venkata Rao", "IAS Officer Sharma", "Minister Reddy"}, a.Entities.People)
	assert.Equal(t, []string{"Guntur", "Visakhapatnam", "Amaravati"}, a.Entities.Places)
	assert.Equal(t, []string{"Nov 20, 2025", "Dec 15, 2025"}, a.Entities.Dates)
	assert.Len(t, a.ActionItems, 3)
}

func TestAnalyze_EmptyTitle(t *testing.T) {
	a := Analyze(Request{})
	assert.Contains(t, a.Summary, `titled "" contains`)
}
