// Package analyze produces document analyses. Without an OCR or entity
// extraction backend it returns a fixed government-order profile.
package analyze

import "fmt"

// Request identifies the document to analyze.
type Request struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Entities are the named entities found in a document.
type Entities struct {
	People []string `json:"people"`
	Places []string `json:"places"`
	Dates  []string `json:"dates"`
}

// Analysis is the result returned to clients.
type Analysis struct {
	Summary     string   `json:"summary"`
	Entities    Entities `json:"entities"`
	Category    string   `json:"category"`
	ActionItems []string `json:"actionItems"`
}

// Analyze returns the analysis for req. Only the title influences the output.
func Analyze(req Request) Analysis {
	return Analysis{
		Summary: fmt.Sprintf("This document titled \"%s\" contains critical information regarding government policies and administrative decisions.", req.Title),
		Entities: Entities{
			People: []string{"Sri Venkata Rao", "IAS Officer Sharma", "Minister Reddy"},
			Places: []string{"Guntur", "Visakhapatnam", "Amaravati"},
			Dates:  []string{"Nov 20, 2025", "Dec 15, 2025"},
		},
		Category: "Government Order",
		ActionItems: []string{
			"Review budget allocation",
			"Approve district plan",
			"Schedule follow-up meeting",
		},
	}
}
