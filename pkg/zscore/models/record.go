// Package models defines data structures for deviation highlighting.
package models

// Record represents a single data row read from a table.
type Record struct {
	// R is the source row index (1-based).
	R int `json:"r"`
	// Values maps header name to cell value (int64, float64 or string).
	Values map[string]interface{} `json:"values"`
}
