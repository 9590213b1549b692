// Package types contains common types used across the application
package types

// Row represents a consolidated roster entry. Blend is the composite
// ranking score (lower drafts earlier); Rank is the dense 1..N position in
// roster order. Both are nil until assigned.
type Row struct {
	Rank   *int     `json:"adp_rank"`
	Player string   `json:"player"`
	Team   string   `json:"team"`
	Pos    string   `json:"pos"`
	Blend  *float64 `json:"blend"`
}
