// Package model contains domain models passed between layers.
package model

// Table is a detected 2-D grid of text cells on a page. An empty string
// marks a missing cell.
type Table [][]string

// Page is one page of an uploaded ranking document as seen by the
// extraction layer: zero or more detected tables plus a plain-text
// rendering of the page.
type Page struct {
	Number int
	Tables []Table
	Text   string
}

// RawRecord is a candidate player row recovered by either extractor.
// Score is nil when no numeric token was recoverable. Records are not yet
// deduplicated or ranked.
type RawRecord struct {
	Player string
	Team   string
	Pos    string
	Score  *float64
	Page   int
}
