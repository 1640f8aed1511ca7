package domain

// Currency is a positioned entity keyed by title.
type Currency struct {
	Base
	Position int    `json:"position"`
	Title    string `json:"title"`
}
