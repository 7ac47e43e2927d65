package question

// Question is a single trivia question as stored and served.
// JSON keys match the public API wire format ("category" carries the
// category id, not the label).
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	CategoryID int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions. Read-only through the API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Page is a bounded slice of an id-ordered question set plus the total
// count of the set it was cut from. Derived, never persisted.
type Page struct {
	Questions []Question
	Total     int
}
