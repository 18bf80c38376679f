package domain

// WordEntry is a single playable word. The hint is optional and only ever
// shown to imposters.
type WordEntry struct {
	Word string `json:"word"`
	Hint string `json:"hint,omitempty"`
}

// Category is a named word list. Built-in categories live in the server's
// catalog; custom categories are sent by the client inside the create-game
// request and are never stored.
type Category struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Words []WordEntry `json:"words"`
}

// CategorySummary is the catalog listing shape (no words).
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
