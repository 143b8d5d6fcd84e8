package model

type FindRequestBody struct {
	Root  string   `json:"root"`
	Notes []string `json:"notes"`
}

type FindResponse struct {
	Root    string      `json:"root"`
	Query   []string    `json:"query"`
	Matches []ChordView `json:"matches"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
