package domain

// Product is a catalog item returned by the similarity search, including
// its similarity score against the query embedding.
type Product struct {
	ID             int64   `json:"id"             db:"id"`
	Title          string  `json:"title"          db:"title"`
	Price          float64 `json:"price"          db:"price"`
	ThumbnailImage string  `json:"thumbnailImage" db:"thumbnail_image"`
	Description    string  `json:"description"    db:"description"`
	Similarity     float64 `json:"similarity"`
}

// MatchResult is the response payload for a match request: the generated
// answer plus the exact products that grounded it.
type MatchResult struct {
	Message  string    `json:"message"`
	Products []Product `json:"product"`
}
