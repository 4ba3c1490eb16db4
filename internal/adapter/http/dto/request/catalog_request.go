package request

// CatalogItemRequest upserts one catalog entry. The name is normalized
// (trimmed, uppercased) by the catalog before it becomes a key.
type CatalogItemRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

// SuggestRequest looks up a reference price for a typed service description.
type SuggestRequest struct {
	Description string `json:"description" binding:"required"`
}
