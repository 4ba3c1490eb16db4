package response

import (
	"oficina_os/internal/domain/entities"
)

// CatalogResponse is the whole price catalog keyed by normalized service name.
type CatalogResponse struct {
	Items entities.PriceCatalog `json:"items"`
}

func FromCatalog(c entities.PriceCatalog) CatalogResponse {
	if c == nil {
		c = entities.PriceCatalog{}
	}
	return CatalogResponse{Items: c}
}

// CatalogItemResponse echoes the normalized key an upsert resolved to.
type CatalogItemResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SuggestionResponse is the reference price matched for a description.
type SuggestionResponse struct {
	Price float64 `json:"price"`
}
