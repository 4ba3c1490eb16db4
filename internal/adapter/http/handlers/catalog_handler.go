package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// PriceCatalogHandler handles HTTP requests for the service price catalog.

type PriceCatalogHandler struct {
	catalog usecase.IPriceCatalogUseCase
}

func NewPriceCatalogHandler(uc usecase.IPriceCatalogUseCase) *PriceCatalogHandler {
	return &PriceCatalogHandler{catalog: uc}
}

func (h *PriceCatalogHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(h.catalog.Entries()))
}

// UpsertItem adds or overwrites one catalog entry under its normalized name.
func (h *PriceCatalogHandler) UpsertItem(c *gin.Context) {
	var payload request.CatalogItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog item payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	key, err := h.catalog.Add(c.Request.Context(), payload.Name, payload.Price)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] upsert success key=%s price=%v", key, payload.Price)

	c.JSON(http.StatusOK, response.CatalogItemResponse{Name: key, Price: payload.Price})
}

// RemoveItem deletes a catalog entry by (normalized) name. Removing an absent
// entry succeeds.
func (h *PriceCatalogHandler) RemoveItem(c *gin.Context) {
	name := c.Param("name")

	if err := h.catalog.Remove(c.Request.Context(), name); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] remove success name=%s", name)

	c.Status(http.StatusNoContent)
}

// Suggest answers the catalog price for an exactly matching description, or
// 404 when the catalog has no entry for it.
func (h *PriceCatalogHandler) Suggest(c *gin.Context) {
	description := c.Query("description")

	price, err := h.catalog.Suggest(description)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SuggestionResponse{Price: price})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceName):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_NAME", "Service name is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServicePrice):
		return pkg.NewDomainErrorSimple("INVALID_SERVICE_PRICE", "Service price must not be negative", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoSuggestion):
		return pkg.NewDomainErrorSimple("NO_SUGGESTION", "No catalog entry for this description", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
