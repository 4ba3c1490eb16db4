package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/render"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for service orders (OS).

type ServiceOrderHandler struct {
	orders  usecase.IOrderBookUseCase
	profile usecase.ICompanyProfileUseCase
}

func NewServiceOrderHandler(orders usecase.IOrderBookUseCase, profile usecase.ICompanyProfileUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{orders: orders, profile: profile}
}

// ListOrders returns the collection newest-first. The optional q parameter is
// a case-insensitive substring match on client name, plate and id.
func (h *ServiceOrderHandler) ListOrders(c *gin.Context) {
	term := c.Query("q")
	orders := h.orders.Search(term)
	c.JSON(http.StatusOK, response.FromServiceOrders(h.orders.Source(), orders))
}

func (h *ServiceOrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("id")

	order, err := h.orders.Get(id)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// NextOrderID previews the id the next save would receive. The id is only
// reserved at save time; two previews can answer the same value.
func (h *ServiceOrderHandler) NextOrderID(c *gin.Context) {
	c.JSON(http.StatusOK, response.NextOrderIDResponse{NextID: h.orders.NextID()})
}

// DraftOrder returns a pre-filled blank order: next id, today's date, the
// current company profile and the shop's usual defaults.
func (h *ServiceOrderHandler) DraftOrder(c *gin.Context) {
	draft := usecase.NewDraftOrder(h.orders.NextID(), h.profile.Get())
	c.JSON(http.StatusOK, response.FromServiceOrder(draft))
}

// SaveOrder creates or replaces an order. Remote persistence is best-effort:
// a saved order is answered even when the remote write fails.
func (h *ServiceOrderHandler) SaveOrder(c *gin.Context) {
	var payload request.ServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	saved, err := h.orders.Save(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[order][handler] save failed id=%s err=%v", payload.ID, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] save success id=%s client=%s", saved.ID, saved.Client.Name)

	c.JSON(http.StatusOK, response.FromServiceOrder(saved))
}

// DeleteOrder removes an order. Deleting an absent id is a success: the
// desired end state already holds.
func (h *ServiceOrderHandler) DeleteOrder(c *gin.Context) {
	id := c.Param("id")

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		log.Printf("[order][handler] delete failed id=%s err=%v", id, err)
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] delete success id=%s", id)

	c.Status(http.StatusNoContent)
}

// OrderDocument returns the printable document model for one order. PDF
// generation happens client-side from this model.
func (h *ServiceOrderHandler) OrderDocument(c *gin.Context) {
	id := c.Param("id")

	order, err := h.orders.Get(id)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, render.BuildDocument(order, h.profile.Get()))
}

// ExportOrders streams the (optionally filtered) collection as an XLSX
// workbook.
func (h *ServiceOrderHandler) ExportOrders(c *gin.Context) {
	orders := h.orders.Search(c.Query("q"))

	f, err := render.BuildWorkbook(orders)
	if err != nil {
		log.Printf("[order][handler] export failed err=%v", err)
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Could not build the export file", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename=ordens_servico.xlsx`)
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[order][handler] export write failed err=%v", err)
	}
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingClientName):
		return pkg.NewDomainErrorSimple("MISSING_CLIENT_NAME", "Client name is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingVehiclePlate):
		return pkg.NewDomainErrorSimple("MISSING_VEHICLE_PLATE", "Vehicle plate is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
