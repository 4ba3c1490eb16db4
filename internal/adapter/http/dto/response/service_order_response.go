package response

import (
	"oficina_os/internal/domain/entities"
)

// ServiceOrderResponse is the full order snapshot plus the computed binding
// total (labor + travel).
type ServiceOrderResponse struct {
	entities.ServiceOrder
	Total float64 `json:"total"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	return ServiceOrderResponse{ServiceOrder: o, Total: o.Total()}
}

// ListOrdersResponse carries the collection view plus where it came from:
// "remote" after a successful fetch, "cache" when running from the local
// mirror, "empty" on a fresh installation.
type ListOrdersResponse struct {
	Source string                 `json:"source"`
	Count  int                    `json:"count"`
	Orders []ServiceOrderResponse `json:"orders"`
}

func FromServiceOrders(source string, orders []entities.ServiceOrder) ListOrdersResponse {
	out := make([]ServiceOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromServiceOrder(o)
	}
	return ListOrdersResponse{Source: source, Count: len(out), Orders: out}
}

// NextOrderIDResponse previews the id the next save would be assigned.
type NextOrderIDResponse struct {
	NextID string `json:"nextId"`
}
