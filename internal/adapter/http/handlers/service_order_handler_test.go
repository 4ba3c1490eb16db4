package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_os/internal/adapter/http/handlers/mocks"
	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newOrderRouter(t *testing.T) (*gin.Engine, *mocks.MockIOrderBookUseCase, *mocks.MockICompanyProfileUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	orders := mocks.NewMockIOrderBookUseCase(ctrl)
	profile := mocks.NewMockICompanyProfileUseCase(ctrl)
	h := NewServiceOrderHandler(orders, profile)

	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/next-id", h.NextOrderID)
	r.GET("/v1/orders/draft", h.DraftOrder)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.GET("/v1/orders/:id/document", h.OrderDocument)
	r.POST("/v1/orders", h.SaveOrder)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	r.GET("/v1/orders/export", h.ExportOrders)
	return r, orders, profile
}

func TestServiceOrderHandler_ListOrders(t *testing.T) {
	r, orders, _ := newOrderRouter(t)

	orders.EXPECT().Search("santos").Return([]entities.ServiceOrder{
		{ID: "OS-0007", Client: entities.Client{Name: "Transportadora Santos"}, Values: entities.OrderValues{Labor: 100, Travel: 50}},
	})
	orders.EXPECT().Source().Return("remote")

	req := httptest.NewRequest(http.MethodGet, "/v1/orders?q=santos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["source"] != "remote" || body["count"] != float64(1) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceOrderHandler_GetOrder(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)

		orders.EXPECT().Get("OS-0001").Return(entities.ServiceOrder{ID: "OS-0001", Values: entities.OrderValues{Labor: 100, Travel: 50}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/OS-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != float64(150) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)

		orders.EXPECT().Get("OS-9999").Return(entities.ServiceOrder{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/OS-9999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_NextOrderID(t *testing.T) {
	r, orders, _ := newOrderRouter(t)

	orders.EXPECT().NextID().Return("OS-0042")

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/next-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["nextId"] != "OS-0042" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceOrderHandler_DraftOrder(t *testing.T) {
	r, orders, profile := newOrderRouter(t)

	orders.EXPECT().NextID().Return("OS-0001")
	profile.EXPECT().Get().Return(entities.CompanyProfile{Name: "MD DIESEL"})

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/draft", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["id"] != "OS-0001" || body["paymentMethod"] != "Pix" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestServiceOrderHandler_SaveOrder(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _, _ := newOrderRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing client name", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)

		orders.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, usecase.ErrMissingClientName)

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"vehicle":{"plate":"ABC-1234"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success allocates id", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)

		orders.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID != "" {
					t.Fatalf("payload id should be empty, got %q", o.ID)
				}
				o.ID = "OS-0001"
				return o, nil
			})

		payload := `{"client":{"name":"Posto A"},"vehicle":{"plate":"XYZ-0001"},"values":{"labor":100,"travel":50}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "OS-0001" || body["total"] != float64(150) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestServiceOrderHandler_DeleteOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)

		orders.EXPECT().Delete(gomock.Any(), "OS-0001").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/OS-0001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("blank id", func(t *testing.T) {
		r, orders, _ := newOrderRouter(t)

		orders.EXPECT().Delete(gomock.Any(), " ").Return(usecase.ErrInvalidOrderID)

		req := httptest.NewRequest(http.MethodDelete, "/v1/orders/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestServiceOrderHandler_OrderDocument(t *testing.T) {
	r, orders, profile := newOrderRouter(t)

	orders.EXPECT().Get("OS-0042").Return(entities.ServiceOrder{
		ID:     "OS-0042",
		Date:   "2025-03-09",
		Values: entities.OrderValues{Labor: 1500, Travel: 250},
	}, nil)
	profile.EXPECT().Get().Return(entities.CompanyProfile{Name: "MD DIESEL"})

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/OS-0042/document", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["filename"] != "OS_OS-0042.pdf" || body["date"] != "09/03/2025" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	costs, _ := body["costs"].(map[string]any)
	if costs["total"] != "R$ 1.750,00" {
		t.Fatalf("unexpected costs: %v", costs)
	}
}

func TestServiceOrderHandler_ExportOrders(t *testing.T) {
	r, orders, _ := newOrderRouter(t)

	orders.EXPECT().Search("").Return([]entities.ServiceOrder{{ID: "OS-0001"}})

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Fatalf("unexpected content type: %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Fatalf("expected a workbook body")
	}
}

func TestMapServiceOrderError(t *testing.T) {
	if got := mapServiceOrderError(usecase.ErrMissingClientName); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapServiceOrderError(usecase.ErrMissingVehiclePlate); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapServiceOrderError(usecase.ErrInvalidOrderID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceOrderError(usecase.ErrOrderNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceOrderError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
