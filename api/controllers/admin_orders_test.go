package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvsaqua/aquastore-backend/pkg/enums"
	pkgerrors "github.com/mvsaqua/aquastore-backend/pkg/errors"
	"github.com/mvsaqua/aquastore-backend/pkg/models"
)

type stubOrders struct {
	orders    []models.Order
	err       error
	gotID     string
	gotStatus enums.OrderStatus
}

func (s *stubOrders) Orders() []models.Order {
	return s.orders
}

func (s *stubOrders) OrderByID(id string) (models.Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

func (s *stubOrders) UpdateOrderStatus(_ context.Context, id string, status enums.OrderStatus) (models.Order, error) {
	s.gotID = id
	s.gotStatus = status
	if s.err != nil {
		return models.Order{}, s.err
	}
	return models.Order{ID: id, Status: status}, nil
}

func TestAdminListOrders(t *testing.T) {
	orders := &stubOrders{orders: []models.Order{{ID: "A", Total: 100}}}
	handler := AdminListOrders(orders, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []models.Order `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != "A" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestAdminGetOrderNotFound(t *testing.T) {
	handler := AdminGetOrder(&stubOrders{}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/admin/v1/orders/Z", nil), "orderId", "Z")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatus(t *testing.T) {
	orders := &stubOrders{}
	handler := AdminUpdateOrderStatus(orders, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/A/status", strings.NewReader(`{"status":"Shipped"}`)),
		"orderId", "A",
	)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if orders.gotID != "A" || orders.gotStatus != enums.OrderStatusShipped {
		t.Fatalf("status not forwarded: id=%q status=%q", orders.gotID, orders.gotStatus)
	}
}

func TestAdminUpdateOrderStatusRejectsUnknown(t *testing.T) {
	handler := AdminUpdateOrderStatus(&stubOrders{}, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/A/status", strings.NewReader(`{"status":"Lost"}`)),
		"orderId", "A",
	)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminUpdateOrderStatusNotFound(t *testing.T) {
	orders := &stubOrders{err: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
	handler := AdminUpdateOrderStatus(orders, nil)

	req := withURLParam(
		httptest.NewRequest(http.MethodPatch, "/api/admin/v1/orders/Z/status", strings.NewReader(`{"status":"Delivered"}`)),
		"orderId", "Z",
	)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
