package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dishpatch/internal/domain"
	"dishpatch/internal/dto"
	"dishpatch/internal/infrastructure/idgen"
	"dishpatch/internal/order/repository"
	"dishpatch/internal/order/service"
	"dishpatch/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestController() *OrderController {
	repo := repository.NewMemoryOrderRepository()
	svc := service.NewService(repo, idgen.NewSequence(), zap.NewNop())
	return NewController(svc, zap.NewNop())
}

func validPayload() dto.OrderPayload {
	return dto.OrderPayload{
		DeliverTo:    "221B Baker Street",
		MobileNumber: "555-0100",
		Dishes: []dto.OrderDishPayload{
			{DishID: "d1", Quantity: 2},
		},
	}
}

func createOrder(t *testing.T, c *OrderController, p dto.OrderPayload) dto.Order {
	t.Helper()

	rec := httptest.NewRecorder()
	c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var out dto.Order
	testutil.DecodeData(t, rec, &out)
	return out
}

func listOrders(t *testing.T, c *OrderController) []dto.Order {
	t.Helper()

	rec := httptest.NewRecorder()
	c.List(rec, testutil.NewJSONRequest(t, http.MethodGet, "/orders", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var out []dto.Order
	testutil.DecodeData(t, rec, &out)
	return out
}

func TestList_Empty(t *testing.T) {
	c := newTestController()

	assert.Empty(t, listOrders(t, c))
}

func TestCreate_Valid(t *testing.T) {
	c := newTestController()

	created := createOrder(t, c, validPayload())

	assert.Equal(t, "1", created.ID)
	assert.Equal(t, "221B Baker Street", created.DeliverTo)
	assert.Equal(t, "555-0100", created.MobileNumber)
	assert.Equal(t, domain.OrderStatusPending, created.Status)
	require.Len(t, created.Dishes, 1)
	assert.Equal(t, "d1", created.Dishes[0].DishID)
	assert.Equal(t, 2, created.Dishes[0].Quantity)
}

func TestCreate_KeepsExplicitStatus(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Status = domain.OrderStatusPreparing

	created := createOrder(t, c, p)

	assert.Equal(t, domain.OrderStatusPreparing, created.Status)
}

func TestCreate_InvalidJSON(t *testing.T) {
	c := newTestController()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader("{not json"))
	c.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", testutil.DecodeError(t, rec))
}

func TestCreate_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.OrderPayload)
		message string
	}{
		{
			"deliverTo",
			func(p *dto.OrderPayload) { p.DeliverTo = "" },
			"Order must include a deliverTo",
		},
		{
			"mobileNumber",
			func(p *dto.OrderPayload) { p.MobileNumber = "" },
			"Order must include a mobileNumber",
		},
		{
			"dishes",
			func(p *dto.OrderPayload) { p.Dishes = nil },
			"Order must include a dish",
		},
		{
			"empty dishes",
			func(p *dto.OrderPayload) { p.Dishes = []dto.OrderDishPayload{} },
			"Order must include at least one dish",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestController()

			p := validPayload()
			tc.mutate(&p)

			rec := httptest.NewRecorder()
			c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.message, testutil.DecodeError(t, rec))
			assert.Empty(t, listOrders(t, c), "a rejected create must not append to the store")
		})
	}
}

func TestCreate_ZeroQuantity(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Dishes = []dto.OrderDishPayload{{DishID: "1", Quantity: 0}}

	rec := httptest.NewRecorder()
	c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "dish 0 must have a quantity that is an integer greater than 0", testutil.DecodeError(t, rec))
	assert.Empty(t, listOrders(t, c))
}

func TestCreate_SecondDishInvalid(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Dishes = []dto.OrderDishPayload{
		{DishID: "d1", Quantity: 1},
		{DishID: "d2", Quantity: -3},
	}

	rec := httptest.NewRecorder()
	c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "dish 1 must have a quantity that is an integer greater than 0", testutil.DecodeError(t, rec))
}

func TestCreate_FractionalQuantity(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Dishes = []dto.OrderDishPayload{{DishID: "d1", Quantity: 1.5}}

	rec := httptest.NewRecorder()
	c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "dish 0 must have a quantity that is an integer greater than 0", testutil.DecodeError(t, rec))
}

func TestCreate_QuantityBeyondIntRange(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Dishes = []dto.OrderDishPayload{{DishID: "d1", Quantity: 1e19}}

	rec := httptest.NewRecorder()
	c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "dish 0 must have a quantity that is an integer greater than 0", testutil.DecodeError(t, rec))
	assert.Empty(t, listOrders(t, c), "an out-of-range quantity must never reach the store")
}

func TestCreate_FirstFailingStepWins(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.DeliverTo = ""
	p.Dishes = []dto.OrderDishPayload{{DishID: "d1", Quantity: 0}}

	rec := httptest.NewRecorder()
	c.Create(rec, testutil.NewJSONRequest(t, http.MethodPost, "/orders", dto.OrderRequest{Data: p}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Order must include a deliverTo", testutil.DecodeError(t, rec))
}

func TestRead_Found(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	rec := httptest.NewRecorder()
	req := testutil.WithURLParam(
		testutil.NewJSONRequest(t, http.MethodGet, "/orders/"+created.ID, nil),
		"orderId", created.ID,
	)
	c.Read(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got dto.Order
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, created, got)
}

func TestRead_Miss(t *testing.T) {
	c := newTestController()

	rec := httptest.NewRecorder()
	req := testutil.WithURLParam(
		testutil.NewJSONRequest(t, http.MethodGet, "/orders/99", nil),
		"orderId", "99",
	)
	c.Read(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order does not exist: 99.", testutil.DecodeError(t, rec))
}

func updateOrder(t *testing.T, c *OrderController, id string, p dto.OrderPayload) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := testutil.WithURLParam(
		testutil.NewJSONRequest(t, http.MethodPut, "/orders/"+id, dto.OrderRequest{Data: p}),
		"orderId", id,
	)
	c.Update(rec, req)
	return rec
}

func TestUpdate_Valid(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	p := dto.OrderPayload{
		DeliverTo:    "742 Evergreen Terrace",
		MobileNumber: "555-0199",
		Status:       domain.OrderStatusOutForDelivery,
		Dishes: []dto.OrderDishPayload{
			{DishID: "d9", Quantity: 4},
		},
	}

	rec := updateOrder(t, c, created.ID, p)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got dto.Order
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "742 Evergreen Terrace", got.DeliverTo)
	assert.Equal(t, domain.OrderStatusOutForDelivery, got.Status)
	require.Len(t, got.Dishes, 1)
	assert.Equal(t, "d9", got.Dishes[0].DishID)
}

func TestUpdate_MatchingBodyIDPasses(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	p := validPayload()
	p.ID = created.ID
	p.Status = domain.OrderStatusPending

	rec := updateOrder(t, c, created.ID, p)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_BodyIDMismatch(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	p := validPayload()
	p.ID = "impostor"
	p.Status = domain.OrderStatusPending

	rec := updateOrder(t, c, created.ID, p)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t,
		"Order id does not match route id. Order: impostor, Route: "+created.ID+".",
		testutil.DecodeError(t, rec),
	)
}

func TestUpdate_MissingStatus(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	p := validPayload()

	rec := updateOrder(t, c, created.ID, p)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"Order must have a status of pending, preparing, out-for-delivery, delivered",
		testutil.DecodeError(t, rec),
	)
}

func TestUpdate_UnknownStatus(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	p := validPayload()
	p.Status = "cooked"

	rec := updateOrder(t, c, created.ID, p)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"Order must have a status of pending, preparing, out-for-delivery, delivered",
		testutil.DecodeError(t, rec),
	)
}

func TestUpdate_DeliveredOrderRejected(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Status = domain.OrderStatusDelivered
	created := createOrder(t, c, p)

	// Even a request back to pending is rejected.
	replacement := validPayload()
	replacement.Status = domain.OrderStatusPending

	rec := updateOrder(t, c, created.ID, replacement)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A delivered order cannot be changed", testutil.DecodeError(t, rec))
}

func TestUpdate_ExistenceBeatsBodyValidation(t *testing.T) {
	c := newTestController()

	rec := updateOrder(t, c, "ghost", dto.OrderPayload{})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order does not exist: ghost.", testutil.DecodeError(t, rec))
}

func TestUpdate_InvalidJSON(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	rec := httptest.NewRecorder()
	req := testutil.WithURLParam(
		httptest.NewRequest(http.MethodPut, "/orders/"+created.ID, strings.NewReader("{")),
		"orderId", created.ID,
	)
	c.Update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON body", testutil.DecodeError(t, rec))
}

func deleteOrder(t *testing.T, c *OrderController, id string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := testutil.WithURLParam(
		testutil.NewJSONRequest(t, http.MethodDelete, "/orders/"+id, nil),
		"orderId", id,
	)
	c.Delete(rec, req)
	return rec
}

func TestDelete_PendingOrder(t *testing.T) {
	c := newTestController()
	created := createOrder(t, c, validPayload())

	rec := deleteOrder(t, c, created.ID)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Empty(t, listOrders(t, c))
}

func TestDelete_NonPendingOrder(t *testing.T) {
	c := newTestController()

	p := validPayload()
	p.Status = domain.OrderStatusPreparing
	created := createOrder(t, c, p)

	rec := deleteOrder(t, c, created.ID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "An order cannot be deleted unless it is pending", testutil.DecodeError(t, rec))
	assert.Len(t, listOrders(t, c), 1, "a rejected delete must not remove the record")
}

func TestDelete_Miss(t *testing.T) {
	c := newTestController()

	rec := deleteOrder(t, c, "ghost")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Order does not exist: ghost.", testutil.DecodeError(t, rec))
}
