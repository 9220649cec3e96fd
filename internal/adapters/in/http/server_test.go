package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	adapter "foodfast/internal/adapters/in/http"
	"foodfast/internal/adapters/out/jsonstore"
	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The narrow command factories are satisfied by wrapping the storage factory,
// mirroring the wiring in the composition root.
type testUoWFactory struct {
	factory ports.UnitOfWorkFactory
}

func (f testUoWFactory) asDispatch() commands.DispatchUoWFactory     { return dispatchFactory(f) }
func (f testUoWFactory) asOrdering() commands.OrderingUoWFactory     { return orderingFactory(f) }
func (f testUoWFactory) asDrone() commands.DroneUoWFactory           { return droneFactory(f) }
func (f testUoWFactory) asRestaurant() commands.RestaurantUoWFactory { return restaurantFactory(f) }
func (f testUoWFactory) asMenu() commands.MenuUoWFactory             { return menuFactory(f) }
func (f testUoWFactory) asCustomer() commands.CustomerUoWFactory     { return customerFactory(f) }

type dispatchFactory testUoWFactory
type orderingFactory testUoWFactory
type droneFactory testUoWFactory
type restaurantFactory testUoWFactory
type menuFactory testUoWFactory
type customerFactory testUoWFactory

func (f dispatchFactory) Create() commands.DispatchUoW     { return f.factory.Create() }
func (f orderingFactory) Create() commands.OrderingUoW     { return f.factory.Create() }
func (f droneFactory) Create() commands.DroneUoW           { return f.factory.Create() }
func (f restaurantFactory) Create() commands.RestaurantUoW { return f.factory.Create() }
func (f menuFactory) Create() commands.MenuUoW             { return f.factory.Create() }
func (f customerFactory) Create() commands.CustomerUoW     { return f.factory.Create() }

// newTestServer wires the full stack over a JSON file store in a temp dir.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := jsonstore.NewStore(t.TempDir())
	require.NoError(t, err)

	uowFactory := testUoWFactory{factory: jsonstore.NewFileUnitOfWorkFactory(store)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := adapter.NewServer(
		commands.NewCreateOrderCommandHandler(uowFactory.asOrdering()),
		commands.NewAssignDroneCommandHandler(uowFactory.asDispatch()),
		commands.NewChangeOrderStatusCommandHandler(uowFactory.asDispatch()),
		commands.NewRegisterDroneCommandHandler(uowFactory.asDrone()),
		commands.NewUpdateDroneCommandHandler(uowFactory.asDrone()),
		commands.NewRestaurantCommandHandler(uowFactory.asRestaurant()),
		commands.NewMenuItemCommandHandler(uowFactory.asMenu()),
		commands.NewCustomerCommandHandler(uowFactory.asCustomer()),
		queries.NewGetOrderQueryHandler(uowFactory.factory),
		queries.NewListOrdersQueryHandler(uowFactory.factory),
		queries.NewGetOperationalSummaryQueryHandler(uowFactory.factory),
		queries.NewDroneQueryHandler(uowFactory.factory),
		queries.NewRestaurantQueryHandler(uowFactory.factory),
		queries.NewCustomerQueryHandler(uowFactory.factory),
		logger,
	)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func data(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()
	d, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "expected a data envelope, got %v", envelope)
	return d
}

func TestServer_HealthAndRoot(t *testing.T) {
	ts := newTestServer(t)

	status, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", data(t, body)["status"])

	status, body = doJSON(t, http.MethodGet, ts.URL+"/", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "foodfast", data(t, body)["service"])
}

func TestServer_OrderLifecycleEndToEnd(t *testing.T) {
	ts := newTestServer(t)

	// Restaurant with one menu item.
	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/restaurants", map[string]any{
		"name":         "Wok Express",
		"address":      "5 Harbor Road",
		"cuisine":      "chinese",
		"contactPhone": "+3120555001",
	})
	require.Equal(t, http.StatusCreated, status)
	restaurantID := data(t, body)["id"].(string)

	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/restaurants/"+restaurantID+"/menu", map[string]any{
		"name":  "Fried Rice",
		"price": 9.99,
	})
	require.Equal(t, http.StatusCreated, status)
	menuItemID := data(t, body)["id"].(string)

	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/customers", map[string]any{
		"name":    "Dana Reyes",
		"email":   "Dana.Reyes@Example.com",
		"address": "90 Elm Street",
		"phone":   "+3120555002",
	})
	require.Equal(t, http.StatusCreated, status)
	customerID := data(t, body)["id"].(string)
	assert.Equal(t, "dana.reyes@example.com", data(t, body)["email"])

	// Order without auto assignment: stays pending, price 9.99 x 2 + 3.50.
	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders", map[string]any{
		"customerId":   customerID,
		"restaurantId": restaurantID,
		"items": []map[string]any{
			{"menuItemId": menuItemID, "quantity": 2},
		},
		"autoAssignDrone": false,
	})
	require.Equal(t, http.StatusCreated, status)
	created := data(t, body)
	orderID := created["id"].(string)
	assert.Equal(t, "pending", created["status"])
	assert.InDelta(t, 19.98, created["totalPrice"].(float64), 0.001)
	// Delivery address fell back to the customer's stored address.
	assert.Equal(t, "90 Elm Street", created["deliveryAddress"])

	// Register a drone and assign it manually.
	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/drones", map[string]any{
		"identifier":   "DRN-100",
		"maxPayloadKg": 2.5,
		"homeBase":     "hub-north",
	})
	require.Equal(t, http.StatusCreated, status)
	droneID := data(t, body)["id"].(string)
	assert.Equal(t, "available", data(t, body)["status"])

	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/"+orderID+"/assign-drone", map[string]any{
		"droneId": droneID,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "enroute", data(t, body)["status"])
	assert.NotNil(t, data(t, body)["dispatchedAt"])

	// Deliver: the drone is released, the order keeps the reference.
	status, body = doJSON(t, http.MethodPut, ts.URL+"/api/v1/orders/"+orderID+"/status", map[string]any{
		"status": "delivered",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "delivered", data(t, body)["status"])
	assert.Equal(t, droneID, data(t, body)["droneId"])

	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/drones/"+droneID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "available", data(t, body)["status"])

	// Terminal orders reject further transitions.
	status, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/"+orderID+"/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "delivered or cancelled")

	// Summary counts the delivered order's revenue.
	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/orders/summary", nil)
	require.Equal(t, http.StatusOK, status)
	summary := data(t, body)
	assert.Equal(t, float64(1), summary["totalOrders"])
	assert.Equal(t, float64(1), summary["deliveredOrders"])
	assert.InDelta(t, 19.98, summary["revenue"].(float64), 0.001)
}

func TestServer_AutoAssignPicksHighestBattery(t *testing.T) {
	ts := newTestServer(t)

	_, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/restaurants", map[string]any{
		"name":         "Pasta Corner",
		"address":      "2 Mill Lane",
		"cuisine":      "italian",
		"contactPhone": "+3120555003",
	})
	restaurantID := data(t, body)["id"].(string)

	_, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/restaurants/"+restaurantID+"/menu", map[string]any{
		"name":  "Lasagna",
		"price": 14.00,
	})
	menuItemID := data(t, body)["id"].(string)

	_, body = doJSON(t, http.MethodPost, ts.URL+"/api/v1/customers", map[string]any{
		"name":    "Kim Novak",
		"email":   "kim@example.com",
		"address": "4 Side Street",
		"phone":   "+3120555004",
	})
	customerID := data(t, body)["id"].(string)

	for i, battery := range []int{40, 90} {
		status, _ := doJSON(t, http.MethodPost, ts.URL+"/api/v1/drones", map[string]any{
			"identifier":   fmt.Sprintf("DRN-%d", i),
			"maxPayloadKg": 3.0,
			"batteryLevel": battery,
			"homeBase":     "hub-south",
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders", map[string]any{
		"customerId":   customerID,
		"restaurantId": restaurantID,
		"items":        []map[string]any{{"menuItemId": menuItemID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "enroute", data(t, body)["status"])

	// The 90% drone won.
	status, body = doJSON(t, http.MethodGet, ts.URL+"/api/v1/drones", nil)
	require.Equal(t, http.StatusOK, status)
	drones := body["data"].([]any)
	require.Len(t, drones, 2)
	assert.Equal(t, "available", drones[0].(map[string]any)["status"])
	assert.Equal(t, "delivering", drones[1].(map[string]any)["status"])
}

func TestServer_ErrorMapping(t *testing.T) {
	ts := newTestServer(t)

	missingID := "0b8c7f54-1111-4222-8333-444455556666"

	t.Run("unknown order is 404", func(t *testing.T) {
		status, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/orders/"+missingID, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.NotEmpty(t, body["error"])
	})

	t.Run("malformed UUID is 400", func(t *testing.T) {
		status, _ := doJSON(t, http.MethodGet, ts.URL+"/api/v1/orders/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("bad status enum is 400", func(t *testing.T) {
		status, body := doJSON(t, http.MethodPut, ts.URL+"/api/v1/orders/"+missingID+"/status", map[string]any{
			"status": "teleported",
		})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Contains(t, body["error"], "status")
	})

	t.Run("missing droneId is 400", func(t *testing.T) {
		status, body := doJSON(t, http.MethodPost, ts.URL+"/api/v1/orders/"+missingID+"/assign-drone", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "droneId is required", body["error"])
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		status, body := doJSON(t, http.MethodGet, ts.URL+"/api/v1/nonexistent", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "route not found", body["error"])
	})
}
