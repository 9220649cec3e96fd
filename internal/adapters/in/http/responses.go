package http

import (
	"time"

	"foodfast/internal/core/domain/model/customer"
	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/order"
	"foodfast/internal/core/domain/model/restaurant"
)

// Response bodies mirror the wire format: identifiers as canonical UUID
// strings, money as two-decimal numbers, statuses as their lower-case names.

type orderLineResponse struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	LineTotal  float64 `json:"lineTotal"`
}

type orderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customerId"`
	RestaurantID    string              `json:"restaurantId"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Instructions    string              `json:"instructions,omitempty"`
	Items           []orderLineResponse `json:"items"`
	TotalPrice      float64             `json:"totalPrice"`
	Status          string              `json:"status"`
	DroneID         *string             `json:"droneId"`
	AutoAssign      bool                `json:"autoAssign"`
	CreatedAt       time.Time           `json:"createdAt"`
	DispatchedAt    *time.Time          `json:"dispatchedAt"`
	DeliveredAt     *time.Time          `json:"deliveredAt"`
	CancelledAt     *time.Time          `json:"cancelledAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		items = append(items, orderLineResponse{
			MenuItemID: line.MenuItemID().String(),
			Name:       line.Name(),
			Quantity:   line.Quantity(),
			UnitPrice:  line.UnitPrice().Float64(),
			LineTotal:  line.Total().Float64(),
		})
	}

	var droneID *string
	if o.Drone() != nil {
		s := o.Drone().String()
		droneID = &s
	}

	return orderResponse{
		ID:              o.ID().String(),
		CustomerID:      o.CustomerID().String(),
		RestaurantID:    o.RestaurantID().String(),
		DeliveryAddress: o.DeliveryAddress(),
		Instructions:    o.Instructions(),
		Items:           items,
		TotalPrice:      o.TotalPrice().Float64(),
		Status:          o.Status().String(),
		DroneID:         droneID,
		AutoAssign:      o.AutoAssign(),
		CreatedAt:       o.CreatedAt(),
		DispatchedAt:    o.DispatchedAt(),
		DeliveredAt:     o.DeliveredAt(),
		CancelledAt:     o.CancelledAt(),
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}

type droneResponse struct {
	ID              string    `json:"id"`
	Identifier      string    `json:"identifier"`
	Status          string    `json:"status"`
	MaxPayloadKg    float64   `json:"maxPayloadKg"`
	BatteryLevel    int       `json:"batteryLevel"`
	HomeBase        string    `json:"homeBase"`
	CurrentLocation string    `json:"currentLocation"`
	LastMaintenance time.Time `json:"lastMaintenance"`
}

func toDroneResponse(d *drone.Drone) droneResponse {
	return droneResponse{
		ID:              d.ID().String(),
		Identifier:      d.Identifier(),
		Status:          d.Status().String(),
		MaxPayloadKg:    d.MaxPayloadKg(),
		BatteryLevel:    d.BatteryLevel(),
		HomeBase:        d.HomeBase(),
		CurrentLocation: d.CurrentLocation(),
		LastMaintenance: d.LastMaintenance(),
	}
}

func toDroneResponses(drones []*drone.Drone) []droneResponse {
	responses := make([]droneResponse, 0, len(drones))
	for _, d := range drones {
		responses = append(responses, toDroneResponse(d))
	}
	return responses
}

type restaurantResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Cuisine      string   `json:"cuisine"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail,omitempty"`
	Description  string   `json:"description,omitempty"`
	Rating       *float64 `json:"rating"`
}

func toRestaurantResponse(r *restaurant.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:           r.ID().String(),
		Name:         r.Name(),
		Address:      r.Address(),
		Cuisine:      r.Cuisine(),
		ContactPhone: r.ContactPhone(),
		ContactEmail: r.ContactEmail(),
		Description:  r.Description(),
		Rating:       r.Rating(),
	}
}

func toRestaurantResponses(restaurants []*restaurant.Restaurant) []restaurantResponse {
	responses := make([]restaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		responses = append(responses, toRestaurantResponse(r))
	}
	return responses
}

type menuItemResponse struct {
	ID              string   `json:"id"`
	RestaurantID    string   `json:"restaurantId"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	IsAvailable     bool     `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime"`
	Tags            []string `json:"tags"`
}

func toMenuItemResponse(mi *restaurant.MenuItem) menuItemResponse {
	tags := mi.Tags()
	if tags == nil {
		tags = []string{}
	}

	return menuItemResponse{
		ID:              mi.ID().String(),
		RestaurantID:    mi.RestaurantID().String(),
		Name:            mi.Name(),
		Description:     mi.Description(),
		Price:           mi.Price().Float64(),
		IsAvailable:     mi.IsAvailable(),
		PreparationTime: mi.PreparationTime(),
		Tags:            tags,
	}
}

func toMenuItemResponses(items []*restaurant.MenuItem) []menuItemResponse {
	responses := make([]menuItemResponse, 0, len(items))
	for _, mi := range items {
		responses = append(responses, toMenuItemResponse(mi))
	}
	return responses
}

type customerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func toCustomerResponse(c *customer.Customer) customerResponse {
	return customerResponse{
		ID:      c.ID().String(),
		Name:    c.Name(),
		Email:   c.Email(),
		Address: c.Address(),
		Phone:   c.Phone(),
	}
}

func toCustomerResponses(customers []*customer.Customer) []customerResponse {
	responses := make([]customerResponse, 0, len(customers))
	for _, c := range customers {
		responses = append(responses, toCustomerResponse(c))
	}
	return responses
}

type summaryResponse struct {
	TotalOrders         int     `json:"totalOrders"`
	DeliveredOrders     int     `json:"deliveredOrders"`
	AwaitingDroneOrders int     `json:"awaitingDroneOrders"`
	Revenue             float64 `json:"revenue"`
}
