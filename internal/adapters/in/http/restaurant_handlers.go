package http

import (
	"net/http"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/domain/model/kernel"
	"foodfast/internal/pkg/errs"
)

type createRestaurantRequest struct {
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Cuisine      string   `json:"cuisine"`
	ContactPhone string   `json:"contactPhone"`
	ContactEmail string   `json:"contactEmail"`
	Description  string   `json:"description"`
	Rating       *float64 `json:"rating"`
}

func (s *Server) handleCreateRestaurant(w http.ResponseWriter, r *Request) {
	var body createRestaurantRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd, err := commands.NewCreateRestaurantCommand(
		kernel.NewUUID(),
		body.Name,
		body.Address,
		body.Cuisine,
		body.ContactPhone,
		body.ContactEmail,
		body.Description,
		body.Rating,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	created, err := s.restaurantHandler.HandleCreate(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toRestaurantResponse(created))
}

func (s *Server) handleListRestaurants(w http.ResponseWriter, r *Request) {
	restaurants, err := s.restaurantQueries.HandleGetAll(r.Context(), queries.NewGetAllRestaurantsQuery())
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toRestaurantResponses(restaurants))
}

func (s *Server) handleGetRestaurant(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	query, err := queries.NewGetRestaurantQuery(restaurantID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	found, err := s.restaurantQueries.HandleGet(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toRestaurantResponse(found))
}

type updateRestaurantRequest struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Cuisine      *string  `json:"cuisine"`
	ContactPhone *string  `json:"contactPhone"`
	ContactEmail *string  `json:"contactEmail"`
	Description  *string  `json:"description"`
	Rating       *float64 `json:"rating"`
}

func (s *Server) handleUpdateRestaurant(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body updateRestaurantRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd, err := commands.NewUpdateRestaurantCommand(
		restaurantID,
		body.Name,
		body.Address,
		body.Cuisine,
		body.ContactPhone,
		body.ContactEmail,
		body.Description,
		body.Rating,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.restaurantHandler.HandleUpdate(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toRestaurantResponse(updated))
}

func (s *Server) handleDeleteRestaurant(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	cmd, err := commands.NewDeleteRestaurantCommand(restaurantID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.restaurantHandler.HandleDelete(r.Context(), cmd); err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"deleted": restaurantID.String()})
}

func (s *Server) handleGetMenu(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	query, err := queries.NewGetMenuQuery(restaurantID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	menu, err := s.restaurantQueries.HandleGetMenu(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toMenuItemResponses(menu))
}

type addMenuItemRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime"`
	Tags            []string `json:"tags"`
}

func (s *Server) handleAddMenuItem(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body addMenuItemRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	price, err := kernel.NewMoneyFromFloat(body.Price)
	if err != nil {
		s.respondError(w, errs.NewValueIsInvalidErrorWithCause("price", err))
		return
	}

	// Items default to available when the field is omitted.
	isAvailable := true
	if body.IsAvailable != nil {
		isAvailable = *body.IsAvailable
	}

	cmd, err := commands.NewAddMenuItemCommand(
		kernel.NewUUID(),
		restaurantID,
		body.Name,
		body.Description,
		price,
		isAvailable,
		body.PreparationTime,
		body.Tags,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	added, err := s.menuItemHandler.HandleAdd(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toMenuItemResponse(added))
}

type updateMenuItemRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime *int     `json:"preparationTime"`
	Tags            []string `json:"tags"`
}

func (s *Server) handleUpdateMenuItem(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	menuItemID, err := parseUUID("menuItemId", r.Params["menuItemId"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body updateMenuItemRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var price *kernel.Money
	if body.Price != nil {
		parsed, err := kernel.NewMoneyFromFloat(*body.Price)
		if err != nil {
			s.respondError(w, errs.NewValueIsInvalidErrorWithCause("price", err))
			return
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		menuItemID,
		restaurantID,
		body.Name,
		body.Description,
		price,
		body.IsAvailable,
		body.PreparationTime,
		body.Tags,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.menuItemHandler.HandleUpdate(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toMenuItemResponse(updated))
}

func (s *Server) handleRemoveMenuItem(w http.ResponseWriter, r *Request) {
	restaurantID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	menuItemID, err := parseUUID("menuItemId", r.Params["menuItemId"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	cmd, err := commands.NewRemoveMenuItemCommand(menuItemID, restaurantID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.menuItemHandler.HandleRemove(r.Context(), cmd); err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"deleted": menuItemID.String()})
}
