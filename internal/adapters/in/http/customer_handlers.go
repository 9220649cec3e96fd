package http

import (
	"net/http"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/domain/model/kernel"
)

type createCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (s *Server) handleCreateCustomer(w http.ResponseWriter, r *Request) {
	var body createCustomerRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd, err := commands.NewCreateCustomerCommand(
		kernel.NewUUID(),
		body.Name,
		body.Email,
		body.Address,
		body.Phone,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	created, err := s.customerHandler.HandleCreate(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toCustomerResponse(created))
}

func (s *Server) handleListCustomers(w http.ResponseWriter, r *Request) {
	customers, err := s.customerQueries.HandleGetAll(r.Context(), queries.NewGetAllCustomersQuery())
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCustomerResponses(customers))
}

func (s *Server) handleGetCustomer(w http.ResponseWriter, r *Request) {
	customerID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	query, err := queries.NewGetCustomerQuery(customerID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	found, err := s.customerQueries.HandleGet(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCustomerResponse(found))
}

type updateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

func (s *Server) handleUpdateCustomer(w http.ResponseWriter, r *Request) {
	customerID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body updateCustomerRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		customerID,
		body.Name,
		body.Email,
		body.Address,
		body.Phone,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.customerHandler.HandleUpdate(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toCustomerResponse(updated))
}
