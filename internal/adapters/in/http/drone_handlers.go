package http

import (
	"net/http"
	"time"

	"foodfast/internal/core/application/usecases/commands"
	"foodfast/internal/core/application/usecases/queries"
	"foodfast/internal/core/domain/model/drone"
	"foodfast/internal/core/domain/model/kernel"
)

type registerDroneRequest struct {
	Identifier      string     `json:"identifier"`
	Status          string     `json:"status"`
	MaxPayloadKg    float64    `json:"maxPayloadKg"`
	BatteryLevel    *int       `json:"batteryLevel"`
	HomeBase        string     `json:"homeBase"`
	CurrentLocation string     `json:"currentLocation"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
}

func (s *Server) handleRegisterDrone(w http.ResponseWriter, r *Request) {
	var body registerDroneRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// New drones default to available with a full battery.
	status := drone.Available
	if body.Status != "" {
		parsed, err := drone.StatusFromString(body.Status)
		if err != nil {
			s.respondError(w, err)
			return
		}
		status = parsed
	}

	batteryLevel := 100
	if body.BatteryLevel != nil {
		batteryLevel = *body.BatteryLevel
	}

	lastMaintenance := time.Now().UTC()
	if body.LastMaintenance != nil {
		lastMaintenance = *body.LastMaintenance
	}

	cmd, err := commands.NewRegisterDroneCommand(
		kernel.NewUUID(),
		body.Identifier,
		status,
		body.MaxPayloadKg,
		batteryLevel,
		body.HomeBase,
		body.CurrentLocation,
		lastMaintenance,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	registered, err := s.registerDroneHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusCreated, toDroneResponse(registered))
}

func (s *Server) handleListDrones(w http.ResponseWriter, r *Request) {
	drones, err := s.droneQueries.HandleGetAll(r.Context(), queries.NewGetAllDronesQuery())
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toDroneResponses(drones))
}

func (s *Server) handleGetDrone(w http.ResponseWriter, r *Request) {
	droneID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	query, err := queries.NewGetDroneQuery(droneID)
	if err != nil {
		s.respondError(w, err)
		return
	}

	d, err := s.droneQueries.HandleGet(r.Context(), query)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toDroneResponse(d))
}

type updateDroneRequest struct {
	Identifier      *string    `json:"identifier"`
	Status          *string    `json:"status"`
	MaxPayloadKg    *float64   `json:"maxPayloadKg"`
	BatteryLevel    *int       `json:"batteryLevel"`
	HomeBase        *string    `json:"homeBase"`
	CurrentLocation *string    `json:"currentLocation"`
	LastMaintenance *time.Time `json:"lastMaintenance"`
}

func (s *Server) handleUpdateDrone(w http.ResponseWriter, r *Request) {
	droneID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body updateDroneRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var status *drone.Status
	if body.Status != nil {
		parsed, err := drone.StatusFromString(*body.Status)
		if err != nil {
			s.respondError(w, err)
			return
		}
		status = &parsed
	}

	cmd, err := commands.NewUpdateDroneCommand(
		droneID,
		body.Identifier,
		status,
		body.MaxPayloadKg,
		body.BatteryLevel,
		body.HomeBase,
		body.CurrentLocation,
		body.LastMaintenance,
	)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.updateDroneHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toDroneResponse(updated))
}

type changeDroneStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleChangeDroneStatus(w http.ResponseWriter, r *Request) {
	droneID, err := parseUUID("id", r.Params["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}

	var body changeDroneStatusRequest
	if err := r.Bind(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}

	status, err := drone.StatusFromString(body.Status)
	if err != nil {
		s.respondError(w, err)
		return
	}

	cmd, err := commands.NewChangeDroneStatusCommand(droneID, status)
	if err != nil {
		s.respondError(w, err)
		return
	}

	updated, err := s.updateDroneHandler.Handle(r.Context(), cmd)
	if err != nil {
		s.respondError(w, err)
		return
	}

	writeData(w, http.StatusOK, toDroneResponse(updated))
}
