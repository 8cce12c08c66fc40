// Copyright (c) 2026 ERP Cell. All rights reserved.

package fee

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erpcell/erpcell/internal/platform/middleware"
	requestutil "github.com/erpcell/erpcell/internal/platform/request"
	"github.com/erpcell/erpcell/internal/platform/respond"
	"github.com/erpcell/erpcell/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Self or Faculty
	router.Get("/students/{id}", handler.studentHistory)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/", handler.recordFee)
		facultyRoute.Post("/{id}/settle", handler.settleFee)
	})
}

type settleRequest struct {
	PaidDate string `json:"paid_date"`
}

func (handler *Handler) recordFee(writer http.ResponseWriter, request *http.Request) {
	var input Fee
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RecordFee(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) settleFee(writer http.ResponseWriter, request *http.Request) {
	feeID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload settleRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	fee, err := handler.service.SettleFee(request.Context(), feeID, payload.PaidDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, fee)
}

func (handler *Handler) studentHistory(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.SelfOrFaculty(request, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	history, err := handler.service.StudentHistory(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, history)
}
