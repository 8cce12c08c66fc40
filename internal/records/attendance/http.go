// Copyright (c) 2026 ERP Cell. All rights reserved.

package attendance

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
	router.Get("/students/{id}", handler.studentSummary)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/", handler.markSheet)
		facultyRoute.Get("/subjects/{id}", handler.getSheet)
	})
}

type markResponse struct {
	Marked int `json:"marked"`
}

func (handler *Handler) markSheet(writer http.ResponseWriter, request *http.Request) {
	var input MarkInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	marked, err := handler.service.MarkSheet(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, markResponse{Marked: marked})
}

func (handler *Handler) getSheet(writer http.ResponseWriter, request *http.Request) {
	subjectID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entries, err := handler.service.GetSheet(request.Context(), subjectID, request.URL.Query().Get("date"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) studentSummary(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.SelfOrFaculty(request, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	summaries, err := handler.service.StudentSummary(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summaries)
}
