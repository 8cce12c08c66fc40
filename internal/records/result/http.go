// Copyright (c) 2026 ERP Cell. All rights reserved.

package result

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erpcell/erpcell/internal/platform/middleware"
	requestutil "github.com/erpcell/erpcell/internal/platform/request"
	"github.com/erpcell/erpcell/internal/platform/respond"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/pkg/convert"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Self or Faculty
	router.Get("/students/{id}", handler.studentResults)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/", handler.enterMarks)
		facultyRoute.Get("/subjects/{id}", handler.subjectResults)
	})
}

func (handler *Handler) enterMarks(writer http.ResponseWriter, request *http.Request) {
	var input EnterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.service.EnterMarks(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, record)
}

func (handler *Handler) studentResults(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.SelfOrFaculty(request, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	semester := convert.ToInt(request.URL.Query().Get("semester"))

	results, err := handler.service.StudentResults(request.Context(), studentID, semester)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, results)
}

func (handler *Handler) subjectResults(writer http.ResponseWriter, request *http.Request) {
	subjectID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	results, err := handler.service.SubjectResults(request.Context(), subjectID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, results)
}
