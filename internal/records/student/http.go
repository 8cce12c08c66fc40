// Copyright (c) 2026 ERP Cell. All rights reserved.

package student

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erpcell/erpcell/internal/platform/middleware"
	requestutil "github.com/erpcell/erpcell/internal/platform/request"
	"github.com/erpcell/erpcell/internal/platform/respond"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Self or Faculty (checked per-request against the target ID)
	router.Get("/{id}", handler.getStudent)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Get("/", handler.listStudents)
		facultyRoute.Post("/", handler.createStudent)
		facultyRoute.Put("/{id}", handler.updateStudent)
		facultyRoute.Delete("/{id}", handler.deleteStudent)
	})
}

func (handler *Handler) listStudents(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	students, total, err := handler.service.ListStudents(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, students, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Students may read their own record; Faculty may read any.
	if err := requestutil.SelfOrFaculty(request, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	student, err := handler.service.GetStudent(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, student)
}

func (handler *Handler) createStudent(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateStudent(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Student
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateStudent(request.Context(), studentID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteStudent(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteStudent(request.Context(), studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
