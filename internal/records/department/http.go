// Copyright (c) 2026 ERP Cell. All rights reserved.

package department

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
	// Authenticated reads
	router.Get("/", handler.listDepartments)
	router.Get("/{id}", handler.getDepartment)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/", handler.createDepartment)
		facultyRoute.Put("/{id}", handler.updateDepartment)
		facultyRoute.Delete("/{id}", handler.deleteDepartment)
	})
}

func (handler *Handler) listDepartments(writer http.ResponseWriter, request *http.Request) {
	departments, err := handler.service.ListDepartments(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, departments)
}

func (handler *Handler) getDepartment(writer http.ResponseWriter, request *http.Request) {
	departmentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	department, err := handler.service.GetDepartment(request.Context(), departmentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, department)
}

func (handler *Handler) createDepartment(writer http.ResponseWriter, request *http.Request) {
	var input Department
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateDepartment(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateDepartment(writer http.ResponseWriter, request *http.Request) {
	departmentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Department
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateDepartment(request.Context(), departmentID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteDepartment(writer http.ResponseWriter, request *http.Request) {
	departmentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDepartment(request.Context(), departmentID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
