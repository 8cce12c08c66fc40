// Copyright (c) 2026 ERP Cell. All rights reserved.

package faculty

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erpcell/erpcell/internal/platform/middleware"
	requestutil "github.com/erpcell/erpcell/internal/platform/request"
	"github.com/erpcell/erpcell/internal/platform/respond"
	"github.com/erpcell/erpcell/internal/platform/sec"
	"github.com/erpcell/erpcell/pkg/convert"
	"github.com/erpcell/erpcell/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Faculty only, including reads: student accounts have no business
	// listing staff contact details.
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Get("/", handler.listFaculty)
		facultyRoute.Get("/{id}", handler.getFaculty)
		facultyRoute.Post("/", handler.createFaculty)
		facultyRoute.Put("/{id}", handler.updateFaculty)
		facultyRoute.Delete("/{id}", handler.deleteFaculty)
	})
}

func (handler *Handler) listFaculty(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query:        request.URL.Query().Get("q"),
		DepartmentID: convert.ToInt64(request.URL.Query().Get("dept_id")),
	}

	members, total, err := handler.service.ListFaculty(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getFaculty(writer http.ResponseWriter, request *http.Request) {
	facultyID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.GetFaculty(request.Context(), facultyID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, member)
}

func (handler *Handler) createFaculty(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.CreateFaculty(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, created)
}

func (handler *Handler) updateFaculty(writer http.ResponseWriter, request *http.Request) {
	facultyID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Faculty
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateFaculty(request.Context(), facultyID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteFaculty(writer http.ResponseWriter, request *http.Request) {
	facultyID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteFaculty(request.Context(), facultyID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
