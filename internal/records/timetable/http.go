// Copyright (c) 2026 ERP Cell. All rights reserved.

package timetable

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
	// Authenticated reads
	router.Get("/", handler.listEntries)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/", handler.createEntry)
		facultyRoute.Delete("/{id}", handler.deleteEntry)
	})
}

func (handler *Handler) listEntries(writer http.ResponseWriter, request *http.Request) {
	queryValues := request.URL.Query()

	entries, err := handler.service.ListEntries(request.Context(), Filter{
		DeptID:    convert.ToInt64(queryValues.Get("dept_id")),
		Semester:  convert.ToInt(queryValues.Get("semester")),
		Day:       queryValues.Get("day"),
		FacultyID: convert.ToInt64(queryValues.Get("faculty_id")),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, entries)
}

func (handler *Handler) createEntry(writer http.ResponseWriter, request *http.Request) {
	var input Entry
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateEntry(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) deleteEntry(writer http.ResponseWriter, request *http.Request) {
	entryID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteEntry(request.Context(), entryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
