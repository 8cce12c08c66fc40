// Copyright (c) 2026 ERP Cell. All rights reserved.

package subject

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
	router.Get("/", handler.listSubjects)
	router.Get("/{id}", handler.getSubject)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/", handler.createSubject)
		facultyRoute.Put("/{id}", handler.updateSubject)
		facultyRoute.Delete("/{id}", handler.deleteSubject)
	})
}

func (handler *Handler) listSubjects(writer http.ResponseWriter, request *http.Request) {
	subjects, err := handler.service.ListSubjects(request.Context(), Filter{
		DeptID:   convert.ToInt64(request.URL.Query().Get("dept_id")),
		Semester: convert.ToInt(request.URL.Query().Get("semester")),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subjects)
}

func (handler *Handler) getSubject(writer http.ResponseWriter, request *http.Request) {
	subjectID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	subject, err := handler.service.GetSubject(request.Context(), subjectID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, subject)
}

func (handler *Handler) createSubject(writer http.ResponseWriter, request *http.Request) {
	var input Subject
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSubject(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateSubject(writer http.ResponseWriter, request *http.Request) {
	subjectID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Subject
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSubject(request.Context(), subjectID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteSubject(writer http.ResponseWriter, request *http.Request) {
	subjectID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSubject(request.Context(), subjectID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
