// Copyright (c) 2026 ERP Cell. All rights reserved.

package library

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
	router.Get("/books", handler.listBooks)

	// Self or Faculty
	router.Get("/students/{id}", handler.studentIssues)

	// Faculty only
	router.Group(func(facultyRoute chi.Router) {
		facultyRoute.Use(middleware.RequireRole(sec.RoleFaculty))

		facultyRoute.Post("/books", handler.addBook)
		facultyRoute.Post("/issues", handler.issueBook)
		facultyRoute.Post("/issues/{id}/return", handler.returnBook)
	})
}

type returnRequest struct {
	ReturnDate string `json:"return_date"`
}

func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	books, err := handler.service.ListBooks(request.Context(), request.URL.Query().Get("q"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, books)
}

func (handler *Handler) addBook(writer http.ResponseWriter, request *http.Request) {
	var input Book
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.AddBook(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) issueBook(writer http.ResponseWriter, request *http.Request) {
	var input IssueInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	issue, err := handler.service.IssueBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, issue)
}

func (handler *Handler) returnBook(writer http.ResponseWriter, request *http.Request) {
	issueID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload returnRequest
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, err)
		return
	}

	issue, err := handler.service.ReturnBook(request.Context(), issueID, payload.ReturnDate)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, issue)
}

func (handler *Handler) studentIssues(writer http.ResponseWriter, request *http.Request) {
	studentID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := requestutil.SelfOrFaculty(request, studentID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	issues, err := handler.service.StudentIssues(request.Context(), studentID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, issues)
}
