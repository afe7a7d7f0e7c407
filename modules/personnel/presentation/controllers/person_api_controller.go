package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/domain/aggregates/person"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/presentation/mappers"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/presentation/viewmodels"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
)

type PersonAPIController struct {
	persons  *services.PersonService
	export   *services.ExcelExportService
	basePath string
	pageSize int
	maxPage  int
}

func NewPersonAPIController(persons *services.PersonService, export *services.ExcelExportService, pageSize, maxPageSize int) *PersonAPIController {
	return &PersonAPIController{
		persons:  persons,
		export:   export,
		basePath: "/personnel/api",
		pageSize: pageSize,
		maxPage:  maxPageSize,
	}
}

func (c *PersonAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/persons", c.List).Methods(http.MethodGet)
	router.HandleFunc("/persons", c.Create).Methods(http.MethodPost)
	router.HandleFunc("/persons/export", c.Export).Methods(http.MethodGet)
	router.HandleFunc("/persons/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/persons/{id}", c.Update).Methods(http.MethodPut)
	router.HandleFunc("/persons/{id}", c.Delete).Methods(http.MethodDelete)
}

func (c *PersonAPIController) findParams(r *http.Request) *person.FindParams {
	params := &person.FindParams{
		Q:     strings.TrimSpace(r.URL.Query().Get("q")),
		Limit: c.pageSize,
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= c.maxPage {
			params.Limit = parsed
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			params.Offset = parsed
		}
	}
	if v := r.URL.Query().Get("unitId"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			params.UnitID = id
		}
	}
	if v := r.URL.Query().Get("status"); v != "" {
		params.Status = person.Status(v)
	}
	return params
}

func (c *PersonAPIController) List(w http.ResponseWriter, r *http.Request) {
	items, total, err := c.persons.GetPaginated(r.Context(), c.findParams(r))
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "PERSON_INTERNAL", "internal error")
		return
	}
	out := make([]viewmodels.Person, 0, len(items))
	for _, p := range items {
		out = append(out, mappers.PersonToViewModel(p))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items": out,
		"total": total,
	})
}

func (c *PersonAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "PERSON_INVALID_ID", "invalid person id")
		return
	}
	p, err := c.persons.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, person.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "PERSON_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, mappers.PersonToViewModel(p))
}

func (c *PersonAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var dto person.CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, http.StatusBadRequest, "PERSON_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":   "PERSON_VALIDATION_FAILED",
				"fields": errs,
			},
		})
		return
	}
	created, err := c.persons.Create(r.Context(), &dto)
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "PERSON_CREATE_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, mappers.PersonToViewModel(created))
}

func (c *PersonAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "PERSON_INVALID_ID", "invalid person id")
		return
	}
	var dto person.UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeAPIError(w, http.StatusBadRequest, "PERSON_INVALID_JSON", "invalid json")
		return
	}
	if errs, ok := dto.Ok(); !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": map[string]any{
				"code":   "PERSON_VALIDATION_FAILED",
				"fields": errs,
			},
		})
		return
	}
	if err := c.persons.Update(r.Context(), id, &dto); err != nil {
		if errors.Is(err, person.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "PERSON_UPDATE_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": true})
}

func (c *PersonAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "PERSON_INVALID_ID", "invalid person id")
		return
	}
	deleted, err := c.persons.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, person.ErrNotFound) {
			writeAPIError(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
			return
		}
		writeAPIError(w, http.StatusInternalServerError, "PERSON_DELETE_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mappers.PersonToViewModel(deleted))
}

func (c *PersonAPIController) Export(w http.ResponseWriter, r *http.Request) {
	data, err := c.export.ExportRoster(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "PERSON_EXPORT_FAILED", err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="personnel.xlsx"`)
	_, _ = w.Write(data)
}
