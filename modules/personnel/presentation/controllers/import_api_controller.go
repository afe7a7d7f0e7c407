package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/importing"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/presentation/mappers"
	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
)

type ImportAPIController struct {
	imports       *services.ImportService
	basePath      string
	maxUploadSize int64
}

func NewImportAPIController(imports *services.ImportService, maxUploadSize int64) *ImportAPIController {
	return &ImportAPIController{
		imports:       imports,
		basePath:      "/personnel/api/import",
		maxUploadSize: maxUploadSize,
	}
}

func (c *ImportAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("", c.Start).Methods(http.MethodPost)
	router.HandleFunc("/{id}", c.Get).Methods(http.MethodGet)
	router.HandleFunc("/{id}", c.Discard).Methods(http.MethodDelete)
	router.HandleFunc("/{id}/rows/{rowId}", c.UpdateField).Methods(http.MethodPatch)
	router.HandleFunc("/{id}/rows/{rowId}/toggle", c.ToggleSelection).Methods(http.MethodPost)
	router.HandleFunc("/{id}/toggle-all", c.ToggleAll).Methods(http.MethodPost)
	router.HandleFunc("/{id}/check", c.CheckDuplicates).Methods(http.MethodPost)
	router.HandleFunc("/{id}/commit", c.Commit).Methods(http.MethodPost)
}

// Start accepts a multipart upload with a "file" part and opens an import
// session over it.
func (c *ImportAPIController) Start(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxUploadSize)
	if err := r.ParseMultipartForm(c.maxUploadSize); err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_UPLOAD", "invalid multipart upload")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_MISSING_FILE", `missing "file" part`)
		return
	}
	defer func() { _ = file.Close() }()

	session, err := c.imports.Start(r.Context(), file)
	if err != nil {
		writeAPIError(w, http.StatusUnprocessableEntity, "IMPORT_PARSE_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, mappers.SessionToViewModel(session))
}

func (c *ImportAPIController) session(w http.ResponseWriter, r *http.Request) (*importing.Session, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_ID", "invalid session id")
		return nil, false
	}
	session, err := c.imports.Get(id)
	if err != nil {
		writeAPIError(w, http.StatusNotFound, "IMPORT_SESSION_NOT_FOUND", "import session not found")
		return nil, false
	}
	return session, true
}

func (c *ImportAPIController) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, mappers.SessionToViewModel(session))
}

func (c *ImportAPIController) UpdateField(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	rowID, err := uuid.Parse(mux.Vars(r)["rowId"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_ROW_ID", "invalid row id")
		return
	}
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_JSON", "invalid json")
		return
	}
	if err := session.UpdateField(rowID, body.Field, body.Value); err != nil {
		switch {
		case errors.Is(err, importing.ErrRowNotFound):
			writeAPIError(w, http.StatusNotFound, "IMPORT_ROW_NOT_FOUND", "row not found")
		case errors.Is(err, importing.ErrUnknownField):
			writeAPIError(w, http.StatusBadRequest, "IMPORT_UNKNOWN_FIELD", "unknown field")
		default:
			writeAPIError(w, http.StatusInternalServerError, "IMPORT_INTERNAL", "internal error")
		}
		return
	}
	writeJSON(w, http.StatusOK, mappers.SessionToViewModel(session))
}

func (c *ImportAPIController) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	rowID, err := uuid.Parse(mux.Vars(r)["rowId"])
	if err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_ROW_ID", "invalid row id")
		return
	}
	if err := session.ToggleSelection(rowID); err != nil {
		writeAPIError(w, http.StatusNotFound, "IMPORT_ROW_NOT_FOUND", "row not found")
		return
	}
	writeJSON(w, http.StatusOK, mappers.SessionToViewModel(session))
}

func (c *ImportAPIController) ToggleAll(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	var body struct {
		Checked bool `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeAPIError(w, http.StatusBadRequest, "IMPORT_INVALID_JSON", "invalid json")
		return
	}
	session.ToggleAll(body.Checked)
	writeJSON(w, http.StatusOK, mappers.SessionToViewModel(session))
}

func (c *ImportAPIController) CheckDuplicates(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	if err := session.CheckDuplicates(r.Context()); err != nil {
		// Fails closed: the batch stays unchecked, commit stays refused.
		writeAPIError(w, http.StatusBadGateway, "IMPORT_CHECK_FAILED", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, mappers.SessionToViewModel(session))
}

func (c *ImportAPIController) Commit(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	result, err := c.imports.Commit(r.Context(), session.ID())
	if err != nil {
		switch {
		case errors.Is(err, importing.ErrNotChecked):
			writeAPIError(w, http.StatusConflict, "IMPORT_NOT_CHECKED", "duplicate check required before commit")
		case errors.Is(err, importing.ErrNothingToCommit):
			writeAPIError(w, http.StatusConflict, "IMPORT_NOTHING_TO_COMMIT", "no valid selected rows to commit")
		default:
			writeAPIError(w, http.StatusInternalServerError, "IMPORT_COMMIT_FAILED", err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"attempted": result.Attempted,
		"succeeded": result.Succeeded,
		"failures":  result.Failures,
		"remaining": result.Remaining,
		"completed": result.Remaining == 0,
	})
}

func (c *ImportAPIController) Discard(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r)
	if !ok {
		return
	}
	c.imports.Discard(session.ID())
	writeJSON(w, http.StatusOK, map[string]any{"discarded": true})
}
