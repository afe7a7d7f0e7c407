package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oblik-ua/oblik-sdk/modules/personnel/services"
)

type DictionaryAPIController struct {
	dicts    *services.DictionaryService
	basePath string
}

func NewDictionaryAPIController(dicts *services.DictionaryService) *DictionaryAPIController {
	return &DictionaryAPIController{dicts: dicts, basePath: "/personnel/api/dictionaries"}
}

func (c *DictionaryAPIController) Register(r *mux.Router) {
	router := r.PathPrefix(c.basePath).Subrouter()
	router.HandleFunc("/units", c.Units).Methods(http.MethodGet)
	router.HandleFunc("/positions", c.Positions).Methods(http.MethodGet)
	router.HandleFunc("/ranks", c.Ranks).Methods(http.MethodGet)
	router.HandleFunc("/roles", c.Roles).Methods(http.MethodGet)
	router.HandleFunc("/directions", c.Directions).Methods(http.MethodGet)
	router.HandleFunc("/search", c.Search).Methods(http.MethodGet)
}

func (c *DictionaryAPIController) Units(w http.ResponseWriter, r *http.Request) {
	items, err := c.dicts.Units(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DICTIONARY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *DictionaryAPIController) Positions(w http.ResponseWriter, r *http.Request) {
	items, err := c.dicts.Positions(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DICTIONARY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *DictionaryAPIController) Ranks(w http.ResponseWriter, r *http.Request) {
	items, err := c.dicts.Ranks(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DICTIONARY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *DictionaryAPIController) Roles(w http.ResponseWriter, r *http.Request) {
	items, err := c.dicts.Roles(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DICTIONARY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *DictionaryAPIController) Directions(w http.ResponseWriter, r *http.Request) {
	items, err := c.dicts.Directions(r.Context())
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DICTIONARY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (c *DictionaryAPIController) Search(w http.ResponseWriter, r *http.Request) {
	hits, err := c.dicts.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeAPIError(w, http.StatusInternalServerError, "DICTIONARY_INTERNAL", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": hits})
}
