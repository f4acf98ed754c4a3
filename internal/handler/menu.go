package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/restu-food/api/internal/catalog"
)

// MenuStore defines the catalog methods needed by menu handlers.
// Satisfied by *catalog.Store; narrow interface for testability.
type MenuStore interface {
	List() []catalog.MenuItem
	Categories() []catalog.Category
	Popular() []catalog.MenuItem
}

// MenuHandler serves the browsable catalog.
type MenuHandler struct {
	store MenuStore
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(store MenuStore) *MenuHandler {
	return &MenuHandler{store: store}
}

// RegisterRoutes registers menu endpoints on the given Chi router.
// Expected to be mounted at /menu.
func (h *MenuHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/categories", h.Categories)
	r.Get("/popular", h.Popular)
}

// --- Response types ---

type menuItemResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Image       string   `json:"image"`
	Rating      float64  `json:"rating"`
	Category    string   `json:"category"`
	IsPopular   bool     `json:"is_popular"`
	Tags        []string `json:"tags"`
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func toMenuItemResponse(m catalog.MenuItem) menuItemResponse {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return menuItemResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price.StringFixed(2),
		Image:       m.Image,
		Rating:      m.Rating,
		Category:    m.Category,
		IsPopular:   m.IsPopular,
		Tags:        tags,
	}
}

func toMenuItemListResponse(items []catalog.MenuItem) []menuItemResponse {
	resp := make([]menuItemResponse, len(items))
	for i, item := range items {
		resp[i] = toMenuItemResponse(item)
	}
	return resp
}

// --- Handlers ---

// List returns the catalog filtered and sorted by the query parameters
// q, category, tags (comma-separated) and sort. Unknown filter values
// simply match nothing and an unknown sort key falls back to the popular
// ordering; an empty result is a valid response, not an error.
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	q := catalog.Query{
		Text:     r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Sort:     r.URL.Query().Get("sort"),
	}
	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Tags = append(q.Tags, tag)
			}
		}
	}

	items := catalog.Apply(h.store.List(), q)
	writeJSON(w, http.StatusOK, toMenuItemListResponse(items))
}

// Categories returns the menu tabs in display order.
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	cats := h.store.Categories()
	resp := make([]categoryResponse, len(cats))
	for i, c := range cats {
		resp[i] = categoryResponse{ID: c.ID, Name: c.Name}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Popular returns the items flagged popular, for the home page section.
func (h *MenuHandler) Popular(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toMenuItemListResponse(h.store.Popular()))
}
