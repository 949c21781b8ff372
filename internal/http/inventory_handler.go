package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bookstore/internal/httpx"
	"bookstore/internal/inventory"
)

type InventoryHandler struct {
	svc *inventory.Service
}

func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// AddBookRequest carries the add-book form fields. Prices arrive as text,
// exactly as the form produces them, and are parsed here so a malformed
// value never reaches the store.
type AddBookRequest struct {
	Title          string `json:"title" validate:"required"`
	Genre          string `json:"genre"`
	Author         string `json:"author"`
	Year           int    `json:"year_published"`
	Pages          int    `json:"pages"`
	Medium         string `json:"medium"`
	WholesalePrice string `json:"wholesale_price" validate:"required"`
	RetailPrice    string `json:"retail_price" validate:"required"`
}

// parsePrice converts a form price field to a non-negative decimal.
func parsePrice(field, raw string) (float64, *httpx.ErrorDetail) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, &httpx.ErrorDetail{Field: field, Message: "must be a number"}
	}
	if v < 0 {
		return 0, &httpx.ErrorDetail{Field: field, Message: "must not be negative"}
	}
	return v, nil
}

// @Summary List books
// @Description Get books filtered by exact genre or author match
// @Tags books
// @Produce json
// @Param genre query string false "Filter by genre"
// @Param author query string false "Filter by author"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	genre := r.URL.Query().Get("genre")
	author := r.URL.Query().Get("author")

	var (
		books []inventory.Book
		err   error
	)
	switch {
	case genre != "":
		books, err = h.svc.BooksByGenre(ctx, genre)
	case author != "":
		books, err = h.svc.BooksByAuthor(ctx, author)
	default:
		httpx.JSONError(r, w, http.StatusBadRequest, "MISSING_FILTER", "genre or author query parameter is required", nil)
		return
	}
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}

	if books == nil {
		books = []inventory.Book{}
	}
	httpx.JSONSuccess(r, w, books)
}

// @Summary Add a book
// @Description Create a book with its catalog and store records
// @Tags books
// @Accept json
// @Produce json
// @Param book body AddBookRequest true "Book fields"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *InventoryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON", nil)
		return
	}

	if verrs := ValidateStruct(req); verrs != nil {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, ve := range verrs {
			details = append(details, httpx.ErrorDetail{Field: ve.Field, Message: ve.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid book fields", details)
		return
	}

	var details []httpx.ErrorDetail
	wholesale, derr := parsePrice("wholesale_price", req.WholesalePrice)
	if derr != nil {
		details = append(details, *derr)
	}
	retail, derr := parsePrice("retail_price", req.RetailPrice)
	if derr != nil {
		details = append(details, *derr)
	}
	if details != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "CONVERSION_ERROR", "price fields must be non-negative numbers", details)
		return
	}

	id, err := h.svc.AddBook(r.Context(), inventory.NewBook{
		Title:          req.Title,
		Genre:          req.Genre,
		Author:         req.Author,
		Year:           req.Year,
		Pages:          req.Pages,
		Medium:         req.Medium,
		WholesalePrice: wholesale,
		RetailPrice:    retail,
	})
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}

	httpx.JSONSuccessCreated(r, w, map[string]any{"book_id": id})
}

// @Summary Delete a book
// @Description Remove a book and its catalog and store records by id
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	// /books/{id} with net/http's ServeMux
	const prefix = "/books/"
	raw := strings.TrimPrefix(r.URL.Path, prefix)
	if raw == "" || strings.Contains(raw, "/") {
		http.NotFound(w, r)
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "CONVERSION_ERROR", "book id must be an integer", nil)
		return
	}

	// Deleting an id that does not exist affects zero rows and still
	// succeeds.
	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

// @Summary Top selling author
// @Description Author with the highest summed sales count; null when no books exist
// @Tags reports
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /reports/top-author [get]
func (h *InventoryHandler) TopAuthor(w http.ResponseWriter, r *http.Request) {
	top, err := h.svc.TopSellingAuthor(r.Context())
	if err != nil {
		if errors.Is(err, inventory.ErrNoBooks) {
			httpx.JSONSuccess(r, w, nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, top)
}

// @Summary Out-of-stock titles
// @Description Titles with zero stock, including books without a store record
// @Tags reports
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /reports/out-of-stock [get]
func (h *InventoryHandler) OutOfStock(w http.ResponseWriter, r *http.Request) {
	titles, err := h.svc.OutOfStockBooks(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}
	if titles == nil {
		titles = []string{}
	}
	httpx.JSONSuccess(r, w, titles)
}

// @Summary Total revenue
// @Description Sum of store sales times retail price; zero for an empty inventory
// @Tags reports
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /reports/revenue [get]
func (h *InventoryHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.svc.TotalRevenue(r.Context())
	if err != nil {
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, map[string]any{"total_revenue": revenue})
}

// @Summary Max price-difference book
// @Description Book with the largest wholesale-minus-retail difference; null when no book has both records
// @Tags reports
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Router /reports/max-price-difference [get]
func (h *InventoryHandler) MaxPriceDifference(w http.ResponseWriter, r *http.Request) {
	diff, err := h.svc.MaxPriceDifferenceBook(r.Context())
	if err != nil {
		if errors.Is(err, inventory.ErrNoLinkedBooks) {
			httpx.JSONSuccess(r, w, nil)
			return
		}
		httpx.JSONError(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "server error", nil)
		return
	}
	httpx.JSONSuccess(r, w, diff)
}
