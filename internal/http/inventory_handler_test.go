package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/internal/inventory"
	"bookstore/internal/inventory/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBook = inventory.Book{
	ID:     1,
	Title:  "Dune",
	Genre:  "SciFi",
	Author: "Herbert",
	Year:   1965,
	Pages:  412,
	Medium: "physical",
}

func newTestHandler(t *testing.T) (*InventoryHandler, *mocks.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := mocks.NewMockRepository(ctrl)
	return NewInventoryHandler(inventory.NewService(mockRepo)), mockRepo
}

func TestInventoryHandler_List(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
	}{
		{
			name:        "by genre",
			queryParams: "?genre=SciFi",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					BooksByGenre(gomock.Any(), "SciFi").
					Return([]inventory.Book{testBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "by author",
			queryParams: "?author=Herbert",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					BooksByAuthor(gomock.Any(), "Herbert").
					Return([]inventory.Book{testBook}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "empty result is ok",
			queryParams: "?genre=Poetry",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					BooksByGenre(gomock.Any(), "Poetry").
					Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing filter",
			queryParams:    "",
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "server error",
			queryParams: "?genre=SciFi",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					BooksByGenre(gomock.Any(), "SciFi").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newTestHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/books"+tt.queryParams, nil)

			handler.List(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestInventoryHandler_Add(t *testing.T) {
	validBody := `{
		"title": "Dune", "genre": "SciFi", "author": "Herbert",
		"year_published": 1965, "pages": 412, "medium": "physical",
		"wholesale_price": "5.00", "retail_price": "12.00"
	}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "success",
			body: validBody,
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					AddBook(gomock.Any(), inventory.NewBook{
						Title: "Dune", Genre: "SciFi", Author: "Herbert",
						Year: 1965, Pages: 412, Medium: "physical",
						WholesalePrice: 5.00, RetailPrice: 12.00,
					}).
					Return(int64(42), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `{`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "INVALID_BODY",
		},
		{
			name:           "missing title",
			body:           `{"wholesale_price": "5.00", "retail_price": "12.00"}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "VALIDATION_ERROR",
		},
		{
			name:           "non-numeric price",
			body:           `{"title": "Dune", "wholesale_price": "cheap", "retail_price": "12.00"}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "CONVERSION_ERROR",
		},
		{
			name:           "negative price",
			body:           `{"title": "Dune", "wholesale_price": "5.00", "retail_price": "-12.00"}`,
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "CONVERSION_ERROR",
		},
		{
			name: "server error",
			body: validBody,
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().
					AddBook(gomock.Any(), gomock.Any()).
					Return(int64(0), assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newTestHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")

			handler.Add(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Contains(t, w.Body.String(), tt.expectedCode)
			}
		})
	}
}

func TestInventoryHandler_AddBookIDInResponse(t *testing.T) {
	handler, mockRepo := newTestHandler(t)
	mockRepo.EXPECT().
		AddBook(gomock.Any(), gomock.Any()).
		Return(int64(7), nil)

	w := httptest.NewRecorder()
	body := `{"title": "Dune", "wholesale_price": "5", "retail_price": "12"}`
	r := httptest.NewRequest(http.MethodPost, "/books", strings.NewReader(body))

	handler.Add(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"book_id":7`)
}

func TestInventoryHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMock      func(m *mocks.MockRepository)
		expectedStatus int
	}{
		{
			name: "success",
			path: "/books/7",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().DeleteBook(gomock.Any(), int64(7)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "nonexistent id still succeeds",
			path: "/books/999999",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().DeleteBook(gomock.Any(), int64(999999)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "non-numeric id",
			path:           "/books/seven",
			setupMock:      func(m *mocks.MockRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "server error",
			path: "/books/7",
			setupMock: func(m *mocks.MockRepository) {
				m.EXPECT().DeleteBook(gomock.Any(), int64(7)).Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockRepo := newTestHandler(t)
			tt.setupMock(mockRepo)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, tt.path, nil)

			handler.Delete(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestInventoryHandler_TopAuthor(t *testing.T) {
	t.Run("with books", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			TopSellingAuthor(gomock.Any()).
			Return(inventory.AuthorSales{Author: "Herbert", TotalSales: 10}, nil)

		w := httptest.NewRecorder()
		handler.TopAuthor(w, httptest.NewRequest(http.MethodGet, "/reports/top-author", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Herbert"`)
		assert.Contains(t, w.Body.String(), `"total_sales":10`)
	})

	t.Run("empty inventory is not an error", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			TopSellingAuthor(gomock.Any()).
			Return(inventory.AuthorSales{}, inventory.ErrNoBooks)

		w := httptest.NewRecorder()
		handler.TopAuthor(w, httptest.NewRequest(http.MethodGet, "/reports/top-author", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), `"error"`)
	})
}

func TestInventoryHandler_OutOfStock(t *testing.T) {
	handler, mockRepo := newTestHandler(t)
	mockRepo.EXPECT().
		OutOfStockBooks(gomock.Any()).
		Return([]string{"Carrie", "Foundation"}, nil)

	w := httptest.NewRecorder()
	handler.OutOfStock(w, httptest.NewRequest(http.MethodGet, "/reports/out-of-stock", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Carrie")
	assert.Contains(t, w.Body.String(), "Foundation")
}

func TestInventoryHandler_Revenue(t *testing.T) {
	handler, mockRepo := newTestHandler(t)
	mockRepo.EXPECT().
		TotalRevenue(gomock.Any()).
		Return(52.0, nil)

	w := httptest.NewRecorder()
	handler.Revenue(w, httptest.NewRequest(http.MethodGet, "/reports/revenue", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_revenue":52`)
}

func TestInventoryHandler_MaxPriceDifference(t *testing.T) {
	t.Run("with linked books", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			MaxPriceDifferenceBook(gomock.Any()).
			Return(inventory.PriceDifference{Title: "Dune", Difference: -7.00}, nil)

		w := httptest.NewRecorder()
		handler.MaxPriceDifference(w, httptest.NewRequest(http.MethodGet, "/reports/max-price-difference", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Dune"`)
		assert.Contains(t, w.Body.String(), `-7`)
	})

	t.Run("no linked books is not an error", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			MaxPriceDifferenceBook(gomock.Any()).
			Return(inventory.PriceDifference{}, inventory.ErrNoLinkedBooks)

		w := httptest.NewRecorder()
		handler.MaxPriceDifference(w, httptest.NewRequest(http.MethodGet, "/reports/max-price-difference", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
