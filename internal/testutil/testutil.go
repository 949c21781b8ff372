package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"bookstore/internal/auth"
	"bookstore/internal/inventory"

	"github.com/golang-jwt/jwt/v5"
)

// TestBook is a fixture book for testing
var TestBook = inventory.Book{
	ID:     1,
	Title:  "Dune",
	Genre:  "SciFi",
	Author: "Herbert",
	Year:   1965,
	Pages:  412,
	Medium: "physical",
}

// TestNewBook is a fixture add-book input for testing
var TestNewBook = inventory.NewBook{
	Title:          "Dune",
	Genre:          "SciFi",
	Author:         "Herbert",
	Year:           1965,
	Pages:          412,
	Medium:         "physical",
	WholesalePrice: 5.00,
	RetailPrice:    12.00,
}

// GenerateTestToken generates a staff token for testing
func GenerateTestToken(secret string) string {
	token, _ := auth.GenerateToken(secret, "admin", auth.RoleStaff, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired token for testing
func GenerateExpiredToken(secret string) string {
	c := auth.Claims{
		Sub:  "admin",
		Role: auth.RoleStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body interface{}) *http.Request {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}
	var r *http.Request
	if bodyBytes != nil {
		r = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	return r
}

// NewRequestWithAuth creates a new HTTP request with a bearer token for testing
func NewRequestWithAuth(method, path string, body interface{}, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]interface{}
}

// RecordHTTPResponse records the HTTP response
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]interface{}
	if len(bodyBytes) > 0 {
		json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}
