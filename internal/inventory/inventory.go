package inventory

import (
	"errors"
)

// ErrNoBooks is returned by aggregations that need at least one book row.
var ErrNoBooks = errors.New("no books in inventory")

// ErrNoLinkedBooks is returned by aggregations that need at least one book
// with both a catalog row and a store row.
var ErrNoLinkedBooks = errors.New("no books with catalog and store records")

// Book is the core bibliographic record.
type Book struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Genre      string `json:"genre"`
	Author     string `json:"author"`
	Year       int    `json:"year_published"`
	Pages      int    `json:"pages"`
	Medium     string `json:"medium"`
	SalesCount int    `json:"sales_count"`
}

// CatalogEntry is the retail-side pricing record, keyed by book id.
type CatalogEntry struct {
	BookID      int64   `json:"book_id"`
	RetailPrice float64 `json:"retail_price"`
}

// StoreEntry is the operational record: stock, wholesale price and the
// store-side sales counter. The sales counter here is independent from
// Book.SalesCount; the two are never reconciled.
type StoreEntry struct {
	BookID         int64   `json:"book_id"`
	WholesalePrice float64 `json:"wholesale_price"`
	InStock        int     `json:"in_stock"`
	SalesCount     int     `json:"sales_count"`
}

// NewBook carries the input for AddBook. Prices are already parsed and
// validated at the presentation boundary; the store never sees raw text.
type NewBook struct {
	Title          string
	Genre          string
	Author         string
	Year           int
	Pages          int
	Medium         string
	WholesalePrice float64
	RetailPrice    float64
}

// AuthorSales is one row of the per-author sales aggregation.
type AuthorSales struct {
	Author     string `json:"author"`
	TotalSales int    `json:"total_sales"`
}

// PriceDifference reports wholesale_price - retail_price for one book.
// Wholesale is normally below retail, so the value is usually negative.
type PriceDifference struct {
	Title      string  `json:"title"`
	Difference float64 `json:"difference"`
}
