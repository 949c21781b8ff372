package inventory

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the contract for inventory data storage.
type Repository interface {
	// AddBook inserts the book, catalog and store rows as one unit and
	// returns the assigned book id.
	AddBook(ctx context.Context, b NewBook) (int64, error)
	// DeleteBook removes the three linked rows. A nonexistent id affects
	// zero rows and is not an error.
	DeleteBook(ctx context.Context, id int64) error

	BooksByGenre(ctx context.Context, genre string) ([]Book, error)
	BooksByAuthor(ctx context.Context, author string) ([]Book, error)
	TopSellingAuthor(ctx context.Context) (AuthorSales, error)
	OutOfStockBooks(ctx context.Context) ([]string, error)
	TotalRevenue(ctx context.Context) (float64, error)
	MaxPriceDifferenceBook(ctx context.Context) (PriceDifference, error)
}
