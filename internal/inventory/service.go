package inventory

import (
	"context"
)

// Service provides the inventory mutation and query surface.
type Service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// AddBook creates a book together with its catalog and store records and
// returns the new book id. Stock and store-side sales start at zero.
func (s *Service) AddBook(ctx context.Context, b NewBook) (int64, error) {
	return s.repo.AddBook(ctx, b)
}

// DeleteBook removes a book and its linked records by id.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

// BooksByGenre returns all books whose genre matches exactly.
func (s *Service) BooksByGenre(ctx context.Context, genre string) ([]Book, error) {
	return s.repo.BooksByGenre(ctx, genre)
}

// BooksByAuthor returns all books whose author matches exactly.
func (s *Service) BooksByAuthor(ctx context.Context, author string) ([]Book, error) {
	return s.repo.BooksByAuthor(ctx, author)
}

// TopSellingAuthor returns the author with the highest summed sales count.
// Returns ErrNoBooks when the inventory is empty.
func (s *Service) TopSellingAuthor(ctx context.Context) (AuthorSales, error) {
	return s.repo.TopSellingAuthor(ctx)
}

// OutOfStockBooks returns the titles of books with zero stock, including
// books that have no store record at all.
func (s *Service) OutOfStockBooks(ctx context.Context) ([]string, error) {
	return s.repo.OutOfStockBooks(ctx)
}

// TotalRevenue returns the sum of store sales times retail price over all
// books with both linked records. An empty inventory yields zero.
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	return s.repo.TotalRevenue(ctx)
}

// MaxPriceDifferenceBook returns the book with the largest
// wholesale-minus-retail difference. Returns ErrNoLinkedBooks when no book
// has both a catalog and a store record.
func (s *Service) MaxPriceDifferenceBook(ctx context.Context) (PriceDifference, error) {
	return s.repo.MaxPriceDifferenceBook(ctx)
}
