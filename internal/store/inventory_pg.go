package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"
	"fmt"

	"bookstore/internal/inventory"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InventoryPG struct {
	db *pgxpool.Pool
}

func NewInventoryPG(db *pgxpool.Pool) *InventoryPG {
	return &InventoryPG{db: db}
}

// AddBook inserts the book row, then the catalog and store rows keyed by the
// assigned id. All three inserts share one transaction so a crash cannot
// leave a catalog or store row pointing at a missing book.
func (r *InventoryPG) AddBook(ctx context.Context, b inventory.NewBook) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	const bookSQL = `
		INSERT INTO books (title, genre, author, year_published, pages, medium)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING book_id`

	var bookID int64
	if err := tx.QueryRow(ctx, bookSQL, b.Title, b.Genre, b.Author, b.Year, b.Pages, b.Medium).Scan(&bookID); err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}

	const catalogSQL = `
		INSERT INTO catalog (book_id, retail_price)
		VALUES ($1, $2)`

	if _, err := tx.Exec(ctx, catalogSQL, bookID, b.RetailPrice); err != nil {
		return 0, fmt.Errorf("insert catalog entry: %w", err)
	}

	const storeSQL = `
		INSERT INTO stores (book_id, wholesale_price, in_stock, sales_count)
		VALUES ($1, $2, 0, 0)`

	if _, err := tx.Exec(ctx, storeSQL, bookID, b.WholesalePrice); err != nil {
		return 0, fmt.Errorf("insert store entry: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return bookID, nil
}

// DeleteBook removes the linked rows first, then the book itself. Each
// delete on a missing id affects zero rows; that is not an error.
func (r *InventoryPG) DeleteBook(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM catalog WHERE book_id = $1`, id); err != nil {
		return fmt.Errorf("delete catalog entry: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM stores WHERE book_id = $1`, id); err != nil {
		return fmt.Errorf("delete store entry: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM books WHERE book_id = $1`, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *InventoryPG) BooksByGenre(ctx context.Context, genre string) ([]inventory.Book, error) {
	return r.booksWhere(ctx, "genre", genre)
}

func (r *InventoryPG) BooksByAuthor(ctx context.Context, author string) ([]inventory.Book, error) {
	return r.booksWhere(ctx, "author", author)
}

func (r *InventoryPG) booksWhere(ctx context.Context, column, value string) ([]inventory.Book, error) {
	query := fmt.Sprintf(`
		SELECT book_id, title, genre, author, year_published, pages, medium, sales_count
		FROM books
		WHERE %s = $1
		ORDER BY book_id`, column)

	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []inventory.Book
	for rows.Next() {
		var b inventory.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Genre, &b.Author, &b.Year, &b.Pages, &b.Medium, &b.SalesCount); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// TopSellingAuthor sums the book-side sales counter per author. Ties break
// on author name so repeated calls return the same row.
func (r *InventoryPG) TopSellingAuthor(ctx context.Context) (inventory.AuthorSales, error) {
	const query = `
		SELECT author, SUM(sales_count) AS total_sales
		FROM books
		GROUP BY author
		ORDER BY total_sales DESC, author ASC
		LIMIT 1`

	var top inventory.AuthorSales
	err := r.db.QueryRow(ctx, query).Scan(&top.Author, &top.TotalSales)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.AuthorSales{}, inventory.ErrNoBooks
		}
		return inventory.AuthorSales{}, err
	}
	return top, nil
}

// OutOfStockBooks lists titles with zero stock. A book without a store row
// counts as out of stock, hence the left join.
func (r *InventoryPG) OutOfStockBooks(ctx context.Context) ([]string, error) {
	const query = `
		SELECT b.title
		FROM books b
		LEFT JOIN stores s ON b.book_id = s.book_id
		WHERE s.in_stock = 0 OR s.book_id IS NULL
		ORDER BY b.title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, err
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

// TotalRevenue multiplies the store-side sales counter by the catalog retail
// price over the inner join of the two tables. The empty sum is zero, not an
// error.
func (r *InventoryPG) TotalRevenue(ctx context.Context) (float64, error) {
	const query = `
		SELECT COALESCE(SUM(s.sales_count * c.retail_price), 0)
		FROM stores s
		JOIN catalog c ON s.book_id = c.book_id`

	var revenue float64
	if err := r.db.QueryRow(ctx, query).Scan(&revenue); err != nil {
		return 0, err
	}
	return revenue, nil
}

// MaxPriceDifferenceBook returns the book whose wholesale-minus-retail
// difference is largest. Only books with both linked rows qualify. Ties
// break on title, then id.
func (r *InventoryPG) MaxPriceDifferenceBook(ctx context.Context) (inventory.PriceDifference, error) {
	const query = `
		SELECT b.title, (s.wholesale_price - c.retail_price) AS price_difference
		FROM books b
		JOIN catalog c ON b.book_id = c.book_id
		JOIN stores s ON b.book_id = s.book_id
		ORDER BY price_difference DESC, b.title ASC, b.book_id ASC
		LIMIT 1`

	var diff inventory.PriceDifference
	err := r.db.QueryRow(ctx, query).Scan(&diff.Title, &diff.Difference)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return inventory.PriceDifference{}, inventory.ErrNoLinkedBooks
		}
		return inventory.PriceDifference{}, err
	}
	return diff, nil
}
