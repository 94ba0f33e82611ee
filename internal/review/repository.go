package review

import (
	"context"
	"database/sql"
	"fmt"

	"themesjet/internal/domain"
	"themesjet/internal/errors"
)

type Repository interface {
	Insert(ctx context.Context, review domain.Review) (uint, error)
	FindApprovedByProduct(ctx context.Context, productID uint) ([]domain.Review, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
	SetApproved(ctx context.Context, id uint, approved bool) error
	Delete(ctx context.Context, id uint) error
}

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, review domain.Review) (uint, error) {
	query := `INSERT INTO Reviews (productId, userId, rating, body, approved) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, review.ProductID, review.UserID, review.Rating, review.Body, review.Approved)
	if err != nil {
		return 0, fmt.Errorf("inserting review: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLRepository) FindApprovedByProduct(ctx context.Context, productID uint) ([]domain.Review, error) {
	query := `
		SELECT id, productId, userId, rating, body, approved, createdAt
		FROM Reviews
		WHERE productId = ? AND approved = 1
		ORDER BY createdAt DESC, id DESC
	`

	return r.queryReviews(ctx, query, productID)
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	query := `
		SELECT id, productId, userId, rating, body, approved, createdAt
		FROM Reviews
		ORDER BY createdAt DESC, id DESC
	`

	return r.queryReviews(ctx, query)
}

func (r *MySQLRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Body, &review.Approved, &review.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating review rows: %w", err)
	}

	return reviews, nil
}

func (r *MySQLRepository) SetApproved(ctx context.Context, id uint, approved bool) error {
	query := `UPDATE Reviews SET approved = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, approved, id)
	if err != nil {
		return fmt.Errorf("updating review approval: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("review with id %d not found", id))
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Reviews WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("review with id %d not found", id))
	}

	return nil
}
