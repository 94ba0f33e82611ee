package servicerequest

import (
	"context"
	"database/sql"
	"fmt"

	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type Repository interface {
	Insert(ctx context.Context, request domain.ServiceRequest) (uint, error)
	FindAll(ctx context.Context) ([]domain.ServiceRequest, error)
	MarkHandled(ctx context.Context, id uint) error
}

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, request domain.ServiceRequest) (uint, error) {
	query := `INSERT INTO ServiceRequests (name, email, subject, body, handled) VALUES (?, ?, ?, ?, 0)`

	result, err := r.db.ExecContext(ctx, query, request.Name, request.Email, request.Subject, request.Body)
	if err != nil {
		return 0, fmt.Errorf("inserting service request: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

// FindAll lists requests with unhandled ones first so the admin inbox surfaces
// open work at the top.
func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.ServiceRequest, error) {
	query := `
		SELECT id, name, email, subject, body, handled, createdAt
		FROM ServiceRequests
		ORDER BY handled ASC, createdAt DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying service requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.ServiceRequest
	for rows.Next() {
		var request domain.ServiceRequest
		err := rows.Scan(&request.ID, &request.Name, &request.Email, &request.Subject, &request.Body, &request.Handled, &request.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning service request row: %w", err)
		}
		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating service request rows: %w", err)
	}

	return requests, nil
}

func (r *MySQLRepository) MarkHandled(ctx context.Context, id uint) error {
	query := `UPDATE ServiceRequests SET handled = 1 WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("marking service request handled: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("service request with id %d not found", id))
	}

	return nil
}
