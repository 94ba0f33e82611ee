package admin

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"themesjet/internal/domain"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) SumCompletedTotals(ctx context.Context) (float64, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM Orders WHERE status = ?`

	var sum float64
	err := r.db.QueryRowContext(ctx, query, domain.OrderStatusCompleted).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("summing completed totals: %w", err)
	}

	return sum, nil
}

func (r *MySQLRepository) SumCompletedTotalsSince(ctx context.Context, since time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(total), 0) FROM Orders WHERE status = ? AND createdAt >= ?`

	var sum float64
	err := r.db.QueryRowContext(ctx, query, domain.OrderStatusCompleted, since).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("summing completed totals since %s: %w", since.Format(time.RFC3339), err)
	}

	return sum, nil
}

// FindRecentCompleted returns the most recent completed orders, but in
// ascending creation order as the chart consumes them.
func (r *MySQLRepository) FindRecentCompleted(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT id, userId, total, status, externalRef, createdAt, updatedAt
		FROM (
			SELECT id, userId, total, status, externalRef, createdAt, updatedAt
			FROM Orders
			WHERE status = ?
			ORDER BY createdAt DESC, id DESC
			LIMIT ?
		) recent
		ORDER BY createdAt ASC, id ASC
	`

	return r.queryOrders(ctx, query, domain.OrderStatusCompleted, limit)
}

func (r *MySQLRepository) FindRecentOrders(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `
		SELECT id, userId, total, status, externalRef, createdAt, updatedAt
		FROM Orders
		ORDER BY createdAt DESC, id DESC
		LIMIT ?
	`

	return r.queryOrders(ctx, query, limit)
}

func (r *MySQLRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.Total, &order.Status,
			&order.ExternalRef, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}

func (r *MySQLRepository) FindRecentUsersByRole(ctx context.Context, role string, limit int) ([]domain.User, error) {
	query := `
		SELECT id, name, email, role, createdAt
		FROM Users
		WHERE role = ?
		ORDER BY createdAt DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, role, limit)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}
