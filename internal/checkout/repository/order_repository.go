package repository

import (
	"context"
	"database/sql"
	"fmt"

	"themesjet/internal/domain"
	"themesjet/internal/errors"
)

type MySQLOrderRepository struct {
	db    *sql.DB
	items *MySQLOrderItemRepository
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{
		db:    db,
		items: NewMySQLOrderItemRepository(db),
	}
}

// CreateWithItems writes the order and its item snapshots in one
// transaction. The external payment processor is never part of this
// transaction; the store commits first.
func (r *MySQLOrderRepository) CreateWithItems(ctx context.Context, order domain.Order) (uint, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	// MySQL ignores rollback once the tx is committed.
	defer tx.Rollback()

	query := `INSERT INTO Orders (userId, total, status) VALUES (?, ?, ?)`

	result, err := tx.ExecContext(ctx, query, order.UserID, order.Total, order.Status)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}
	orderID := uint(lastInsertID)

	for _, item := range order.Items {
		item.OrderID = orderID
		if _, err := r.items.Insert(ctx, tx, item); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}

	return orderID, nil
}

// FindByID loads the order together with its item snapshots.
func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, userId, total, status, externalRef, createdAt, updatedAt
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.Total, &order.Status,
		&order.ExternalRef, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (r *MySQLOrderRepository) findItems(ctx context.Context, orderID uint) ([]domain.OrderItem, error) {
	query := `
		SELECT id, orderId, productId, name, price, image
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Name, &item.Price, &item.Image)
		if err != nil {
			return nil, fmt.Errorf("scanning order item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order item rows: %w", err)
	}

	return items, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) SetExternalRef(ctx context.Context, id uint, ref string) error {
	query := `UPDATE Orders SET externalRef = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, ref, id); err != nil {
		return fmt.Errorf("updating order external ref: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, userId, total, status, externalRef, createdAt, updatedAt
		FROM Orders
		ORDER BY createdAt DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
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
