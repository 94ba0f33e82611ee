package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"themesjet/internal/domain"
	"themesjet/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

const productColumns = `id, name, description, price, category, tags, fileUrl, imageUrl, createdAt, updatedAt`

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Products ORDER BY createdAt DESC, id DESC`, productColumns)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Products WHERE id = ?`, productColumns)

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *MySQLRepository) Insert(ctx context.Context, product domain.Product) (uint, error) {
	query := `
		INSERT INTO Products (name, description, price, category, tags, fileUrl, imageUrl)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		joinTags(product.Tags), product.FileURL, product.ImageURL,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting product: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLRepository) Update(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE Products
		SET name = ?, description = ?, price = ?, category = ?, tags = ?, fileUrl = ?, imageUrl = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.Description, product.Price, product.Category,
		joinTags(product.Tags), product.FileURL, product.ImageURL, product.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", product.ID))
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Products WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

func scanProduct(scan func(dest ...interface{}) error) (domain.Product, error) {
	var p domain.Product
	var tags string

	err := scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category,
		&tags, &p.FileURL, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return domain.Product{}, err
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("scanning product row: %w", err)
	}

	p.Tags = splitTags(tags)
	return p, nil
}

// Tags are stored as a comma-separated list.
func joinTags(tags []string) string {
	return strings.Join(tags, ",")
}

func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
