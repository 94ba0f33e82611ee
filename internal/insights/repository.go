package insights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"themesjet/internal/domain"
	apperrors "themesjet/internal/errors"
)

type Repository interface {
	Insert(ctx context.Context, post domain.Post) (uint, error)
	Update(ctx context.Context, post domain.Post) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*domain.Post, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)
	FindPublished(ctx context.Context) ([]domain.Post, error)
	FindAll(ctx context.Context) ([]domain.Post, error)
}

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) Insert(ctx context.Context, post domain.Post) (uint, error) {
	query := `INSERT INTO Posts (title, slug, body, published) VALUES (?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, post.Title, post.Slug, post.Body, post.Published)
	if err != nil {
		return 0, fmt.Errorf("inserting post: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLRepository) Update(ctx context.Context, post domain.Post) error {
	query := `UPDATE Posts SET title = ?, slug = ?, body = ?, published = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, post.Title, post.Slug, post.Body, post.Published, post.ID)
	if err != nil {
		return fmt.Errorf("updating post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("post with id %d not found", post.ID))
	}

	return nil
}

func (r *MySQLRepository) Delete(ctx context.Context, id uint) error {
	query := `DELETE FROM Posts WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("post with id %d not found", id))
	}

	return nil
}

func (r *MySQLRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	query := `
		SELECT id, title, slug, body, published, createdAt, updatedAt
		FROM Posts
		WHERE id = ?
	`

	return r.scanPost(r.db.QueryRowContext(ctx, query, id), fmt.Sprintf("post with id %d not found", id))
}

func (r *MySQLRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	query := `
		SELECT id, title, slug, body, published, createdAt, updatedAt
		FROM Posts
		WHERE slug = ?
	`

	return r.scanPost(r.db.QueryRowContext(ctx, query, slug), fmt.Sprintf("post %q not found", slug))
}

func (r *MySQLRepository) FindPublished(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT id, title, slug, body, published, createdAt, updatedAt
		FROM Posts
		WHERE published = 1
		ORDER BY createdAt DESC, id DESC
	`

	return r.queryPosts(ctx, query)
}

func (r *MySQLRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	query := `
		SELECT id, title, slug, body, published, createdAt, updatedAt
		FROM Posts
		ORDER BY createdAt DESC, id DESC
	`

	return r.queryPosts(ctx, query)
}

func (r *MySQLRepository) scanPost(row *sql.Row, notFoundMsg string) (*domain.Post, error) {
	var post domain.Post
	err := row.Scan(&post.ID, &post.Title, &post.Slug, &post.Body, &post.Published, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(notFoundMsg)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning post row: %w", err)
	}

	return &post, nil
}

func (r *MySQLRepository) queryPosts(ctx context.Context, query string, args ...interface{}) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Slug, &post.Body, &post.Published, &post.CreatedAt, &post.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning post row: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating post rows: %w", err)
	}

	return posts, nil
}
