package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the local test database. Tests that need MySQL are
// skipped when no server is listening, so the unit suite stays runnable
// on a bare machine.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/themesjet_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties every table and closes the handle. Child tables
// go first so foreign keys do not block the deletes.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "Reviews", "Posts", "ServiceRequests", "Products", "Users"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repository tests. It
// mirrors migrations/000001_init.up.sql.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createUsersTable := `
	CREATE TABLE IF NOT EXISTS Users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(150) NOT NULL UNIQUE,
		passwordHash VARCHAR(100) NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'USER',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createProductsTable := `
	CREATE TABLE IF NOT EXISTS Products (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(100),
		tags VARCHAR(500) NOT NULL DEFAULT '',
		fileUrl VARCHAR(500) NOT NULL DEFAULT '',
		imageUrl VARCHAR(500) NOT NULL DEFAULT '',
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		userId INT UNSIGNED NOT NULL,
		total DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(50) NOT NULL DEFAULT 'PENDING',
		externalRef VARCHAR(255),
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_user (userId),
		INDEX idx_status (status)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT UNSIGNED NOT NULL,
		productId INT UNSIGNED NOT NULL,
		name VARCHAR(255) NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		image VARCHAR(500) NOT NULL DEFAULT '',
		FOREIGN KEY (orderId) REFERENCES Orders(id) ON DELETE CASCADE,
		INDEX idx_order (orderId)
	)`

	createReviewsTable := `
	CREATE TABLE IF NOT EXISTS Reviews (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		productId INT UNSIGNED NOT NULL,
		userId INT UNSIGNED NOT NULL,
		rating INT NOT NULL,
		body TEXT NOT NULL,
		approved TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_product (productId)
	)`

	createPostsTable := `
	CREATE TABLE IF NOT EXISTS Posts (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		slug VARCHAR(255) NOT NULL UNIQUE,
		body TEXT NOT NULL,
		published TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createServiceRequestsTable := `
	CREATE TABLE IF NOT EXISTS ServiceRequests (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(150) NOT NULL,
		subject VARCHAR(255) NOT NULL,
		body TEXT NOT NULL,
		handled TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_handled (handled)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"Users", createUsersTable},
		{"Products", createProductsTable},
		{"Orders", createOrdersTable},
		{"OrderItems", createOrderItemsTable},
		{"Reviews", createReviewsTable},
		{"Posts", createPostsTable},
		{"ServiceRequests", createServiceRequestsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
