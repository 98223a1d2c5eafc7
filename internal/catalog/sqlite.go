package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/converse98/pizzeria-pos/internal/domain"
)

// Repository is a sqlite-backed catalog store. The schema is managed by
// golang-migrate; reference data is loaded once via Seed.
type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) RunMigrations(migrationsPath string) error {
	driver, err := sqlite.WithInstance(r.db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

// Seed loads the reference data if the products table is empty. The
// catalog is read-only at runtime, so a single load is enough.
func (r *Repository) Seed(ctx context.Context, products []domain.Product, extras []domain.Extra) error {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for i, p := range products {
		ingredients, err := json.Marshal(p.Ingredients)
		if err != nil {
			return fmt.Errorf("failed to marshal ingredients: %w", err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO products (id, name, category, price_personal, price_shared, price_family,
			                      ingredients, is_combo, is_side, is_customizable, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			p.ID, p.Name, string(p.Category), p.Prices[0], p.Prices[1], p.Prices[2],
			string(ingredients), p.IsCombo, p.IsSide, p.IsCustomizable, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert product %s: %w", p.ID, err)
		}
	}

	for i, e := range extras {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO extras (id, name, price, is_vegetable, position)
			VALUES ($1, $2, $3, $4, $5)`,
			e.ID, e.Name, e.Price, e.IsVegetable, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert extra %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

func (r *Repository) Products(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, price_personal, price_shared, price_family,
		       ingredients, is_combo, is_side, is_customizable
		FROM products
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return products, nil
}

func (r *Repository) Product(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, category, price_personal, price_shared, price_family,
		       ingredients, is_combo, is_side, is_customizable
		FROM products
		WHERE id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("row iteration error: %w", err)
		}
		return nil, ErrProductNotFound
	}

	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Extras(ctx context.Context) ([]domain.Extra, error) {
	query := `
		SELECT id, name, price, is_vegetable
		FROM extras
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query extras: %w", err)
	}
	defer rows.Close()

	var extras []domain.Extra
	for rows.Next() {
		var e domain.Extra
		if err := rows.Scan(&e.ID, &e.Name, &e.Price, &e.IsVegetable); err != nil {
			return nil, fmt.Errorf("failed to scan extra: %w", err)
		}
		extras = append(extras, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return extras, nil
}

func (r *Repository) Extra(ctx context.Context, id string) (*domain.Extra, error) {
	var e domain.Extra
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, is_vegetable
		FROM extras
		WHERE id = $1`, id,
	).Scan(&e.ID, &e.Name, &e.Price, &e.IsVegetable)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExtraNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query extra: %w", err)
	}
	return &e, nil
}

// Filter loads the full catalog and filters in memory. The menu is a
// few dozen rows, small enough that SQL-side filtering buys nothing.
func (r *Repository) Filter(ctx context.Context, category, search string) ([]domain.Product, error) {
	products, err := r.Products(ctx)
	if err != nil {
		return nil, err
	}
	return filterProducts(products, category, search), nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func scanProduct(rows *sql.Rows) (domain.Product, error) {
	var p domain.Product
	var ingredients string
	err := rows.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.Prices[0],
		&p.Prices[1],
		&p.Prices[2],
		&ingredients,
		&p.IsCombo,
		&p.IsSide,
		&p.IsCustomizable,
	)
	if err != nil {
		return p, fmt.Errorf("failed to scan product: %w", err)
	}
	if err := json.Unmarshal([]byte(ingredients), &p.Ingredients); err != nil {
		return p, fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}
	return p, nil
}
