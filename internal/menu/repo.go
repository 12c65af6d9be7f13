package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("menu item not found")
)

type Repository interface {
	Create(ctx context.Context, m *MenuItem) error
	GetByID(ctx context.Context, id int64) (*MenuItem, error)
	List(ctx context.Context) ([]MenuItem, error)
	ListByCategory(ctx context.Context, category Category) ([]MenuItem, error)
	ListAvailable(ctx context.Context) ([]MenuItem, error)
	Update(ctx context.Context, m *MenuItem) error
	ToggleAvailability(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (name, category, price, is_available)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, m.Name, string(m.Category), m.Price.String(), m.IsAvailable).Scan(&m.ID)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, category, price::text, is_available
		FROM menu_items WHERE id=$1
	`, id)
	return scanItem(row)
}

func (r *PGRepo) List(ctx context.Context) ([]MenuItem, error) {
	return r.list(ctx, `
		SELECT id, name, category, price::text, is_available
		FROM menu_items ORDER BY category, name
	`)
}

func (r *PGRepo) ListByCategory(ctx context.Context, category Category) ([]MenuItem, error) {
	return r.list(ctx, `
		SELECT id, name, category, price::text, is_available
		FROM menu_items WHERE category=$1 ORDER BY name
	`, string(category))
}

func (r *PGRepo) ListAvailable(ctx context.Context) ([]MenuItem, error) {
	return r.list(ctx, `
		SELECT id, name, category, price::text, is_available
		FROM menu_items WHERE is_available ORDER BY category, name
	`)
}

func (r *PGRepo) Update(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name = COALESCE(NULLIF($2,''), name),
		    category = $3,
		    price = $4,
		    is_available = $5
		WHERE id = $1
	`, m.ID, m.Name, string(m.Category), m.Price.String(), m.IsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) ToggleAvailability(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items SET is_available = NOT is_available WHERE id=$1
	`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PGRepo) list(ctx context.Context, sql string, args ...any) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		var cat, price string
		if err := rows.Scan(&m.ID, &m.Name, &cat, &price, &m.IsAvailable); err != nil {
			return nil, err
		}
		m.Category = Category(cat)
		if m.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*MenuItem, error) {
	var m MenuItem
	var cat, price string
	if err := row.Scan(&m.ID, &m.Name, &cat, &price, &m.IsAvailable); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m.Category = Category(cat)
	var err error
	if m.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	return &m, nil
}
