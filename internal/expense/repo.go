package expense

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("expense not found")
)

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	GetByID(ctx context.Context, id int64) (*Expense, error)
	List(ctx context.Context) ([]Expense, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Expense, error)
	ListByCategory(ctx context.Context, category Category) ([]Expense, error)
	Update(ctx context.Context, e *Expense) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, e *Expense) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO expenses (category, description, amount, date)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, string(e.Category), e.Description, e.Amount.String(), e.Date).Scan(&e.ID)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var e Expense
	var cat, amount string
	err := r.db.QueryRow(ctx, `
		SELECT id, category, description, amount::text, date
		FROM expenses WHERE id=$1
	`, id).Scan(&e.ID, &cat, &e.Description, &amount, &e.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	e.Category = Category(cat)
	if e.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Expense, error) {
	return r.list(ctx, `
		SELECT id, category, description, amount::text, date
		FROM expenses ORDER BY date DESC
	`)
}

func (r *PGRepo) ListByRange(ctx context.Context, start, end time.Time) ([]Expense, error) {
	return r.list(ctx, `
		SELECT id, category, description, amount::text, date
		FROM expenses WHERE date BETWEEN $1 AND $2 ORDER BY date
	`, start, end)
}

func (r *PGRepo) ListByCategory(ctx context.Context, category Category) ([]Expense, error) {
	return r.list(ctx, `
		SELECT id, category, description, amount::text, date
		FROM expenses WHERE category=$1 ORDER BY date DESC
	`, string(category))
}

func (r *PGRepo) Update(ctx context.Context, e *Expense) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE expenses
		SET category = $2, description = $3, amount = $4, date = $5
		WHERE id = $1
	`, e.ID, string(e.Category), e.Description, e.Amount.String(), e.Date)
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

	cmd, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) list(ctx context.Context, sql string, args ...any) ([]Expense, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		var cat, amount string
		if err := rows.Scan(&e.ID, &cat, &e.Description, &amount, &e.Date); err != nil {
			return nil, err
		}
		e.Category = Category(cat)
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
