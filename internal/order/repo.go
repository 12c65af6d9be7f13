package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByStatus(ctx context.Context, status Status) ([]Order, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status, completedAt *time.Time) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const lineKindLugaw = "lugaw"
const lineKindDrink = "drink"

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, status, total_price, created_at, completed_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`, o.CustomerName, string(o.Status), o.TotalPrice.String(), o.CreatedAt, o.CompletedAt).Scan(&o.ID); err != nil {
		return err
	}

	// Per-unit snapshot lines; insertion order is read back by id.
	for _, it := range o.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_lines (order_id, kind, item_id, item_name, price, is_spicy)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, o.ID, lineKindLugaw, it.ItemID, it.ItemName, it.Price.String(), it.IsSpicy); err != nil {
			return err
		}
	}
	for _, d := range o.Drinks {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_lines (order_id, kind, item_id, item_name, price, is_spicy)
			VALUES ($1,$2,$3,$4,$5,false)
		`, o.ID, lineKindDrink, d.ItemID, d.ItemName, d.Price.String()); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	var status, total string
	err := r.db.QueryRow(ctx, `
		SELECT id, customer_name, status, total_price::text, created_at, completed_at
		FROM orders WHERE id=$1
	`, id).Scan(&o.ID, &o.CustomerName, &status, &total, &o.CreatedAt, &o.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	o.Status = Status(status)
	if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, []*Order{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	return r.list(ctx, `
		SELECT id, customer_name, status, total_price::text, created_at, completed_at
		FROM orders ORDER BY created_at DESC
	`)
}

func (r *PGRepo) ListByStatus(ctx context.Context, status Status) ([]Order, error) {
	return r.list(ctx, `
		SELECT id, customer_name, status, total_price::text, created_at, completed_at
		FROM orders WHERE status=$1 ORDER BY created_at DESC
	`, string(status))
}

func (r *PGRepo) ListByRange(ctx context.Context, start, end time.Time) ([]Order, error) {
	return r.list(ctx, `
		SELECT id, customer_name, status, total_price::text, created_at, completed_at
		FROM orders WHERE created_at BETWEEN $1 AND $2 ORDER BY created_at
	`, start, end)
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id int64, status Status, completedAt *time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE orders SET status = $2, completed_at = $3 WHERE id = $1
	`, id, string(status), completedAt)
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

	cmd, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) list(ctx context.Context, sql string, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var status, total string
		if err := rows.Scan(&o.ID, &o.CustomerName, &status, &total, &o.CreatedAt, &o.CompletedAt); err != nil {
			return nil, err
		}
		o.Status = Status(status)
		if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*Order, len(out))
	for i := range out {
		refs[i] = &out[i]
	}
	if err := r.loadLines(ctx, refs); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PGRepo) loadLines(ctx context.Context, orders []*Order) error {
	if len(orders) == 0 {
		return nil
	}
	byID := make(map[int64]*Order, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		o.Items = []ItemSnapshot{}
		o.Drinks = []DrinkSnapshot{}
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	rows, err := r.db.Query(ctx, `
		SELECT order_id, kind, item_id, item_name, price::text, is_spicy
		FROM order_lines WHERE order_id = ANY($1) ORDER BY id
	`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, itemID int64
		var kind, name, price string
		var spicy bool
		if err := rows.Scan(&orderID, &kind, &itemID, &name, &price, &spicy); err != nil {
			return err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return err
		}
		o := byID[orderID]
		if o == nil {
			continue
		}
		if kind == lineKindDrink {
			o.Drinks = append(o.Drinks, DrinkSnapshot{ItemID: itemID, ItemName: name, Price: p})
		} else {
			o.Items = append(o.Items, ItemSnapshot{ItemID: itemID, ItemName: name, Price: p, IsSpicy: spicy})
		}
	}
	return rows.Err()
}
