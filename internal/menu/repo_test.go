package menu

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
)

type fakeRow struct {
	err  error
	fill func(dest ...any)
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.fill != nil {
		r.fill(dest...)
	}
	return nil
}

func TestScanItem_NoRowsIsNotFound(t *testing.T) {
	_, err := scanItem(fakeRow{err: pgx.ErrNoRows})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestScanItem_StorageErrorPassesThrough(t *testing.T) {
	broken := errors.New("connection reset by peer")
	_, err := scanItem(fakeRow{err: broken})
	if !errors.Is(err, broken) {
		t.Fatalf("err=%v, want the scan error itself", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("storage error collapsed to ErrNotFound")
	}
}

func TestScanItem_OK(t *testing.T) {
	row := fakeRow{fill: func(dest ...any) {
		*dest[0].(*int64) = 7
		*dest[1].(*string) = "Plain Lugaw"
		*dest[2].(*string) = "lugaw"
		*dest[3].(*string) = "25"
		*dest[4].(*bool) = true
	}}
	m, err := scanItem(row)
	if err != nil {
		t.Fatalf("scanItem: %v", err)
	}
	if m.ID != 7 || m.Name != "Plain Lugaw" || m.Category != CategoryLugaw || !m.IsAvailable {
		t.Fatalf("item=%+v", m)
	}
	if m.Price.String() != "25" {
		t.Fatalf("price=%s", m.Price)
	}
}
