package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/trezcool/schoolfees/core/fee"
)

type feeSource struct {
	db *feeTable
}

var _ fee.Source = (*feeSource)(nil)

func NewFeeSource(db *DB) fee.Source {
	return &feeSource{db: db.fee}
}

func (src *feeSource) QueryFees(_ context.Context, kind fee.Kind) ([]fee.Fee, error) {
	src.db.mutex.RLock()
	defer src.db.mutex.RUnlock()

	ids := src.db.order[kind]
	fees := make([]fee.Fee, 0, len(ids))
	for _, id := range ids {
		fees = append(fees, *src.db.rows[kind][id])
	}
	return fees, nil
}

func (src *feeSource) CreateFee(_ context.Context, f fee.Fee) (fee.Fee, error) {
	if f.Kind.Path() == "" {
		return fee.Fee{}, fee.ErrUnknownKind
	}

	src.db.mutex.Lock()
	defer src.db.mutex.Unlock()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	rows, ok := src.db.rows[f.Kind]
	if !ok {
		rows = make(map[string]*fee.Fee)
		src.db.rows[f.Kind] = rows
	}
	if _, exists := rows[f.ID]; !exists {
		src.db.order[f.Kind] = append(src.db.order[f.Kind], f.ID)
	}
	rows[f.ID] = &f
	return f, nil
}

func (src *feeSource) DeleteFee(_ context.Context, kind fee.Kind, id string) error {
	src.db.mutex.Lock()
	defer src.db.mutex.Unlock()

	if _, ok := src.db.rows[kind][id]; !ok {
		return fee.ErrNotFound
	}
	delete(src.db.rows[kind], id)

	ids := src.db.order[kind]
	for i, oid := range ids {
		if oid == id {
			src.db.order[kind] = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	return nil
}
