package fee

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/schoolfees/core/classorder"
)

var (
	// errors
	ErrNotFound    = errors.New("fee not found")
	ErrUnknownKind = errors.New("unknown fee kind")
)

type (
	// Source is where fees live: the school REST backend, or memory for local runs & tests.
	Source interface {
		QueryFees(ctx context.Context, kind Kind) ([]Fee, error)
		CreateFee(ctx context.Context, fee Fee) (Fee, error)
		DeleteFee(ctx context.Context, kind Kind, id string) error
	}

	Service struct {
		src Source
	}
)

func NewService(src Source) *Service {
	return &Service{src: src}
}

// List returns the fees of `kind` matching filter, in class order.
func (svc *Service) List(ctx context.Context, kind Kind, filter QueryFilter) ([]Fee, error) {
	if kind.Path() == "" {
		return nil, ErrUnknownKind
	}
	fees, err := svc.src.QueryFees(ctx, kind)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "querying %s fees", kind)
	}

	filter.Clean()
	if !filter.IsEmpty() {
		matched := fees[:0:0]
		for _, f := range fees {
			if filter.Match(f) {
				matched = append(matched, f)
			}
		}
		fees = matched
	}
	if fees == nil {
		fees = []Fee{}
	}
	classorder.SortSlice(fees, Fee.Record)
	return fees, nil
}

// ListAll lists every fee kind concurrently. The first failure cancels the other queries.
func (svc *Service) ListAll(ctx context.Context, filter QueryFilter) (Board, error) {
	results := make([][]Fee, len(Kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range Kinds {
		i, kind := i, kind
		g.Go(func() error {
			fees, err := svc.List(gctx, kind, filter)
			if err != nil {
				return err
			}
			results[i] = fees
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	board := make(Board, len(Kinds))
	for i, kind := range Kinds {
		board[kind] = results[i]
	}
	return board, nil
}

func (svc *Service) Create(ctx context.Context, nf NewFee) (Fee, error) {
	now := time.Now().UTC()
	f := Fee{
		Kind:         nf.Kind,
		ClassName:    nf.ClassName,
		AcademicYear: nf.AcademicYear,
		Amount:       nf.Amount,
		Frequency:    nf.Frequency,
		Route:        nf.Route,
		Hostel:       nf.Hostel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return svc.src.CreateFee(ctx, f)
}

func (svc *Service) Delete(ctx context.Context, kind Kind, id string) error {
	return svc.src.DeleteFee(ctx, kind, id)
}
