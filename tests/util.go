package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trezcool/schoolfees/core/fee"
)

func CreateFee(
	t *testing.T,
	src fee.Source,
	kind fee.Kind,
	className, academicYear string,
	amount int64,
	createdAt ...time.Time,
) fee.Fee {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	f := fee.Fee{
		Kind:         kind,
		ClassName:    className,
		AcademicYear: academicYear,
		Amount:       amount,
		Frequency:    fee.FrequencyYearly,
		CreatedAt:    tstamp,
		UpdatedAt:    tstamp,
	}
	switch kind {
	case fee.KindBus:
		f.Route = "Route 1"
	case fee.KindHostel:
		f.Hostel = "Main Hostel"
	}
	f, err := src.CreateFee(context.Background(), f)
	if err != nil {
		t.Fatalf("CreateFee() failed: %v", err)
	}
	return f
}

// FailingSource fails every call with Err.
type FailingSource struct {
	Err error
}

var _ fee.Source = FailingSource{}

func (src FailingSource) QueryFees(context.Context, fee.Kind) ([]fee.Fee, error) { return nil, src.Err }
func (src FailingSource) CreateFee(context.Context, fee.Fee) (fee.Fee, error)    { return fee.Fee{}, src.Err }
func (src FailingSource) DeleteFee(context.Context, fee.Kind, string) error      { return src.Err }
