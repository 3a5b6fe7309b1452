package restdb

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolfees/core/classorder"
	"github.com/trezcool/schoolfees/core/fee"
)

// backendFee is a fee as the school backend serves it: camelCase keys, loosely typed labels.
type backendFee struct {
	ID           classorder.Text `json:"id,omitempty"`
	MongoID      classorder.Text `json:"_id,omitempty"`
	ClassName    classorder.Text `json:"className"`
	AcademicYear classorder.Text `json:"academicYear"`
	Amount       json.Number     `json:"amount,omitempty"`
	Frequency    string          `json:"frequency,omitempty"`
	Route        string          `json:"route,omitempty"`
	Hostel       string          `json:"hostel,omitempty"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

func (bf backendFee) toFee(kind fee.Kind) (fee.Fee, error) {
	f := fee.Fee{
		ID:           bf.ID.String(),
		Kind:         kind,
		ClassName:    bf.ClassName.String(),
		AcademicYear: bf.AcademicYear.String(),
		Frequency:    bf.Frequency,
		Route:        bf.Route,
		Hostel:       bf.Hostel,
	}
	if f.ID == "" {
		f.ID = bf.MongoID.String()
	}
	if bf.Amount != "" {
		amount, err := bf.Amount.Int64()
		if err != nil {
			return fee.Fee{}, errors.Wrapf(err, "fee %s: amount", f.ID)
		}
		f.Amount = amount
	}
	if bf.CreatedAt != nil {
		f.CreatedAt = bf.CreatedAt.UTC()
	}
	if bf.UpdatedAt != nil {
		f.UpdatedAt = bf.UpdatedAt.UTC()
	}
	return f, nil
}

func fromFee(f fee.Fee) backendFee {
	bf := backendFee{
		ClassName:    classorder.Text(f.ClassName),
		AcademicYear: classorder.Text(f.AcademicYear),
		Amount:       json.Number(strconv.FormatInt(f.Amount, 10)),
		Frequency:    f.Frequency,
		Route:        f.Route,
		Hostel:       f.Hostel,
	}
	if !f.CreatedAt.IsZero() {
		bf.CreatedAt = &f.CreatedAt
	}
	if !f.UpdatedAt.IsZero() {
		bf.UpdatedAt = &f.UpdatedAt
	}
	return bf
}

// feeList decodes both a bare array and an envelope {"data": [...]}.
type feeList []backendFee

func (fl *feeList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var envelope struct {
			Data []backendFee `json:"data"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return err
		}
		*fl = envelope.Data
		return nil
	}
	var list []backendFee
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*fl = list
	return nil
}

type feeSource struct {
	client *Client
}

var _ fee.Source = (*feeSource)(nil)

func NewFeeSource(client *Client) fee.Source {
	return &feeSource{client: client}
}

func (src *feeSource) QueryFees(ctx context.Context, kind fee.Kind) ([]fee.Fee, error) {
	if kind.Path() == "" {
		return nil, fee.ErrUnknownKind
	}
	var list feeList
	if err := src.client.do(ctx, http.MethodGet, kind.Path(), nil, &list); err != nil {
		return nil, mapErr(err)
	}

	fees := make([]fee.Fee, 0, len(list))
	for _, bf := range list {
		f, err := bf.toFee(kind)
		if err != nil {
			return nil, err
		}
		fees = append(fees, f)
	}
	return fees, nil
}

func (src *feeSource) CreateFee(ctx context.Context, f fee.Fee) (fee.Fee, error) {
	if f.Kind.Path() == "" {
		return fee.Fee{}, fee.ErrUnknownKind
	}
	var created backendFee
	if err := src.client.do(ctx, http.MethodPost, f.Kind.Path(), fromFee(f), &created); err != nil {
		return fee.Fee{}, mapErr(err)
	}
	return created.toFee(f.Kind)
}

func (src *feeSource) DeleteFee(ctx context.Context, kind fee.Kind, id string) error {
	if kind.Path() == "" {
		return fee.ErrUnknownKind
	}
	return mapErr(src.client.do(ctx, http.MethodDelete, kind.Path()+"/"+url.PathEscape(id), nil, nil))
}

func mapErr(err error) error {
	if errors.Cause(err) == errNotFound {
		return fee.ErrNotFound
	}
	return err
}
