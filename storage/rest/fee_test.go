package restdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/schoolfees/core"
	"github.com/trezcool/schoolfees/core/fee"
)

const testToken = "s3cr3t"

type backendStub struct {
	t        *testing.T
	lastBody map[string]interface{}
}

func (stub *backendStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer "+testToken {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	switch r.Method + " " + r.URL.Path {
	case "GET /api/class-fees":
		_, _ = w.Write([]byte(`[
			{"id": 1, "className": 10, "academicYear": "2023-2024", "amount": 12000, "frequency": "yearly"},
			{"id": "b", "className": "UKG", "academicYear": "2024-2025", "amount": "8000", "createdAt": "2024-05-01T10:00:00Z"},
			{"_id": "c", "className": null, "academicYear": null}
		]`))
	case "GET /api/bus-fees":
		_, _ = w.Write([]byte(`{"data": [{"_id": "r1", "className": "LKG", "academicYear": "2024-2025", "route": "North"}]}`))
	case "GET /api/hostel-fees":
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	case "POST /api/hostel-fees":
		stub.lastBody = nil
		if err := json.NewDecoder(r.Body).Decode(&stub.lastBody); err != nil {
			stub.t.Errorf("decoding request body: %v", err)
		}
		if stub.lastBody["hostel"] == nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"hostel is required"}`))
			return
		}
		stub.lastBody["id"] = "h1"
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(stub.lastBody)
	case "DELETE /api/class-fees/b":
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func setup(t *testing.T, token string) (fee.Source, *backendStub) {
	stub := &backendStub{t: t}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	client := NewClient(core.BackendConfig{BaseURL: srv.URL + "/api/", Token: token, Timeout: 5 * time.Second})
	return NewFeeSource(client), stub
}

func TestFeeSource_QueryFees(t *testing.T) {
	src, _ := setup(t, testToken)
	ctx := context.Background()

	fees, err := src.QueryFees(ctx, fee.KindClass)
	require.NoError(t, err)
	require.Len(t, fees, 3)
	assert.Equal(t, fee.Fee{
		ID:           "1",
		Kind:         fee.KindClass,
		ClassName:    "10",
		AcademicYear: "2023-2024",
		Amount:       12000,
		Frequency:    "yearly",
	}, fees[0])
	assert.Equal(t, "UKG", fees[1].ClassName)
	assert.Equal(t, int64(8000), fees[1].Amount)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), fees[1].CreatedAt)
	assert.Equal(t, "c", fees[2].ID)
	assert.Equal(t, "", fees[2].ClassName)

	fees, err = src.QueryFees(ctx, fee.KindBus)
	require.NoError(t, err)
	require.Len(t, fees, 1)
	assert.Equal(t, "r1", fees[0].ID)
	assert.Equal(t, "North", fees[0].Route)

	_, err = src.QueryFees(ctx, fee.KindHostel)
	assert.EqualError(t, err, "backend responded 500: database unavailable")

	_, err = src.QueryFees(ctx, fee.Kind("canteen"))
	assert.Equal(t, fee.ErrUnknownKind, err)
}

func TestFeeSource_unauthorized(t *testing.T) {
	src, _ := setup(t, "wrong")

	_, err := src.QueryFees(context.Background(), fee.KindClass)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized), "QueryFees() error = %v", err)
}

func TestFeeSource_CreateFee(t *testing.T) {
	src, stub := setup(t, testToken)
	ctx := context.Background()

	created, err := src.CreateFee(ctx, fee.Fee{
		Kind:         fee.KindHostel,
		ClassName:    "Class 6",
		AcademicYear: "2024-2025",
		Amount:       30000,
		Frequency:    fee.FrequencyYearly,
		Hostel:       "Hostel A",
	})
	require.NoError(t, err)
	assert.Equal(t, "h1", created.ID)
	assert.Equal(t, fee.KindHostel, created.Kind)
	assert.Equal(t, int64(30000), created.Amount)
	assert.Equal(t, "Class 6", stub.lastBody["className"])
	assert.Equal(t, "2024-2025", stub.lastBody["academicYear"])
	assert.NotContains(t, stub.lastBody, "createdAt")

	_, err = src.CreateFee(ctx, fee.Fee{Kind: fee.KindHostel, ClassName: "Class 6", Amount: 1})
	var vErr *core.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "hostel is required", vErr.Error())
}

func TestFeeSource_DeleteFee(t *testing.T) {
	src, _ := setup(t, testToken)
	ctx := context.Background()

	assert.NoError(t, src.DeleteFee(ctx, fee.KindClass, "b"))
	assert.Equal(t, fee.ErrNotFound, src.DeleteFee(ctx, fee.KindClass, "missing"))
}
