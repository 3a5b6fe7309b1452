package tests

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/trezcool/schoolfees/apps/api/echo"
	"github.com/trezcool/schoolfees/core"
	"github.com/trezcool/schoolfees/core/fee"
	"github.com/trezcool/schoolfees/services/logger"
	"github.com/trezcool/schoolfees/tests"
)

func TestHome(t *testing.T) {
	app, _ := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to SchoolFees API!", rec.Body.String())
}

func Test_feeApi_query(t *testing.T) {
	app, src := setup(t)
	t0 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	ten := testutil.CreateFee(t, src, fee.KindClass, "10", "2023-2024", 12000, t0)
	ukg := testutil.CreateFee(t, src, fee.KindClass, "UKG", "2024-2025", 8000, t0)
	nursery := testutil.CreateFee(t, src, fee.KindClass, "Nursery", "2024-2025", 7000, t0)
	classX := testutil.CreateFee(t, src, fee.KindClass, "Class X", "2022-2023", 11000, t0)
	lkgBus := testutil.CreateFee(t, src, fee.KindBus, "LKG", "2024-2025", 900, t0)

	tests := []httpTest{
		{name: "class order", path: "/v1/fees/class", wantData: marchallObj(t, []fee.Fee{nursery, ukg, ten, classX})},
		{
			name: "academic_year", path: "/v1/fees/class?academic_year=2024-2025",
			wantData: marchallObj(t, []fee.Fee{nursery, ukg}),
		},
		{name: "tier", path: "/v1/fees/class?tier=class+10", wantData: marchallObj(t, []fee.Fee{ten, classX})},
		{name: "search", path: "/v1/fees/class?search=urs", wantData: marchallObj(t, []fee.Fee{nursery})},
		{name: "no match", path: "/v1/fees/class?search=lol", wantData: marchallList(t)},
		{name: "kind is case insensitive", path: "/v1/fees/Bus", wantData: marchallObj(t, []fee.Fee{lkgBus})},
		{name: "trailing slash", path: "/v1/fees/hostel/", wantData: marchallList(t)},
		{
			name: "unknown kind", path: "/v1/fees/canteen", wantCode: http.StatusNotFound,
			wantData: marchallObj(t, httpErr{Error: "unknown fee kind"}),
		},
		{
			name: "all kinds", path: "/v1/fees",
			wantData: marchallObj(t, fee.Board{
				fee.KindClass:  {nursery, ukg, ten, classX},
				fee.KindBus:    {lkgBus},
				fee.KindHostel: {},
			}),
		},
		{
			name: "all kinds filtered", path: "/v1/fees?academic_year=2022-2023",
			wantData: marchallObj(t, fee.Board{
				fee.KindClass:  {classX},
				fee.KindBus:    {},
				fee.KindHostel: {},
			}),
		},
	}
	runHTTPTests(t, app, tests)
}

func Test_feeApi_create(t *testing.T) {
	app, src := setup(t)

	body := func(data map[string]interface{}) []byte { return marchallObj(t, data) }

	tests := []httpTest{
		{name: "invalid JSON", method: http.MethodPost, path: "/v1/fees/class", body: []byte("{"), wantCode: http.StatusBadRequest},
		{
			name: "unknown kind", method: http.MethodPost, path: "/v1/fees/canteen", body: []byte("{}"),
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "unknown fee kind"}),
		},
		{
			name: "missing fields", method: http.MethodPost, path: "/v1/fees/class", body: []byte("{}"),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{
				"class_name":    "this field is required",
				"academic_year": "this field is required",
				"amount":        "amount must be greater than 0",
				"frequency":     "this field is required",
			}),
		},
		{
			name: "bus fee without route", method: http.MethodPost, path: "/v1/fees/bus",
			body: body(map[string]interface{}{
				"class_name":    "Class 4",
				"academic_year": "2024-2025",
				"amount":        1500,
				"frequency":     "Monthly",
			}),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"route": "this field is required for bus fees"}),
		},
	}
	runHTTPTests(t, app, tests)

	t.Run("created", func(t *testing.T) {
		req, rec := newRequest(http.MethodPost, "/v1/fees/hostel", body(map[string]interface{}{
			"class_name":    " Class 6 ",
			"academic_year": "2024-2025",
			"amount":        30000,
			"frequency":     "yearly",
			"hostel":        "Main Hostel",
		}))
		app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		var created fee.Fee
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, fee.KindHostel, created.Kind)
		assert.Equal(t, "Class 6", created.ClassName)
		assert.Equal(t, "Main Hostel", created.Hostel)
		assert.False(t, created.CreatedAt.IsZero())

		stored, err := src.QueryFees(req.Context(), fee.KindHostel)
		require.NoError(t, err)
		assert.Equal(t, []string{created.ID}, []string{stored[0].ID})
	})
}

func Test_feeApi_destroy(t *testing.T) {
	app, src := setup(t)
	f := testutil.CreateFee(t, src, fee.KindClass, "LKG", "2024-2025", 5000)

	tests := []httpTest{
		{name: "deleted", method: http.MethodDelete, path: "/v1/fees/class/" + f.ID, wantCode: http.StatusNoContent},
		{
			name: "already deleted", method: http.MethodDelete, path: "/v1/fees/class/" + f.ID,
			wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "fee not found"}),
		},
		{name: "listed no more", path: "/v1/fees/class", wantData: marchallList(t)},
	}
	runHTTPTests(t, app, tests)
}

func Test_feeApi_serverError(t *testing.T) {
	app := setupWithSource(t, testutil.FailingSource{Err: errors.New("backend down")})

	tests := []httpTest{
		{
			name: "list", path: "/v1/fees/class", wantCode: http.StatusInternalServerError,
			wantData: marchallObj(t, httpErr{Error: "Internal Server Error"}),
		},
		{
			name: "list all", path: "/v1/fees", wantCode: http.StatusInternalServerError,
			wantData: marchallObj(t, httpErr{Error: "Internal Server Error"}),
		},
	}
	runHTTPTests(t, app, tests)
	assert.Contains(t, logs.String(), "ERROR: Internal Server Error")
	assert.Contains(t, logs.String(), "backend down")
}

func Test_feeApi_shutdownError(t *testing.T) {
	shutdown := make(chan os.Signal, 1)
	app := NewServer(&Options{
		DisableReqLogs: true,
		TestMode:       true,
		FeeSvc:         fee.NewService(testutil.FailingSource{Err: core.NewShutdownError("integrity issue")}),
		Logger:         logsvc.NewConsoleLogger(log.New(&logs, "", 0)),
		Shutdown:       shutdown,
	})

	req, rec := newRequest(http.MethodGet, "/v1/fees/bus")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	select {
	case <-shutdown:
	default:
		t.Error("shutdown was not signaled")
	}
}
