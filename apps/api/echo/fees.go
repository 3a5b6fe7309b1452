package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/schoolfees/core/fee"
)

type feeApi struct {
	svc *fee.Service
}

func registerFeeAPI(g *echo.Group, svc *fee.Service) {
	api := feeApi{svc: svc}

	fg := g.Group("/fees")
	fg.GET("", api.queryAll)
	fg.GET("/:kind", api.query)
	fg.POST("/:kind", api.create)
	fg.DELETE("/:kind/:id", api.destroy)
}

// Handlers

func (api *feeApi) queryAll(ctx echo.Context) error {
	board, err := api.svc.ListAll(ctx.Request().Context(), bindQueryFilter(ctx))
	if err != nil {
		return errors.Wrap(err, "listing fees")
	}
	return ctx.JSON(http.StatusOK, board)
}

func (api *feeApi) query(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	fees, err := api.svc.List(ctx.Request().Context(), kind, bindQueryFilter(ctx))
	if err != nil {
		return errors.Wrapf(err, "listing %s fees", kind)
	}
	return ctx.JSON(http.StatusOK, fees)
}

func (api *feeApi) create(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}

	var data fee.NewFee
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewFee")
	}
	data.Kind = kind
	if err := data.Validate(); err != nil {
		return err
	}

	f, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrapf(err, "creating %s fee", kind)
	}
	return ctx.JSON(http.StatusCreated, f)
}

func (api *feeApi) destroy(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	if err := api.svc.Delete(ctx.Request().Context(), kind, ctx.Param("id")); err != nil {
		return errors.Wrapf(err, "deleting %s fee", kind)
	}
	return ctx.NoContent(http.StatusNoContent)
}
