package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/schoolfees/core/fee"
)

const (
	academicYearParam = "academic_year"
	searchParam       = "search"
	tierParam         = "tier"
)

func bindQueryFilter(ctx echo.Context) fee.QueryFilter {
	return fee.QueryFilter{
		AcademicYear: ctx.QueryParam(academicYearParam),
		Search:       ctx.QueryParam(searchParam),
		Tier:         ctx.QueryParam(tierParam),
	}
}

// bindKind parses the :kind path param.
func bindKind(ctx echo.Context) (fee.Kind, error) {
	return fee.ParseKind(ctx.Param("kind"))
}
