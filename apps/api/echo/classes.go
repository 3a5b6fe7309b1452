package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/schoolfees/core"
	"github.com/trezcool/schoolfees/core/classorder"
)

const labelParam = "label"

type RankResponse struct {
	Label      string `json:"label"`
	Normalized string `json:"normalized"`
	Rank       int    `json:"rank"`
	Tier       string `json:"tier"`
	Suggestion string `json:"suggestion,omitempty"`
}

func registerClassAPI(g *echo.Group) {
	cg := g.Group("/classes")
	cg.POST("/sort", sortClasses)
	cg.GET("/rank", rankClass)
}

// Handlers

// sortClasses answers with the posted records in class order. Records are echoed as sent,
// unknown keys included.
func sortClasses(ctx echo.Context) error {
	var raws []json.RawMessage
	if err := json.NewDecoder(ctx.Request().Body).Decode(&raws); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "records must be a JSON array").SetInternal(err)
	}

	if _, err := classorder.SortRaw(raws); err != nil {
		recErrs, ok := err.(classorder.RecordErrors)
		if !ok {
			return err
		}
		flds := make([]core.FieldError, 0, len(recErrs))
		for i, rErr := range recErrs {
			flds = append(flds, core.FieldError{Field: fmt.Sprintf("[%d]", i), Error: rErr.Error()})
		}
		return core.NewValidationError(nil, flds...)
	}
	if raws == nil {
		raws = []json.RawMessage{}
	}
	return ctx.JSON(http.StatusOK, raws)
}

func rankClass(ctx echo.Context) error {
	if _, ok := ctx.QueryParams()[labelParam]; !ok {
		return core.NewValidationError(nil, core.FieldError{Field: labelParam, Error: "this field is required"})
	}
	label := ctx.QueryParam(labelParam)

	rank := classorder.Classify(label)
	resp := RankResponse{
		Label:      label,
		Normalized: classorder.Normalize(label),
		Rank:       int(rank),
		Tier:       rank.Tier(),
	}
	if suggestion, ok := classorder.Suggest(label); ok {
		resp.Suggestion = suggestion
	}
	return ctx.JSON(http.StatusOK, resp)
}
