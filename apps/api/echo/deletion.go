package echoapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core"
)

type (
	deleteRequest struct {
		ID core.ID `json:"id"`
	}

	bulkDeleteRequest struct {
		IDs []core.ID `json:"ids"`
	}

	deleteFunc     func(ctx context.Context, id core.ID) error
	bulkDeleteFunc func(ctx context.Context, ids ...core.ID) (int64, error)
)

// registerDeleteAPI wires the delete and bulk-delete endpoints for an entity.
// Every entity gets the same two routes; only the service calls differ.
func registerDeleteAPI(g *echo.Group, name string, del deleteFunc, bulkDel bulkDeleteFunc) {
	g.POST("/delete", func(ctx echo.Context) error {
		var data deleteRequest
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to deleteRequest")
		}
		if data.ID == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s ID is required", name))
		}

		if err := del(ctx.Request().Context(), data.ID); err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, newMessageResponse(fmt.Sprintf("%s deleted successfully", name)))
	})

	g.POST("/bulk-delete", func(ctx echo.Context) error {
		var data bulkDeleteRequest
		if err := ctx.Bind(&data); err != nil {
			return errors.Wrap(err, "binding to bulkDeleteRequest")
		}
		if len(data.IDs) == 0 {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("A list of %s IDs is required", name))
		}

		n, err := bulkDel(ctx.Request().Context(), data.IDs...)
		if err != nil {
			return err
		}
		return ctx.JSON(http.StatusOK, bulkDeleteResponse{
			Status:  "success",
			Message: fmt.Sprintf("%d %s(s) deleted successfully", n, name),
			Deleted: n,
		})
	})
}
