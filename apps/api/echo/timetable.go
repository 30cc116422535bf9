package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core/timetable"
)

type timetableApi struct {
	svc      *timetable.Service
	validate *validator.Validate
}

func registerTimetableAPI(g *echo.Group, svc *timetable.Service, validate *validator.Validate) {
	api := timetableApi{svc: svc, validate: validate}

	tg := g.Group("/timetable")
	tg.GET("/list", api.list)
	tg.POST("/create", api.create)
	tg.POST("/update", api.update)
	registerDeleteAPI(tg, "Timetable entry", svc.Delete, svc.DeleteMany)
}

func (api *timetableApi) list(ctx echo.Context) error {
	var ord Ordering
	ord.Bind(ctx)

	entries, err := api.svc.QueryAll(ctx.Request().Context(), ord.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying timetable entries")
	}
	if entries == nil {
		entries = []timetable.Entry{}
	}
	return ctx.JSON(http.StatusOK, newSuccessResponse(entries))
}

func (api *timetableApi) create(ctx echo.Context) error {
	var data timetable.NewEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEntry")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newSuccessResponse(ent))
}

func (api *timetableApi) update(ctx echo.Context) error {
	var data timetable.UpdateEntry
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEntry")
	}
	if data.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing Timetable entry ID")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ent, err := api.svc.Update(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newSuccessResponse(ent))
}
