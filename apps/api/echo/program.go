package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core/program"
)

type programApi struct {
	svc      *program.Service
	validate *validator.Validate
}

func registerProgramAPI(g *echo.Group, svc *program.Service, validate *validator.Validate) {
	api := programApi{svc: svc, validate: validate}

	pg := g.Group("/programs")
	pg.GET("/list", api.list)
	pg.POST("/create", api.create)
	pg.POST("/update", api.update)
	registerDeleteAPI(pg, "Program", svc.Delete, svc.DeleteMany)
}

func (api *programApi) list(ctx echo.Context) error {
	var ord Ordering
	ord.Bind(ctx)

	programs, err := api.svc.QueryAll(ctx.Request().Context(), ord.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying programs")
	}
	if programs == nil {
		programs = []program.Program{}
	}
	return ctx.JSON(http.StatusOK, newSuccessResponse(programs))
}

func (api *programApi) create(ctx echo.Context) error {
	var data program.NewProgram
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewProgram")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prog, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newSuccessResponse(prog))
}

func (api *programApi) update(ctx echo.Context) error {
	var data program.UpdateProgram
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProgram")
	}
	if data.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing Program ID")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	prog, err := api.svc.Update(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newSuccessResponse(prog))
}
