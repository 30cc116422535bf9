package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/malcolm008/RFID-system/core/device"
)

type deviceApi struct {
	svc      *device.Service
	validate *validator.Validate
}

func registerDeviceAPI(g *echo.Group, svc *device.Service, validate *validator.Validate) {
	api := deviceApi{svc: svc, validate: validate}

	dg := g.Group("/devices")
	dg.GET("/list", api.list)
	dg.POST("/create", api.create)
	dg.POST("/update", api.update)
	registerDeleteAPI(dg, "Device", svc.Delete, svc.DeleteMany)
}

func (api *deviceApi) list(ctx echo.Context) error {
	var ord Ordering
	ord.Bind(ctx)

	// most recently seen first unless the client orders explicitly
	devices, err := api.svc.QueryAll(ctx.Request().Context(), ord.Orderings...)
	if err != nil {
		return errors.Wrap(err, "querying devices")
	}
	if devices == nil {
		devices = []device.Device{}
	}
	return ctx.JSON(http.StatusOK, newSuccessResponse(devices))
}

func (api *deviceApi) create(ctx echo.Context) error {
	var data device.NewDevice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewDevice")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	dev, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newSuccessResponse(dev))
}

func (api *deviceApi) update(ctx echo.Context) error {
	var data device.UpdateDevice
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateDevice")
	}
	if data.ID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing Device ID")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	dev, err := api.svc.Update(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newSuccessResponse(dev))
}
