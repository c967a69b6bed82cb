package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"arborlog/entities"
	"arborlog/pkg/export"
	"arborlog/pkg/tree/service"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportCtrl struct{ s service.TreeService }

func New(s service.TreeService) *ExportCtrl { return &ExportCtrl{s: s} }

// Every export runs over the full unfiltered collection; an empty collection
// is refused here, before any artifact is built.
func (h *ExportCtrl) CSV(c echo.Context) error {
	records, err := h.guard(c)
	if err != nil || records == nil {
		return err
	}
	return send(c, "text/csv; charset=utf-8", export.CSV(records, time.Now()))
}

func (h *ExportCtrl) XLSX(c echo.Context) error {
	records, err := h.guard(c)
	if err != nil || records == nil {
		return err
	}
	art, err := export.XLSX(records, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return send(c, xlsxMime, art)
}

func (h *ExportCtrl) PDF(c echo.Context) error {
	records, err := h.guard(c)
	if err != nil || records == nil {
		return err
	}
	art, err := export.PDF(records, time.Now())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return send(c, "application/pdf", art)
}

// guard writes the 409 refusal itself when there is nothing to export; a nil
// slice tells the caller the response is already done.
func (h *ExportCtrl) guard(c echo.Context) ([]entities.TreeRecord, error) {
	records := h.s.List()
	if len(records) == 0 {
		return nil, c.JSON(http.StatusConflict, echo.Map{"error": "no records to export"})
	}
	return records, nil
}

func send(c echo.Context, mime string, art export.Artifact) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", art.Filename))
	return c.Blob(http.StatusOK, mime, art.Content)
}
