package controllerImp

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"arborlog/entities"
	"arborlog/pkg/ai"
	"arborlog/pkg/capture"
	"arborlog/pkg/tree/controller"
	"arborlog/pkg/tree/service"
)

var _ controller.TreeController = (*TreeCtrl)(nil)

type TreeCtrl struct {
	s      service.TreeService
	llm    ai.Client
	photos capture.PhotoSource
}

func New(s service.TreeService, llm ai.Client, photos capture.PhotoSource) *TreeCtrl {
	return &TreeCtrl{s: s, llm: llm, photos: photos}
}

type createReq struct {
	TreeNumber         string   `json:"treeNumber" form:"treeNumber"`
	TreeName           string   `json:"treeName" form:"treeName"`
	Species            string   `json:"species" form:"species"`
	Health             string   `json:"health" form:"health"`
	HealthDescription  string   `json:"healthDescription" form:"healthDescription"`
	Production         string   `json:"production" form:"production"`
	ProductionQuantity *float64 `json:"productionQuantity" form:"productionQuantity"`
	Photo              string   `json:"photo"` // already-encoded data URI
	Lat                string   `json:"lat" form:"lat"`
	Lng                string   `json:"lng" form:"lng"`
	Notes              string   `json:"notes" form:"notes"`
}

func (h *TreeCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad request"})
	}

	rec := entities.TreeRecord{
		TreeNumber:         req.TreeNumber,
		TreeName:           req.TreeName,
		Species:            req.Species,
		Health:             entities.HealthStatus(req.Health),
		HealthDescription:  req.HealthDescription,
		Production:         entities.ProductionLevel(req.Production),
		ProductionQuantity: req.ProductionQuantity,
		Photo:              req.Photo,
		Notes:              req.Notes,
	}

	// multipart uploads win over a pre-encoded photo field
	if fh, err := c.FormFile("photo"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable photo"})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable photo"})
		}
		encoded, err := h.photos.Encode(data)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		rec.Photo = encoded
	}

	loc, err := capture.NewPairLocator(req.Lat, req.Lng).Locate()
	switch {
	case err == nil:
		rec.Location = &loc
	case errors.Is(err, capture.ErrNoSample):
		// location stays unset
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	stored, err := h.s.Add(rec)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, stored)
}

func (h *TreeCtrl) List(c echo.Context) error {
	list := h.s.Search(c.QueryParam("q"))
	c.Response().Header().Set("X-Total-Count", strconv.Itoa(h.s.Count()))
	return c.JSON(http.StatusOK, list)
}

func (h *TreeCtrl) Get(c echo.Context) error {
	rec, ok := h.s.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

// Delete requires confirm=true; without it the operation is silently skipped
// and the collection is untouched.
func (h *TreeCtrl) Delete(c echo.Context) error {
	if c.QueryParam("confirm") != "true" {
		return c.JSON(http.StatusOK, echo.Map{"deleted": false})
	}
	removed, err := h.s.Remove(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": removed})
}

// Insights always answers 200 for a known record: the advice client converts
// its own failures into a user-facing message.
func (h *TreeCtrl) Insights(c echo.Context) error {
	rec, ok := h.s.Get(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"insights": h.llm.Advise(rec)})
}
