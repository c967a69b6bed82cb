package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	treeCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Delete(echo.Context) error
		Insights(echo.Context) error
	},
	exportCtrl interface {
		CSV(echo.Context) error
		XLSX(echo.Context) error
		PDF(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("")
	api.POST("/trees", treeCtrl.Create)
	api.GET("/trees", treeCtrl.List)
	api.GET("/trees/:id", treeCtrl.Get)
	api.DELETE("/trees/:id", treeCtrl.Delete)
	api.GET("/trees/:id/insights", treeCtrl.Insights)

	g := e.Group("/export")
	g.GET("/csv", exportCtrl.CSV)
	g.GET("/xlsx", exportCtrl.XLSX)
	g.GET("/pdf", exportCtrl.PDF)

	return e
}
