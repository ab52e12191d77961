package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CatalogHandler *CatalogHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	products := api.Group("/products")
	products.GET("", d.CatalogHandler.GetProducts)
	products.GET("/:id", d.CatalogHandler.GetProduct)

	admin := api.Group("/admin")
	admin.GET("/products", d.CatalogHandler.GetProducts)
	admin.GET("/products/:id", d.CatalogHandler.GetProduct)
	admin.POST("/products", d.CatalogHandler.CreateProduct)
	admin.PUT("/products/:id", d.CatalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", d.CatalogHandler.DeleteProduct)
	admin.GET("/artists", d.CatalogHandler.GetArtists)
}
