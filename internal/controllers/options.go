package controllers

import (
	"net/http"

	"github.com/cloudspace/csp/internal/catalog"
	"github.com/cloudspace/csp/internal/httpmodel"
	"github.com/cloudspace/csp/internal/model"
	"github.com/labstack/echo/v4"
)

// GetOptions is the handler for the GET /api/options endpoint.
//
// swagger:route GET /api/options catalog listOptions
//
// # List Options
//
// Lists the available compute plans and storage tiers with their prices.
//
// responses:
//
//	200: optionsResponse
func (s Server) GetOptions(ctx echo.Context) error {
	resp := httpmodel.OptionsResponse{
		Plans:   catalog.Plans(),
		Storage: catalog.StorageOptions(),
	}
	return model.Success(ctx, resp, http.StatusOK)
}
