package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pazarlabs/pazar/internal/dto"
	"github.com/pazarlabs/pazar/internal/middleware"
	"github.com/pazarlabs/pazar/internal/service"
	"github.com/pazarlabs/pazar/pkg/errs"
	"github.com/pazarlabs/pazar/pkg/response"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.CatalogService
}

func CreateProductController(e *echo.Group, service service.CatalogService, gate echo.MiddlewareFunc) {
	pc := ProductController{
		service: service,
	}
	e.GET("/products", pc.GetProducts)
	e.GET("/products/categories", pc.GetCategories)
	e.GET("/products/:id", pc.GetProductByID)
	e.POST("/products", pc.AddProduct, gate)
	e.DELETE("/products/:id", pc.DeleteProduct, gate)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := dto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetCategories(e echo.Context) error {
	resp, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) GetProductByID(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	resp, err := c.service.GetProductByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	if fileHeader, err := e.FormFile("image"); err == nil && fileHeader.Filename != "" {
		src, err := fileHeader.Open()
		if err != nil {
			log.Error().Err(err).Str("component", "AddProduct").Msg("")
			return response.WriteErrorResponse(e, errs.ErrClient, nil)
		}
		defer src.Close()

		payload.Upload = &dto.Upload{Filename: fileHeader.Filename, Content: src}
	}

	principal := middleware.Principal(e)

	resp, err := c.service.AddProduct(e.Request().Context(), principal.ID, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	principal := middleware.Principal(e)

	if err := c.service.DeleteProduct(e.Request().Context(), principal.ID, id); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", nil)
}
