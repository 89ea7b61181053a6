package api

import (
	"net/http"
	"strings"

	"github.com/ItaloOlivier/shopcrypto/internal/category"
	"github.com/ItaloOlivier/shopcrypto/internal/logger"
	"github.com/ItaloOlivier/shopcrypto/internal/order"
	"github.com/ItaloOlivier/shopcrypto/internal/product"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// AdminListProducts returns every product, inactive ones included. Unlike the
// storefront listing this path propagates store failures.
func (h *Handler) AdminListProducts(c *gin.Context) {
	products, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

type createProductRequest struct {
	Name             string   `json:"name" binding:"required"`
	Slug             string   `json:"slug"`
	Description      *string  `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	Price            float64  `json:"price"`
	CompareAtPrice   *float64 `json:"compareAtPrice"`
	Images           []string `json:"images"`
	CategoryID       *string  `json:"categoryId"`
	Vendor           *string  `json:"vendor"`
	SKU              *string  `json:"sku"`
	Stock            int      `json:"stock"`
	IsActive         *bool    `json:"isActive"`
	IsFeatured       bool     `json:"isFeatured"`
	Hashrate         *string  `json:"hashrate"`
	Algorithm        *string  `json:"algorithm"`
	PowerConsumption *string  `json:"powerConsumption"`
}

func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// New products default to active unless explicitly disabled.
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	p, err := h.products.Create(c.Request.Context(), product.CreateProductParams{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		CompareAtPrice:   req.CompareAtPrice,
		Images:           req.Images,
		CategoryID:       req.CategoryID,
		Vendor:           req.Vendor,
		SKU:              req.SKU,
		Stock:            req.Stock,
		IsActive:         active,
		IsFeatured:       req.IsFeatured,
		Hashrate:         req.Hashrate,
		Algorithm:        req.Algorithm,
		PowerConsumption: req.PowerConsumption,
	})
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(p))
}

func (h *Handler) AdminListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, toCategoryResponses(h.categories.List(c.Request.Context())))
}

type createCategoryRequest struct {
	Name        string  `json:"name" binding:"required"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

func (h *Handler) AdminCreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := h.categories.Create(c.Request.Context(), category.CreateCategoryParams{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toCategoryResponse(created))
}

func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll(c.Request.Context())
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	status := order.Status(strings.ToUpper(req.Status))
	if err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		code, msg := errStatus(err)
		c.JSON(code, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AdminExportProducts streams the full catalog as an Excel workbook.
func (h *Handler) AdminExportProducts(c *gin.Context) {
	products, err := h.products.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
		return
	}

	headers := []string{
		"ID", "Name", "Slug", "Price", "CompareAtPrice", "Category",
		"Vendor", "SKU", "Stock", "Active", "Featured",
		"Hashrate", "Algorithm", "PowerConsumption", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, head := range headers {
		headerRow.AddCell().SetValue(head)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Slug)
		row.AddCell().SetValue(utils.FormatPrice(p.Price))
		if p.CompareAtPrice != nil {
			row.AddCell().SetValue(utils.FormatPrice(*p.CompareAtPrice))
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(utils.PtrString(p.CategoryName))
		row.AddCell().SetValue(utils.PtrString(p.Vendor))
		row.AddCell().SetValue(utils.PtrString(p.SKU))
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(p.IsActive)
		row.AddCell().SetValue(p.IsFeatured)
		row.AddCell().SetValue(utils.PtrString(p.Hashrate))
		row.AddCell().SetValue(utils.PtrString(p.Algorithm))
		row.AddCell().SetValue(utils.PtrString(p.PowerConsumption))
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")

	if err := file.Write(c.Writer); err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to write export", zap.Error(err))
	}
}
