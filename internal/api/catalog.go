package api

import (
	"net/http"
	"strconv"

	"github.com/ItaloOlivier/shopcrypto/internal/product"
	"github.com/ItaloOlivier/shopcrypto/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListProducts serves the public catalog. Store failures degrade to an empty
// list inside the service, so this path never returns a 5xx.
func (h *Handler) ListProducts(c *gin.Context) {
	if c.Query("featured") == "true" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
		c.JSON(http.StatusOK, toProductResponses(h.products.Featured(c.Request.Context(), limit)))
		return
	}

	q := product.Query{Sort: c.Query("sort")}
	if v := c.Query("category"); v != "" {
		q.CategorySlug = utils.StrPtr(v)
	}
	if v := c.Query("search"); v != "" {
		q.Search = utils.StrPtr(v)
	}

	c.JSON(http.StatusOK, toProductResponses(h.products.List(c.Request.Context(), q)))
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, err := h.products.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		status, msg := errStatus(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, toProductResponse(*p))
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, toCategoryResponses(h.categories.List(c.Request.Context())))
}
