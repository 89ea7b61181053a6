package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/ItaloOlivier/shopcrypto/internal/category"
	"github.com/ItaloOlivier/shopcrypto/internal/order"
	"github.com/ItaloOlivier/shopcrypto/internal/product"
	"github.com/ItaloOlivier/shopcrypto/internal/user"
)

// errStatus maps domain errors onto the external contract: validation problems
// surface with their own message, everything unexpected collapses to a generic
// 500 so internals never leak.
func errStatus(err error) (int, string) {
	switch {
	case errors.Is(err, order.ErrMissingFields):
		return http.StatusBadRequest, "Missing required fields"
	case errors.Is(err, order.ErrEmptyCart):
		return http.StatusBadRequest, "Cart is empty"
	case errors.Is(err, order.ErrInvalidQuantity):
		return http.StatusBadRequest, "Quantity must be greater than zero"
	case errors.Is(err, user.ErrEmailExists):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, category.ErrInvalidInput), errors.Is(err, product.ErrInvalidInput):
		return http.StatusBadRequest, "Invalid input"
	case errors.Is(err, order.ErrInvalidStatus):
		return http.StatusBadRequest, "Invalid status"
	case errors.Is(err, user.ErrInvalidCredentials), errors.Is(err, order.ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound, "Order not found"
	case errors.Is(err, product.ErrProductNotFound):
		return http.StatusNotFound, "Product not found"
	case errors.Is(err, category.ErrCategoryNotFound):
		return http.StatusNotFound, "Category not found"
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}

type userResponse struct {
	ID    string  `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Role  string  `json:"role"`
}

func toUserResponse(u user.User) userResponse {
	return userResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  string(u.Role),
	}
}

type categoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
}

func toCategoryResponse(c category.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
	}
}

func toCategoryResponses(cs []category.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, toCategoryResponse(c))
	}
	return out
}

type productResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Slug             string     `json:"slug"`
	Description      *string    `json:"description,omitempty"`
	ShortDescription *string    `json:"shortDescription,omitempty"`
	Price            float64    `json:"price"`
	CompareAtPrice   *float64   `json:"compareAtPrice,omitempty"`
	Images           []string   `json:"images"`
	CategoryID       *string    `json:"categoryId,omitempty"`
	Category         *string    `json:"category,omitempty"`
	Vendor           *string    `json:"vendor,omitempty"`
	SKU              *string    `json:"sku,omitempty"`
	Stock            int        `json:"stock"`
	IsActive         bool       `json:"isActive"`
	IsFeatured       bool       `json:"isFeatured"`
	Hashrate         *string    `json:"hashrate,omitempty"`
	Algorithm        *string    `json:"algorithm,omitempty"`
	PowerConsumption *string    `json:"powerConsumption,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

func toProductResponse(p product.Product) productResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return productResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		CompareAtPrice:   p.CompareAtPrice,
		Images:           images,
		CategoryID:       p.CategoryID,
		Category:         p.CategoryName,
		Vendor:           p.Vendor,
		SKU:              p.SKU,
		Stock:            p.Stock,
		IsActive:         p.IsActive,
		IsFeatured:       p.IsFeatured,
		Hashrate:         p.Hashrate,
		Algorithm:        p.Algorithm,
		PowerConsumption: p.PowerConsumption,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductResponses(ps []product.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

type orderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type orderResponse struct {
	ID                 string              `json:"id"`
	OrderNumber        string              `json:"orderNumber"`
	Status             string              `json:"status"`
	Subtotal           float64             `json:"subtotal"`
	Total              float64             `json:"total"`
	ShippingAddress    string              `json:"shippingAddress"`
	ShippingCity       string              `json:"shippingCity"`
	ShippingProvince   string              `json:"shippingProvince"`
	ShippingPostalCode string              `json:"shippingPostalCode"`
	PaymentMethod      *string             `json:"paymentMethod,omitempty"`
	Notes              *string             `json:"notes,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	Items              []orderItemResponse `json:"items"`
}

func toOrderResponse(o order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return orderResponse{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		Status:             string(o.Status),
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		ShippingAddress:    o.ShippingAddress,
		ShippingCity:       o.ShippingCity,
		ShippingProvince:   o.ShippingProvince,
		ShippingPostalCode: o.ShippingPostalCode,
		PaymentMethod:      o.PaymentMethod,
		Notes:              o.Notes,
		CreatedAt:          o.CreatedAt,
		Items:              items,
	}
}

func toOrderResponses(orders []order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}
