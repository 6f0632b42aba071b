package http

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/dto"
	"storefront/internal/models"
	"storefront/internal/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	catalog  *catalog.Catalog
	cart     *cart.Store
	recorder *order.Recorder
	checkout *checkout.Checkout
	log      *zap.Logger
}

func NewHandler(cat *catalog.Catalog, cartStore *cart.Store, rec *order.Recorder, chk *checkout.Checkout, log *zap.Logger) *Handler {
	return &Handler{
		catalog:  cat,
		cart:     cartStore,
		recorder: rec,
		checkout: chk,
		log:      log,
	}
}

func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": h.catalog.Products()})
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("product id must be an integer", nil))
		return
	}
	p := h.catalog.FindProduct(id)
	if p == nil {
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("product not found"))
		return
	}
	c.JSON(http.StatusOK, p)
}

type cartItemRequest struct {
	ProductID int  `json:"productId"`
	VariantID *int `json:"variantId,omitempty"`
	Quantity  *int `json:"quantity,omitempty"`
}

type cartRowResponse struct {
	Item      models.CartItem `json:"item"`
	Product   *models.Product `json:"product,omitempty"`
	Variant   *models.Variant `json:"variant,omitempty"`
	UnitPrice int64           `json:"unitPrice"`
	LineTotal int64           `json:"lineTotal"`
}

func (h *Handler) cartResponse() gin.H {
	rows := cart.Enrich(h.cart.Items(), h.catalog)
	out := make([]cartRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, cartRowResponse{
			Item:      r.Item,
			Product:   r.Product,
			Variant:   r.Variant,
			UnitPrice: r.UnitPrice(),
			LineTotal: r.LineTotal(),
		})
	}
	currency := cart.ResolveDisplayCurrency(rows)
	return gin.H{
		"items":    out,
		"count":    h.cart.Count(),
		"total":    cart.ComputeTotal(rows),
		"currency": currency,
	}
}

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartResponse())
}

// AddCartItem accumulates quantity onto an existing line. Quantity defaults
// to 1 when omitted.
func (h *Handler) AddCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid add-to-cart request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if err := h.cart.AddToCart(req.ProductID, req.VariantID, qty); err != nil {
		if errors.Is(err, cart.ErrQuantityInvalid) {
			c.JSON(http.StatusBadRequest, dto.NewValidationError("quantity must be > 0", []dto.FieldError{
				{Field: "quantity", Message: "must be a positive integer"},
			}))
			return
		}
		h.log.Error("add to cart failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, h.cartResponse())
}

// SetCartItem sets the absolute quantity. Zero or negative removes the line.
func (h *Handler) SetCartItem(c *gin.Context) {
	var req cartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update-quantity request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}
	qty := 0
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	h.cart.UpdateQuantity(req.ProductID, req.VariantID, qty)
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.cart.ClearCart()
	c.JSON(http.StatusOK, h.cartResponse())
}

func (h *Handler) SubmitCheckout(c *gin.Context) {
	var form checkout.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		h.log.Warn("invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", nil))
		return
	}

	ord, err := h.checkout.Submit(c.Request.Context(), form)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("validation failed", fieldErrors(verr)))
		case errors.Is(err, checkout.ErrSubmitting):
			c.JSON(http.StatusConflict, dto.NewConflictError("a submission is already in progress"))
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, dto.NewValidationError("cart is empty", nil))
		default:
			c.JSON(http.StatusBadGateway, dto.NewBadGatewayError("there was a problem submitting your order"))
		}
		return
	}
	c.JSON(http.StatusOK, ord)
}

func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.recorder.History()})
}

func (h *Handler) ClearOrders(c *gin.Context) {
	h.recorder.ClearHistory()
	c.JSON(http.StatusOK, gin.H{"orders": []models.Order{}})
}

func fieldErrors(verr *checkout.ValidationError) []dto.FieldError {
	fields := make([]dto.FieldError, 0, len(verr.Fields))
	for f, msg := range verr.Fields {
		fields = append(fields, dto.FieldError{Field: f, Message: msg})
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	return fields
}
