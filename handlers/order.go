package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/apperrors"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc *services.OrderService
}

func NewOrderHandler(svc *services.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type OrderItemRequest struct {
	MealID   uint    `json:"meal_id" binding:"required"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
	Price    float64 `json:"price" binding:"required,min=0"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest   `json:"items" binding:"required,min=1,dive"`
	DeliveryAddress string               `json:"delivery_address" binding:"required,min=10,max=300"`
	DeliveryPhone   string               `json:"delivery_phone" binding:"required,inphone"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" binding:"required,oneof=CREDIT_CARD DEBIT_CARD UPI COD"`
	PaymentStatus   models.PaymentStatus `json:"payment_status" binding:"omitempty,oneof=PENDING COMPLETED FAILED"`
	PaymentID       string               `json:"payment_id"`
	Notes           string               `json:"notes" binding:"omitempty,max=500"`
	DeliveryTime    *time.Time           `json:"delivery_time"`
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required,oneof=PLACED PREPARING DELIVERED CANCELLED"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	items := make([]services.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, services.OrderItemInput{
			MealID:   item.MealID,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order, err := h.svc.Create(identity.AccountID, services.CreateOrderInput{
		Items:           items,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryPhone:   req.DeliveryPhone,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   req.PaymentStatus,
		PaymentID:       req.PaymentID,
		Notes:           req.Notes,
		DeliveryTime:    req.DeliveryTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": order})
}

// Get returns one order. Customers may only read their own; owners and
// admins see any.
func (h *OrderHandler) Get(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.svc.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if identity.Role == models.RoleCustomer && order.CustomerID != identity.AccountID {
		respondError(c, apperrors.Forbidden("this order does not belong to you"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.svc.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	orders, err := h.svc.GetUserOrders(identity.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

func (h *OrderHandler) ClearMyOrders(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	deleted, err := h.svc.ClearUserOrders(identity.AccountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "deleted_count": deleted})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	order, err := h.svc.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) GetByStatus(c *gin.Context) {
	status := models.OrderStatus(c.Param("status"))
	switch status {
	case models.StatusPlaced, models.StatusPreparing, models.StatusDelivered, models.StatusCancelled:
	default:
		respondError(c, apperrors.Validation("unknown order status"))
		return
	}
	orders, err := h.svc.GetByStatus(status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

// GetWithinDateRange filters orders by creation time; start and end
// accept RFC3339 or plain dates.
func (h *OrderHandler) GetWithinDateRange(c *gin.Context) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid start date"))
		return
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		respondError(c, apperrors.Validation("invalid end date"))
		return
	}
	orders, err := h.svc.GetWithinDateRange(start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "order deleted"})
}

func (h *OrderHandler) TotalSales(c *gin.Context) {
	total, err := h.svc.TotalSales()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "total_sales": total})
}

func (h *OrderHandler) MonthlySales(c *gin.Context) {
	sales, err := h.svc.MonthlySales()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "monthly_sales": sales})
}

func (h *OrderHandler) TopSellingMeals(c *gin.Context) {
	limit := 5
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	meals, err := h.svc.TopSellingMeals(limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "top_meals": meals})
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
