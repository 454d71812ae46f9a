package routes

import (
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/handlers"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/middleware"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/models"
	"github.com/Akshay02-cmd/Mama-s-kitchen-backend/token"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the full API surface under /api/v1, grouped by
// the role set each route requires.
func SetupRoutes(r *gin.Engine, h *handlers.Set, tokens *token.Service) {
	handlers.RegisterValidators()

	api := r.Group("/api/v1")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/mess", h.Mess.List)
	api.GET("/mess/:id", h.Mess.Get)
	api.GET("/menu", h.Meal.List)
	api.GET("/menu/:id", h.Meal.Get)

	// Any authenticated identity
	auth := api.Group("")
	auth.Use(middleware.AuthRequired(tokens))
	{
		auth.POST("/auth/logout", h.Auth.Logout)
		auth.GET("/auth/me", h.Auth.Me)
		auth.GET("/orders/:id", h.Order.Get)
		auth.GET("/reviews", h.Review.List)
		auth.GET("/reviews/:id", h.Review.Get)
		auth.GET("/mess/:id/reviews", h.Review.ListByMess)
		auth.GET("/mess/:id/rating", h.Review.MessRating)
		auth.POST("/contacts", h.Contact.Create)
	}

	// Customer routes
	customer := api.Group("")
	customer.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/profile/customer", h.Profile.CreateCustomerProfile)
		customer.GET("/profile/customer", h.Profile.GetCustomerProfile)
		customer.PUT("/profile/customer", h.Profile.UpdateCustomerProfile)

		customer.POST("/orders", h.Order.Create)
		customer.GET("/orders/my", h.Order.MyOrders)
		customer.DELETE("/orders/my", h.Order.ClearMyOrders)

		customer.POST("/reviews", h.Review.Create)
		customer.PUT("/reviews/:id", h.Review.Update)
		customer.DELETE("/reviews/:id", h.Review.Delete)
	}

	// Owner routes
	owner := api.Group("")
	owner.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleOwner))
	{
		owner.POST("/profile/owner", h.Profile.CreateOwnerProfile)
		owner.GET("/profile/owner", h.Profile.GetOwnerProfile)
		owner.PUT("/profile/owner", h.Profile.UpdateOwnerProfile)

		owner.POST("/mess", h.Mess.Create)
		owner.GET("/mess/mine", h.Mess.Mine)
		owner.PUT("/mess/:id", h.Mess.Update)
		owner.DELETE("/mess/:id", h.Mess.Delete)

		owner.POST("/menu", h.Meal.Create)
		owner.PUT("/menu/:id", h.Meal.Update)
		owner.DELETE("/menu/:id", h.Meal.Delete)
	}

	// Order management (owner or admin)
	orderMgmt := api.Group("")
	orderMgmt.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleOwner, models.RoleAdmin))
	{
		orderMgmt.GET("/orders", h.Order.ListAll)
		orderMgmt.PUT("/orders/:id/status", h.Order.UpdateStatus)
		orderMgmt.GET("/orders/status/:status", h.Order.GetByStatus)
		orderMgmt.GET("/orders/range", h.Order.GetWithinDateRange)
		orderMgmt.GET("/orders/analytics/total", h.Order.TotalSales)
		orderMgmt.GET("/orders/analytics/monthly", h.Order.MonthlySales)
		orderMgmt.GET("/orders/analytics/top-meals", h.Order.TopSellingMeals)
	}

	// Admin routes
	admin := api.Group("")
	admin.Use(middleware.AuthRequired(tokens), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/admin/users", h.Admin.ListUsers)
		admin.GET("/admin/customers", h.Admin.ListCustomers)
		admin.GET("/admin/owners", h.Admin.ListOwners)
		admin.GET("/admin/stats", h.Admin.Statistics)

		admin.GET("/contacts", h.Contact.List)
		admin.GET("/contacts/grouped", h.Contact.GroupedByUser)
		admin.GET("/contacts/stats", h.Contact.Statistics)
		admin.GET("/contacts/:id", h.Contact.Get)
		admin.DELETE("/contacts/:id", h.Contact.Delete)
		admin.DELETE("/contacts", h.Contact.DeleteAll)

		admin.DELETE("/orders/:id", h.Order.Delete)
	}
}
