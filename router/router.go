package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-platform/controllers"
	"restaurant-platform/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	categoryCtrl := controllers.NewMenuCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	reservationCtrl := controllers.NewReservationController(db)
	customerCtrl := controllers.NewCustomerController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC STOREFRONT
	// ----------------------------------------------------------------
	r.GET("/restaurants", restaurantCtrl.GetAllRestaurants)
	r.GET("/restaurants/:slug/categories", categoryCtrl.GetCategories)
	r.GET("/restaurants/:slug/menus", menuCtrl.GetMenus)
	r.POST("/restaurants/:slug/orders", orderCtrl.CreateOrder)
	r.POST("/restaurants/:slug/reservations", reservationCtrl.CreateReservation)
	r.GET("/orders/token/:token", orderCtrl.GetOrderByToken)

	// Live order/reservation feed.
	r.GET("/events/stream", controllers.StreamEvents)
	r.GET("/events/ws", controllers.EventsWebsocket)

	// Rate limiter for login/register.
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      BACK OFFICE (JWT)
	// ----------------------------------------------------------------
	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware())
	{
		admin.GET("/profile", userCtrl.GetProfile)

		staff := admin.Group("/")
		staff.Use(middlewares.RequireRole("staff"))
		{
			staff.GET("/orders", orderCtrl.GetAllOrders)
			staff.GET("/orders/:order_id", orderCtrl.GetOrderByID)
			staff.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)

			staff.GET("/reservations", reservationCtrl.GetAllReservations)
			staff.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

			staff.GET("/customers", customerCtrl.GetAllCustomers)
			staff.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
		}

		adminOnly := admin.Group("/")
		adminOnly.Use(middlewares.RequireRole())
		{
			adminOnly.GET("/dashboard", adminCtrl.GetDashboardStats)

			adminOnly.POST("/restaurants", restaurantCtrl.CreateRestaurant)
			adminOnly.PUT("/restaurants/:restaurant_id", restaurantCtrl.UpdateRestaurant)

			adminOnly.POST("/categories", categoryCtrl.CreateCategory)
			adminOnly.PUT("/categories/:category_id", categoryCtrl.UpdateCategory)
			adminOnly.DELETE("/categories/:category_id", categoryCtrl.DeleteCategory)

			adminOnly.POST("/menus", menuCtrl.CreateMenu)
			adminOnly.GET("/menus/:menu_id", menuCtrl.GetMenuByID)
			adminOnly.PUT("/menus/:menu_id", menuCtrl.UpdateMenu)
			adminOnly.DELETE("/menus/:menu_id", menuCtrl.DeleteMenu)
		}
	}

	return r
}
