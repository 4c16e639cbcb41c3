package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"abc-retail-backend/internal/handler"
	"abc-retail-backend/internal/middleware"
	"abc-retail-backend/internal/model"
	"abc-retail-backend/internal/service"
)

type Server struct {
	echo            *echo.Echo
	authService     service.AuthService
	authHandler     *handler.AuthHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	productHandler  *handler.ProductHandler
	customerHandler *handler.CustomerHandler
}

func NewServer(
	authService service.AuthService,
	cartService service.CartService,
	orderService service.OrderService,
	productService service.ProductService,
	customerService service.CustomerService,
) *Server {
	e := echo.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	s := &Server{
		echo:            e,
		authService:     authService,
		authHandler:     handler.NewAuthHandler(authService),
		cartHandler:     handler.NewCartHandler(cartService, orderService),
		orderHandler:    handler.NewOrderHandler(orderService),
		productHandler:  handler.NewProductHandler(productService),
		customerHandler: handler.NewCustomerHandler(customerService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.POST("/auth/register", s.authHandler.Register)
	api.POST("/auth/login", s.authHandler.Login)

	api.GET("/products", s.productHandler.List)
	api.GET("/products/:id", s.productHandler.Get)

	// -------- storefront (Customer) --------
	store := api.Group("", middleware.Auth(s.authService), middleware.RequireRole(model.RoleCustomer))
	store.GET("/cart", s.cartHandler.GetCart)
	store.POST("/cart", s.cartHandler.Add)
	store.PUT("/cart/:cart_id", s.cartHandler.UpdateQuantity)
	store.DELETE("/cart/:cart_id", s.cartHandler.Remove)
	store.DELETE("/cart", s.cartHandler.Clear)
	store.POST("/cart/checkout", s.cartHandler.Checkout)
	store.GET("/orders/mine", s.cartHandler.MyOrders)

	// -------- administration --------
	admin := api.Group("/admin", middleware.Auth(s.authService), middleware.RequireRole(model.RoleAdmin))
	admin.GET("/orders", s.orderHandler.ListAll)
	admin.PUT("/orders/:order_id/status", s.orderHandler.UpdateStatus)
	admin.GET("/orders/legacy", s.orderHandler.ListLegacy)
	admin.POST("/orders/legacy", s.orderHandler.CreateLegacy)
	admin.PUT("/orders/legacy/:id/status", s.orderHandler.UpdateLegacyStatus)
	admin.DELETE("/orders/legacy/:id", s.orderHandler.DeleteLegacy)

	admin.POST("/products", s.productHandler.Create)
	admin.PUT("/products/:id", s.productHandler.Update)
	admin.DELETE("/products/:id", s.productHandler.Delete)

	admin.GET("/customers", s.customerHandler.List)
	admin.GET("/customers/legacy", s.customerHandler.ListLegacy)
	admin.GET("/customers/legacy/:id", s.customerHandler.Get)
	admin.POST("/customers/legacy", s.customerHandler.Create)
	admin.PUT("/customers/legacy/:id", s.customerHandler.Update)
	admin.DELETE("/customers/legacy/:id", s.customerHandler.Delete)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
