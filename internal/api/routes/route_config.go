package routes

import (
	"GreenBite-Backend/internal/api/handlers"
	"GreenBite-Backend/internal/middleware"
	"GreenBite-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	CatalogHandler handlers.CatalogHandler
	OrderHandler   handlers.OrderHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Catalog()
	c.Orders()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/profile-picture", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateProfilePicture)
	}
}

func (c *Config) Catalog() {
	c.App.Get("/api/v1/dishes", c.CatalogHandler.GetDishes)
	c.App.Get("/api/v1/dishes/:id", c.CatalogHandler.GetDishDetails)
	c.App.Get("/api/v1/add-ons", c.CatalogHandler.GetAddOns)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders")

	// drafts are pure previews, nothing persisted, so no auth needed
	orders.Post("/draft", c.OrderHandler.ComposeDraft)

	orders.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.CreateOrder)
	orders.Get("", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.GetMyOrders)
	orders.Get("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.OrderHandler.GetOrderDetails)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
