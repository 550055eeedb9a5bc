// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vinmart/internal/delivery/http/middleware"
	"vinmart/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	CategoryHandler      *handler.CategoryHandler
	ProductUnitHandler   *handler.ProductUnitHandler
	ProductHandler       *handler.ProductHandler
	ProfileHandler       *handler.ProfileHandler
	AddressHandler       *handler.AddressHandler
	CartHandler          *handler.CartHandler
	FavoriteHandler      *handler.FavoriteHandler
	PaymentMethodHandler *handler.PaymentMethodHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes under /api/v1.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware

	api := e.Group("/api/v1")

	// Authentication. Sign-up and sign-in are open; the activation endpoints
	// require the short-lived OTP token issued at sign-up.
	authGroup := api.Group("/authentication")
	{
		authGroup.POST("/sign-up", r.params.AuthHandler.SignUp)
		authGroup.POST("/sign-in", r.params.AuthHandler.SignIn)
		authGroup.POST("/activate-account", r.params.AuthHandler.ActivateAccount, auth.AuthenticateOTP)
		authGroup.POST("/resend-activate-otp", r.params.AuthHandler.ResendActivateOTP, auth.AuthenticateOTP)
	}

	// Catalogue. Every route requires an active session.
	catalogueGroup := api.Group("/catalogue", auth.AuthenticateSession)
	{
		catalogueGroup.GET("/categories", r.params.CategoryHandler.ListCategories)
		catalogueGroup.POST("/categories", r.params.CategoryHandler.CreateCategory)

		catalogueGroup.GET("/product-units", r.params.ProductUnitHandler.ListProductUnits)
		catalogueGroup.POST("/product-units", r.params.ProductUnitHandler.CreateProductUnit)

		catalogueGroup.GET("/products", r.params.ProductHandler.ListProducts)
		catalogueGroup.POST("/products", r.params.ProductHandler.CreateProduct)
		catalogueGroup.GET("/products/:productId", r.params.ProductHandler.GetProduct)
		catalogueGroup.GET("/products/:productId/reviews", r.params.ProductHandler.ListReviews)
		catalogueGroup.POST("/products/:productId/reviews", r.params.ProductHandler.CreateReview)
	}

	// Owner-scoped resources. The session account must match :userId.
	userGroup := api.Group("/users/:userId", auth.AuthenticateSession, auth.RequireOwnership)
	{
		userGroup.GET("/profile", r.params.ProfileHandler.GetProfile)
		userGroup.PATCH("/profile", r.params.ProfileHandler.UpdateProfile)
		userGroup.PATCH("/password", r.params.ProfileHandler.ChangePassword)
		userGroup.PATCH("/avatar", r.params.ProfileHandler.UpdateAvatar)
		userGroup.GET("/notification-settings", r.params.ProfileHandler.GetNotificationSettings)
		userGroup.PATCH("/notification-settings", r.params.ProfileHandler.UpdateNotificationSettings)

		userGroup.GET("/addresses", r.params.AddressHandler.ListAddresses)
		userGroup.POST("/addresses", r.params.AddressHandler.CreateAddress)
		userGroup.PATCH("/addresses/:addressId", r.params.AddressHandler.UpdateAddress)
		userGroup.DELETE("/addresses/:addressId", r.params.AddressHandler.DeleteAddress)

		userGroup.GET("/cart-items", r.params.CartHandler.ListCartItems)
		userGroup.POST("/cart-items", r.params.CartHandler.AddCartItem)
		userGroup.PATCH("/cart-items/:cartItemId", r.params.CartHandler.UpdateCartItem)
		userGroup.DELETE("/cart-items/:cartItemId", r.params.CartHandler.DeleteCartItem)

		userGroup.GET("/favorite-items", r.params.FavoriteHandler.ListFavoriteItems)
		userGroup.POST("/favorite-items", r.params.FavoriteHandler.AddFavoriteItem)
		userGroup.DELETE("/favorite-items/:favoriteItemId", r.params.FavoriteHandler.DeleteFavoriteItem)

		userGroup.GET("/payment-methods", r.params.PaymentMethodHandler.ListPaymentMethods)
		userGroup.POST("/payment-methods", r.params.PaymentMethodHandler.AddPaymentMethod)
		userGroup.DELETE("/payment-methods/:paymentMethodId", r.params.PaymentMethodHandler.DeletePaymentMethod)
	}
}
