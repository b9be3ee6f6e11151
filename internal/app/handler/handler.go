package handler

import (
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/countdown"
	"algofit-storefront/internal/app/middleware"
	"algofit-storefront/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterHandlers wires every storefront route onto router.
func RegisterHandlers(router *gin.Engine, repo *repository.Repository, cfg *config.Config, discount countdown.Countdown) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiRouter := router.Group("/api")

	shopHandler := NewShopHandler(repo)
	planHandler := NewPlanHandler(repo)
	userHandler := NewUserHandler(repo, cfg)
	cartHandler := NewCartHandler(repo)
	discountHandler := NewDiscountHandler(discount)

	// Public routes
	public := apiRouter.Group("")
	{
		public.GET("/shop", shopHandler.GetShop)
		public.POST("/shop/intents", shopHandler.ApplyIntent)

		public.GET("/plans/:id", planHandler.GetPlan)
		public.GET("/memberships", planHandler.GetMemberships)
		public.GET("/reviews", planHandler.GetReviews)

		public.GET("/discount", discountHandler.GetDiscount)
		public.GET("/discount/stream", discountHandler.StreamDiscount)

		public.POST("/auth/refresh", userHandler.RefreshToken)
		public.POST("/auth/password-requirements", userHandler.PasswordCheck)
	}

	// Account routes that hit the backend's mailer or password checks
	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)
	limited := apiRouter.Group("/auth")
	limited.Use(middleware.RateLimit(limiter))
	{
		limited.POST("/register", userHandler.Register)
		limited.POST("/activate", userHandler.Activate)
		limited.POST("/activate/resend", userHandler.ResendActivation)
		limited.POST("/login", userHandler.Login)
	}

	// Protected routes
	protected := apiRouter.Group("")
	protected.Use(middleware.AuthMiddleware(repo.Session, cfg.JWTSecret))
	{
		protected.POST("/auth/logout", userHandler.Logout)
		protected.GET("/auth/me", userHandler.GetProfile)
		protected.PUT("/auth/me", userHandler.UpdateProfile)
		protected.POST("/auth/password", userHandler.ChangePassword)

		protected.GET("/cart", cartHandler.GetCart)
		protected.DELETE("/cart", cartHandler.ClearCart)
		protected.POST("/cart/items", cartHandler.AddToCart)
		protected.DELETE("/cart/items/:plan_id", cartHandler.RemoveFromCart)
	}

	// Staff only routes
	staff := apiRouter.Group("")
	staff.Use(middleware.AuthMiddleware(repo.Session, cfg.JWTSecret), middleware.StaffOnly())
	{
		staff.DELETE("/memberships/cache", planHandler.InvalidateMemberships)
	}
}
