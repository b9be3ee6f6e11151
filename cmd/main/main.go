package main

import (
	_ "algofit-storefront/docs"
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/repository"
	"algofit-storefront/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title AlgoFit Storefront API
// @version 1.0
// @description Storefront gateway for the AlgoFit fitness backend: catalog browsing, reviews, accounts and cart

// @contact.name API Support
// @contact.url http://localhost:8080

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

// @tag.name Shop
// @tag.description Catalog browsing with filters, sorting and pagination
// @tag.name Plans
// @tag.description Plan detail, memberships and reviews
// @tag.name Auth
// @tag.description Registration, activation and sessions
// @tag.name Cart
// @tag.description Shopping cart of the logged-in user
// @tag.name Discount
// @tag.description Launch discount countdown
func main() {
	router := gin.Default()

	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	repo, err := repository.NewRepository(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}

	application := pkg.NewApp(conf, router, repo)

	application.RunApp()
}
