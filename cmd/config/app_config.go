package config

import (
	"LemonRecipes-Backend/internal/api/handlers"
	"LemonRecipes-Backend/internal/api/routes"
	"LemonRecipes-Backend/internal/middleware"
	"LemonRecipes-Backend/internal/utils"
	"LemonRecipes-Backend/internal/utils/storage"
	"LemonRecipes-Backend/pkg/pantry"
	"LemonRecipes-Backend/pkg/plan"
	"LemonRecipes-Backend/pkg/recipe"
	"LemonRecipes-Backend/pkg/shopping"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	pantryRepository := pantry.NewPantryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	planRepository := plan.NewPlanRepository(db)
	shoppingRepository := shopping.NewShoppingRepository(db)

	// Service
	pantryService := pantry.NewPantryService(pantryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, pantryRepository, s3)
	planService := plan.NewPlanService(planRepository, recipeRepository, pantryRepository)
	shoppingService := shopping.NewShoppingService(
		shoppingRepository,
		planService,
		recipeRepository,
		pantryRepository,
	)

	// Handler
	pantryHandler := handlers.NewPantryHandler(pantryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	planHandler := handlers.NewPlanHandler(planService, validator)
	shoppingHandler := handlers.NewShoppingHandler(shoppingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		PantryHandler:   pantryHandler,
		RecipeHandler:   recipeHandler,
		PlanHandler:     planHandler,
		ShoppingHandler: shoppingHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
