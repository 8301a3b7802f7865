package routes

import (
	"LemonRecipes-Backend/internal/api/handlers"
	"LemonRecipes-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	PantryHandler   handlers.PantryHandler
	RecipeHandler   handlers.RecipeHandler
	PlanHandler     handlers.PlanHandler
	ShoppingHandler handlers.ShoppingHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Pantry()
	c.Recipes()
	c.Plans()
	c.Shopping()
	c.GuestRoute()
}

func (c *Config) Pantry() {
	pantry := c.App.Group("/api/v1/pantry")

	pantry.Get("", c.PantryHandler.GetPantry)
	pantry.Get("/low-stock", c.PantryHandler.GetLowStock)
	pantry.Get("/stats", c.PantryHandler.GetStats)
	pantry.Get("/summary", c.PantryHandler.GetSummary)

	pantry.Post("/categories", c.PantryHandler.AddCategory)
	pantry.Post("/items", c.PantryHandler.AddItem)
	pantry.Put("/items/:id", c.PantryHandler.UpdateItem)
	pantry.Patch("/items/:id/amount", c.PantryHandler.AdjustAmount)
	pantry.Delete("/items/:id", c.PantryHandler.DeleteItem)

	// Special operations
	pantry.Get("/snapshot", c.PantryHandler.ExportSnapshot)
	pantry.Post("/snapshot", c.PantryHandler.ImportSnapshot)
	pantry.Post("/low-stock/notify", c.PantryHandler.NotifyLowStock)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Post("", c.RecipeHandler.AddRecipe)
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetails)
	recipes.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.RecipeHandler.DeleteRecipe)

	recipes.Post("/:id/image", c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Plans() {
	plans := c.App.Group("/api/v1/plans")

	plans.Get("", c.PlanHandler.GetPlan)
	plans.Get("/stats", c.PlanHandler.GetStats)
	plans.Post("/meals", c.PlanHandler.AddMeal)
	plans.Patch("/meals/:mealId/complete", c.PlanHandler.CompleteMeal)
	plans.Delete("/meals/:mealId", c.PlanHandler.RemoveMeal)
}

func (c *Config) Shopping() {
	shopping := c.App.Group("/api/v1/shopping")

	shopping.Get("", c.ShoppingHandler.GetList)
	shopping.Get("/stats", c.ShoppingHandler.GetStats)
	shopping.Post("/items", c.ShoppingHandler.AddCustomItem)
	shopping.Patch("/items/:itemId/check", c.ShoppingHandler.CheckItem)
	shopping.Delete("/items/:itemId", c.ShoppingHandler.RemoveItem)
	shopping.Delete("/checked", c.ShoppingHandler.ClearChecked)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
