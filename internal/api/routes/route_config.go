package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tkloetzk/mealplanner-sub001/internal/api/handlers"
	"github.com/tkloetzk/mealplanner-sub001/internal/middleware"
	"github.com/tkloetzk/mealplanner-sub001/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	KidHandler      handlers.KidHandler
	MealPlanHandler handlers.MealPlanHandler
	HistoryHandler  handlers.HistoryHandler
	AnalysisHandler handlers.AnalysisHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Foods()
	c.Kids()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/v1/foods", c.Middleware.AuthMiddleware(c.JWTService))

	foods.Post("", c.FoodHandler.AddFood)
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/barcode/:upc", c.FoodHandler.LookupBarcode)
	foods.Get("/:id", c.FoodHandler.GetFood)
	foods.Put("/:id", c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.FoodHandler.DeleteFood)
	foods.Post("/:id/image", c.FoodHandler.UploadFoodImage)
}

func (c *Config) Kids() {
	kids := c.App.Group("/api/v1/kids", c.Middleware.AuthMiddleware(c.JWTService))

	kids.Post("", c.KidHandler.CreateKid)
	kids.Get("", c.KidHandler.GetKids)
	kids.Get("/:kidId", c.KidHandler.GetKid)
	kids.Put("/:kidId", c.KidHandler.UpdateKid)
	kids.Delete("/:kidId", c.KidHandler.DeleteKid)

	plan := kids.Group("/:kidId/meal-plan")
	plan.Get("", c.MealPlanHandler.GetMealPlan)
	plan.Put("", c.MealPlanHandler.SaveMealPlan)
	plan.Post("/share", c.MealPlanHandler.ShareMealPlan)
	plan.Get("/:day/nutrition", c.MealPlanHandler.GetDayNutrition)

	meal := plan.Group("/:day/:meal")
	meal.Get("", c.MealPlanHandler.GetMeal)
	meal.Delete("", c.MealPlanHandler.ClearMeal)
	meal.Post("/select", c.MealPlanHandler.SelectFood)
	meal.Post("/condiments", c.MealPlanHandler.ToggleCondiment)
	meal.Patch("/condiments/:foodId", c.MealPlanHandler.UpdateCondimentServings)
	meal.Get("/nutrition", c.MealPlanHandler.GetMealNutrition)
	meal.Post("/analyze", c.AnalysisHandler.AnalyzeMeal)

	history := kids.Group("/:kidId/history")
	history.Get("", c.HistoryHandler.GetHistory)
	history.Post("", c.HistoryHandler.RecordMeal)
	history.Get("/:date/summary", c.HistoryHandler.GetDailySummary)
}
