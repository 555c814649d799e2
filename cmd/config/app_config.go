package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/internal/api/handlers"
	"github.com/tkloetzk/mealplanner-sub001/internal/api/routes"
	"github.com/tkloetzk/mealplanner-sub001/internal/middleware"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils/mailing"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils/storage"
	"github.com/tkloetzk/mealplanner-sub001/pkg/analysis"
	"github.com/tkloetzk/mealplanner-sub001/pkg/food"
	"github.com/tkloetzk/mealplanner-sub001/pkg/history"
	"github.com/tkloetzk/mealplanner-sub001/pkg/jwt"
	"github.com/tkloetzk/mealplanner-sub001/pkg/kid"
	"github.com/tkloetzk/mealplanner-sub001/pkg/mealplan"
	"github.com/tkloetzk/mealplanner-sub001/pkg/user"
)

func NewApp(cfg utils.Config, db *gorm.DB, log *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: !cfg.IsProduction(),
	})
	middlewares := middleware.NewMiddleware(cfg.AppURL)
	validator := utils.NewValidator()

	// access log and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   cfg.DBTimeZone,
		Output:     file,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(cfg)
	if err != nil {
		return nil, err
	}
	mailConfig, err := mailing.LoadMailConfig(cfg)
	if err != nil {
		return nil, err
	}
	mailer := mailing.NewMailer(mailConfig)
	catalogCache := food.NewCatalogCache(food.DefaultCatalogTTL, nil)
	products := food.NewOpenFoodFactsClient(cfg.OpenFoodFactsURL, nil)
	analyzer := analysis.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, nil)

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	kidRepository := kid.NewKidRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	historyRepository := history.NewHistoryRepository(db)

	// Service
	jwtService := jwt.NewJWTService(cfg.JWTSecret)
	userService := user.NewUserService(userRepository, jwtService, log)
	foodService := food.NewFoodService(foodRepository, catalogCache, products, s3, log)
	kidService := kid.NewKidService(kidRepository)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, kidService, foodService, mailer, log)
	historyService := history.NewHistoryService(historyRepository, kidService, log)
	analysisService := analysis.NewAnalysisService(mealPlanService, analyzer, log)

	// Handler
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     handlers.NewUserHandler(userService, validator),
		FoodHandler:     handlers.NewFoodHandler(foodService, validator),
		KidHandler:      handlers.NewKidHandler(kidService, validator),
		MealPlanHandler: handlers.NewMealPlanHandler(mealPlanService, validator),
		HistoryHandler:  handlers.NewHistoryHandler(historyService, validator),
		AnalysisHandler: handlers.NewAnalysisHandler(analysisService),
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
