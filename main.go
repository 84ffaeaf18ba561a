package main

import (
	"log"

	api "homehub-backend/cmd/api"
	authdomain "homehub-backend/internal/auth/domain"
	authRepo "homehub-backend/internal/auth/repository"
	authScheduler "homehub-backend/internal/auth/scheduler"
	authUsecase "homehub-backend/internal/auth/usecase"
	budgetdomain "homehub-backend/internal/budget/domain"
	budgetRepo "homehub-backend/internal/budget/repository"
	budgetUsecase "homehub-backend/internal/budget/usecase"
	calendardomain "homehub-backend/internal/calendar/domain"
	calendarRepo "homehub-backend/internal/calendar/repository"
	calendarUsecase "homehub-backend/internal/calendar/usecase"
	itemdomain "homehub-backend/internal/item/domain"
	itemRepo "homehub-backend/internal/item/repository"
	itemUsecase "homehub-backend/internal/item/usecase"
	recipedomain "homehub-backend/internal/recipe/domain"
	recipeRepo "homehub-backend/internal/recipe/repository"
	recipeUsecase "homehub-backend/internal/recipe/usecase"
	storedomain "homehub-backend/internal/store/domain"
	storeRepo "homehub-backend/internal/store/repository"
	storeUsecase "homehub-backend/internal/store/usecase"
	"homehub-backend/pkg/config"
	"homehub-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &authdomain.BlacklistEntry{}, &itemdomain.Item{}, &storedomain.Store{}, &recipedomain.Recipe{}, &calendardomain.CalendarEvent{}, &budgetdomain.Budget{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)

	// Blacklist lives in Redis when an address is configured, in Postgres otherwise
	var blacklistRepository authRepo.TokenBlacklistRepository
	if cfg.RedisAddr != "" {
		redisClient, err := database.NewRedisClient(cfg)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		blacklistRepository = authRepo.NewRedisTokenBlacklistRepository(redisClient)
		log.Printf("Token blacklist backed by Redis at %s", cfg.RedisAddr)
	} else {
		blacklistRepository = authRepo.NewTokenBlacklistRepository(db)
	}

	itemRepository := itemRepo.NewItemRepository(db)
	storeRepository := storeRepo.NewStoreRepository(db)
	recipeRepository := recipeRepo.NewRecipeRepository(db)
	eventRepository := calendarRepo.NewEventRepository(db)
	budgetRepository := budgetRepo.NewBudgetRepository(db)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, blacklistRepository, cfg)
	itemUc := itemUsecase.NewItemUsecase(itemRepository)
	storeUc := storeUsecase.NewStoreUsecase(storeRepository)
	recipeUc := recipeUsecase.NewRecipeUsecase(recipeRepository)
	calendarUc := calendarUsecase.NewEventUsecase(eventRepository)
	budgetUc := budgetUsecase.NewBudgetUsecase(budgetRepository)

	// Start the blacklist sweeper
	sweeper := authScheduler.NewBlacklistSweeper(authUc, cfg.SweepInterval)
	sweeper.Start()
	defer sweeper.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, itemUc, storeUc, recipeUc, calendarUc, budgetUc, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
