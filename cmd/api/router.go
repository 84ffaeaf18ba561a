package api

import (
	"net/http"

	authdelivery "homehub-backend/internal/auth/delivery"
	authdomain "homehub-backend/internal/auth/domain"
	authUsecase "homehub-backend/internal/auth/usecase"
	budgetDelivery "homehub-backend/internal/budget/delivery"
	budgetUsecase "homehub-backend/internal/budget/usecase"
	calendarDelivery "homehub-backend/internal/calendar/delivery"
	calendarUsecase "homehub-backend/internal/calendar/usecase"
	itemDelivery "homehub-backend/internal/item/delivery"
	itemUsecase "homehub-backend/internal/item/usecase"
	recipeDelivery "homehub-backend/internal/recipe/delivery"
	recipeUsecase "homehub-backend/internal/recipe/usecase"
	storeDelivery "homehub-backend/internal/store/delivery"
	storeUsecase "homehub-backend/internal/store/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, itemUc itemUsecase.ItemUsecase, storeUc storeUsecase.StoreUsecase, recipeUc recipeUsecase.RecipeUsecase, calendarUc calendarUsecase.EventUsecase, budgetUc budgetUsecase.BudgetUsecase) {
	authHandler := authdelivery.NewAuthHandler(authUc)
	itemHandler := itemDelivery.NewItemHandler(itemUc)
	storeHandler := storeDelivery.NewStoreHandler(storeUc)
	recipeHandler := recipeDelivery.NewRecipeHandler(recipeUc)
	eventHandler := calendarDelivery.NewEventHandler(calendarUc)
	budgetHandler := budgetDelivery.NewBudgetHandler(budgetUc)

	authRequired := authdelivery.AuthMiddleware(authUc)

	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authRequired, authHandler.Logout)
		auth.GET("/profile", authRequired, authHandler.GetProfile)
		auth.PUT("/profile", authRequired, authHandler.UpdateProfile)
		auth.DELETE("/profile", authRequired, authHandler.DeleteProfile)
		auth.GET("/all", authRequired, authHandler.ListUsers)
	}

	// Pantry item routes (protected)
	items := r.Group("/items")
	items.Use(authRequired)
	{
		items.GET("", itemHandler.GetItems)
		items.GET("/:id", itemHandler.GetItemByID)
		items.POST("", itemHandler.CreateItem)
		items.PUT("/:id", itemHandler.UpdateItem)
		items.DELETE("/:id", itemHandler.DeleteItem)
	}

	// Store routes (protected; deletion is admin-only)
	stores := r.Group("/stores")
	stores.Use(authRequired)
	{
		stores.GET("/all", storeHandler.GetStores)
		stores.GET("/:id", storeHandler.GetStoreByID)
		stores.POST("/new", storeHandler.CreateStore)
		stores.PUT("/:id", storeHandler.UpdateStore)
		stores.DELETE("/:id", authdelivery.RequireRoles(authdomain.RoleAdmin), storeHandler.DeleteStore)
	}

	// Recipe routes (protected)
	recipes := r.Group("/recipes")
	recipes.Use(authRequired)
	{
		recipes.GET("", recipeHandler.GetRecipes)
		recipes.GET("/:id", recipeHandler.GetRecipeByID)
		recipes.POST("", recipeHandler.CreateRecipe)
		recipes.PUT("/:id", recipeHandler.UpdateRecipe)
		recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
	}

	// Calendar routes (protected)
	calendar := r.Group("/calendar")
	calendar.Use(authRequired)
	{
		calendar.GET("", eventHandler.GetEvents)
		calendar.GET("/:id", eventHandler.GetEventByID)
		calendar.POST("", eventHandler.CreateEvent)
		calendar.PUT("/:id", eventHandler.UpdateEvent)
		calendar.DELETE("/:id", eventHandler.DeleteEvent)
	}

	// Budget routes (protected)
	budgets := r.Group("/budgets")
	budgets.Use(authRequired)
	{
		budgets.GET("", budgetHandler.GetBudgets)
		budgets.GET("/:id", budgetHandler.GetBudgetByID)
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.PUT("/:id", budgetHandler.UpdateBudget)
		budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	}
}
