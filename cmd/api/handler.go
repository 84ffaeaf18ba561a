package api

import (
	authUsecase "homehub-backend/internal/auth/usecase"
	budgetUsecase "homehub-backend/internal/budget/usecase"
	calendarUsecase "homehub-backend/internal/calendar/usecase"
	itemUsecase "homehub-backend/internal/item/usecase"
	recipeUsecase "homehub-backend/internal/recipe/usecase"
	storeUsecase "homehub-backend/internal/store/usecase"
	"homehub-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	itemUsecase     itemUsecase.ItemUsecase
	storeUsecase    storeUsecase.StoreUsecase
	recipeUsecase   recipeUsecase.RecipeUsecase
	calendarUsecase calendarUsecase.EventUsecase
	budgetUsecase   budgetUsecase.BudgetUsecase
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, itemUc itemUsecase.ItemUsecase, storeUc storeUsecase.StoreUsecase, recipeUc recipeUsecase.RecipeUsecase, calendarUc calendarUsecase.EventUsecase, budgetUc budgetUsecase.BudgetUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		itemUsecase:     itemUc,
		storeUsecase:    storeUc,
		recipeUsecase:   recipeUc,
		calendarUsecase: calendarUc,
		budgetUsecase:   budgetUc,
		config:          cfg,
	}
}

// Engine builds the gin engine with CORS and all routes attached.
func (h *Handler) Engine() *gin.Engine {
	if h.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.itemUsecase, h.storeUsecase, h.recipeUsecase, h.calendarUsecase, h.budgetUsecase)

	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
