package delivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdelivery "homehub-backend/internal/auth/delivery"
	recipedomain "homehub-backend/internal/recipe/domain"
	"homehub-backend/internal/recipe/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRecipeRepo struct {
	recipes map[string]*recipedomain.Recipe
}

func (r *memRecipeRepo) Create(recipe *recipedomain.Recipe) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = time.Now()
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *memRecipeRepo) FindAll() ([]*recipedomain.Recipe, error) {
	var out []*recipedomain.Recipe
	for _, rec := range r.recipes {
		out = append(out, rec)
	}
	return out, nil
}

func (r *memRecipeRepo) FindByID(id string) (*recipedomain.Recipe, error) {
	return r.recipes[id], nil
}

func (r *memRecipeRepo) Update(recipe *recipedomain.Recipe) error {
	r.recipes[recipe.ID] = recipe
	return nil
}

func (r *memRecipeRepo) Delete(id string) (bool, error) {
	if _, ok := r.recipes[id]; !ok {
		return false, nil
	}
	delete(r.recipes, id)
	return true, nil
}

// fakeIdentity stands in for AuthMiddleware on an already-verified request.
func fakeIdentity(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(authdelivery.CtxUserID, userID)
		c.Next()
	}
}

func newRecipeRouter(userID string) (*gin.Engine, *memRecipeRepo) {
	gin.SetMode(gin.TestMode)
	repo := &memRecipeRepo{recipes: map[string]*recipedomain.Recipe{}}
	handler := NewRecipeHandler(usecase.NewRecipeUsecase(repo))

	r := gin.New()
	recipes := r.Group("/recipes")
	recipes.Use(fakeIdentity(userID))
	recipes.GET("", handler.GetRecipes)
	recipes.GET("/:id", handler.GetRecipeByID)
	recipes.POST("", handler.CreateRecipe)
	recipes.PUT("/:id", handler.UpdateRecipe)
	recipes.DELETE("/:id", handler.DeleteRecipe)
	return r, repo
}

func postJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validRecipe() gin.H {
	return gin.H{
		"name":       "Pancakes",
		"servings":   4,
		"prep_time":  10,
		"cook_time":  15,
		"difficulty": "Easy",
		"category":   []string{"Breakfast"},
		"ingredients": []gin.H{
			{"item": "item-1", "quantity": 200.0, "unit": "g"},
		},
		"steps": []gin.H{
			{"step_number": 1, "description": "Mix and fry."},
		},
	}
}

func TestCreateRecipe_SetsOwner(t *testing.T) {
	r, repo := newRecipeRouter("user-42")

	w := postJSON(r, http.MethodPost, "/recipes", validRecipe())
	require.Equal(t, http.StatusCreated, w.Code)

	require.Len(t, repo.recipes, 1)
	for _, rec := range repo.recipes {
		assert.Equal(t, "user-42", rec.CreatedBy)
	}
}

func TestCreateRecipe_MissingCategory(t *testing.T) {
	r, _ := newRecipeRouter("user-42")

	body := validRecipe()
	delete(body, "category")
	w := postJSON(r, http.MethodPost, "/recipes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipe_MissingName(t *testing.T) {
	r, _ := newRecipeRouter("user-42")

	body := validRecipe()
	delete(body, "name")
	w := postJSON(r, http.MethodPost, "/recipes", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateRecipe_PreservesOwner(t *testing.T) {
	r, repo := newRecipeRouter("user-42")
	postJSON(r, http.MethodPost, "/recipes", validRecipe())

	var id string
	for k := range repo.recipes {
		id = k
	}

	// Another identity updating the recipe must not steal ownership.
	r2 := gin.New()
	handler := NewRecipeHandler(usecase.NewRecipeUsecase(repo))
	r2.PUT("/recipes/:id", fakeIdentity("user-99"), handler.UpdateRecipe)

	body := validRecipe()
	body["name"] = "Fluffy Pancakes"
	w := postJSON(r2, http.MethodPut, "/recipes/"+id, body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", repo.recipes[id].CreatedBy)
	assert.Equal(t, "Fluffy Pancakes", repo.recipes[id].Name)
}

func TestDeleteRecipe_NotFound(t *testing.T) {
	r, _ := newRecipeRouter("user-42")

	w := postJSON(r, http.MethodDelete, "/recipes/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
