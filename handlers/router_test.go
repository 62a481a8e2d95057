package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodgram-api/config"
	"foodgram-api/helper"
	"foodgram-api/middleware"
	"foodgram-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type apiResponse struct {
	Code        int             `json:"code"`
	CodeType    string          `json:"code_type"`
	CodeMessage json.RawMessage `json:"code_message"`
	Data        json.RawMessage `json:"data"`
}

type RouterTestSuite struct {
	suite.Suite
	recipes   *MockRecipeService
	favorites *MockRelationService
	baskets   *MockRelationService
	lists     *MockShoppingListService
	catalog   *MockCatalogService
	users     *MockUserService
	follows   *MockFollowService
	router    *gin.Engine
	token     string
	actor     models.Actor
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.recipes = new(MockRecipeService)
	suite.favorites = new(MockRelationService)
	suite.baskets = new(MockRelationService)
	suite.lists = new(MockShoppingListService)
	suite.catalog = new(MockCatalogService)
	suite.users = new(MockUserService)
	suite.follows = new(MockFollowService)

	h := helper.NewHTTPHelper()
	suite.router = SetupRouter(Handlers{
		Recipes:     NewRecipeHandler(suite.recipes, suite.favorites, suite.baskets, suite.lists, h),
		Tags:        NewTagHandler(suite.catalog, h),
		Ingredients: NewIngredientHandler(suite.catalog, h),
		Users:       NewUserHandler(suite.users, suite.follows, h),
	}, Media{})

	suite.actor = models.Actor{ID: 5, Username: "cook", Authenticated: true}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID:   suite.actor.ID,
		Username: suite.actor.Username,
	}).SignedString(config.JWTSecret)
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *RouterTestSuite) do(method, path string, body interface{}, authenticated bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder) apiResponse {
	var res apiResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func validRecipeBody() models.RecipeRequest {
	return models.RecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		Image:       "data:image/png;base64,aGVsbG8=",
		CookingTime: 15,
		Tags:        []uint{1},
		Ingredients: []models.IngredientLine{{ID: 2, Amount: 100}},
	}
}

func (suite *RouterTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, false)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *RouterTestSuite) TestGetTags() {
	suite.catalog.On("ListTags", mock.Anything).Return([]models.Tag{{ID: 1, Name: "Breakfast"}}, nil)

	w := suite.do(http.MethodGet, "/api/tags", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var tags []models.Tag
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &tags))
	suite.Equal("Breakfast", tags[0].Name)
}

func (suite *RouterTestSuite) TestSearchIngredientsPassesPrefix() {
	suite.catalog.On("SearchIngredients", mock.Anything, "fl").Return([]models.Ingredient{{ID: 2, Name: "Flour"}}, nil)

	w := suite.do(http.MethodGet, "/api/ingredients?name=fl", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	suite.catalog.AssertExpectations(suite.T())
}

func (suite *RouterTestSuite) TestMalformedIDIsNotFound() {
	w := suite.do(http.MethodGet, "/api/recipes/abc", nil, false)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestGetMissingRecipe() {
	suite.recipes.On("Get", mock.Anything, models.AnonymousActor(), uint(9)).
		Return(nil, &models.ErrorNotFound{Entity: "recipe", ID: 9})

	w := suite.do(http.MethodGet, "/api/recipes/9", nil, false)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestListRecipesBindsFilters() {
	want := models.RecipeListParams{
		Page:        2,
		Limit:       3,
		Author:      1,
		Tags:        []string{"breakfast", "dinner"},
		IsFavorited: true,
	}
	suite.recipes.On("List", mock.Anything, suite.actor, want).
		Return(&models.Page[models.RecipeView]{Items: []models.RecipeView{{ID: 7}}, Total: 4, Page: 2, Limit: 3}, nil)

	w := suite.do(http.MethodGet, "/api/recipes?page=2&limit=3&author=1&tags=breakfast&tags=dinner&is_favorited=1", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var data struct {
		Count   int64               `json:"count"`
		Results []models.RecipeView `json:"results"`
	}
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &data))
	suite.Equal(int64(4), data.Count)
	suite.Len(data.Results, 1)
}

func (suite *RouterTestSuite) TestCreateRecipeRequiresAuthentication() {
	w := suite.do(http.MethodPost, "/api/recipes", validRecipeBody(), false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.recipes.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestRecipeWritesRequireAuthentication() {
	for _, tc := range []struct{ method, path string }{
		{http.MethodPatch, "/api/recipes/7"},
		{http.MethodDelete, "/api/recipes/7"},
		{http.MethodPost, "/api/recipes/7/favorite"},
		{http.MethodDelete, "/api/recipes/7/shopping_cart"},
	} {
		w := suite.do(tc.method, tc.path, nil, false)
		suite.Equal(http.StatusUnauthorized, w.Code, tc.method+" "+tc.path)
	}
	suite.recipes.AssertNotCalled(suite.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
	suite.favorites.AssertNotCalled(suite.T(), "Add", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestCreateRecipeValidatesBody() {
	body := validRecipeBody()
	body.Name = ""

	w := suite.do(http.MethodPost, "/api/recipes", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	var fields map[string][]string
	suite.Require().NoError(json.Unmarshal(suite.decode(w).CodeMessage, &fields))
	suite.Contains(fields, "name")
	suite.recipes.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestCreateRecipe() {
	suite.recipes.On("Create", mock.Anything, suite.actor, validRecipeBody()).
		Return(&models.RecipeView{ID: 7, Name: "Pancakes"}, nil)

	w := suite.do(http.MethodPost, "/api/recipes", validRecipeBody(), true)

	suite.Equal(http.StatusCreated, w.Code)
	var view models.RecipeView
	suite.Require().NoError(json.Unmarshal(suite.decode(w).Data, &view))
	suite.Equal(uint(7), view.ID)
}

func (suite *RouterTestSuite) TestCreateRecipeDomainValidation() {
	body := validRecipeBody()
	body.Ingredients = nil
	suite.recipes.On("Create", mock.Anything, suite.actor, body).
		Return(nil, models.NewValidationError("ingredients", "at least one ingredient is required"))

	w := suite.do(http.MethodPost, "/api/recipes", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	var fields map[string][]string
	suite.Require().NoError(json.Unmarshal(suite.decode(w).CodeMessage, &fields))
	suite.Equal([]string{"at least one ingredient is required"}, fields["ingredients"])
}

func (suite *RouterTestSuite) TestUpdateRecipeForbidden() {
	suite.recipes.On("Update", mock.Anything, suite.actor, uint(7), validRecipeBody()).
		Return(nil, &models.ErrorForbidden{})

	w := suite.do(http.MethodPatch, "/api/recipes/7", validRecipeBody(), true)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *RouterTestSuite) TestDeleteRecipe() {
	suite.recipes.On("Delete", mock.Anything, suite.actor, uint(7)).Return(nil)

	w := suite.do(http.MethodDelete, "/api/recipes/7", nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *RouterTestSuite) TestFavoriteToggle() {
	suite.favorites.On("Add", mock.Anything, suite.actor, uint(7)).
		Return(&models.ShortRecipeView{ID: 7, Name: "Pancakes"}, nil).Once()
	suite.favorites.On("Add", mock.Anything, suite.actor, uint(7)).
		Return(nil, &models.ErrorConflict{Message: "recipe is already in favorites"}).Once()

	w := suite.do(http.MethodPost, "/api/recipes/7/favorite", nil, true)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodPost, "/api/recipes/7/favorite", nil, true)
	suite.Equal(http.StatusBadRequest, w.Code)
	var message string
	suite.Require().NoError(json.Unmarshal(suite.decode(w).CodeMessage, &message))
	suite.Equal("recipe is already in favorites", message)
}

func (suite *RouterTestSuite) TestRemoveMissingCartEntry() {
	suite.baskets.On("Remove", mock.Anything, suite.actor, uint(7)).
		Return(&models.ErrorNotFound{Entity: "basket", Message: "recipe is not in the shopping cart", Relation: true})

	w := suite.do(http.MethodDelete, "/api/recipes/7/shopping_cart", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestDownloadShoppingCart() {
	items := []models.ShoppingListItem{{Name: "Flour", MeasurementUnit: "g", TotalAmount: 300}}
	suite.lists.On("Compute", mock.Anything, suite.actor).Return(items, nil)
	suite.lists.On("Render", items).Return("* Flour (g) -- 300\n\n")

	w := suite.do(http.MethodGet, "/api/recipes/download_shopping_cart", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="shopping_list.txt"`, w.Header().Get("Content-Disposition"))
	suite.Equal("* Flour (g) -- 300\n\n", w.Body.String())
	suite.recipes.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestDownloadEmptyShoppingCart() {
	suite.lists.On("Compute", mock.Anything, suite.actor).Return(nil, models.NewValidationError("errors", "basket is empty"))

	w := suite.do(http.MethodGet, "/api/recipes/download_shopping_cart", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestRegisterValidatesEmail() {
	w := suite.do(http.MethodPost, "/api/users", models.RegisterRequest{
		Email:     "not-an-email",
		Username:  "cook",
		FirstName: "Ann",
		LastName:  "Cook",
		Password:  "s3cret-pass",
	}, false)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.users.AssertNotCalled(suite.T(), "Register", mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestMeRoutesBeforeUserID() {
	suite.users.On("Me", mock.Anything, suite.actor).Return(&models.UserView{ID: 5, Username: "cook"}, nil)

	w := suite.do(http.MethodGet, "/api/users/me", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.users.AssertNotCalled(suite.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RouterTestSuite) TestSubscribeSelf() {
	suite.follows.On("Subscribe", mock.Anything, suite.actor, uint(5), 0).
		Return(nil, models.NewValidationError("errors", "cannot subscribe to yourself"))

	w := suite.do(http.MethodPost, "/api/users/5/subscribe", nil, true)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestSubscriptionsPassRecipesLimit() {
	params := models.SubscriptionParams{Page: 1, RecipesLimit: 2}
	suite.follows.On("Subscriptions", mock.Anything, suite.actor, params).
		Return(&models.Page[models.FollowView]{Items: []models.FollowView{}, Page: 1, Limit: 6}, nil)

	w := suite.do(http.MethodGet, "/api/users/subscriptions?recipes_limit=2", nil, true)

	suite.Equal(http.StatusOK, w.Code)
	suite.follows.AssertExpectations(suite.T())
}

func (suite *RouterTestSuite) TestInvalidTokenIsRejected() {
	req := httptest.NewRequest(http.MethodGet, "/api/tags", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}
