package scaling

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"recipe-scaler/internal/core/scaling"
	"recipe-scaler/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	common.Logger = zap.NewNop()
	os.Exit(m.Run())
}

// newTestRouter 只掛處理器本身，不帶中間件
func newTestRouter() *gin.Engine {
	handler := NewHandler(scaling.NewService(nil))

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/ingredients/parse", handler.HandleParseIngredients)
		v1.POST("/recipe/scale", handler.HandleScaleRecipe)
		v1.POST("/recipe/scale-by-amount", handler.HandleScaleByAmount)
		v1.POST("/container/volume", handler.HandleContainerVolume)
		v1.POST("/container/scale", handler.HandleContainerScale)
	}
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestHandleParseIngredients(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/ingredients/parse", gin.H{
		"text": "600g Self Raising Flour\n2 large Eggs\nPinch Of Salt",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ParseIngredientsResponse
	decodeBody(t, w, &resp)
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "Self Raising Flour", resp.Ingredients[0].Name)
	assert.InDelta(t, 600, resp.Ingredients[0].Quantity, 1e-9)
	assert.Equal(t, "g", resp.Ingredients[0].Unit)
	assert.Equal(t, "600g Self Raising Flour", resp.Ingredients[0].OriginalLine)
	assert.Equal(t, "large", resp.Ingredients[1].Unit)
	assert.Equal(t, "", resp.Ingredients[2].Unit)
}

func TestHandleParseIngredientsMissingText(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/ingredients/parse", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, common.ErrCodeInvalidRequest, resp.Code)
}

func TestHandleScaleRecipe(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale", ScaleRecipeRequest{
		Ingredients: []common.Ingredient{
			{Name: "Flour", Quantity: 600, Unit: "g"},
			{Name: "Sugar", Quantity: 1.5, Unit: "cup"},
		},
		Factor: 0.5,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScaleRecipeResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp.Ingredients, 2)
	assert.InDelta(t, 300, resp.Ingredients[0].Quantity, 1e-9)
	assert.InDelta(t, 0.75, resp.Ingredients[1].Quantity, 1e-9)
	assert.InDelta(t, 0.5, resp.Factor, 1e-9)
}

func TestHandleScaleRecipeRejectsZeroFactor(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale", ScaleRecipeRequest{
		Ingredients: []common.Ingredient{{Name: "Flour", Quantity: 600, Unit: "g"}},
		Factor:      0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, common.ErrCodeInvalidScaleFactor, resp.Code)
	assert.Equal(t, common.ErrInvalidScaleFactor.Message, resp.Message)
	assert.Contains(t, resp.Details, "scale factor")
}

func TestHandleScaleByAmount(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale-by-amount", ScaleByAmountRequest{
		Ingredients: []common.Ingredient{
			{Name: "Flour", Quantity: 600, Unit: "g"},
		},
		OriginalQuantity:  200,
		AvailableQuantity: 150,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ScaleByAmountResponse
	decodeBody(t, w, &resp)
	assert.InDelta(t, 0.75, resp.Factor, 1e-9)
	require.Len(t, resp.Ingredients, 1)
	assert.InDelta(t, 450, resp.Ingredients[0].Quantity, 1e-9)
}

func TestHandleScaleByAmountRejectsZeroOriginal(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale-by-amount", ScaleByAmountRequest{
		Ingredients:       []common.Ingredient{{Name: "Flour", Quantity: 600, Unit: "g"}},
		OriginalQuantity:  0,
		AvailableQuantity: 150,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, common.ErrCodeInvalidQuantity, resp.Code)
	assert.Contains(t, resp.Details, "original quantity")
}

func TestHandleScaleByAmountRejectsZeroAvailable(t *testing.T) {
	// 可用量為 0 也要回數量錯誤碼，而不是倍率錯誤
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/recipe/scale-by-amount", ScaleByAmountRequest{
		Ingredients:       []common.Ingredient{{Name: "Flour", Quantity: 600, Unit: "g"}},
		OriginalQuantity:  200,
		AvailableQuantity: 0,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, common.ErrCodeInvalidQuantity, resp.Code)
	assert.Contains(t, resp.Details, "available quantity")
}

func TestHandleContainerVolume(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/container/volume", gin.H{
		"container": gin.H{"type": "round", "size": 8, "count": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp ContainerVolumeResponse
	decodeBody(t, w, &resp)
	assert.InDelta(t, 6, resp.VolumeCups, 1e-9)
}

func TestHandleContainerVolumeUnknownType(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/container/volume", gin.H{
		"container": gin.H{"type": "wok"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp common.ErrorResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, common.ErrCodeUnknownContainerType, resp.Code)
	assert.Contains(t, resp.Details, "wok")
}

func TestHandleContainerScale(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/container/scale", gin.H{
		"source": gin.H{"type": "round", "size": 6, "count": 1},
		"target": gin.H{"type": "round", "size": 8, "count": 1},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp common.ScaleResult
	decodeBody(t, w, &resp)
	assert.InDelta(t, 1.78, resp.Factor, 1e-9)
	assert.Equal(t, "1.78×", resp.Display)
}

func TestHandleContainerScaleSame(t *testing.T) {
	router := newTestRouter()

	w := postJSON(t, router, "/api/v1/container/scale", gin.H{
		"source": gin.H{"type": "round", "size": 8},
		"target": gin.H{"type": "muffin", "cup_size": "standard", "cups_per_tray": 12},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp common.ScaleResult
	decodeBody(t, w, &resp)
	assert.InDelta(t, 1, resp.Factor, 1e-9)
	assert.Equal(t, "same", resp.Display)
}
