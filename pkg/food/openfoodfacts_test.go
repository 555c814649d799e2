package food

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkloetzk/mealplanner-sub001/domain"
)

func offServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/product/0123456789012.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupProductPerServing(t *testing.T) {
	srv := offServer(t, http.StatusOK, `{
		"status": 1,
		"product": {
			"product_name": "Greek Yogurt",
			"serving_quantity": "170",
			"serving_quantity_unit": "g",
			"image_url": "https://images.example/yogurt.jpg",
			"nutriments": {
				"energy-kcal_serving": 100,
				"energy-kcal_100g": 59,
				"proteins_serving": "17",
				"carbohydrates_serving": 6,
				"fat_serving": "n/a"
			}
		}
	}`)

	food, err := NewOpenFoodFactsClient(srv.URL, nil).LookupProduct(context.Background(), "0123456789012")
	require.NoError(t, err)

	assert.Equal(t, "Greek Yogurt", food.Name)
	assert.Equal(t, 100.0, food.Calories)
	assert.Equal(t, 17.0, food.Protein)
	assert.Equal(t, 6.0, food.Carbs)
	assert.Equal(t, 0.0, food.Fat)
	assert.Equal(t, 170.0, food.ServingSize)
	assert.Equal(t, "g", food.ServingSizeUnit)
	assert.Equal(t, "0123456789012", food.Upc)
	assert.Equal(t, "https://images.example/yogurt.jpg", food.ImageURL)
	assert.Empty(t, food.Category)
}

func TestLookupProductFallsBackTo100g(t *testing.T) {
	srv := offServer(t, http.StatusOK, `{
		"status": 1,
		"product": {
			"product_name": "Oats",
			"serving_quantity": 40,
			"nutriments": {"energy-kcal_100g": 389, "proteins_100g": 16.9, "carbohydrates_100g": "66.3"}
		}
	}`)

	food, err := NewOpenFoodFactsClient(srv.URL+"/", nil).LookupProduct(context.Background(), "0123456789012")
	require.NoError(t, err)

	assert.Equal(t, 389.0, food.Calories)
	assert.Equal(t, 16.9, food.Protein)
	assert.Equal(t, 66.3, food.Carbs)
	assert.Equal(t, 0.0, food.Fat)
	assert.Equal(t, 100.0, food.ServingSize)
	assert.Equal(t, "g", food.ServingSizeUnit)
}

func TestLookupProductNotFound(t *testing.T) {
	for _, tc := range []struct {
		status int
		body   string
	}{
		{http.StatusOK, `{"status": 0, "status_verbose": "product not found"}`},
		{http.StatusNotFound, `{"status": 0}`},
	} {
		srv := offServer(t, tc.status, tc.body)

		_, err := NewOpenFoodFactsClient(srv.URL, nil).LookupProduct(context.Background(), "0123456789012")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	}
}

func TestLookupProductUpstreamError(t *testing.T) {
	srv := offServer(t, http.StatusBadGateway, `oops`)

	_, err := NewOpenFoodFactsClient(srv.URL, nil).LookupProduct(context.Background(), "0123456789012")
	assert.ErrorIs(t, err, domain.ErrUpstreamFailed)
}
