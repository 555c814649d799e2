package food

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

type (
	ProductLookup interface {
		LookupProduct(ctx context.Context, upc string) (domain.Food, error)
	}

	openFoodFactsClient struct {
		baseURL    string
		httpClient *http.Client
	}

	offProduct struct {
		Status  json.Number    `json:"status"`
		Product map[string]any `json:"product"`
	}
)

// nutrimentKeys maps food fields to Open Food Facts nutriment names.
var nutrimentKeys = map[string]string{
	"calories": "energy-kcal",
	"protein":  "proteins",
	"carbs":    "carbohydrates",
	"fat":      "fat",
}

func NewOpenFoodFactsClient(baseURL string, httpClient *http.Client) ProductLookup {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &openFoodFactsClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// LookupProduct returns an unsaved food draft for upc. Category is left empty
// for the caregiver to choose.
func (c *openFoodFactsClient) LookupProduct(ctx context.Context, upc string) (domain.Food, error) {
	endpoint := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(upc))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Food{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Food{}, fmt.Errorf("%w: %v", domain.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Food{}, domain.ErrProductNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Food{}, fmt.Errorf("%w: open food facts %s - %s", domain.ErrUpstreamFailed, resp.Status, string(body))
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var product offProduct
	if err := dec.Decode(&product); err != nil {
		return domain.Food{}, fmt.Errorf("%w: decode open food facts response: %v", domain.ErrUpstreamFailed, err)
	}
	if product.Status.String() == "0" || product.Product == nil {
		return domain.Food{}, domain.ErrProductNotFound
	}

	return productToFood(upc, product.Product), nil
}

func productToFood(upc string, product map[string]any) domain.Food {
	nutriments, _ := product["nutriments"].(map[string]any)

	perServing := true
	raw := make(map[string]any, len(nutrimentKeys))
	for field, key := range nutrimentKeys {
		if v, ok := nutriments[key+"_serving"]; ok && v != nil {
			raw[field] = v
			continue
		}
		perServing = false
		raw[field] = nutriments[key+"_100g"]
	}

	servingSize, unit := 100.0, "g"
	if perServing {
		if q := nutrition.ToNumber(product["serving_quantity"]); q > 0 {
			servingSize = q
		}
		if u, ok := product["serving_quantity_unit"].(string); ok && u != "" {
			unit = u
		}
	}
	raw["servingSize"] = servingSize

	values := nutrition.CoerceFlatNumericFields(raw)
	for k, v := range values {
		if f, ok := v.(float64); ok && math.IsInf(f, 0) {
			values[k] = 0.0
		}
	}
	name, _ := product["product_name"].(string)
	if name == "" {
		name, _ = product["generic_name"].(string)
	}
	image, _ := product["image_url"].(string)

	return domain.Food{
		Name:            strings.TrimSpace(name),
		Calories:        values["calories"].(float64),
		Protein:         values["protein"].(float64),
		Carbs:           values["carbs"].(float64),
		Fat:             values["fat"].(float64),
		ServingSize:     values["servingSize"].(float64),
		ServingSizeUnit: unit,
		Upc:             upc,
		ImageURL:        image,
	}
}
