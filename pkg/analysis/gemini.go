package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

type (
	// MealAnalyzer asks a model for its own nutrition estimate of a meal.
	MealAnalyzer interface {
		Analyze(ctx context.Context, sel domain.MealSelection, totals domain.NutritionTotals) (domain.MealAnalysis, error)
	}

	geminiClient struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
	}

	geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

var (
	fencePattern  = regexp.MustCompile("(?m)^\\s*```[a-zA-Z]*\\s*$")
	objectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

func NewGeminiClient(apiKey, model, baseURL string, httpClient *http.Client) MealAnalyzer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &geminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *geminiClient) Analyze(ctx context.Context, sel domain.MealSelection, totals domain.NutritionTotals) (domain.MealAnalysis, error) {
	if c.apiKey == "" {
		return domain.MealAnalysis{}, domain.ErrAnalysisUnavailable
	}

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": buildPrompt(sel, totals)},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.2,
			"topP":        0.8,
			"topK":        40,
		},
	}
	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return domain.MealAnalysis{}, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return domain.MealAnalysis{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.MealAnalysis{}, fmt.Errorf("%w: %v", domain.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.MealAnalysis{}, fmt.Errorf("%w: gemini %s - %s", domain.ErrUpstreamFailed, resp.Status, string(body))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return domain.MealAnalysis{}, fmt.Errorf("%w: decode gemini response: %v", domain.ErrUpstreamFailed, err)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return domain.MealAnalysis{}, domain.ErrInvalidAnalysis
	}

	return ParseAnalysis(geminiResp.Candidates[0].Content.Parts[0].Text)
}

// ParseAnalysis reads the first JSON object in text, tolerating markdown
// fences and prose around it. Numeric fields may arrive as strings.
func ParseAnalysis(text string) (domain.MealAnalysis, error) {
	text = fencePattern.ReplaceAllString(text, "")
	block := objectPattern.FindString(text)
	if block == "" {
		return domain.MealAnalysis{}, domain.ErrInvalidAnalysis
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(block), &raw); err != nil {
		return domain.MealAnalysis{}, fmt.Errorf("%w: %v", domain.ErrInvalidAnalysis, err)
	}

	var analysis domain.MealAnalysis
	if err := nutrition.Decode(raw, &analysis); err != nil {
		if errors.Is(err, domain.ErrInvalidNumericField) {
			return domain.MealAnalysis{}, domain.ErrInvalidAnalysis
		}
		return domain.MealAnalysis{}, fmt.Errorf("%w: %v", domain.ErrInvalidAnalysis, err)
	}
	if analysis.Suggestions == nil {
		analysis.Suggestions = []string{}
	}
	return analysis, nil
}

func buildPrompt(sel domain.MealSelection, totals domain.NutritionTotals) string {
	var foods strings.Builder
	for _, c := range domain.SingularCategories {
		if f := *sel.Slot(c); f != nil {
			fmt.Fprintf(&foods, "- %s (%s): %g kcal, %gg protein, %gg carbs, %gg fat\n",
				f.Name, c, f.Calories, f.Protein, f.Carbs, f.Fat)
		}
	}
	for _, cs := range sel.Condiments {
		fmt.Fprintf(&foods, "- %s (condiment, %g servings): %g kcal, %gg protein, %gg carbs, %gg fat\n",
			cs.Name, cs.Servings, cs.AdjustedCalories, cs.AdjustedProtein, cs.AdjustedCarbs, cs.AdjustedFat)
	}

	return fmt.Sprintf(
		"You are a pediatric nutritionist reviewing a single meal for a child. "+
			"The meal contains:\n%s"+
			"The catalog totals are %g kcal, %gg protein, %gg carbs and %gg fat. "+
			"Estimate the nutrition of this meal yourself and give short, practical suggestions for a caregiver. "+
			"Answer with one JSON object with these fields: calories, protein, carbs, fat (numbers), "+
			"summary (string) and suggestions (array of strings). "+
			"Do not include any explanations or text outside of the JSON object.",
		foods.String(), totals.Calories, totals.Protein, totals.Carbs, totals.Fat,
	)
}
