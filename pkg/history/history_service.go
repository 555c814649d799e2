package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
	"github.com/tkloetzk/mealplanner-sub001/pkg/kid"
	"github.com/tkloetzk/mealplanner-sub001/pkg/nutrition"
)

const defaultHistoryDays = 7

type (
	HistoryService interface {
		RecordMeal(ctx context.Context, kidID string, req domain.RecordMealRequest, userID string) (domain.MealHistoryResponse, error)
		// GetHistory lists entries between from and to inclusive. Empty bounds
		// default to the last seven days.
		GetHistory(ctx context.Context, kidID, from, to string, userID string) ([]domain.MealHistoryResponse, error)
		GetDailySummary(ctx context.Context, kidID, date string, userID string) (domain.DailySummaryResponse, error)
	}

	historyService struct {
		historyRepository HistoryRepository
		kidService        kid.KidService
		log               *zap.Logger
		now               func() time.Time
	}
)

func NewHistoryService(historyRepository HistoryRepository, kidService kid.KidService, log *zap.Logger) HistoryService {
	return &historyService{
		historyRepository: historyRepository,
		kidService:        kidService,
		log:               log,
		now:               time.Now,
	}
}

func (s *historyService) RecordMeal(ctx context.Context, kidID string, req domain.RecordMealRequest, userID string) (domain.MealHistoryResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return domain.MealHistoryResponse{}, err
	}
	meal, err := domain.ParseMealType(string(req.Meal))
	if err != nil {
		return domain.MealHistoryResponse{}, err
	}
	kidUUID, err := uuid.Parse(kidID)
	if err != nil {
		return domain.MealHistoryResponse{}, domain.ErrParseUUID
	}
	if err := s.kidService.Authorize(ctx, kidID, userID); err != nil {
		return domain.MealHistoryResponse{}, err
	}

	sel, err := nutrition.DecodeMealSelection(req.Selection)
	if err != nil {
		return domain.MealHistoryResponse{}, err
	}
	doc, err := json.Marshal(sel)
	if err != nil {
		return domain.MealHistoryResponse{}, fmt.Errorf("encode selection: %w", err)
	}

	totals := nutrition.Totals(sel)
	entry := &entities.MealHistory{
		ID:        uuid.New(),
		KidID:     kidUUID,
		Date:      date,
		Meal:      string(meal),
		Selection: datatypes.JSON(doc),
		Consumed:  req.Consumed,
		Notes:     req.Notes,
		Calories:  totals.Calories,
		Protein:   totals.Protein,
		Carbs:     totals.Carbs,
		Fat:       totals.Fat,
	}
	if err := s.historyRepository.UpsertMeal(ctx, entry); err != nil {
		return domain.MealHistoryResponse{}, err
	}

	stored, err := s.historyRepository.GetMeal(ctx, kidID, date, string(meal))
	if err != nil {
		return domain.MealHistoryResponse{}, err
	}
	s.log.Debug("meal recorded", zap.String("kid_id", kidID), zap.String("date", req.Date), zap.String("meal", string(meal)))
	return toHistoryResponse(stored)
}

func (s *historyService) GetHistory(ctx context.Context, kidID, from, to string, userID string) ([]domain.MealHistoryResponse, error) {
	end, err := s.dateOrDefault(to, 0)
	if err != nil {
		return nil, err
	}
	start, err := s.dateOrDefault(from, -(defaultHistoryDays - 1))
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, domain.ErrInvalidDateRange
	}
	if err := s.kidService.Authorize(ctx, kidID, userID); err != nil {
		return nil, err
	}

	entries, err := s.historyRepository.GetHistory(ctx, kidID, start, end)
	if err != nil {
		return nil, err
	}

	response := make([]domain.MealHistoryResponse, 0, len(entries))
	for _, e := range entries {
		res, err := toHistoryResponse(e)
		if err != nil {
			return nil, err
		}
		response = append(response, res)
	}
	return response, nil
}

// GetDailySummary adds up the totals recorded for date. Only consumed meals
// count toward progress.
func (s *historyService) GetDailySummary(ctx context.Context, kidID, date string, userID string) (domain.DailySummaryResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return domain.DailySummaryResponse{}, err
	}

	var (
		goals   domain.NutritionGoals
		entries []*entities.MealHistory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		goals, err = s.kidService.GetGoals(gctx, kidID, userID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.historyRepository.GetHistory(gctx, kidID, day, day)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DailySummaryResponse{}, err
	}

	meals := make(map[domain.MealType]domain.NutritionTotals, len(entries))
	var totals domain.NutritionTotals
	for _, e := range entries {
		if !e.Consumed {
			continue
		}
		t := entryTotals(e)
		meals[domain.MealType(e.Meal)] = t
		totals = totals.Add(t)
	}

	return domain.DailySummaryResponse{
		Date:     day.Format(domain.DateLayout),
		Meals:    meals,
		Totals:   totals,
		Goals:    goals,
		Progress: nutrition.NewDailyProgress(totals, goals),
	}, nil
}

func (s *historyService) dateOrDefault(value string, offsetDays int) (time.Time, error) {
	if value != "" {
		return parseDate(value)
	}
	today, _ := parseDate(s.now().Format(domain.DateLayout))
	return today.AddDate(0, 0, offsetDays), nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

func entryTotals(e *entities.MealHistory) domain.NutritionTotals {
	return domain.NutritionTotals{Calories: e.Calories, Protein: e.Protein, Carbs: e.Carbs, Fat: e.Fat}
}

func toHistoryResponse(e *entities.MealHistory) (domain.MealHistoryResponse, error) {
	var raw any
	if len(e.Selection) > 0 {
		if err := json.Unmarshal(e.Selection, &raw); err != nil {
			return domain.MealHistoryResponse{}, fmt.Errorf("decode stored selection: %w", err)
		}
	}
	sel, err := nutrition.DecodeMealSelection(raw)
	if err != nil {
		return domain.MealHistoryResponse{}, err
	}

	return domain.MealHistoryResponse{
		ID:        e.ID.String(),
		KidID:     e.KidID.String(),
		Date:      e.Date.Format(domain.DateLayout),
		Meal:      domain.MealType(e.Meal),
		Selection: sel,
		Totals:    entryTotals(e),
		Consumed:  e.Consumed,
		Notes:     e.Notes,
		UpdatedAt: e.UpdatedAt,
	}, nil
}
