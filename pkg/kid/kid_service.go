package kid

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
)

type (
	KidService interface {
		CreateKid(ctx context.Context, req domain.CreateKidRequest, userID string) (domain.KidResponse, error)
		GetKids(ctx context.Context, userID string) ([]domain.KidResponse, error)
		GetKid(ctx context.Context, kidID string, userID string) (domain.KidResponse, error)
		UpdateKid(ctx context.Context, kidID string, req domain.UpdateKidRequest, userID string) (domain.KidResponse, error)
		DeleteKid(ctx context.Context, kidID string, userID string) error

		// GetGoals returns the daily goals of a kid owned by userID.
		GetGoals(ctx context.Context, kidID string, userID string) (domain.NutritionGoals, error)
		// Authorize fails unless kidID exists and belongs to userID.
		Authorize(ctx context.Context, kidID string, userID string) error
	}

	kidService struct {
		kidRepository KidRepository
	}
)

func NewKidService(kidRepository KidRepository) KidService {
	return &kidService{kidRepository: kidRepository}
}

func (s *kidService) CreateKid(ctx context.Context, req domain.CreateKidRequest, userID string) (domain.KidResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.KidResponse{}, domain.ErrParseUUID
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return domain.KidResponse{}, err
	}

	goals := domain.DefaultNutritionGoals()
	if req.Goals != nil {
		goals = *req.Goals
	}

	kid := &entities.Kid{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      strings.TrimSpace(req.Name),
		BirthDate: birthDate,
	}
	setGoals(kid, goals)

	if err := s.kidRepository.CreateKid(ctx, kid); err != nil {
		return domain.KidResponse{}, err
	}
	return toKidResponse(kid), nil
}

func (s *kidService) GetKids(ctx context.Context, userID string) ([]domain.KidResponse, error) {
	kids, err := s.kidRepository.GetKidsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.KidResponse, 0, len(kids))
	for _, k := range kids {
		response = append(response, toKidResponse(k))
	}
	return response, nil
}

func (s *kidService) GetKid(ctx context.Context, kidID string, userID string) (domain.KidResponse, error) {
	kid, err := s.getOwnedKid(ctx, kidID, userID)
	if err != nil {
		return domain.KidResponse{}, err
	}
	return toKidResponse(kid), nil
}

func (s *kidService) UpdateKid(ctx context.Context, kidID string, req domain.UpdateKidRequest, userID string) (domain.KidResponse, error) {
	kid, err := s.getOwnedKid(ctx, kidID, userID)
	if err != nil {
		return domain.KidResponse{}, err
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		kid.Name = name
	}
	if req.BirthDate != "" {
		birthDate, err := parseBirthDate(req.BirthDate)
		if err != nil {
			return domain.KidResponse{}, err
		}
		kid.BirthDate = birthDate
	}
	if req.Goals != nil {
		setGoals(kid, *req.Goals)
	}

	if err := s.kidRepository.UpdateKid(ctx, kid); err != nil {
		return domain.KidResponse{}, err
	}
	return toKidResponse(kid), nil
}

func (s *kidService) DeleteKid(ctx context.Context, kidID string, userID string) error {
	if _, err := s.getOwnedKid(ctx, kidID, userID); err != nil {
		return err
	}
	return s.kidRepository.DeleteKid(ctx, kidID)
}

func (s *kidService) GetGoals(ctx context.Context, kidID string, userID string) (domain.NutritionGoals, error) {
	kid, err := s.getOwnedKid(ctx, kidID, userID)
	if err != nil {
		return domain.NutritionGoals{}, err
	}
	return goalsOf(kid), nil
}

func (s *kidService) Authorize(ctx context.Context, kidID string, userID string) error {
	_, err := s.getOwnedKid(ctx, kidID, userID)
	return err
}

func (s *kidService) getOwnedKid(ctx context.Context, kidID string, userID string) (*entities.Kid, error) {
	if _, err := uuid.Parse(kidID); err != nil {
		return nil, domain.ErrParseUUID
	}

	kid, err := s.kidRepository.GetKidByID(ctx, kidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrKidNotFound
		}
		return nil, err
	}

	if kid.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedKidAccess
	}
	return kid, nil
}

func parseBirthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, domain.ErrInvalidDate
	}
	return &t, nil
}

func setGoals(kid *entities.Kid, goals domain.NutritionGoals) {
	kid.GoalCalories = goals.Calories
	kid.GoalProtein = goals.Protein
	kid.GoalCarbs = goals.Carbs
	kid.GoalFat = goals.Fat
}

func goalsOf(kid *entities.Kid) domain.NutritionGoals {
	return domain.NutritionGoals{
		Calories: kid.GoalCalories,
		Protein:  kid.GoalProtein,
		Carbs:    kid.GoalCarbs,
		Fat:      kid.GoalFat,
	}
}

func toKidResponse(kid *entities.Kid) domain.KidResponse {
	res := domain.KidResponse{
		ID:        kid.ID.String(),
		Name:      kid.Name,
		Goals:     goalsOf(kid),
		CreatedAt: kid.CreatedAt,
	}
	if kid.BirthDate != nil {
		res.BirthDate = kid.BirthDate.Format(domain.DateLayout)
	}
	return res
}
