package food

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
	"github.com/tkloetzk/mealplanner-sub001/internal/utils/storage"
)

type (
	FoodService interface {
		AddFood(ctx context.Context, req domain.FoodRequest) (domain.Food, error)
		UpdateFood(ctx context.Context, id string, req domain.FoodRequest) (domain.Food, error)
		DeleteFood(ctx context.Context, id string) error
		GetFood(ctx context.Context, id string) (domain.Food, error)
		GetFoods(ctx context.Context, category string, page, limit int) (domain.GetFoodsResponse, error)
		LookupBarcode(ctx context.Context, upc string) (domain.BarcodeLookupResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.Food, error)
	}

	foodService struct {
		foodRepository FoodRepository
		cache          CatalogCache
		products       ProductLookup
		s3             storage.AwsS3
		log            *zap.Logger
	}
)

func NewFoodService(
	foodRepository FoodRepository,
	cache CatalogCache,
	products ProductLookup,
	s3 storage.AwsS3,
	log *zap.Logger,
) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		cache:          cache,
		products:       products,
		s3:             s3,
		log:            log,
	}
}

func (s *foodService) AddFood(ctx context.Context, req domain.FoodRequest) (domain.Food, error) {
	if !req.Category.Valid() {
		return domain.Food{}, domain.ErrInvalidCategory
	}
	if err := s.checkUpcFree(ctx, req.Upc, uuid.Nil); err != nil {
		return domain.Food{}, err
	}

	food := &entities.Food{ID: uuid.New()}
	applyRequest(food, req)

	if err := s.foodRepository.AddFood(ctx, food); err != nil {
		return domain.Food{}, err
	}
	s.cache.Invalidate()

	return ToDomain(food), nil
}

func (s *foodService) UpdateFood(ctx context.Context, id string, req domain.FoodRequest) (domain.Food, error) {
	if !req.Category.Valid() {
		return domain.Food{}, domain.ErrInvalidCategory
	}

	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.Food{}, err
	}
	if err := s.checkUpcFree(ctx, req.Upc, food.ID); err != nil {
		return domain.Food{}, err
	}

	applyRequest(food, req)
	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.Food{}, err
	}
	s.cache.Invalidate()

	return ToDomain(food), nil
}

func (s *foodService) DeleteFood(ctx context.Context, id string) error {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return err
	}

	if food.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(food.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				s.log.Warn("failed to delete food image", zap.String("food_id", id), zap.Error(err))
			}
		}
	}

	if err := s.foodRepository.DeleteFood(ctx, food.ID.String()); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

func (s *foodService) GetFood(ctx context.Context, id string) (domain.Food, error) {
	food, err := s.getFood(ctx, id)
	if err != nil {
		return domain.Food{}, err
	}
	return ToDomain(food), nil
}

// GetFoods lists the catalog grouped by category. An empty category lists
// everything.
func (s *foodService) GetFoods(ctx context.Context, category string, page, limit int) (domain.GetFoodsResponse, error) {
	if category != "" && !domain.Category(category).Valid() {
		return domain.GetFoodsResponse{}, domain.ErrInvalidCategory
	}

	key := listingKey(category, page, limit)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	foods, count, err := s.foodRepository.GetFoods(ctx, category, page, limit)
	if err != nil {
		return domain.GetFoodsResponse{}, err
	}

	grouped := make(domain.FoodsByCategory)
	for _, f := range foods {
		c := domain.Category(f.Category)
		grouped[c] = append(grouped[c], ToDomain(f))
	}

	res := domain.GetFoodsResponse{
		Foods: grouped,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      count,
			TotalPages: (count + int64(limit) - 1) / int64(limit),
		},
	}
	s.cache.Set(key, res)
	return res, nil
}

// LookupBarcode prefers the stored catalog food and only asks Open Food
// Facts for unknown barcodes.
func (s *foodService) LookupBarcode(ctx context.Context, upc string) (domain.BarcodeLookupResponse, error) {
	upc = strings.TrimSpace(upc)

	stored, err := s.foodRepository.GetFoodByUpc(ctx, upc)
	switch {
	case err == nil:
		return domain.BarcodeLookupResponse{Food: ToDomain(stored), InCatalog: true}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return domain.BarcodeLookupResponse{}, err
	}

	food, err := s.products.LookupProduct(ctx, upc)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			s.log.Error("barcode lookup failed", zap.String("upc", upc), zap.Error(err))
		}
		return domain.BarcodeLookupResponse{}, err
	}
	return domain.BarcodeLookupResponse{Food: food}, nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest) (domain.Food, error) {
	food, err := s.getFood(ctx, req.FoodID)
	if err != nil {
		return domain.Food{}, err
	}

	fileName := fmt.Sprintf("food-%s", food.ID.String())
	var objectKey string

	if existingKey := s.s3.GetObjectKeyFromLink(food.ImageURL); existingKey != "" {
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "foods", storage.AllowImage...)
	}
	if err != nil {
		return domain.Food{}, err
	}

	food.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.foodRepository.UpdateFood(ctx, food); err != nil {
		return domain.Food{}, err
	}
	s.cache.Invalidate()

	return ToDomain(food), nil
}

func (s *foodService) getFood(ctx context.Context, id string) (*entities.Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	food, err := s.foodRepository.GetFoodByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodNotFound
		}
		return nil, err
	}
	return food, nil
}

func (s *foodService) checkUpcFree(ctx context.Context, upc string, self uuid.UUID) error {
	if upc == "" {
		return nil
	}
	existing, err := s.foodRepository.GetFoodByUpc(ctx, upc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return domain.ErrDuplicateFoodBarcode
	}
	return nil
}

func applyRequest(food *entities.Food, req domain.FoodRequest) {
	food.Name = strings.TrimSpace(req.Name)
	food.Calories = req.Calories
	food.Protein = req.Protein
	food.Carbs = req.Carbs
	food.Fat = req.Fat
	food.Category = string(req.Category)
	food.ServingSize = req.ServingSize
	food.ServingSizeUnit = req.ServingSizeUnit
	food.Upc = nil
	if req.Upc != "" {
		upc := req.Upc
		food.Upc = &upc
	}
}

// ToDomain converts a stored food to its wire shape.
func ToDomain(food *entities.Food) domain.Food {
	f := domain.Food{
		ID:              food.ID.String(),
		Name:            food.Name,
		Calories:        food.Calories,
		Protein:         food.Protein,
		Carbs:           food.Carbs,
		Fat:             food.Fat,
		Category:        domain.Category(food.Category),
		ServingSize:     food.ServingSize,
		ServingSizeUnit: food.ServingSizeUnit,
		ImageURL:        food.ImageURL,
	}
	if food.Upc != nil {
		f.Upc = *food.Upc
	}
	return f
}
