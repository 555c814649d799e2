package kid

import (
	"context"

	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/entities"
)

type (
	KidRepository interface {
		CreateKid(ctx context.Context, kid *entities.Kid) error
		GetKidByID(ctx context.Context, id string) (*entities.Kid, error)
		GetKidsByUser(ctx context.Context, userID string) ([]*entities.Kid, error)
		UpdateKid(ctx context.Context, kid *entities.Kid) error
		DeleteKid(ctx context.Context, id string) error
	}

	kidRepository struct {
		db *gorm.DB
	}
)

func NewKidRepository(db *gorm.DB) KidRepository {
	return &kidRepository{db: db}
}

func (r *kidRepository) CreateKid(ctx context.Context, kid *entities.Kid) error {
	return r.db.WithContext(ctx).Create(kid).Error
}

func (r *kidRepository) GetKidByID(ctx context.Context, id string) (*entities.Kid, error) {
	var kid entities.Kid
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&kid).Error; err != nil {
		return nil, err
	}
	return &kid, nil
}

func (r *kidRepository) GetKidsByUser(ctx context.Context, userID string) ([]*entities.Kid, error) {
	var kids []*entities.Kid
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name asc").Find(&kids).Error; err != nil {
		return nil, err
	}
	return kids, nil
}

func (r *kidRepository) UpdateKid(ctx context.Context, kid *entities.Kid) error {
	return r.db.WithContext(ctx).Save(kid).Error
}

func (r *kidRepository) DeleteKid(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Kid{}).Error
}
