package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"time"
)

type MealHistory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	KidID     uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_history_kid_date_meal" json:"kid_id"`
	Date      time.Time      `gorm:"type:date;uniqueIndex:idx_history_kid_date_meal" json:"date"`
	Meal      string         `gorm:"uniqueIndex:idx_history_kid_date_meal" json:"meal"`
	Selection datatypes.JSON `json:"selection"`
	Consumed  bool           `json:"consumed"`
	Notes     string         `gorm:"type:text" json:"notes,omitempty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`

	Kid *Kid `gorm:"foreignKey:KidID;constraint:OnDelete:CASCADE"`
	Timestamp
}
