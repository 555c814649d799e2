package entities

import (
	"github.com/google/uuid"
	"time"
)

type Kid struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;index" json:"user_id"`
	Name      string     `json:"name"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`

	GoalCalories float64 `json:"goal_calories"`
	GoalProtein  float64 `json:"goal_protein"`
	GoalCarbs    float64 `json:"goal_carbs"`
	GoalFat      float64 `json:"goal_fat"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
