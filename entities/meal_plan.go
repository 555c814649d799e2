package entities

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MealPlan holds one kid's weekly plan. Plan is the stored, possibly partial
// document keyed by weekday.
type MealPlan struct {
	ID    uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	KidID uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"kid_id"`
	Plan  datatypes.JSON `json:"plan"`

	Kid *Kid `gorm:"foreignKey:KidID;constraint:OnDelete:CASCADE"`
	Timestamp
}
