package entities

import (
	"github.com/google/uuid"
)

// Food is a catalog entry shared by every caregiver. Values are per serving.
type Food struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name            string    `json:"name"`
	Calories        float64   `json:"calories"`
	Protein         float64   `json:"protein"`
	Carbs           float64   `json:"carbs"`
	Fat             float64   `json:"fat"`
	Category        string    `gorm:"index" json:"category"`
	ServingSize     float64   `json:"serving_size"`
	ServingSizeUnit string    `json:"serving_size_unit"`
	Upc             *string   `gorm:"uniqueIndex" json:"upc,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`

	Timestamp
}
