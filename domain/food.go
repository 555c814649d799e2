package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessAddFood       = "food added successfully"
	MessageSuccessUpdateFood    = "food updated successfully"
	MessageSuccessDeleteFood    = "food deleted successfully"
	MessageSuccessGetFoods      = "foods retrieved successfully"
	MessageSuccessGetFood       = "food retrieved successfully"
	MessageSuccessLookupBarcode = "product found"
	MessageSuccessUploadImage   = "food image uploaded successfully"

	MessageFailedAddFood       = "failed to add food"
	MessageFailedUpdateFood    = "failed to update food"
	MessageFailedDeleteFood    = "failed to delete food"
	MessageFailedGetFoods      = "failed to retrieve foods"
	MessageFailedLookupBarcode = "failed to look up barcode"
	MessageFailedUploadImage   = "failed to upload food image"

	ErrFoodNotFound         = errors.New("food not found")
	ErrInvalidCategory      = errors.New("invalid food category")
	ErrProductNotFound      = errors.New("product not found")
	ErrInvalidImageFormat   = errors.New("invalid image format")
	ErrDuplicateFoodBarcode = errors.New("a food with this barcode already exists")
)

type (
	// FoodRequest is decoded from an already coerced body, so every numeric
	// field is a finite number here.
	FoodRequest struct {
		Name            string   `json:"name" validate:"required"`
		Calories        float64  `json:"calories" validate:"min=0"`
		Protein         float64  `json:"protein" validate:"min=0"`
		Carbs           float64  `json:"carbs" validate:"min=0"`
		Fat             float64  `json:"fat" validate:"min=0"`
		Category        Category `json:"category" validate:"required,category"`
		ServingSize     float64  `json:"servingSize" validate:"min=0"`
		ServingSizeUnit string   `json:"servingSizeUnit"`
		Upc             string   `json:"upc" validate:"omitempty,numeric,min=8,max=14"`
	}

	UploadFoodImageRequest struct {
		FoodID string                `json:"food_id" validate:"required,uuid"`
		Image  *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	FoodsByCategory map[Category][]Food

	GetFoodsResponse struct {
		Foods      FoodsByCategory `json:"foods"`
		Pagination Pagination      `json:"pagination"`
	}

	BarcodeLookupResponse struct {
		Food Food `json:"food"`
		// InCatalog is true when the product was already stored and Food
		// carries its catalog id.
		InCatalog bool `json:"inCatalog"`
	}
)
