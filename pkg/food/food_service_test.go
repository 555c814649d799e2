package food

import (
	"context"
	"mime/multipart"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
)

type fakeFoodRepository struct {
	foods     map[uuid.UUID]*entities.Food
	listCalls int
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{foods: map[uuid.UUID]*entities.Food{}}
}

func (f *fakeFoodRepository) AddFood(_ context.Context, food *entities.Food) error {
	c := *food
	f.foods[food.ID] = &c
	return nil
}

func (f *fakeFoodRepository) GetFoodByID(_ context.Context, id string) (*entities.Food, error) {
	food, ok := f.foods[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *food
	return &c, nil
}

func (f *fakeFoodRepository) GetFoodByUpc(_ context.Context, upc string) (*entities.Food, error) {
	for _, food := range f.foods {
		if food.Upc != nil && *food.Upc == upc {
			c := *food
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeFoodRepository) GetFoods(_ context.Context, category string, page, limit int) ([]*entities.Food, int64, error) {
	f.listCalls++
	var out []*entities.Food
	for _, food := range f.foods {
		if category == "" || food.Category == category {
			c := *food
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	total := int64(len(out))
	start := (page - 1) * limit
	if start > len(out) {
		start = len(out)
	}
	end := start + limit
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (f *fakeFoodRepository) UpdateFood(_ context.Context, food *entities.Food) error {
	c := *food
	f.foods[food.ID] = &c
	return nil
}

func (f *fakeFoodRepository) DeleteFood(_ context.Context, id string) error {
	delete(f.foods, uuid.MustParse(id))
	return nil
}

type fakeS3 struct {
	uploaded []string
	updated  []string
	deleted  []string
}

func (f *fakeS3) UploadFile(fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName + ".jpg"
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	f.updated = append(f.updated, objectKey)
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	const prefix = "https://cdn.test/"
	if len(link) <= len(prefix) || link[:len(prefix)] != prefix {
		return ""
	}
	return link[len(prefix):]
}

type fakeProducts struct {
	food  domain.Food
	err   error
	calls int
}

func (f *fakeProducts) LookupProduct(_ context.Context, upc string) (domain.Food, error) {
	f.calls++
	if f.err != nil {
		return domain.Food{}, f.err
	}
	food := f.food
	food.Upc = upc
	return food, nil
}

type serviceFixture struct {
	svc      FoodService
	repo     *fakeFoodRepository
	s3       *fakeS3
	products *fakeProducts
}

func newFixture() serviceFixture {
	fx := serviceFixture{
		repo:     newFakeFoodRepository(),
		s3:       &fakeS3{},
		products: &fakeProducts{},
	}
	fx.svc = NewFoodService(fx.repo, NewCatalogCache(DefaultCatalogTTL, nil), fx.products, fx.s3, zap.NewNop())
	return fx
}

var eggRequest = domain.FoodRequest{
	Name:            "Egg",
	Calories:        70,
	Protein:         6,
	Fat:             5,
	Category:        domain.CategoryProteins,
	ServingSize:     1,
	ServingSizeUnit: "piece",
}

func TestAddAndGetFood(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()

	added, err := fx.svc.AddFood(ctx, eggRequest)
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)

	got, err := fx.svc.GetFood(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)
	assert.Equal(t, 70.0, got.Calories)
}

func TestAddFoodInvalidCategory(t *testing.T) {
	req := eggRequest
	req.Category = "desserts"

	_, err := newFixture().svc.AddFood(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestAddFoodDuplicateUpc(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	req := eggRequest
	req.Upc = "0123456789012"

	_, err := fx.svc.AddFood(ctx, req)
	require.NoError(t, err)

	_, err = fx.svc.AddFood(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDuplicateFoodBarcode)
}

func TestUpdateFoodKeepsOwnUpc(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	req := eggRequest
	req.Upc = "0123456789012"
	added, err := fx.svc.AddFood(ctx, req)
	require.NoError(t, err)

	req.Calories = 80
	updated, err := fx.svc.UpdateFood(ctx, added.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Calories)
	assert.Equal(t, "0123456789012", updated.Upc)
}

func TestGetFoodErrors(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.GetFood(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = fx.svc.GetFood(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestGetFoodsGroupsAndCaches(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	_, err := fx.svc.AddFood(ctx, eggRequest)
	require.NoError(t, err)
	_, err = fx.svc.AddFood(ctx, domain.FoodRequest{Name: "Apple", Calories: 95, Category: domain.CategoryFruits})
	require.NoError(t, err)

	res, err := fx.svc.GetFoods(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Len(t, res.Foods[domain.CategoryProteins], 1)
	assert.Len(t, res.Foods[domain.CategoryFruits], 1)
	assert.Equal(t, int64(2), res.Pagination.Total)
	assert.Equal(t, int64(1), res.Pagination.TotalPages)

	_, err = fx.svc.GetFoods(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.repo.listCalls)

	_, err = fx.svc.AddFood(ctx, domain.FoodRequest{Name: "Rice", Calories: 200, Category: domain.CategoryGrains})
	require.NoError(t, err)

	res, err = fx.svc.GetFoods(ctx, "", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 2, fx.repo.listCalls)
	assert.Len(t, res.Foods[domain.CategoryGrains], 1)
}

func TestGetFoodsInvalidCategory(t *testing.T) {
	_, err := newFixture().svc.GetFoods(context.Background(), "snacks", 1, 20)
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)
}

func TestLookupBarcodePrefersCatalog(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	req := eggRequest
	req.Upc = "0123456789012"
	added, err := fx.svc.AddFood(ctx, req)
	require.NoError(t, err)

	res, err := fx.svc.LookupBarcode(ctx, "0123456789012")
	require.NoError(t, err)
	assert.True(t, res.InCatalog)
	assert.Equal(t, added.ID, res.Food.ID)
	assert.Zero(t, fx.products.calls)
}

func TestLookupBarcodeFromProducts(t *testing.T) {
	fx := newFixture()
	fx.products.food = domain.Food{Name: "Oats", Calories: 150}

	res, err := fx.svc.LookupBarcode(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, res.InCatalog)
	assert.Equal(t, "Oats", res.Food.Name)
	assert.Equal(t, "999", res.Food.Upc)

	fx.products.err = domain.ErrProductNotFound
	_, err = fx.svc.LookupBarcode(context.Background(), "998")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUploadFoodImageAndDelete(t *testing.T) {
	ctx := context.Background()
	fx := newFixture()
	added, err := fx.svc.AddFood(ctx, eggRequest)
	require.NoError(t, err)

	food, err := fx.svc.UploadFoodImage(ctx, domain.UploadFoodImageRequest{FoodID: added.ID})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/foods/food-"+added.ID+".jpg", food.ImageURL)

	_, err = fx.svc.UploadFoodImage(ctx, domain.UploadFoodImageRequest{FoodID: added.ID})
	require.NoError(t, err)
	assert.Equal(t, []string{"foods/food-" + added.ID + ".jpg"}, fx.s3.updated)

	require.NoError(t, fx.svc.DeleteFood(ctx, added.ID))
	assert.Equal(t, []string{"foods/food-" + added.ID + ".jpg"}, fx.s3.deleted)

	_, err = fx.svc.GetFood(ctx, added.ID)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}
