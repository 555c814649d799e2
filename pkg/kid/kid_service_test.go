package kid

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
)

type fakeKidRepository struct {
	kids map[string]*entities.Kid
}

func (f *fakeKidRepository) CreateKid(_ context.Context, kid *entities.Kid) error {
	c := *kid
	f.kids[kid.ID.String()] = &c
	return nil
}

func (f *fakeKidRepository) GetKidByID(_ context.Context, id string) (*entities.Kid, error) {
	k, ok := f.kids[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	c := *k
	return &c, nil
}

func (f *fakeKidRepository) GetKidsByUser(_ context.Context, userID string) ([]*entities.Kid, error) {
	var out []*entities.Kid
	for _, k := range f.kids {
		if k.UserID.String() == userID {
			c := *k
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeKidRepository) UpdateKid(_ context.Context, kid *entities.Kid) error {
	c := *kid
	f.kids[kid.ID.String()] = &c
	return nil
}

func (f *fakeKidRepository) DeleteKid(_ context.Context, id string) error {
	delete(f.kids, id)
	return nil
}

func newKidService() KidService {
	return NewKidService(&fakeKidRepository{kids: map[string]*entities.Kid{}})
}

func TestCreateKidDefaultGoals(t *testing.T) {
	ctx := context.Background()
	svc := newKidService()
	userID := uuid.NewString()

	kid, err := svc.CreateKid(ctx, domain.CreateKidRequest{Name: " Mia ", BirthDate: "2019-05-04"}, userID)
	require.NoError(t, err)

	assert.Equal(t, "Mia", kid.Name)
	assert.Equal(t, "2019-05-04", kid.BirthDate)
	assert.Equal(t, domain.NutritionGoals{Calories: 1400, Protein: 35, Carbs: 175, Fat: 45}, kid.Goals)

	goals, err := svc.GetGoals(ctx, kid.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, kid.Goals, goals)
}

func TestCreateKidCustomGoals(t *testing.T) {
	goals := domain.NutritionGoals{Calories: 1200, Protein: 30, Carbs: 150, Fat: 40}

	kid, err := newKidService().CreateKid(context.Background(), domain.CreateKidRequest{Name: "Leo", Goals: &goals}, uuid.NewString())
	require.NoError(t, err)

	assert.Equal(t, goals, kid.Goals)
}

func TestCreateKidInvalidInput(t *testing.T) {
	svc := newKidService()

	_, err := svc.CreateKid(context.Background(), domain.CreateKidRequest{Name: "Leo"}, "nope")
	assert.ErrorIs(t, err, domain.ErrParseUUID)

	_, err = svc.CreateKid(context.Background(), domain.CreateKidRequest{Name: "Leo", BirthDate: "04/05/2019"}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestKidOwnership(t *testing.T) {
	ctx := context.Background()
	svc := newKidService()
	owner, stranger := uuid.NewString(), uuid.NewString()

	kid, err := svc.CreateKid(ctx, domain.CreateKidRequest{Name: "Mia"}, owner)
	require.NoError(t, err)

	_, err = svc.GetKid(ctx, kid.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedKidAccess)
	assert.ErrorIs(t, svc.Authorize(ctx, kid.ID, stranger), domain.ErrUnauthorizedKidAccess)
	assert.ErrorIs(t, svc.DeleteKid(ctx, kid.ID, stranger), domain.ErrUnauthorizedKidAccess)
	assert.NoError(t, svc.Authorize(ctx, kid.ID, owner))

	assert.ErrorIs(t, svc.Authorize(ctx, uuid.NewString(), owner), domain.ErrKidNotFound)
	assert.ErrorIs(t, svc.Authorize(ctx, "bad", owner), domain.ErrParseUUID)
}

func TestUpdateKid(t *testing.T) {
	ctx := context.Background()
	svc := newKidService()
	owner := uuid.NewString()
	kid, err := svc.CreateKid(ctx, domain.CreateKidRequest{Name: "Mia"}, owner)
	require.NoError(t, err)

	goals := domain.NutritionGoals{Calories: 1600, Protein: 40, Carbs: 200, Fat: 50}
	updated, err := svc.UpdateKid(ctx, kid.ID, domain.UpdateKidRequest{Goals: &goals}, owner)
	require.NoError(t, err)

	assert.Equal(t, "Mia", updated.Name)
	assert.Equal(t, goals, updated.Goals)
}

func TestGetKidsAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newKidService()
	owner := uuid.NewString()
	kid, err := svc.CreateKid(ctx, domain.CreateKidRequest{Name: "Mia"}, owner)
	require.NoError(t, err)
	_, err = svc.CreateKid(ctx, domain.CreateKidRequest{Name: "Other"}, uuid.NewString())
	require.NoError(t, err)

	kids, err := svc.GetKids(ctx, owner)
	require.NoError(t, err)
	require.Len(t, kids, 1)
	assert.Equal(t, kid.ID, kids[0].ID)

	require.NoError(t, svc.DeleteKid(ctx, kid.ID, owner))
	kids, err = svc.GetKids(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, kids)
}
