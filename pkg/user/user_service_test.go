package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tkloetzk/mealplanner-sub001/domain"
	"github.com/tkloetzk/mealplanner-sub001/entities"
	"github.com/tkloetzk/mealplanner-sub001/pkg/jwt"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*entities.User{}}
}

func (f *fakeUserRepository) RegisterUser(_ context.Context, user *entities.User) error {
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) CheckUserByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func newService() (UserService, jwt.JWTService) {
	jwtService := jwt.NewJWTService("secret")
	return NewUserService(newFakeUserRepository(), jwtService, zap.NewNop()), jwtService
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, jwtService := newService()

	user, err := svc.Register(ctx, domain.RegisterRequest{Name: "Sam", Email: " Sam@Example.com ", Password: "hunter2hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "sam@example.com", user.Email)
	assert.Equal(t, domain.RoleCaregiver, user.Role)

	res, err := svc.Login(ctx, domain.LoginRequest{Email: "sam@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)

	id, role, err := jwtService.GetUserIDByToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, domain.RoleCaregiver, role)

	me, err := svc.Me(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Sam", me.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Register(ctx, domain.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Name: "B", Email: "A@example.com", Password: "password2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()
	_, err := svc.Register(ctx, domain.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "a@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Email: "nobody@example.com", Password: "password1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestMeUnknownUser(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Me(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
