package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/socialpulse/engagement-analytics-api/infrastructure/repository/mocks"
	"github.com/socialpulse/engagement-analytics-api/internal/config"
	"github.com/socialpulse/engagement-analytics-api/internal/domain"
)

func newTestAuthenticator(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{SecretKey: "test-secret"}

	return NewService(userRepo, cfg), userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@socialpulse.dev",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       3,
		AccountID:    "acc1",
	}
}

func TestLoginUserIssuesValidToken(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	user := activeUser(t, "Engage@2026")
	userRepo.EXPECT().GetUserByEmail("maria@socialpulse.dev").Return(user, nil)

	token, err := service.LoginUser(" Maria@SocialPulse.dev ", "Engage@2026")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "acc1", claims.AccountID)
}

func TestLoginUserWrongPassword(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	user := activeUser(t, "Engage@2026")
	userRepo.EXPECT().GetUserByEmail("maria@socialpulse.dev").Return(user, nil)

	_, err := service.LoginUser("maria@socialpulse.dev", "senha-errada")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrInvalidCredentials)
}

func TestLoginUserNotFound(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("ninguem@socialpulse.dev").Return(nil, nil)

	_, err := service.LoginUser("ninguem@socialpulse.dev", "qualquer")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrUserNotFound)
}

func TestLoginUserDisabled(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	user := activeUser(t, "Engage@2026")
	user.Active = false
	userRepo.EXPECT().GetUserByEmail("maria@socialpulse.dev").Return(user, nil)

	_, err := service.LoginUser("maria@socialpulse.dev", "Engage@2026")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrUserDisabled)
}

func TestCreateUserHashesPasswordAndDefaultsRole(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("novo@socialpulse.dev").Return(nil, nil)
	userRepo.EXPECT().
		CreateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.NotEqual(t, "Engage@2026", user.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Engage@2026")))
			assert.Equal(t, 3, user.RoleID)
			assert.True(t, user.Active)
			user.ID = 7
			return user, nil
		})

	created, err := service.CreateUser(&domain.User{
		Name:         "Novo",
		Lastname:     "Usuário",
		Email:        "Novo@SocialPulse.dev",
		PasswordHash: "Engage@2026",
		AccountID:    "acc1",
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	service, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail("maria@socialpulse.dev").Return(activeUser(t, "x"), nil)

	_, err := service.CreateUser(&domain.User{
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@socialpulse.dev",
		PasswordHash: "Engage@2026",
		AccountID:    "acc1",
	})
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrUserAlreadyExists)
}

func TestCreateUserMissingFields(t *testing.T) {
	service, _ := newTestAuthenticator(t)

	_, err := service.CreateUser(&domain.User{Email: "so-email@socialpulse.dev"})
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.ErrorIs(t, authErr.Err, ErrMissingRequiredData)
}
