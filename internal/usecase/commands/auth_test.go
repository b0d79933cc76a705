//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/jwt"
	"banana-farm-api/internal/pkg/password"
	"banana-farm-api/internal/usecase/commands"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userRepoStub struct {
	created   *user.User
	createErr error
	view      *queries.AuthorizedUserView
	hash      string
	findErr   error
}

func (s *userRepoStub) Create(_ context.Context, u *user.User) error {
	s.created = u
	return s.createErr
}

func (s *userRepoStub) FindByEmail(_ context.Context, _ user.Email) (*queries.AuthorizedUserView, string, error) {
	if s.findErr != nil {
		return nil, "", s.findErr
	}
	return s.view, s.hash, nil
}

func testJWTService() *jwt.Service {
	return jwt.NewService("test-secret-key", time.Hour)
}

func TestAuthCommands_SignUp(t *testing.T) {
	ctx := context.Background()

	params := commands.SignUpParams{
		Email:    "somsak@example.com",
		Password: "Password123!",
		FullName: "Somsak Jaidee",
	}

	t.Run("registers a new farmer and issues a token", func(t *testing.T) {
		repo := &userRepoStub{}
		uc := commands.NewAuthCommands(repo, testJWTService())

		result, err := uc.SignUp(ctx, params)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, user.RoleNewFarmer.String(), result.User.Role)
		assert.True(t, result.User.IsActive)

		require.NotNil(t, repo.created)
		assert.Equal(t, user.RoleNewFarmer, repo.created.Role())
		assert.NoError(t, password.ComparePassword(repo.created.PasswordHash(), params.Password))
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		repo := &userRepoStub{createErr: infra.NewRepoErr(infra.KindDuplicateKey, "email taken", nil)}
		uc := commands.NewAuthCommands(repo, testJWTService())

		_, err := uc.SignUp(ctx, params)
		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		uc := commands.NewAuthCommands(&userRepoStub{}, testJWTService())

		bad := params
		bad.Email = "not-an-email"
		_, err := uc.SignUp(ctx, bad)
		assert.Error(t, err)
	})
}

func TestAuthCommands_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	hash, err := password.HashPassword("Password123!")
	require.NoError(t, err)

	activeView := &queries.AuthorizedUserView{
		ID:       userID,
		Email:    "somsak@example.com",
		FullName: "Somsak Jaidee",
		Role:     user.RoleFarmOwner.String(),
		IsActive: true,
	}

	credentials := func(t *testing.T, pass string) user.Credentials {
		t.Helper()
		c, err := user.NewCredentials("somsak@example.com", pass)
		require.NoError(t, err)
		return c
	}

	t.Run("issues a token for valid credentials", func(t *testing.T) {
		repo := &userRepoStub{view: activeView, hash: hash}
		uc := commands.NewAuthCommands(repo, testJWTService())

		result, err := uc.Login(ctx, credentials(t, "Password123!"))
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.Equal(t, userID, result.User.ID)

		claims, err := testJWTService().ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		repo := &userRepoStub{view: activeView, hash: hash}
		uc := commands.NewAuthCommands(repo, testJWTService())

		_, err := uc.Login(ctx, credentials(t, "WrongPassword1!"))
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		repo := &userRepoStub{findErr: infra.NewRepoErr(infra.KindNotFound, "no such user", nil)}
		uc := commands.NewAuthCommands(repo, testJWTService())

		_, err := uc.Login(ctx, credentials(t, "Password123!"))
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("rejects a deactivated account", func(t *testing.T) {
		inactive := *activeView
		inactive.IsActive = false
		repo := &userRepoStub{view: &inactive, hash: hash}
		uc := commands.NewAuthCommands(repo, testJWTService())

		_, err := uc.Login(ctx, credentials(t, "Password123!"))
		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}
