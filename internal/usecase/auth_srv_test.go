package usecase_test

import (
	"context"
	"testing"

	"labour-market/internal/data/repository"
	"labour-market/internal/dto/request"
	"labour-market/internal/usecase"
	"labour-market/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService() (usecase.AuthService, *repository.Repository) {
	repo := &repository.Repository{
		User:    newMemUserRepo(),
		Session: newMemSessionRepo(),
	}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	return usecase.NewAuthService(repo, config, zap.NewNop()), repo
}

func TestAuthService_Register(t *testing.T) {
	t.Run("Should register and allow login with the same secret only", func(t *testing.T) {
		service, _ := newAuthService()
		ctx := context.Background()

		_, err := service.Register(ctx, &request.SignupRequest{
			Username: "alice",
			Password: "secret1",
			Role:     "customer",
		})
		require.NoError(t, err)

		auth, err := service.Login(ctx, &request.LoginRequest{Username: "alice", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "alice", auth.Username)
		assert.NotEmpty(t, auth.Token)

		_, err = service.Login(ctx, &request.LoginRequest{Username: "alice", Password: "wrong"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid username or password")
	})

	t.Run("Should reject a duplicate username and create no record", func(t *testing.T) {
		service, repo := newAuthService()
		ctx := context.Background()

		first, err := service.Register(ctx, &request.SignupRequest{
			Username: "bob",
			Password: "secret1",
			Role:     "labourer",
		})
		require.NoError(t, err)

		_, err = service.Register(ctx, &request.SignupRequest{
			Username: "bob",
			Password: "other-secret",
			Role:     "customer",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already taken")

		// The original record is untouched
		user, err := repo.User.FindByUsername(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, first.UserID, user.ID.String())
		assert.Equal(t, "labourer", string(user.Role))
	})

	t.Run("Should reject an unknown role", func(t *testing.T) {
		service, _ := newAuthService()

		_, err := service.Register(context.Background(), &request.SignupRequest{
			Username: "mallory",
			Password: "secret1",
			Role:     "admin",
		})
		require.Error(t, err)
	})

	t.Run("Should not store the plaintext password", func(t *testing.T) {
		service, repo := newAuthService()
		ctx := context.Background()

		_, err := service.Register(ctx, &request.SignupRequest{
			Username: "carol",
			Password: "plain-secret",
			Role:     "customer",
		})
		require.NoError(t, err)

		user, err := repo.User.FindByUsername(ctx, "carol")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, "plain-secret", user.PasswordHash)
		assert.NotContains(t, user.PasswordHash, "plain-secret")
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("Should answer the same for unknown user and wrong password", func(t *testing.T) {
		service, _ := newAuthService()
		ctx := context.Background()

		_, err := service.Register(ctx, &request.SignupRequest{
			Username: "dave",
			Password: "secret1",
			Role:     "customer",
		})
		require.NoError(t, err)

		_, unknownErr := service.Login(ctx, &request.LoginRequest{Username: "ghost", Password: "secret1"})
		_, wrongErr := service.Login(ctx, &request.LoginRequest{Username: "dave", Password: "nope"})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("Should revoke the session token", func(t *testing.T) {
		service, repo := newAuthService()
		ctx := context.Background()

		_, err := service.Register(ctx, &request.SignupRequest{
			Username: "erin",
			Password: "secret1",
			Role:     "labourer",
		})
		require.NoError(t, err)

		auth, err := service.Login(ctx, &request.LoginRequest{Username: "erin", Password: "secret1"})
		require.NoError(t, err)

		require.NoError(t, service.Logout(ctx, auth.Token))

		session, err := repo.Session.FindValidSession(ctx, auth.Token)
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}
