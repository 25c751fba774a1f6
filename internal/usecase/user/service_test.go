package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var jwtSecret = []byte("test-secret")

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("Insert", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			// repository sees the hash, never the plaintext
			return u.Username == "johndoe" &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")) == nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = "user-123"
		}).Return(nil).Once()

		svc := user.NewService(userRepo, jwtSecret, time.Hour)
		u, err := svc.Register(context.Background(), "johndoe", "secret", "John Doe")

		require.NoError(t, err)
		assert.Equal(t, "user-123", u.ID)
		assert.Empty(t, u.Password)
		userRepo.AssertExpectations(t)
	})

	t.Run("taken username", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("Insert", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

		svc := user.NewService(userRepo, jwtSecret, time.Hour)
		_, err := svc.Register(context.Background(), "johndoe", "secret", "John Doe")

		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{ID: "user-123", Username: "johndoe", Password: string(hashed)}

	t.Run("success yields a token carrying the user id", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByUsername", mock.Anything, "johndoe").Return(stored, nil).Once()

		svc := user.NewService(userRepo, jwtSecret, time.Hour)
		signed, err := svc.Login(context.Background(), "johndoe", "secret")

		require.NoError(t, err)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
			return jwtSecret, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims["user_id"])
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByUsername", mock.Anything, "johndoe").Return(stored, nil).Once()

		svc := user.NewService(userRepo, jwtSecret, time.Hour)
		_, err := svc.Login(context.Background(), "johndoe", "wrong")

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("unknown username", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		userRepo.On("GetByUsername", mock.Anything, "nobody").
			Return(domain.User{}, domain.ErrNotFound).Once()

		svc := user.NewService(userRepo, jwtSecret, time.Hour)
		_, err := svc.Login(context.Background(), "nobody", "secret")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
