package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-campaign-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-campaign-api/internal/config"
	"github.com/vfg2006/seo-campaign-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecretKey = "chave-de-teste"

func newTestService(userRepo *mocks.MockUserRepository) *Service {
	return &Service{
		userRepo: userRepo,
		cfg:      &config.Config{SecretKey: testSecretKey},
	}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Name:         "Maria",
		Lastname:     "Silva",
		Email:        "maria@oticavisao.com.br",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       3,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("login com sucesso gera token validável", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		user := activeUser(t, "senha123")
		userRepo.EXPECT().GetUserByEmail("maria@oticavisao.com.br").Return(user, nil)

		service := newTestService(userRepo)

		token, err := service.LoginUser("  Maria@OticaVisao.com.br ", "senha123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, user.Email, claims.UserEmail)
		assert.Equal(t, user.RoleID, claims.UserRoleID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@oticavisao.com.br").Return(activeUser(t, "senha123"), nil)

		token, err := newTestService(userRepo).LoginUser("maria@oticavisao.com.br", "senha-errada")
		assert.Empty(t, token)
		assert.True(t, errors.Is(err, ErrInvalidCredentials))
	})

	t.Run("usuário não encontrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("ninguem@oticavisao.com.br").Return(nil, nil)

		_, err := newTestService(userRepo).LoginUser("ninguem@oticavisao.com.br", "senha123")
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})

	t.Run("conta desativada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		user := activeUser(t, "senha123")
		user.Active = false
		userRepo.EXPECT().GetUserByEmail("maria@oticavisao.com.br").Return(user, nil)

		_, err := newTestService(userRepo).LoginUser("maria@oticavisao.com.br", "senha123")
		assert.True(t, errors.Is(err, ErrUserDisabled))

		var authErr *AuthError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, user.ID, authErr.UserID)
	})

	t.Run("dados obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		_, err := newTestService(userRepo).LoginUser("", "senha123")
		assert.True(t, errors.Is(err, ErrMissingRequiredData))
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("cria usuário com senha hasheada e inativo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		userRepo.EXPECT().GetUserByEmail("joao@oticavisao.com.br").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.Equal(t, "joao@oticavisao.com.br", u.Email)
			assert.False(t, u.Active)
			assert.Equal(t, 3, u.RoleID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha123")))
			u.ID = 7
			return u, nil
		})

		created, err := newTestService(userRepo).CreateUser(&domain.User{
			Name:         "João",
			Lastname:     "Souza",
			Email:        " Joao@OticaVisao.com.br ",
			PasswordHash: "senha123",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByEmail("maria@oticavisao.com.br").Return(activeUser(t, "senha123"), nil)

		_, err := newTestService(userRepo).CreateUser(&domain.User{
			Name:         "Maria",
			Lastname:     "Silva",
			Email:        "maria@oticavisao.com.br",
			PasswordHash: "senha123",
		})
		assert.True(t, errors.Is(err, ErrUserAlreadyExists))
	})

	t.Run("campos obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)

		_, err := newTestService(userRepo).CreateUser(&domain.User{Email: "x@y.com"})
		assert.True(t, errors.Is(err, ErrMissingRequiredData))
	})
}

func TestGetUserProfile(t *testing.T) {
	t.Run("remove hash de senha da resposta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(1).Return(activeUser(t, "senha123"), nil)

		user, err := newTestService(userRepo).GetUserProfile(1)
		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		_, err := newTestService(userRepo).GetUserProfile(99)
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("token inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := newTestService(mocks.NewMockUserRepository(ctrl))

		_, err := service.ValidateToken("nao-e-um-jwt")
		assert.Error(t, err)
	})
}
