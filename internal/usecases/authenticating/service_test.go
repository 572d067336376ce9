package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-compliance-api/internal/config"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func stringPtr(s string) *string {
	return &s
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: mockUserRepo,
		cfg: config.Auth{
			Secret:          "test-secret",
			TokenExpiration: time.Hour,
		},
	}

	activeUser := &domain.User{
		ID:           1,
		Name:         "Maria",
		Email:        "maria@example.com",
		PasswordHash: hashPassword(t, "senha-correta"),
		Active:       true,
		RoleID:       domain.RoleManager,
		PersonID:     stringPtr("PRS010"),
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciais válidas - token emitido com as claims do usuário",
			email:    "maria@example.com",
			password: "senha-correta",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("maria@example.com").
					Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, domain.RoleManager, claims.UserRoleID)
				assert.Equal(t, "PRS010", claims.PersonID)
			},
		},
		{
			name:     "Email normalizado antes da consulta",
			email:    "  MARIA@Example.com ",
			password: "senha-correta",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("maria@example.com").
					Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "maria@example.com",
			password: "senha-errada",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("maria@example.com").
					Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.True(t, errors.Is(err, ErrInvalidCredentials))
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "ninguem@example.com",
			password: "qualquer",
			setup: func() {
				mockUserRepo.EXPECT().
					GetUserByEmail("ninguem@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.True(t, errors.Is(err, ErrUserNotFound))
			},
		},
		{
			name:     "Conta desativada",
			email:    "maria@example.com",
			password: "senha-correta",
			setup: func() {
				disabled := *activeUser
				disabled.Active = false

				mockUserRepo.EXPECT().
					GetUserByEmail("maria@example.com").
					Return(&disabled, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.True(t, errors.Is(err, ErrUserDisabled))
			},
		},
		{
			name:     "Email e senha obrigatórios",
			email:    "",
			password: "",
			setup:    func() {},
			validate: func(t *testing.T, token string, err error) {
				assert.True(t, errors.Is(err, ErrMissingRequiredData))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{
		userRepo: mockUserRepo,
		cfg: config.Auth{
			Secret:          "test-secret",
			TokenExpiration: time.Hour,
		},
	}

	user := &domain.User{ID: 1, Active: true, RoleID: domain.RoleAdmin}

	t.Run("Token expirado", func(t *testing.T) {
		expired := &Service{
			userRepo: mockUserRepo,
			cfg: config.Auth{
				Secret:          "test-secret",
				TokenExpiration: -time.Minute,
			},
		}

		token, err := expired.generateJWT(user)
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Equal(t, ErrExpiredToken, err)
	})

	t.Run("Token assinado com outro segredo", func(t *testing.T) {
		other := &Service{
			userRepo: mockUserRepo,
			cfg: config.Auth{
				Secret:          "outro-segredo",
				TokenExpiration: time.Hour,
			},
		}

		token, err := other.generateJWT(user)
		assert.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("String que não é um token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := &Service{userRepo: mockUserRepo}

	t.Run("Hash de senha nunca sai do serviço", func(t *testing.T) {
		mockUserRepo.EXPECT().
			GetUserByID(1).
			Return(&domain.User{ID: 1, PasswordHash: "hash"}, nil)

		user, err := service.GetUserProfile(1)
		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		mockUserRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		_, err := service.GetUserProfile(99)
		assert.True(t, errors.Is(err, ErrUserNotFound))
	})
}
