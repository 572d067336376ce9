package visibility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-compliance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-compliance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)

	service := &Service{
		personRepo: mockPersonRepo,
	}

	tests := []struct {
		name     string
		actor    *domain.Claims
		setup    func()
		validate func(t *testing.T, scope domain.Visibility, err error)
	}{
		{
			name:  "Administrador enxerga tudo",
			actor: &domain.Claims{UserRoleID: domain.RoleAdmin},
			setup: func() {},
			validate: func(t *testing.T, scope domain.Visibility, err error) {
				assert.NoError(t, err)
				assert.True(t, scope.All)
				assert.True(t, scope.Allows("PRS999"))
			},
		},
		{
			name:  "Regional enxerga tudo",
			actor: &domain.Claims{UserRoleID: domain.RoleRegional},
			setup: func() {},
			validate: func(t *testing.T, scope domain.Visibility, err error) {
				assert.NoError(t, err)
				assert.True(t, scope.All)
			},
		},
		{
			name:  "Gestor enxerga a si e aos membros da sua unidade local",
			actor: &domain.Claims{UserRoleID: domain.RoleManager, PersonID: "PRS010"},
			setup: func() {
				mockPersonRepo.EXPECT().
					GetByID("PRS010").
					Return(&domain.Person{ID: "PRS010", OrgUnitID: "ORG003"}, nil)

				mockPersonRepo.EXPECT().
					ListByOrgUnitIDs([]string{"ORG003"}).
					Return([]*domain.Person{
						{ID: "PRS010", OrgUnitID: "ORG003"},
						{ID: "PRS001", OrgUnitID: "ORG003"},
						{ID: "PRS002", OrgUnitID: "ORG003"},
					}, nil)
			},
			validate: func(t *testing.T, scope domain.Visibility, err error) {
				assert.NoError(t, err)
				assert.False(t, scope.All)
				assert.Equal(t, []string{"PRS010", "PRS001", "PRS002"}, scope.PersonIDs)
				assert.True(t, scope.Allows("PRS001"))
				assert.False(t, scope.Allows("PRS099"))
			},
		},
		{
			name:  "Gestor sem pessoa vinculada",
			actor: &domain.Claims{UserRoleID: domain.RoleManager},
			setup: func() {},
			validate: func(t *testing.T, scope domain.Visibility, err error) {
				assert.Equal(t, ErrActorWithoutPerson, err)
			},
		},
		{
			name:  "Vendedor enxerga só a si mesmo",
			actor: &domain.Claims{UserRoleID: domain.RoleAdvisor, PersonID: "PRS001"},
			setup: func() {},
			validate: func(t *testing.T, scope domain.Visibility, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []string{"PRS001"}, scope.PersonIDs)
				assert.False(t, scope.Allows("PRS002"))
			},
		},
		{
			name:  "Vendedor sem pessoa vinculada",
			actor: &domain.Claims{UserRoleID: domain.RoleAdvisor},
			setup: func() {},
			validate: func(t *testing.T, scope domain.Visibility, err error) {
				assert.Equal(t, ErrActorWithoutPerson, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			scope, err := service.Resolve(tt.actor)
			tt.validate(t, scope, err)
		})
	}
}
