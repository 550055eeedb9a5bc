package impl

import (
	"context"
	"net/http"
	"testing"

	"vinmart/internal/domain/entity"
	domainerrors "vinmart/internal/domain/errors"
	"vinmart/internal/domain/repository"
	"vinmart/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProductUnitService(t *testing.T) (usecase.ProductUnitUsecase, *stubRepoFactory) {
	t.Helper()

	factory := newStubRepoFactory()
	service := NewProductUnitService(&stubTxManager{factory: factory}, newDiscardLogger())

	return service, factory
}

func TestProductUnitService_CreateProductUnit(t *testing.T) {
	service, factory := createTestProductUnitService(t)
	ctx := context.Background()

	factory.productUnits.On("FindByName", ctx, "kg").Return(nil, repository.ErrProductUnitNotFound)
	factory.productUnits.On("Create", ctx, mock.AnythingOfType("*entity.ProductUnit")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ProductUnit).ID = 4
		}).
		Return(nil)

	unit, err := service.CreateProductUnit(ctx, "kg")

	require.NoError(t, err)
	assert.Equal(t, int64(4), unit.ID)
	assert.Equal(t, "kg", unit.Name)
}

func TestProductUnitService_CreateProductUnit_DuplicateName(t *testing.T) {
	service, factory := createTestProductUnitService(t)
	ctx := context.Background()

	factory.productUnits.On("FindByName", ctx, "kg").Return(&entity.ProductUnit{ID: 4}, nil)

	_, err := service.CreateProductUnit(ctx, "kg")

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, domainerrors.MsgNameRegistered, appErr.Fields()[0].Msg)
}

func TestProductUnitService_ListProductUnits(t *testing.T) {
	service, factory := createTestProductUnitService(t)
	ctx := context.Background()

	units := []*entity.ProductUnit{{ID: 1, Name: "kg"}, {ID: 2, Name: "box"}}
	factory.productUnits.On("List", ctx).Return(units, nil)

	got, err := service.ListProductUnits(ctx)

	require.NoError(t, err)
	assert.Equal(t, units, got)
}
