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

func createTestFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *stubRepoFactory) {
	t.Helper()

	factory := newStubRepoFactory()
	service := NewFavoriteService(&stubTxManager{factory: factory}, newDiscardLogger())

	return service, factory
}

func TestFavoriteService_AddFavoriteItem_Success(t *testing.T) {
	service, factory := createTestFavoriteService(t)
	ctx := context.Background()

	product := &entity.Product{ID: 3, Name: "Rice"}
	factory.products.On("FindByID", ctx, int64(3)).Return(product, nil)
	factory.favoriteItems.On("FindByProduct", ctx, int64(1), int64(3)).Return(nil, repository.ErrFavoriteItemNotFound)
	factory.favoriteItems.On("Create", ctx, mock.AnythingOfType("*entity.FavoriteItem")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.FavoriteItem).ID = 8
		}).
		Return(nil)

	item, err := service.AddFavoriteItem(ctx, 1, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(8), item.ID)
	assert.Equal(t, product, item.Product)
}

func TestFavoriteService_AddFavoriteItem_UnknownProduct(t *testing.T) {
	service, factory := createTestFavoriteService(t)
	ctx := context.Background()

	factory.products.On("FindByID", ctx, int64(99)).Return(nil, repository.ErrProductNotFound)

	_, err := service.AddFavoriteItem(ctx, 1, 99)

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, domainerrors.MsgProductNotExist, appErr.Fields()[0].Msg)
}

func TestFavoriteService_AddFavoriteItem_AlreadyFavorited(t *testing.T) {
	service, factory := createTestFavoriteService(t)
	ctx := context.Background()

	factory.products.On("FindByID", ctx, int64(3)).Return(&entity.Product{ID: 3}, nil)
	factory.favoriteItems.On("FindByProduct", ctx, int64(1), int64(3)).
		Return(&entity.FavoriteItem{ID: 8, UserID: 1, ProductID: 3}, nil)

	_, err := service.AddFavoriteItem(ctx, 1, 3)

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, domainerrors.MsgProductSelected, appErr.Fields()[0].Msg)
	factory.favoriteItems.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFavoriteService_DeleteFavoriteItem_StaleID(t *testing.T) {
	service, factory := createTestFavoriteService(t)
	ctx := context.Background()

	factory.favoriteItems.On("Delete", ctx, int64(1), int64(404)).Return(repository.ErrFavoriteItemNotFound)

	err := service.DeleteFavoriteItem(ctx, 1, 404)

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "favoriteItemId", appErr.Fields()[0].Param)
	assert.Equal(t, domainerrors.MsgItemNotExist, appErr.Fields()[0].Msg)
}

func TestFavoriteService_ListFavoriteItems(t *testing.T) {
	service, factory := createTestFavoriteService(t)
	ctx := context.Background()

	items := []*entity.FavoriteItem{{ID: 1, UserID: 1, ProductID: 3}}
	factory.favoriteItems.On("ListByUser", ctx, int64(1)).Return(items, nil)

	got, err := service.ListFavoriteItems(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, items, got)
}
