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

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *stubRepoFactory) {
	t.Helper()

	factory := newStubRepoFactory()
	service := NewCategoryService(&stubTxManager{factory: factory}, newDiscardLogger())

	return service, factory
}

func TestCategoryService_CreateCategory_AttachesPlaceholderImage(t *testing.T) {
	service, factory := createTestCategoryService(t)
	ctx := context.Background()

	factory.categories.On("FindByName", ctx, "Vegetables").Return(nil, repository.ErrCategoryNotFound)
	factory.categories.On("Create", ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Category).ID = 2
		}).
		Return(nil)

	category, err := service.CreateCategory(ctx, "Vegetables")

	require.NoError(t, err)
	assert.Equal(t, int64(2), category.ID)
	require.NotNil(t, category.Image)
	assert.Equal(t, entity.PlaceholderImageURL, category.Image.URL)
}

func TestCategoryService_CreateCategory_DuplicateName(t *testing.T) {
	service, factory := createTestCategoryService(t)
	ctx := context.Background()

	factory.categories.On("FindByName", ctx, "Vegetables").Return(&entity.Category{ID: 1}, nil)

	_, err := service.CreateCategory(ctx, "Vegetables")

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())

	fields := appErr.Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, "Vegetables", fields[0].Value)
	assert.Equal(t, domainerrors.MsgNameRegistered, fields[0].Msg)
	assert.Equal(t, "name", fields[0].Param)
}

func TestCategoryService_ListCategories(t *testing.T) {
	service, factory := createTestCategoryService(t)
	ctx := context.Background()

	categories := []*entity.Category{{ID: 1, Name: "Vegetables"}, {ID: 2, Name: "Fruits"}}
	factory.categories.On("List", ctx).Return(categories, nil)

	got, err := service.ListCategories(ctx)

	require.NoError(t, err)
	assert.Equal(t, categories, got)
}
