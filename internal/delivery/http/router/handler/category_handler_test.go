package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"vinmart/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

type stubCategoryUsecase struct {
	listFn   func(ctx context.Context) ([]*entity.Category, error)
	createFn func(ctx context.Context, name string) (*entity.Category, error)
}

func (s *stubCategoryUsecase) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryUsecase) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	return s.createFn(ctx, name)
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := &stubCategoryUsecase{
		listFn: func(context.Context) ([]*entity.Category, error) {
			return []*entity.Category{
				{ID: 1, Name: "Vegetables", CreatedAt: at, UpdatedAt: at, Image: &entity.Image{URL: "/images/veg.png"}},
				{ID: 2, Name: "Fruits", CreatedAt: at, UpdatedAt: at},
			}, nil
		},
	}

	e := newTestEcho(t)
	h := NewCategoryHandler(uc, newDiscardLogger())
	e.GET("/api/v1/catalogue/categories", h.ListCategories)

	rec := serveJSON(e, http.MethodGet, "/api/v1/catalogue/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"categories":[
		{"id":1,"name":"Vegetables","createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z","image":"/images/veg.png"},
		{"id":2,"name":"Fruits","createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z"}
	]}`, rec.Body.String())
}

func TestCategoryHandler_CreateCategory_OmitsImage(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc := &stubCategoryUsecase{
		createFn: func(_ context.Context, name string) (*entity.Category, error) {
			return &entity.Category{
				ID:        3,
				Name:      name,
				CreatedAt: at,
				UpdatedAt: at,
				Image:     &entity.Image{URL: entity.PlaceholderImageURL},
			}, nil
		},
	}

	e := newTestEcho(t)
	h := NewCategoryHandler(uc, newDiscardLogger())
	e.POST("/api/v1/catalogue/categories", h.CreateCategory)

	rec := serveJSON(e, http.MethodPost, "/api/v1/catalogue/categories", `{"name":"Dairy"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	// The stored placeholder image never appears in the create payload.
	assert.JSONEq(t,
		`{"id":3,"name":"Dairy","createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z"}`,
		rec.Body.String())
}

func TestCategoryHandler_CreateCategory_MissingName(t *testing.T) {
	e := newTestEcho(t)
	h := NewCategoryHandler(&stubCategoryUsecase{}, newDiscardLogger())
	e.POST("/api/v1/catalogue/categories", h.CreateCategory)

	rec := serveJSON(e, http.MethodPost, "/api/v1/catalogue/categories", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":[{"msg":"Invalid value","param":"name","location":"body"}]}`,
		rec.Body.String())
}
