package impl

import (
	"context"
	"io"
	"log/slog"

	"vinmart/internal/domain/entity"
	"vinmart/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubTxManager runs the transactional function against a fixed factory, so
// tests exercise the services without a database.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// stubRepoFactory hands out the mock repositories.
type stubRepoFactory struct {
	users         *MockUserRepository
	codes         *MockOneTimeCodeRepository
	categories    *MockCategoryRepository
	productUnits  *MockProductUnitRepository
	products      *MockProductRepository
	reviews       *MockReviewRepository
	addresses     *MockAddressRepository
	cartItems     *MockCartItemRepository
	favoriteItems *MockFavoriteItemRepository
	payments      *MockPaymentMethodRepository
}

func newStubRepoFactory() *stubRepoFactory {
	return &stubRepoFactory{
		users:         &MockUserRepository{},
		codes:         &MockOneTimeCodeRepository{},
		categories:    &MockCategoryRepository{},
		productUnits:  &MockProductUnitRepository{},
		products:      &MockProductRepository{},
		reviews:       &MockReviewRepository{},
		addresses:     &MockAddressRepository{},
		cartItems:     &MockCartItemRepository{},
		favoriteItems: &MockFavoriteItemRepository{},
		payments:      &MockPaymentMethodRepository{},
	}
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository                   { return f.users }
func (f *stubRepoFactory) CodeRepo() repository.OneTimeCodeRepository           { return f.codes }
func (f *stubRepoFactory) CategoryRepo() repository.CategoryRepository          { return f.categories }
func (f *stubRepoFactory) ProductUnitRepo() repository.ProductUnitRepository    { return f.productUnits }
func (f *stubRepoFactory) ProductRepo() repository.ProductRepository            { return f.products }
func (f *stubRepoFactory) ReviewRepo() repository.ReviewRepository              { return f.reviews }
func (f *stubRepoFactory) AddressRepo() repository.AddressRepository            { return f.addresses }
func (f *stubRepoFactory) CartItemRepo() repository.CartItemRepository          { return f.cartItems }
func (f *stubRepoFactory) FavoriteItemRepo() repository.FavoriteItemRepository  { return f.favoriteItems }
func (f *stubRepoFactory) PaymentMethodRepo() repository.PaymentMethodRepository { return f.payments }

// --- repository mocks ---

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	args := m.Called(ctx, phone)
	if u := args.Get(0); u != nil {
		return u.(*entity.User), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id int64, status entity.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockUserRepository) SaveAvatar(ctx context.Context, userID int64, url string) (*entity.Image, error) {
	args := m.Called(ctx, userID, url)
	if img := args.Get(0); img != nil {
		return img.(*entity.Image), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateSetting(ctx context.Context, setting *entity.UserSetting) error {
	return m.Called(ctx, setting).Error(0)
}

type MockOneTimeCodeRepository struct{ mock.Mock }

func (m *MockOneTimeCodeRepository) Upsert(ctx context.Context, code *entity.OneTimeCode) error {
	return m.Called(ctx, code).Error(0)
}

func (m *MockOneTimeCodeRepository) FindByUserID(ctx context.Context, userID int64) (*entity.OneTimeCode, error) {
	args := m.Called(ctx, userID)
	if c := args.Get(0); c != nil {
		return c.(*entity.OneTimeCode), args.Error(1)
	}

	return nil, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	args := m.Called(ctx, name)
	if c := args.Get(0); c != nil {
		return c.(*entity.Category), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return m.Called(ctx, category).Error(0)
}

type MockProductUnitRepository struct{ mock.Mock }

func (m *MockProductUnitRepository) List(ctx context.Context) ([]*entity.ProductUnit, error) {
	args := m.Called(ctx)
	if u := args.Get(0); u != nil {
		return u.([]*entity.ProductUnit), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUnitRepository) FindByID(ctx context.Context, id int64) (*entity.ProductUnit, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*entity.ProductUnit), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUnitRepository) FindByName(ctx context.Context, name string) (*entity.ProductUnit, error) {
	args := m.Called(ctx, name)
	if u := args.Get(0); u != nil {
		return u.(*entity.ProductUnit), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductUnitRepository) Create(ctx context.Context, unit *entity.ProductUnit) error {
	return m.Called(ctx, unit).Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	args := m.Called(ctx, name)
	if p := args.Get(0); p != nil {
		return p.(*entity.Product), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, productID)
	if r := args.Get(0); r != nil {
		return r.([]*entity.Review), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

type MockAddressRepository struct{ mock.Mock }

func (m *MockAddressRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Address, error) {
	args := m.Called(ctx, userID)
	if a := args.Get(0); a != nil {
		return a.([]*entity.Address), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAddressRepository) FindByID(ctx context.Context, userID, id int64) (*entity.Address, error) {
	args := m.Called(ctx, userID, id)
	if a := args.Get(0); a != nil {
		return a.(*entity.Address), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAddressRepository) Create(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) Update(ctx context.Context, address *entity.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockCartItemRepository struct{ mock.Mock }

func (m *MockCartItemRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.CartItem, error) {
	args := m.Called(ctx, userID)
	if i := args.Get(0); i != nil {
		return i.([]*entity.CartItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartItemRepository) FindByID(ctx context.Context, userID, id int64) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, id)
	if i := args.Get(0); i != nil {
		return i.(*entity.CartItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartItemRepository) FindByProduct(ctx context.Context, userID, productID int64) (*entity.CartItem, error) {
	args := m.Called(ctx, userID, productID)
	if i := args.Get(0); i != nil {
		return i.(*entity.CartItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCartItemRepository) Create(ctx context.Context, item *entity.CartItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockCartItemRepository) UpdateQuantity(ctx context.Context, userID, id int64, quantity int) error {
	return m.Called(ctx, userID, id, quantity).Error(0)
}

func (m *MockCartItemRepository) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockFavoriteItemRepository struct{ mock.Mock }

func (m *MockFavoriteItemRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.FavoriteItem, error) {
	args := m.Called(ctx, userID)
	if i := args.Get(0); i != nil {
		return i.([]*entity.FavoriteItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFavoriteItemRepository) FindByID(ctx context.Context, userID, id int64) (*entity.FavoriteItem, error) {
	args := m.Called(ctx, userID, id)
	if i := args.Get(0); i != nil {
		return i.(*entity.FavoriteItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFavoriteItemRepository) FindByProduct(ctx context.Context, userID, productID int64) (*entity.FavoriteItem, error) {
	args := m.Called(ctx, userID, productID)
	if i := args.Get(0); i != nil {
		return i.(*entity.FavoriteItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockFavoriteItemRepository) Create(ctx context.Context, item *entity.FavoriteItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockFavoriteItemRepository) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockPaymentMethodRepository struct{ mock.Mock }

func (m *MockPaymentMethodRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.PaymentMethod, error) {
	args := m.Called(ctx, userID)
	if p := args.Get(0); p != nil {
		return p.([]*entity.PaymentMethod), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPaymentMethodRepository) FindByID(ctx context.Context, userID, id int64) (*entity.PaymentMethod, error) {
	args := m.Called(ctx, userID, id)
	if p := args.Get(0); p != nil {
		return p.(*entity.PaymentMethod), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPaymentMethodRepository) Create(ctx context.Context, method *entity.PaymentMethod) error {
	return m.Called(ctx, method).Error(0)
}

func (m *MockPaymentMethodRepository) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

// --- service mocks ---

type MockPasswordHasher struct{ mock.Mock }

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	return m.Called(password, hash).Bool(0)
}

type MockTokenService struct{ mock.Mock }

func (m *MockTokenService) GenerateSessionToken(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) GenerateOTPToken(userID int64) (string, error) {
	args := m.Called(userID)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateSessionToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenService) ValidateOTPToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)

	return args.Get(0).(int64), args.Error(1)
}

type MockCodeGenerator struct{ mock.Mock }

func (m *MockCodeGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

type MockMailService struct{ mock.Mock }

func (m *MockMailService) SendVerificationCode(ctx context.Context, toEmail, name, code string) error {
	return m.Called(ctx, toEmail, name, code).Error(0)
}

type MockFileStore struct{ mock.Mock }

func (m *MockFileStore) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	args := m.Called(ctx, filename, content)

	return args.String(0), args.Error(1)
}
