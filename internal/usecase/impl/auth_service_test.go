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

type authServiceFixtures struct {
	service usecase.AuthUsecase
	factory *stubRepoFactory
	hasher  *MockPasswordHasher
	tokens  *MockTokenService
	codes   *MockCodeGenerator
	mailer  *MockMailService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	factory := newStubRepoFactory()
	hasher := &MockPasswordHasher{}
	tokens := &MockTokenService{}
	codes := &MockCodeGenerator{}
	mailer := &MockMailService{}

	service := NewAuthService(
		&stubTxManager{factory: factory},
		hasher,
		tokens,
		codes,
		mailer,
		newDiscardLogger(),
	)

	return authServiceFixtures{
		service: service,
		factory: factory,
		hasher:  hasher,
		tokens:  tokens,
		codes:   codes,
		mailer:  mailer,
	}
}

func appErrOf(t *testing.T, err error) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.users.On("FindByEmail", ctx, "new@example.com").Return(nil, repository.ErrUserNotFound)
	fx.factory.users.On("FindByPhone", ctx, "+84919473533").Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "Example123!@#").Return("hashed-password", nil)
	fx.factory.users.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 1
		}).
		Return(nil)
	fx.codes.On("Generate").Return("123456", nil)
	fx.hasher.On("Hash", "123456").Return("hashed-code", nil)
	fx.factory.codes.On("Upsert", ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(nil)
	fx.mailer.On("SendVerificationCode", ctx, "new@example.com", entity.DefaultUserName, "123456").Return(nil)
	fx.tokens.On("GenerateOTPToken", int64(1)).Return("otp-token", nil)

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "new@example.com",
		Password: "Example123!@#",
		Phone:    "+84919473533",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.ID)
	assert.Equal(t, "new@example.com", output.Email)
	assert.Equal(t, entity.DefaultUserName, output.Name)
	assert.Equal(t, "+84919473533", output.Phone)
	assert.Equal(t, string(entity.UserStatusPreActive), output.Status)
	assert.Equal(t, "otp-token", output.Token)

	fx.factory.users.AssertExpectations(t)
	fx.factory.codes.AssertExpectations(t)
	fx.mailer.AssertExpectations(t)
}

func TestAuthService_SignUp_StoresOnlyTheCodeHash(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.users.On("FindByEmail", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.factory.users.On("FindByPhone", ctx, mock.Anything).Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "Example123!@#").Return("hashed-password", nil)
	fx.factory.users.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 9
		}).
		Return(nil)
	fx.codes.On("Generate").Return("654321", nil)
	fx.hasher.On("Hash", "654321").Return("hashed-code", nil)
	fx.factory.codes.On("Upsert", ctx, mock.MatchedBy(func(code *entity.OneTimeCode) bool {
		return code.UserID == 9 && code.Code == "hashed-code"
	})).Return(nil)
	fx.mailer.On("SendVerificationCode", ctx, mock.Anything, mock.Anything, "654321").Return(nil)
	fx.tokens.On("GenerateOTPToken", int64(9)).Return("token", nil)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "a@example.com",
		Password: "Example123!@#",
		Phone:    "+84900000001",
	})

	require.NoError(t, err)
	fx.factory.codes.AssertExpectations(t)
}

func TestAuthService_SignUp_ReportsBothConflicts(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	other := &entity.User{ID: 2, Email: "taken@example.com"}
	fx.factory.users.On("FindByEmail", ctx, "taken@example.com").Return(other, nil)
	fx.factory.users.On("FindByPhone", ctx, "+84919473533").Return(other, nil)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "Example123!@#",
		Phone:    "+84919473533",
	})

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())

	fields := appErr.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "email", fields[0].Param)
	assert.Equal(t, domainerrors.MsgEmailRegistered, fields[0].Msg)
	assert.Equal(t, "phone", fields[1].Param)
	assert.Equal(t, domainerrors.MsgPhoneRegistered, fields[1].Msg)
}

func TestAuthService_SignUp_EmailConflictOnly(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.users.On("FindByEmail", ctx, "taken@example.com").Return(&entity.User{ID: 2}, nil)
	fx.factory.users.On("FindByPhone", ctx, "+84919473533").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:    "taken@example.com",
		Password: "Example123!@#",
		Phone:    "+84919473533",
	})

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	require.Len(t, appErr.Fields(), 1)
	assert.Equal(t, "email", appErr.Fields()[0].Param)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.users.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "ghost@example.com", Password: "whatever"})

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	require.Len(t, appErr.Fields(), 1)
	assert.Equal(t, domainerrors.MsgSignInFailed, appErr.Fields()[0].Msg)
	assert.Equal(t, "common", appErr.Fields()[0].Param)
}

func TestAuthService_SignIn_WrongPasswordUsesSameMessage(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "user@example.com", Password: "hash", Status: entity.UserStatusActive}
	fx.factory.users.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hash").Return(false)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "user@example.com", Password: "wrong"})

	appErr := appErrOf(t, err)
	assert.Equal(t, domainerrors.MsgSignInFailed, appErr.Fields()[0].Msg)
}

func TestAuthService_SignIn_PreActiveAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "user@example.com", Password: "hash", Status: entity.UserStatusPreActive}
	fx.factory.users.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "Example123!@#", "hash").Return(true)

	_, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "user@example.com", Password: "Example123!@#"})

	appErr := appErrOf(t, err)
	assert.Equal(t, domainerrors.MsgAccountNotActive, appErr.Fields()[0].Msg)
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 5, Email: "user@example.com", Password: "hash", Status: entity.UserStatusActive}
	fx.factory.users.On("FindByEmail", ctx, "user@example.com").Return(user, nil)
	fx.hasher.On("Check", "Example123!@#", "hash").Return(true)
	fx.tokens.On("GenerateSessionToken", int64(5)).Return("session-token", nil)

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "user@example.com", Password: "Example123!@#"})

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
}

func TestAuthService_ActivateAccount_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.codes.On("FindByUserID", ctx, int64(1)).Return(&entity.OneTimeCode{UserID: 1, Code: "hashed-code"}, nil)
	fx.hasher.On("Check", "123456", "hashed-code").Return(true)
	fx.factory.users.On("UpdateStatus", ctx, int64(1), entity.UserStatusActive).Return(nil)

	err := fx.service.ActivateAccount(ctx, 1, "123456")

	require.NoError(t, err)
	fx.factory.users.AssertExpectations(t)
}

func TestAuthService_ActivateAccount_WrongCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.codes.On("FindByUserID", ctx, int64(1)).Return(&entity.OneTimeCode{UserID: 1, Code: "hashed-code"}, nil)
	fx.hasher.On("Check", "000000", "hashed-code").Return(false)

	err := fx.service.ActivateAccount(ctx, 1, "000000")

	appErr := appErrOf(t, err)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, domainerrors.MsgInvalidCode, appErr.Fields()[0].Msg)
	fx.factory.users.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_ActivateAccount_NoStoredCode(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.factory.codes.On("FindByUserID", ctx, int64(1)).Return(nil, repository.ErrCodeNotFound)

	err := fx.service.ActivateAccount(ctx, 1, "123456")

	appErr := appErrOf(t, err)
	assert.Equal(t, domainerrors.MsgInvalidCode, appErr.Fields()[0].Msg)
}

func TestAuthService_ResendActivateOTP_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "user@example.com", Name: entity.DefaultUserName, Status: entity.UserStatusPreActive}
	fx.factory.users.On("FindByID", ctx, int64(1)).Return(user, nil)
	fx.codes.On("Generate").Return("222333", nil)
	fx.hasher.On("Hash", "222333").Return("hashed-code", nil)
	fx.factory.codes.On("Upsert", ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(nil)
	fx.mailer.On("SendVerificationCode", ctx, "user@example.com", entity.DefaultUserName, "222333").Return(nil)

	err := fx.service.ResendActivateOTP(ctx, 1)

	require.NoError(t, err)
	fx.mailer.AssertExpectations(t)
}

func TestAuthService_ResendActivateOTP_MailFailureIsNotFatal(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	user := &entity.User{ID: 1, Email: "user@example.com", Name: entity.DefaultUserName}
	fx.factory.users.On("FindByID", ctx, int64(1)).Return(user, nil)
	fx.codes.On("Generate").Return("222333", nil)
	fx.hasher.On("Hash", "222333").Return("hashed-code", nil)
	fx.factory.codes.On("Upsert", ctx, mock.AnythingOfType("*entity.OneTimeCode")).Return(nil)
	fx.mailer.On("SendVerificationCode", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(assert.AnError)

	err := fx.service.ResendActivateOTP(ctx, 1)

	assert.NoError(t, err)
}
