package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fireproject/fire-engine-bridge/internal/domain/model"
	apperrors "github.com/fireproject/fire-engine-bridge/internal/errors"
	"github.com/fireproject/fire-engine-bridge/internal/mocks"
	"github.com/fireproject/fire-engine-bridge/internal/ports"
)

type authServiceMocks struct {
	users  *mocks.MockUserRepository
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenIssuer
}

func newAuthServiceForTest(t *testing.T) (*AuthService, authServiceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := authServiceMocks{
		users:  mocks.NewMockUserRepository(ctrl),
		hasher: mocks.NewMockPasswordHasher(ctrl),
		tokens: mocks.NewMockTokenIssuer(ctrl),
	}
	svc := MustNewAuthService(AuthServiceOptions{
		Users:  m.users,
		Hasher: m.hasher,
		Tokens: m.tokens,
	})
	return svc, m
}

func TestNewAuthService_RequiresDeps(t *testing.T) {
	_, err := NewAuthService(AuthServiceOptions{})
	assert.Error(t, err)
}

func TestAuthService_Register(t *testing.T) {
	svc, m := newAuthServiceForTest(t)
	ctx := context.Background()

	m.users.EXPECT().GetByUsername(gomock.Any(), "root").
		Return(model.User{}, apperrors.NotFound("user not found"))
	m.users.EXPECT().GetByEmail(gomock.Any(), "root@example.com").
		Return(model.User{}, apperrors.NotFound("user not found"))
	m.hasher.EXPECT().Hash("hunter22").Return("hashed", nil)
	m.users.EXPECT().
		Create(gomock.Any(), ports.CreateUserInput{
			Username: "root", Email: "root@example.com", PasswordHash: "hashed",
		}).
		Return(model.User{ID: "uid-1", Username: "root", Email: "root@example.com"}, nil)

	user, err := svc.Register(ctx, model.RegisterRequest{
		Username: " root ",
		Email:    " Root@Example.com ",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
}

func TestAuthService_Register_InvalidRequest(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "", Email: "a@b.com", Password: "hunter22",
	})
	assert.True(t, apperrors.IsValidation(err), "got %v", err)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	m.users.EXPECT().GetByUsername(gomock.Any(), "dup").
		Return(model.User{ID: "existing", Username: "dup"}, nil)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "dup", Email: "dup@example.com", Password: "hunter22",
	})
	require.True(t, apperrors.IsConflict(err), "got %v", err)
	assert.Equal(t, "username", apperrors.GetField(err))
	assert.Contains(t, err.Error(), "username already taken")
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	m.users.EXPECT().GetByUsername(gomock.Any(), "fresh").
		Return(model.User{}, apperrors.NotFound("user not found"))
	m.users.EXPECT().GetByEmail(gomock.Any(), "dup@example.com").
		Return(model.User{ID: "existing"}, nil)

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "fresh", Email: "dup@example.com", Password: "hunter22",
	})
	require.True(t, apperrors.IsConflict(err), "got %v", err)
	assert.Equal(t, "email", apperrors.GetField(err))
	assert.Contains(t, err.Error(), "email already registered")
}

// The pre-checks can both pass during a race; the insert's unique
// violation must come back as the same conflict shape.
func TestAuthService_Register_RacingDuplicate(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	m.users.EXPECT().GetByUsername(gomock.Any(), "racer").
		Return(model.User{}, apperrors.NotFound("user not found"))
	m.users.EXPECT().GetByEmail(gomock.Any(), "racer@example.com").
		Return(model.User{}, apperrors.NotFound("user not found"))
	m.hasher.EXPECT().Hash("hunter22").Return("h", nil)
	m.users.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(model.User{}, apperrors.Conflict("username", "unique violation on username"))

	_, err := svc.Register(context.Background(), model.RegisterRequest{
		Username: "racer", Email: "racer@example.com", Password: "hunter22",
	})
	require.True(t, apperrors.IsConflict(err), "got %v", err)
	assert.Equal(t, "username", apperrors.GetField(err))
	assert.Contains(t, err.Error(), "username already taken")
}

func TestAuthService_Login(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	stored := model.User{ID: "uid-1", Username: "root", PasswordHash: "stored-hash"}
	m.users.EXPECT().GetByUsername(gomock.Any(), "root").Return(stored, nil)
	m.hasher.EXPECT().Verify("stored-hash", "123").Return(true)
	m.tokens.EXPECT().Issue(stored).Return("signed-token", nil)

	tok, err := svc.Login(context.Background(), model.LoginRequest{Username: "root", Password: "123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", tok)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	stored := model.User{ID: "uid-1", Username: "root", PasswordHash: "stored-hash"}
	m.users.EXPECT().GetByUsername(gomock.Any(), "root").Return(stored, nil)
	m.hasher.EXPECT().Verify("stored-hash", "wrong").Return(false)

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "root", Password: "wrong"})
	assert.True(t, apperrors.IsUnauthorized(err), "got %v", err)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	m.users.EXPECT().GetByUsername(gomock.Any(), "ghost").
		Return(model.User{}, apperrors.NotFound("user not found"))
	// Unknown user still burns a hash comparison.
	m.hasher.EXPECT().DummyVerify("123")

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "ghost", Password: "123"})
	assert.True(t, apperrors.IsUnauthorized(err),
		"unknown user must be indistinguishable from wrong password, got %v", err)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, m := newAuthServiceForTest(t)

	m.users.EXPECT().GetByUsername(gomock.Any(), "root").
		Return(model.User{}, errors.New("connection refused"))

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "root", Password: "123"})
	require.Error(t, err)
	assert.False(t, apperrors.IsUnauthorized(err), "infrastructure failure must not read as bad credentials")
}

func TestAuthService_Login_InvalidRequest(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(context.Background(), model.LoginRequest{Username: "", Password: "123"})
	assert.True(t, apperrors.IsValidation(err), "got %v", err)
}
