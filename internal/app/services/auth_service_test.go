package services

import (
	"context"
	"testing"
	"time"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/pkg/apperrors"
	"github.com/melisd/campushub/internal/pkg/auth"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory IUserRepository for service tests.
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperrors.ErrIdentifierExists
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) IdentifierExists(ctx context.Context, username, email string) (bool, error) {
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, userID int64, fullName, email string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.FullName = fullName
	user.Email = email
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID int64) error {
	user, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	now := time.Now()
	user.LastLoginAt = &now
	return nil
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "campushub.test",
	})
	// bcrypt.MinCost keeps the tests fast.
	hasher := auth.NewPasswordHasher(4)
	return NewAuthService(repo, jwtService, hasher, 6, zerolog.Nop())
}

func registerRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Username: "mkaur",
		Email:    "m.kaur@example.edu",
		Password: "secret123",
		FullName: "Manpreet Kaur",
	}
}

func TestAuthService_Register(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)
	assert.Equal(t, "mkaur", resp.User.Username)
	assert.Equal(t, string(models.RoleStudent), resp.User.Role)
	assert.True(t, resp.User.IsActive)

	// The stored hash must verify the original password and never equal it.
	stored := repo.users[resp.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, auth.NewPasswordHasher(4).Check(stored.PasswordHash, "secret123"))
}

func TestAuthService_RegisterNormalizesEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	req := registerRequest()
	req.Email = "  M.Kaur@Example.EDU "

	resp, err := service.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "m.kaur@example.edu", resp.User.Email)
}

func TestAuthService_RegisterExplicitRole(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	req := registerRequest()
	req.Role = "teacher"

	resp, err := service.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "teacher", resp.User.Role)
}

func TestAuthService_RegisterRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.RegisterRequest)
		wantErr error
	}{
		{"short password", func(r *dto.RegisterRequest) { r.Password = "abc" }, apperrors.ErrInvalidPassword},
		{"bad email", func(r *dto.RegisterRequest) { r.Email = "not-an-email" }, apperrors.ErrInvalidEmail},
		{"unknown role", func(r *dto.RegisterRequest) { r.Role = "superuser" }, apperrors.ErrInvalidRole},
		{"empty username", func(r *dto.RegisterRequest) { r.Username = "  " }, apperrors.ErrValidationFailed},
		{"empty full name", func(r *dto.RegisterRequest) { r.FullName = "" }, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			service := newTestAuthService(repo)

			req := registerRequest()
			tt.mutate(req)

			_, err := service.Register(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.users)
		})
	}
}

func TestAuthService_RegisterDuplicateIdentifier(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = service.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, apperrors.ErrIdentifierExists)
}

func TestAuthService_LoginByUsernameAndEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	for _, identifier := range []string{"mkaur", "m.kaur@example.edu"} {
		resp, err := service.Login(context.Background(), &dto.LoginRequest{
			Identifier: identifier,
			Password:   "secret123",
		})
		require.NoError(t, err, "identifier %q", identifier)
		assert.NotEmpty(t, resp.Token.AccessToken)
		assert.NotNil(t, resp.User.LastLoginAt)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	// Disable a second account to cover the inactive case.
	inactive := registerRequest()
	inactive.Username = "dormant"
	inactive.Email = "dormant@example.edu"
	resp, err := service.Register(context.Background(), inactive)
	require.NoError(t, err)
	repo.users[resp.User.ID].IsActive = false

	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{"unknown identifier", "nobody", "secret123"},
		{"wrong password", "mkaur", "wrong-password"},
		{"inactive account", "dormant", "secret123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), &dto.LoginRequest{
				Identifier: tt.identifier,
				Password:   tt.password,
			})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_LoginUpdatesLastLogin(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.Nil(t, repo.users[resp.User.ID].LastLoginAt)

	_, err = service.Login(context.Background(), &dto.LoginRequest{Identifier: "mkaur", Password: "secret123"})
	require.NoError(t, err)
	assert.NotNil(t, repo.users[resp.User.ID].LastLoginAt)
}

func TestAuthService_ChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	userID := resp.User.ID

	err = service.ChangePassword(context.Background(), userID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret456",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), &dto.LoginRequest{Identifier: "mkaur", Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Login(context.Background(), &dto.LoginRequest{Identifier: "mkaur", Password: "newsecret456"})
	assert.NoError(t, err)
}

func TestAuthService_ChangePasswordWrongCurrent(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	oldHash := repo.users[resp.User.ID].PasswordHash

	err = service.ChangePassword(context.Background(), resp.User.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newsecret456",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, oldHash, repo.users[resp.User.ID].PasswordHash)
}

func TestAuthService_ChangePasswordRejectsWeakNew(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	err = service.ChangePassword(context.Background(), resp.User.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "abc",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestAuthService_GetProfileExcludesHash(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	profile, err := service.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "mkaur", profile.Username)
	assert.Equal(t, "Manpreet Kaur", profile.FullName)
}

func TestAuthService_GetProfileUnknownUser(t *testing.T) {
	service := newTestAuthService(newFakeUserRepo())

	_, err := service.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newFakeUserRepo()
	service := newTestAuthService(repo)

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	updated, err := service.UpdateProfile(context.Background(), resp.User.ID, &dto.UpdateProfileRequest{
		FullName: "Manpreet K. Dhillon",
		Email:    "M.Dhillon@Example.EDU",
	})
	require.NoError(t, err)
	assert.Equal(t, "Manpreet K. Dhillon", updated.FullName)
	assert.Equal(t, "m.dhillon@example.edu", updated.Email)
}
