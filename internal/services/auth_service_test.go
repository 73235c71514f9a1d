package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/student-service/internal/auth"
	"github.com/SAP-F-2025/student-service/internal/config"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type mockUserRepo struct {
	byEmail map[string]*models.User
	nextID  uint
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*models.User), nextID: 1}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if _, ok := m.byEmail[user.Email]; ok {
		return gorm.ErrDuplicatedKey
	}
	user.ID = m.nextID
	m.nextID++
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	for _, u := range m.byEmail {
		if u.ID == id {
			u.Password = passwordHash
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type authMockRepo struct {
	baseMockRepository
	users *mockUserRepo
}

func (m *authMockRepo) User() repositories.UserRepository { return m.users }

func newAuthServiceForTest() (AuthService, *auth.Manager, *mockUserRepo) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	users := newMockUserRepo()
	jwtManager := auth.NewManager(config.JWTConfig{
		Secret: "test-secret",
		TTL:    time.Minute,
		Issuer: "student-service-test",
	})
	service := NewAuthService(&authMockRepo{users: users}, jwtManager, logger, validator.New())
	return service, jwtManager, users
}

func TestAuthService_Signup(t *testing.T) {
	service, _, users := newAuthServiceForTest()
	ctx := context.Background()

	t.Run("new user defaults to student role", func(t *testing.T) {
		user, err := service.Signup(ctx, &models.SignupRequest{
			Email:    "alice@school.test",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if user.Role != models.RoleStudent {
			t.Errorf("Role = %q, want student", user.Role)
		}
		if user.Password == "secret123" {
			t.Error("password stored in plain text")
		}
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := service.Signup(ctx, &models.SignupRequest{
			Email:    "alice@school.test",
			Password: "other-password",
		})
		if !IsConflict(err) {
			t.Errorf("expected ConflictError, got %v", err)
		}
		if len(users.byEmail) != 1 {
			t.Errorf("expected 1 stored user, got %d", len(users.byEmail))
		}
	})

	t.Run("explicit role kept", func(t *testing.T) {
		user, err := service.Signup(ctx, &models.SignupRequest{
			Email:    "bob@school.test",
			Password: "secret123",
			Role:     models.RoleTeacher,
		})
		if err != nil {
			t.Fatalf("Signup failed: %v", err)
		}
		if user.Role != models.RoleTeacher {
			t.Errorf("Role = %q, want teacher", user.Role)
		}
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := service.Signup(ctx, &models.SignupRequest{
			Email:    "carol@school.test",
			Password: "short",
		})
		if err == nil {
			t.Fatal("expected validation error")
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	service, jwtManager, _ := newAuthServiceForTest()
	ctx := context.Background()

	if _, err := service.Signup(ctx, &models.SignupRequest{
		Email:    "alice@school.test",
		Password: "secret123",
		Role:     models.RoleAdmin,
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	t.Run("valid credentials return a parseable token", func(t *testing.T) {
		resp, err := service.Login(ctx, &models.LoginRequest{
			Email:    "alice@school.test",
			Password: "secret123",
		})
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if resp.TokenType != "bearer" {
			t.Errorf("TokenType = %q, want bearer", resp.TokenType)
		}
		if resp.Role != models.RoleAdmin {
			t.Errorf("Role = %q, want admin", resp.Role)
		}

		claims, err := jwtManager.ParseToken(resp.AccessToken)
		if err != nil {
			t.Fatalf("ParseToken failed: %v", err)
		}
		if claims.Subject != "alice@school.test" {
			t.Errorf("token subject = %q", claims.Subject)
		}
		if claims.Role != "admin" {
			t.Errorf("token role = %q, want admin", claims.Role)
		}
	})

	t.Run("wrong password and unknown email look identical", func(t *testing.T) {
		_, errWrongPassword := service.Login(ctx, &models.LoginRequest{
			Email:    "alice@school.test",
			Password: "wrong-password",
		})
		_, errUnknownEmail := service.Login(ctx, &models.LoginRequest{
			Email:    "nobody@school.test",
			Password: "secret123",
		})

		if !IsInvalidCredentials(errWrongPassword) {
			t.Errorf("wrong password: expected InvalidCredentialsError, got %v", errWrongPassword)
		}
		if !IsInvalidCredentials(errUnknownEmail) {
			t.Errorf("unknown email: expected InvalidCredentialsError, got %v", errUnknownEmail)
		}
		if errWrongPassword.Error() != errUnknownEmail.Error() {
			t.Error("error messages differ; accounts can be enumerated")
		}
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	service, _, _ := newAuthServiceForTest()
	ctx := context.Background()

	user, err := service.Signup(ctx, &models.SignupRequest{
		Email:    "alice@school.test",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	t.Run("wrong current password rejected", func(t *testing.T) {
		err := service.ChangePassword(ctx, user.ID, &models.PasswordChangeRequest{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-secret",
		})
		if !IsInvalidCredentials(err) {
			t.Errorf("expected InvalidCredentialsError, got %v", err)
		}
	})

	t.Run("change takes effect on next login", func(t *testing.T) {
		if err := service.ChangePassword(ctx, user.ID, &models.PasswordChangeRequest{
			CurrentPassword: "secret123",
			NewPassword:     "new-secret",
		}); err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}

		if _, err := service.Login(ctx, &models.LoginRequest{
			Email:    "alice@school.test",
			Password: "secret123",
		}); !IsInvalidCredentials(err) {
			t.Errorf("old password still accepted: %v", err)
		}

		if _, err := service.Login(ctx, &models.LoginRequest{
			Email:    "alice@school.test",
			Password: "new-secret",
		}); err != nil {
			t.Errorf("new password rejected: %v", err)
		}
	})
}
