package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/student-service/internal/cache"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

type userRepository struct {
	db        *gorm.DB
	userCache *cache.CacheHelper
}

func NewUserPostgreSQL(db *gorm.DB, userCache *cache.CacheHelper) repositories.UserRepository {
	return &userRepository{db: db, userCache: userCache}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail is on the hot path: the auth gate resolves the token subject on
// every request, so hits are served from Redis when a cache is configured.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var cached models.User
	if err := r.userCache.Get(ctx, email, &cached); err == nil {
		return &cached, nil
	}

	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	_ = r.userCache.Set(ctx, email, &user, cache.UserCacheConfig.TTL)

	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user for password update: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Model(&user).
		Update("password", passwordHash).Error; err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Stale hashes must not survive in the auth-gate cache
	_ = r.userCache.Delete(ctx, user.Email)

	return nil
}
