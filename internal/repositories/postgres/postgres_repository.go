package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/student-service/internal/cache"
	"github.com/SAP-F-2025/student-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db          *gorm.DB
	redisClient *redis.Client

	// Repository instances
	user         repositories.UserRepository
	student      repositories.StudentRepository
	department   repositories.DepartmentRepository
	subject      repositories.SubjectRepository
	result       repositories.ResultRepository
	fee          repositories.FeeRepository
	clearance    repositories.ClearanceRepository
	announcement repositories.AnnouncementRepository
	dashboard    repositories.DashboardRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a new repository manager with all sub-repositories
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	repo := &PostgreSQLRepository{
		db:          config.DB,
		redisClient: config.RedisClient,
	}

	userCache := cache.NewCacheHelper(config.RedisClient, cache.UserCacheConfig.Prefix)

	repo.user = NewUserPostgreSQL(config.DB, userCache)
	repo.student = NewStudentPostgreSQL(config.DB)
	repo.department = NewDepartmentPostgreSQL(config.DB)
	repo.subject = NewSubjectPostgreSQL(config.DB)
	repo.result = NewResultPostgreSQL(config.DB)
	repo.fee = NewFeePostgreSQL(config.DB)
	repo.clearance = NewClearancePostgreSQL(config.DB)
	repo.announcement = NewAnnouncementPostgreSQL(config.DB)
	repo.dashboard = NewDashboardPostgreSQL(config.DB)

	return repo
}

func (r *PostgreSQLRepository) User() repositories.UserRepository { return r.user }

func (r *PostgreSQLRepository) Student() repositories.StudentRepository { return r.student }

func (r *PostgreSQLRepository) Department() repositories.DepartmentRepository { return r.department }

func (r *PostgreSQLRepository) Subject() repositories.SubjectRepository { return r.subject }

func (r *PostgreSQLRepository) Result() repositories.ResultRepository { return r.result }

func (r *PostgreSQLRepository) Fee() repositories.FeeRepository { return r.fee }

func (r *PostgreSQLRepository) Clearance() repositories.ClearanceRepository { return r.clearance }

func (r *PostgreSQLRepository) Announcement() repositories.AnnouncementRepository {
	return r.announcement
}

func (r *PostgreSQLRepository) Dashboard() repositories.DashboardRepository { return r.dashboard }

// WithTransaction executes fn within a database transaction; the Repository
// handed to fn is bound to that transaction. Every read and write inside fn
// must go through that repository; the outer one would run its statements
// outside the transaction.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewPostgreSQLRepository(RepositoryConfig{
			DB:          tx,
			RedisClient: r.redisClient,
		})
		return fn(txRepo)
	})
}

// Ping checks database connectivity
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database connection
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// ===== MANAGER =====

type repositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

// NewRepositoryManager creates a repository manager for lifecycle handling
func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{config: config}
}

func (m *repositoryManager) Initialize() error {
	if m.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}
	m.repo = NewPostgreSQLRepository(m.config)
	return nil
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
