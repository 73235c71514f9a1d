package repositories

import "context"

// Repository aggregates all entity repositories behind one interface so
// services can depend on a single collaborator.
type Repository interface {
	User() UserRepository
	Student() StudentRepository
	Department() DepartmentRepository
	Subject() SubjectRepository
	Result() ResultRepository
	Fee() FeeRepository
	Clearance() ClearanceRepository
	Announcement() AnnouncementRepository
	Dashboard() DashboardRepository

	// WithTransaction runs fn against a repository bound to a single
	// database transaction; fn returning an error rolls everything back.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}

// RepositoryManager manages repository lifecycle.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
