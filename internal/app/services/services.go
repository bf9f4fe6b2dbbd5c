package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/db"
	"github.com/placementcell/portal/internal/pkg/auth"
)

// Store interfaces are defined on the consumer side so services can be
// exercised against fakes without a database.

// StudentStore is the persistence surface the services need for students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	UpdateProfile(ctx context.Context, student *models.Student) error
	UpdateStatus(ctx context.Context, id int64, status models.AccountStatus) error
	MarkPlaced(ctx context.Context, tx pgx.Tx, studentID, companyID int64, pkg *float64) error
	List(ctx context.Context, filter repositories.StudentFilter, page, pageSize int) ([]models.Student, int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountPlaced(ctx context.Context) (int64, error)
}

// AdminStore is the persistence surface for admin accounts.
type AdminStore interface {
	GetByID(ctx context.Context, id int64) (*models.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	UpdateLastLogin(ctx context.Context, id int64) error
}

// CompanyStore is the persistence surface for companies.
type CompanyStore interface {
	Create(ctx context.Context, company *models.Company) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	List(ctx context.Context, filter repositories.CompanyFilter, page, pageSize int) ([]models.Company, int64, error)
	CountActive(ctx context.Context) (int64, error)
}

// JobStore is the persistence surface for job postings.
type JobStore interface {
	Create(ctx context.Context, job *models.JobPosting) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.JobPosting, error)
	List(ctx context.Context, filter repositories.JobFilter, page, pageSize int) ([]models.JobPosting, int64, error)
	UpdateStatus(ctx context.Context, id int64, status models.JobStatus) error
	CountOpen(ctx context.Context) (int64, error)
}

// ApplicationStore is the persistence surface for applications.
type ApplicationStore interface {
	Create(ctx context.Context, studentID, jobID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	ExistsByStudentAndJob(ctx context.Context, studentID, jobID int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Application, error)
	List(ctx context.Context, filter repositories.ApplicationFilter, page, pageSize int) ([]models.Application, int64, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id int64, status models.ApplicationStatus, feedback *string, score *float64) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)
}

// NotificationStore is the persistence surface for notifications.
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) (int64, error)
	ListByStudent(ctx context.Context, studentID int64, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, studentID, notificationID int64) error
	CountUnread(ctx context.Context, studentID int64) (int64, error)
}

// TxRunner runs a function inside a database transaction.
type TxRunner interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// Services holds all the service instances
type Services struct {
	AuthService         *AuthService
	StudentService      *StudentService
	JobService          *JobService
	CompanyService      *CompanyService
	AdminService        *AdminService
	NotificationService *NotificationService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, database *db.PostgresDB, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.StudentRepository, repos.AdminRepository, jwtService),
		StudentService: NewStudentService(repos.StudentRepository, repos.ApplicationRepository),
		JobService:     NewJobService(repos.JobRepository, repos.ApplicationRepository, repos.CompanyRepository),
		CompanyService: NewCompanyService(repos.CompanyRepository, repos.JobRepository),
		AdminService: NewAdminService(
			database,
			repos.StudentRepository,
			repos.CompanyRepository,
			repos.JobRepository,
			repos.ApplicationRepository,
			repos.NotificationRepository,
		),
		NotificationService: NewNotificationService(repos.NotificationRepository),
	}
}
