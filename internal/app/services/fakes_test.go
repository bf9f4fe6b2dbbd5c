package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/placementcell/portal/internal/app/models"
	"github.com/placementcell/portal/internal/app/repositories"
	"github.com/placementcell/portal/internal/db"
	"github.com/placementcell/portal/internal/pkg/apperrors"
)

// fakeStudentStore is an in-memory StudentStore.
type fakeStudentStore struct {
	students map[int64]*models.Student
	nextID   int64
	placed   []int64
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	f := &fakeStudentStore{students: map[int64]*models.Student{}, nextID: 1}
	for _, s := range students {
		if s.ID == 0 {
			s.ID = f.nextID
		}
		if s.ID >= f.nextID {
			f.nextID = s.ID + 1
		}
		f.students[s.ID] = s
	}
	return f
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) (int64, error) {
	for _, s := range f.students {
		if s.Email == student.Email || s.RollNo == student.RollNo {
			return 0, apperrors.ErrDuplicateIdentity
		}
	}
	student.ID = f.nextID
	student.Status = models.StatusActive
	f.nextID++
	f.students[student.ID] = student
	return student.ID, nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return s, nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentStore) UpdateProfile(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) UpdateStatus(_ context.Context, id int64, status models.AccountStatus) error {
	s, ok := f.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.Status = status
	return nil
}

func (f *fakeStudentStore) MarkPlaced(_ context.Context, _ pgx.Tx, studentID, companyID int64, pkg *float64) error {
	s, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.IsPlaced = true
	s.PlacedCompanyID = &companyID
	s.PlacementPackage = pkg
	f.placed = append(f.placed, studentID)
	return nil
}

func (f *fakeStudentStore) List(_ context.Context, _ repositories.StudentFilter, _, _ int) ([]models.Student, int64, error) {
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeStudentStore) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, s := range f.students {
		if s.Status == models.StatusActive {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentStore) CountPlaced(_ context.Context) (int64, error) {
	var n int64
	for _, s := range f.students {
		if s.IsPlaced {
			n++
		}
	}
	return n, nil
}

// fakeAdminStore is an in-memory AdminStore.
type fakeAdminStore struct {
	admins     map[int64]*models.AdminUser
	lastLogins []int64
}

func newFakeAdminStore(admins ...*models.AdminUser) *fakeAdminStore {
	f := &fakeAdminStore{admins: map[int64]*models.AdminUser{}}
	for i, a := range admins {
		if a.ID == 0 {
			a.ID = int64(i + 1)
		}
		f.admins[a.ID] = a
	}
	return f
}

func (f *fakeAdminStore) GetByID(_ context.Context, id int64) (*models.AdminUser, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminStore) UpdateLastLogin(_ context.Context, id int64) error {
	f.lastLogins = append(f.lastLogins, id)
	return nil
}

// fakeCompanyStore is an in-memory CompanyStore.
type fakeCompanyStore struct {
	companies map[int64]*models.Company
	nextID    int64
}

func newFakeCompanyStore(companies ...*models.Company) *fakeCompanyStore {
	f := &fakeCompanyStore{companies: map[int64]*models.Company{}, nextID: 1}
	for _, c := range companies {
		if c.ID == 0 {
			c.ID = f.nextID
		}
		if c.ID >= f.nextID {
			f.nextID = c.ID + 1
		}
		f.companies[c.ID] = c
	}
	return f
}

func (f *fakeCompanyStore) Create(_ context.Context, company *models.Company) (int64, error) {
	company.ID = f.nextID
	company.Status = models.StatusActive
	f.nextID++
	f.companies[company.ID] = company
	return company.ID, nil
}

func (f *fakeCompanyStore) GetByID(_ context.Context, id int64) (*models.Company, error) {
	c, ok := f.companies[id]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	return c, nil
}

func (f *fakeCompanyStore) List(_ context.Context, _ repositories.CompanyFilter, _, _ int) ([]models.Company, int64, error) {
	out := make([]models.Company, 0, len(f.companies))
	for _, c := range f.companies {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCompanyStore) Update(_ context.Context, company *models.Company) error {
	if _, ok := f.companies[company.ID]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	f.companies[company.ID] = company
	return nil
}

func (f *fakeCompanyStore) CountActive(_ context.Context) (int64, error) {
	var n int64
	for _, c := range f.companies {
		if c.Status == models.StatusActive {
			n++
		}
	}
	return n, nil
}

// fakeJobStore is an in-memory JobStore.
type fakeJobStore struct {
	jobs   map[int64]*models.JobPosting
	nextID int64
}

func newFakeJobStore(jobs ...*models.JobPosting) *fakeJobStore {
	f := &fakeJobStore{jobs: map[int64]*models.JobPosting{}, nextID: 1}
	for _, j := range jobs {
		if j.ID == 0 {
			j.ID = f.nextID
		}
		if j.ID >= f.nextID {
			f.nextID = j.ID + 1
		}
		f.jobs[j.ID] = j
	}
	return f
}

func (f *fakeJobStore) Create(_ context.Context, job *models.JobPosting) (int64, error) {
	job.ID = f.nextID
	f.nextID++
	f.jobs[job.ID] = job
	return job.ID, nil
}

func (f *fakeJobStore) GetByID(_ context.Context, id int64) (*models.JobPosting, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrJobNotFound
	}
	return j, nil
}

func (f *fakeJobStore) List(_ context.Context, filter repositories.JobFilter, _, _ int) ([]models.JobPosting, int64, error) {
	out := []models.JobPosting{}
	for _, j := range f.jobs {
		if filter.Status != "" && string(j.Status) != filter.Status {
			continue
		}
		if filter.JobType != "" && j.Type != filter.JobType {
			continue
		}
		if filter.CompanyID > 0 && j.CompanyID != filter.CompanyID {
			continue
		}
		if filter.Branch != "" && j.EligibleBranches != nil && !containsBranch(j.EligibleBranches, filter.Branch) {
			continue
		}
		if filter.MinPackage > 0 && j.PackageOffered < filter.MinPackage {
			continue
		}
		out = append(out, *j)
	}
	return out, int64(len(out)), nil
}

func containsBranch(branches []string, branch string) bool {
	for _, b := range branches {
		if b == branch {
			return true
		}
	}
	return false
}

func (f *fakeJobStore) UpdateStatus(_ context.Context, id int64, status models.JobStatus) error {
	j, ok := f.jobs[id]
	if !ok {
		return apperrors.ErrJobNotFound
	}
	j.Status = status
	return nil
}

func (f *fakeJobStore) CountOpen(_ context.Context) (int64, error) {
	var n int64
	for _, j := range f.jobs {
		if j.Status == models.JobOpen {
			n++
		}
	}
	return n, nil
}

// fakeApplicationStore is an in-memory ApplicationStore.
type fakeApplicationStore struct {
	apps   map[int64]*models.Application
	nextID int64
}

func newFakeApplicationStore(apps ...*models.Application) *fakeApplicationStore {
	f := &fakeApplicationStore{apps: map[int64]*models.Application{}, nextID: 1}
	for _, a := range apps {
		if a.ID == 0 {
			a.ID = f.nextID
		}
		if a.ID >= f.nextID {
			f.nextID = a.ID + 1
		}
		f.apps[a.ID] = a
	}
	return f
}

func (f *fakeApplicationStore) Create(_ context.Context, studentID, jobID int64) (int64, error) {
	for _, a := range f.apps {
		if a.StudentID == studentID && a.JobID == jobID {
			return 0, apperrors.ErrDuplicateApplication
		}
	}
	app := &models.Application{
		ID:        f.nextID,
		StudentID: studentID,
		JobID:     jobID,
		Status:    models.ApplicationApplied,
	}
	f.nextID++
	f.apps[app.ID] = app
	return app.ID, nil
}

func (f *fakeApplicationStore) GetByID(_ context.Context, id int64) (*models.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	// Callers get a snapshot; later UpdateStatus calls must not mutate it.
	copied := *a
	return &copied, nil
}

func (f *fakeApplicationStore) ExistsByStudentAndJob(_ context.Context, studentID, jobID int64) (bool, error) {
	for _, a := range f.apps {
		if a.StudentID == studentID && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationStore) ListByStudent(_ context.Context, studentID int64) ([]models.Application, error) {
	out := []models.Application{}
	for _, a := range f.apps {
		if a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeApplicationStore) List(_ context.Context, _ repositories.ApplicationFilter, _, _ int) ([]models.Application, int64, error) {
	out := make([]models.Application, 0, len(f.apps))
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeApplicationStore) UpdateStatus(_ context.Context, _ pgx.Tx, id int64, status models.ApplicationStatus, feedback *string, score *float64) error {
	a, ok := f.apps[id]
	if !ok {
		return apperrors.ErrApplicationNotFound
	}
	a.Status = status
	if feedback != nil {
		a.Feedback = feedback
	}
	if score != nil {
		a.InterviewScore = score
	}
	return nil
}

func (f *fakeApplicationStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.apps)), nil
}

func (f *fakeApplicationStore) CountByStatus(_ context.Context, status models.ApplicationStatus) (int64, error) {
	var n int64
	for _, a := range f.apps {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

// fakeNotificationStore is an in-memory NotificationStore.
type fakeNotificationStore struct {
	notifications []*models.Notification
	nextID        int64
}

func newFakeNotificationStore() *fakeNotificationStore {
	return &fakeNotificationStore{nextID: 1}
}

func (f *fakeNotificationStore) Create(_ context.Context, n *models.Notification) (int64, error) {
	n.ID = f.nextID
	f.nextID++
	f.notifications = append(f.notifications, n)
	return n.ID, nil
}

func (f *fakeNotificationStore) ListByStudent(_ context.Context, studentID int64, _ int) ([]models.Notification, error) {
	out := []models.Notification{}
	for _, n := range f.notifications {
		if n.StudentID == studentID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, studentID, notificationID int64) error {
	for _, n := range f.notifications {
		if n.ID == notificationID && n.StudentID == studentID {
			n.IsRead = true
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func (f *fakeNotificationStore) CountUnread(_ context.Context, studentID int64) (int64, error) {
	var n int64
	for _, note := range f.notifications {
		if note.StudentID == studentID && !note.IsRead {
			n++
		}
	}
	return n, nil
}

// fakeTxRunner runs the function with a nil transaction handle.
type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn db.TransactionFn) error {
	return fn(ctx, nil)
}
