package models

// SubjectKind is the closed tag identifying which credential table a subject
// belongs to. A token always carries exactly one of these.
type SubjectKind string

const (
	SubjectStudent SubjectKind = "student"
	SubjectAdmin   SubjectKind = "admin"
)

// AdminRole is the sub-classification of an admin subject used for finer
// authorization decisions.
type AdminRole string

const (
	RoleSuperAdmin  AdminRole = "super_admin"
	RoleTPO         AdminRole = "tpo"
	RoleCoordinator AdminRole = "coordinator"
)

// AdminRoles lists every valid admin role.
var AdminRoles = []AdminRole{RoleSuperAdmin, RoleTPO, RoleCoordinator}

// StudentClass is the year-of-study enum.
type StudentClass string

const (
	ClassFE StudentClass = "FE"
	ClassSE StudentClass = "SE"
	ClassTE StudentClass = "TE"
	ClassBE StudentClass = "BE"
)

// IsValidStudentClass reports whether s is a member of the class enum.
func IsValidStudentClass(s string) bool {
	switch StudentClass(s) {
	case ClassFE, ClassSE, ClassTE, ClassBE:
		return true
	}
	return false
}

// AccountStatus is the soft-deactivation flag for students and companies.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
	JobDraft  JobStatus = "draft"
)

// ApplicationStatus is the closed set of states an application moves through.
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "applied"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationSelected    ApplicationStatus = "selected"
	ApplicationWaitlisted  ApplicationStatus = "waitlisted"
)

// IsValidApplicationStatus reports whether s is a member of the closed status set.
func IsValidApplicationStatus(s string) bool {
	switch ApplicationStatus(s) {
	case ApplicationApplied, ApplicationShortlisted, ApplicationRejected,
		ApplicationSelected, ApplicationWaitlisted:
		return true
	}
	return false
}

// applicationTransitions encodes the allowed status transition graph:
// applied -> {shortlisted, rejected}; shortlisted -> {selected, rejected, waitlisted}.
// Terminal states have no outgoing edges.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:     {ApplicationShortlisted, ApplicationRejected},
	ApplicationShortlisted: {ApplicationSelected, ApplicationRejected, ApplicationWaitlisted},
}

// CanTransition reports whether an application may move from one status to
// another. Re-asserting the current status is allowed (idempotent updates of
// feedback or interview score).
func CanTransition(from, to ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range applicationTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
