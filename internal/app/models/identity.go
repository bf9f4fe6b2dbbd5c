package models

// Identity is the resolved caller attached to a request by the auth
// middleware. It is a tagged union: exactly one of Student/Admin is non-nil,
// selected by Kind. Handlers must not reach into the other arm.
type Identity struct {
	Kind    SubjectKind
	Student *Student
	Admin   *AdminUser
}

// StudentIdentity wraps a student row as a caller identity.
func StudentIdentity(s *Student) *Identity {
	return &Identity{Kind: SubjectStudent, Student: s}
}

// AdminIdentity wraps an admin row as a caller identity.
func AdminIdentity(a *AdminUser) *Identity {
	return &Identity{Kind: SubjectAdmin, Admin: a}
}

// SubjectID returns the primary key of whichever arm is set.
func (i *Identity) SubjectID() int64 {
	if i.Kind == SubjectAdmin && i.Admin != nil {
		return i.Admin.ID
	}
	if i.Student != nil {
		return i.Student.ID
	}
	return 0
}

// RoleTag returns the tag compared against route allow-lists: the literal
// "student" for students, the admin's specific role otherwise.
func (i *Identity) RoleTag() string {
	if i.Kind == SubjectAdmin && i.Admin != nil {
		return string(i.Admin.Role)
	}
	return string(SubjectStudent)
}
