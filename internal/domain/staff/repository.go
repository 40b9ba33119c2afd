package staff

import "context"

// StaffRepository reads the staff and student directories from the hosted
// document store.
type StaffRepository interface {
	// GetByID retrieves one staff member with their timing profile.
	// Returns ErrStaffNotFound when no document matches.
	GetByID(ctx context.Context, staffID string) (Staff, error)

	// ListTeachers retrieves all teaching staff ordered by name.
	ListTeachers(ctx context.Context) ([]Staff, error)

	// ListStudents retrieves all students ordered by class then roll number.
	ListStudents(ctx context.Context) ([]Student, error)
}
