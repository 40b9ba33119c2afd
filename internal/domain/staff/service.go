package staff

import "context"

type StaffService interface {
	ListTeachers(ctx context.Context) ([]StaffResponse, error)
	ListStudents(ctx context.Context) ([]StudentResponse, error)
}
