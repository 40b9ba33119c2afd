package staff

import (
	"context"
	"fmt"

	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) *StaffServiceImpl {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

func (s *StaffServiceImpl) ListTeachers(ctx context.Context) ([]staff.StaffResponse, error) {
	teachers, err := s.staffRepo.ListTeachers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(teachers))
	for _, member := range teachers {
		responses = append(responses, staff.NewStaffResponse(member))
	}
	return responses, nil
}

func (s *StaffServiceImpl) ListStudents(ctx context.Context) ([]staff.StudentResponse, error) {
	students, err := s.staffRepo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	responses := make([]staff.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, staff.NewStudentResponse(student))
	}
	return responses, nil
}
