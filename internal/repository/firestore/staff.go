package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/alnoor-academy/attendance-backend-go/internal/domain/staff"
	"github.com/alnoor-academy/attendance-backend-go/internal/pkg/payroll"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	staffCollection   = "staff"
	studentCollection = "students"
)

type staffDoc struct {
	Name          string  `firestore:"name"`
	NameUr        string  `firestore:"name_ur"`
	Email         string  `firestore:"email"`
	Role          string  `firestore:"role"`
	Subject       string  `firestore:"subject"`
	EntryHour     int     `firestore:"entry_hour"`
	GraceMinutes  int     `firestore:"grace_minutes"`
	MonthlySalary float64 `firestore:"monthly_salary"`
}

type studentDoc struct {
	Name       string `firestore:"name"`
	NameUr     string `firestore:"name_ur"`
	ClassName  string `firestore:"class_name"`
	RollNumber string `firestore:"roll_number"`
}

func toStaff(id string, d staffDoc) staff.Staff {
	// Older staff documents predate the grace_minutes field; a zero value
	// would flag every arrival after the entry hour as late, so the fixed
	// institutional grace window applies whenever the field is absent.
	if d.GraceMinutes <= 0 {
		d.GraceMinutes = payroll.GraceMinutes
	}
	return staff.Staff{
		ID:      id,
		Name:    d.Name,
		NameUr:  d.NameUr,
		Email:   d.Email,
		Role:    d.Role,
		Subject: d.Subject,
		Timing: staff.TimingProfile{
			StaffID:       id,
			EntryHour:     d.EntryHour,
			GraceMinutes:  d.GraceMinutes,
			MonthlySalary: decimal.NewFromFloat(d.MonthlySalary),
		},
	}
}

type StaffRepository struct {
	client *firestore.Client
}

func NewStaffRepository(client *firestore.Client) *StaffRepository {
	return &StaffRepository{client: client}
}

// GetByID implements staff.StaffRepository. Staff documents are keyed by the
// short institutional ID, the same value stamped on attendance records.
func (r *StaffRepository) GetByID(ctx context.Context, staffID string) (staff.Staff, error) {
	snap, err := r.client.Collection(staffCollection).Doc(staffID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff document: %w", err)
	}

	var d staffDoc
	if err := snap.DataTo(&d); err != nil {
		return staff.Staff{}, fmt.Errorf("failed to decode staff document: %w", err)
	}
	return toStaff(snap.Ref.ID, d), nil
}

// ListTeachers implements staff.StaffRepository.
func (r *StaffRepository) ListTeachers(ctx context.Context) ([]staff.Staff, error) {
	iter := r.client.Collection(staffCollection).
		Where("role", "==", "teacher").
		OrderBy("name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var result []staff.Staff
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list teachers: %w", err)
		}

		var d staffDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode staff document: %w", err)
		}
		result = append(result, toStaff(snap.Ref.ID, d))
	}
	return result, nil
}

// ListStudents implements staff.StaffRepository.
func (r *StaffRepository) ListStudents(ctx context.Context) ([]staff.Student, error) {
	iter := r.client.Collection(studentCollection).
		OrderBy("class_name", firestore.Asc).
		OrderBy("roll_number", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var result []staff.Student
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list students: %w", err)
		}

		var d studentDoc
		if err := snap.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode student document: %w", err)
		}
		result = append(result, staff.Student{
			ID:         snap.Ref.ID,
			Name:       d.Name,
			NameUr:     d.NameUr,
			ClassName:  d.ClassName,
			RollNumber: d.RollNumber,
		})
	}
	return result, nil
}
