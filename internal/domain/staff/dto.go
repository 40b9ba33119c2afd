package staff

type StaffResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	NameUr  string `json:"name_ur,omitempty"`
	Email   string `json:"email,omitempty"`
	Role    string `json:"role"`
	Subject string `json:"subject,omitempty"`
}

type StudentResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	NameUr     string `json:"name_ur,omitempty"`
	ClassName  string `json:"class_name"`
	RollNumber string `json:"roll_number"`
}

func NewStaffResponse(s Staff) StaffResponse {
	return StaffResponse{
		ID:      s.ID,
		Name:    s.Name,
		NameUr:  s.NameUr,
		Email:   s.Email,
		Role:    s.Role,
		Subject: s.Subject,
	}
}

func NewStudentResponse(s Student) StudentResponse {
	return StudentResponse{
		ID:         s.ID,
		Name:       s.Name,
		NameUr:     s.NameUr,
		ClassName:  s.ClassName,
		RollNumber: s.RollNumber,
	}
}
