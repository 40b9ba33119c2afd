package staff

import (
	"github.com/shopspring/decimal"
)

// TimingProfile is the immutable salary and entry-time basis used to compute
// lateness and deductions for one staff member.
type TimingProfile struct {
	StaffID       string
	EntryHour     int
	GraceMinutes  int
	MonthlySalary decimal.Decimal
}

// Staff is one teacher or administrative staff member.
type Staff struct {
	ID      string
	Name    string
	NameUr  string
	Email   string
	Role    string
	Subject string
	Timing  TimingProfile
}

// Student is a directory entry on the students listing. Students have no
// timing profile; their attendance is out of this system's scope.
type Student struct {
	ID         string
	Name       string
	NameUr     string
	ClassName  string
	RollNumber string
}
