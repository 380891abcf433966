package model

import (
	"time"

	"gorm.io/gorm"
)

type Role struct {
	gorm.Model
	RoleName string `json:"role_name"`
	Users    []User `gorm:"foreignKey:RoleID"`
}

type User struct {
	gorm.Model
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `gorm:"unique" json:"email"`
	Password        string `json:"password"`
	RoleID          uint   `json:"role_id"`
	Role            Role   `gorm:"foreignKey:RoleID"`
	ConfirmPassword string `json:"confirm_password" gorm:"-"`
	ProfilePicture  string `json:"profile_picture"`

	Company     *Company     `gorm:"foreignKey:UserID"`
	Coordinator *Coordinator `gorm:"foreignKey:UserID"`
	Student     *Student     `gorm:"foreignKey:UserID"`
}

type Company struct {
	gorm.Model
	UserID            uint   `json:"user_id"`
	Name              string `json:"name"`
	Industry          string `json:"industry"`
	Address           string `json:"address"`
	Description       string `json:"description"`
	Website           string `json:"website"`
	BackgroundPicture string `json:"background_picture"`

	WorkingHours     *WorkingHours     `gorm:"foreignKey:CompanyID"`
	LocationPictures []LocationPicture `gorm:"foreignKey:CompanyID"`
	Applications     []Application     `gorm:"foreignKey:CompanyID"`
	Partnerships     []Partnership     `gorm:"foreignKey:CompanyID"`
}

type LocationPicture struct {
	gorm.Model
	CompanyID uint   `json:"company_id"`
	URL       string `json:"url"`
	Caption   string `json:"caption"`
}

type Coordinator struct {
	gorm.Model
	UserID     uint   `json:"user_id"`
	SchoolName string `json:"school_name"`
	Program    string `json:"program"`

	Partnerships []Partnership `gorm:"foreignKey:CoordinatorID"`
}

type Student struct {
	gorm.Model
	UserID        uint   `json:"user_id"`
	StudentNumber string `json:"student_number"`
	SchoolName    string `json:"school_name"`
	Course        string `json:"course"`
	CoordinatorID uint   `json:"coordinator_id"`
	ResumeURL     string `json:"resume_url"`
	TranscriptURL string `json:"transcript_url"`
	FCMToken      string `json:"fcm_token"`

	User        User        `gorm:"foreignKey:UserID"`
	Coordinator Coordinator `gorm:"foreignKey:CoordinatorID"`
}

type Application struct {
	gorm.Model
	StudentID uint   `json:"student_id"`
	CompanyID uint   `json:"company_id"`
	Position  string `json:"position"`
	Status    string `json:"status"` // pending, approved, rejected

	Student Student `gorm:"foreignKey:StudentID"`
	Company Company `gorm:"foreignKey:CompanyID"`
}

// InternshipAssignment links an approved student to a company. Once
// FinishedAt is set the assignment is closed: no attendance entry and no
// further finish actions.
type InternshipAssignment struct {
	gorm.Model
	StudentID          uint       `json:"student_id"`
	CompanyID          uint       `json:"company_id"`
	ApplicationID      uint       `json:"application_id"`
	TotalRequiredHours float64    `json:"total_required_hours"`
	StartedAt          time.Time  `json:"started_at"`
	FinishedAt         *time.Time `json:"finished_at"`

	Student     Student            `gorm:"foreignKey:StudentID"`
	Company     Company            `gorm:"foreignKey:CompanyID"`
	Application Application        `gorm:"foreignKey:ApplicationID"`
	Attendance  []AttendanceRecord `gorm:"foreignKey:AssignmentID"`
}

// AttendanceRecord is one intern's attendance for one calendar day. Stamp
// columns hold "H:MM AM" strings; empty means not set. A same-day
// resubmission upserts on (assignment_id, date).
type AttendanceRecord struct {
	gorm.Model
	AssignmentID       uint    `gorm:"uniqueIndex:idx_assignment_date" json:"assignment_id"`
	Date               string  `gorm:"uniqueIndex:idx_assignment_date" json:"date"` // YYYY-MM-DD
	AMTimeIn           string  `json:"am_time_in"`
	AMTimeOut          string  `json:"am_time_out"`
	PMTimeIn           string  `json:"pm_time_in"`
	PMTimeOut          string  `json:"pm_time_out"`
	AMStatus           string  `json:"am_status"` // present, absent, late, leave, sick, not_marked
	PMStatus           string  `json:"pm_status"`
	TotalHours         float64 `json:"total_hours"`
	VerificationStatus string  `json:"verification_status"` // pending, accepted, denied

	Assignment InternshipAssignment `gorm:"foreignKey:AssignmentID"`
}

// WorkingHours is a company's daily schedule: four clock values, each split
// into a 12-hour time string and its AM/PM period.
type WorkingHours struct {
	gorm.Model
	CompanyID        uint   `gorm:"uniqueIndex" json:"company_id"`
	StartTime        string `json:"start_time"`
	StartPeriod      string `json:"start_period"`
	EndTime          string `json:"end_time"`
	EndPeriod        string `json:"end_period"`
	BreakStartTime   string `json:"break_start_time"`
	BreakStartPeriod string `json:"break_start_period"`
	BreakEndTime     string `json:"break_end_time"`
	BreakEndPeriod   string `json:"break_end_period"`
}

// Partnership carries the MOA workflow state between a company and a
// coordinator. Removing a partnership resets the flags and clears the MOA
// link without deleting the coordinator.
type Partnership struct {
	gorm.Model
	CompanyID           uint   `gorm:"uniqueIndex:idx_company_coordinator" json:"company_id"`
	CoordinatorID       uint   `gorm:"uniqueIndex:idx_company_coordinator" json:"coordinator_id"`
	CompanyApproved     bool   `json:"company_approved"`
	CoordinatorApproved bool   `json:"coordinator_approved"`
	MOAStatus           string `json:"moa_status"` // draft, sent, received, active, approved
	MOAURL              string `json:"moa_url"`

	Company     Company     `gorm:"foreignKey:CompanyID"`
	Coordinator Coordinator `gorm:"foreignKey:CoordinatorID"`
}

type PasswordReset struct {
	gorm.Model
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
}

type QRCode struct {
	gorm.Model
	AssignmentID uint   `json:"assignment_id"`
	Payload      string `json:"payload"`

	Assignment InternshipAssignment `gorm:"foreignKey:AssignmentID"`
}

type TokenRequest struct {
	StudentID string `json:"student_id"`
	Token     string `json:"token"`
}
