package dto

import (
	"strings"
	"time"

	"crm/constants"

	json "github.com/goccy/go-json"
)

// Date accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Type        string   `json:"type" binding:"omitempty,jobtype"`
	Status      string   `json:"status" binding:"omitempty,jobstatus"`
	Salary      *float64 `json:"salary" binding:"required,gte=0"`
	Experience  string   `json:"experience" binding:"required"`
	CompanyName string   `json:"companyName" binding:"required"`
	Skills      []string `json:"skills"`
	Education   string   `json:"education"`
	Benefits    []string `json:"benefits"`
	Deadline    *Date    `json:"deadline"`
}

// UpdateJobRequest only changes the fields that are present
type UpdateJobRequest struct {
	Title       *string   `json:"title" binding:"omitempty,min=1"`
	Description *string   `json:"description" binding:"omitempty,min=1"`
	Location    *string   `json:"location" binding:"omitempty,min=1"`
	Type        *string   `json:"type" binding:"omitempty,jobtype"`
	Status      *string   `json:"status" binding:"omitempty,jobstatus"`
	Salary      *float64  `json:"salary" binding:"omitempty,gte=0"`
	Experience  *string   `json:"experience" binding:"omitempty,min=1"`
	CompanyName *string   `json:"companyName" binding:"omitempty,min=1"`
	Skills      *[]string `json:"skills"`
	Education   *string   `json:"education"`
	Benefits    *[]string `json:"benefits"`
	Deadline    *Date     `json:"deadline"`
}

// JobFilter is shared by the hr and user listings
type JobFilter struct {
	Keyword     string   `form:"keyword"`
	Location    string   `form:"location"`
	Type        string   `form:"type" binding:"omitempty,jobtype"`
	Status      string   `form:"status" binding:"omitempty,jobstatus"`
	CompanyName string   `form:"companyName"`
	MinSalary   *float64 `form:"minSalary" binding:"omitempty,gte=0"`
}

type ApplicantResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Position  string    `json:"position"`
	Resume    string    `json:"resume"`
	ResumeURL string    `json:"resumeUrl"`
	AppliedAt time.Time `json:"appliedAt"`
}

type AppliedJobResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	CompanyName string     `json:"companyName"`
	Location    string     `json:"location"`
	Type        string     `json:"type"`
	Deadline    *time.Time `json:"deadline"`
	Status      string     `json:"status"`
	AppliedAt   time.Time  `json:"appliedAt"`
}

type JobSuggestion struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}
