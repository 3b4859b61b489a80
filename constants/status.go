package constants

// User roles
const (
	RoleSuperAdmin = "superadmin"
	RoleHR         = "hr"
	RoleDeveloper  = "developer"
	RoleUser       = "user"
)

// User status
const (
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusRejected  = "rejected"
)

// Job type
const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeInternship = "internship"
	JobTypeContract   = "contract"
	JobTypeRemote     = "remote"
)

// Job status
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// Salary slip status
const (
	SlipStatusPending  = "pending"
	SlipStatusApproved = "approved"
	SlipStatusRejected = "rejected"
)

const (
	DateLayout  = "2006-01-02"
	TimeLayout  = "15:04:05"
	MonthLayout = "2006-01"

	DefaultEducation = "Not specified"
	ResumeFolder     = "resumes"
)

var StaffRoles = []string{RoleHR, RoleDeveloper}

var UserStatuses = []string{UserStatusActive, UserStatusSuspended, UserStatusRejected}

var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract, JobTypeRemote}

var JobStatuses = []string{JobStatusActive, JobStatusClosed}

// Contains reports whether v is one of values.
func Contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
