package services

import "github.com/prometheus/client_golang/prometheus"

var (
	loginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_login_attempts_total",
			Help: "Login attempts by method and result",
		},
		[]string{"method", "result"},
	)
	jobApplications = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_job_applications_total",
			Help: "Applications submitted to job postings",
		},
	)
	attendanceEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crm_attendance_events_total",
			Help: "Successful check-ins and check-outs",
		},
		[]string{"event"},
	)
	salarySlipsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "crm_salary_slips_generated_total",
			Help: "Salary slips generated",
		},
	)
)

func init() {
	prometheus.MustRegister(loginAttempts, jobApplications, attendanceEvents, salarySlipsGenerated)
}
