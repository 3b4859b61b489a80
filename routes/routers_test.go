package routes

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"crm/config"
	"crm/constants"
	"crm/dto"
	"crm/response"
	"crm/services"
	"crm/services/storage"
	"crm/validator"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin-secret"
)

func itoa(id uint) string { return strconv.FormatUint(uint64(id), 10) }

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

type mapRevoker map[string]bool

func (m mapRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	m[jti] = true
	return nil
}

func (m mapRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return m[jti], nil
}

type server struct {
	t      *testing.T
	router *gin.Engine
	clock  *clock
}

func newServer(t *testing.T) *server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := validator.Register(); err != nil {
		t.Fatalf("register validators: %v", err)
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), config.GormConfig(gormlogger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	seed := services.SuperAdminSeed{Name: "Admin", Email: adminEmail, Password: adminPassword}
	if err := services.SeedSuperAdmin(context.Background(), db, seed, nil); err != nil {
		t.Fatalf("seed: %v", err)
	}

	uploads := t.TempDir()
	store, err := storage.NewLocalProvider(uploads, "/uploads")
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	clk := &clock{now: time.Date(2025, 4, 7, 9, 0, 0, 0, time.UTC)}
	tokens := services.NewTokenService("test-secret", time.Hour)
	revoker := mapRevoker{}

	router := gin.New()
	SetupRoutes(router, Dependencies{
		Tokens:     tokens,
		Revoker:    revoker,
		Auth:       services.NewAuthService(services.AuthServiceOptions{DB: db, Tokens: tokens, Revoker: revoker}),
		Staff:      services.NewStaffService(services.StaffServiceOptions{DB: db}),
		Users:      services.NewUserService(services.UserServiceOptions{DB: db}),
		Jobs:       services.NewJobService(services.JobServiceOptions{DB: db, Storage: store}),
		Attendance: services.NewAttendanceService(services.AttendanceServiceOptions{DB: db, Now: clk.Now, Location: time.UTC}),
		Salary:     services.NewSalaryService(services.SalaryServiceOptions{DB: db}),
		UploadDir:  uploads,
	})
	return &server{t: t, router: router, clock: clk}
}

func (s *server) send(req *http.Request, token string) (*httptest.ResponseRecorder, response.Response) {
	s.t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var body response.Response
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			s.t.Fatalf("decode %s %s: %v", req.Method, req.URL, err)
		}
	}
	return w, body
}

func (s *server) call(method, path, token string, payload interface{}) (*httptest.ResponseRecorder, response.Response) {
	s.t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			s.t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return s.send(req, token)
}

// expect fails unless the call returned status, then decodes data into out.
func (s *server) expect(status int, out interface{}, method, path, token string, payload interface{}) response.Response {
	s.t.Helper()
	w, body := s.call(method, path, token, payload)
	if w.Code != status {
		s.t.Fatalf("%s %s: status = %d, want %d: %s", method, path, w.Code, status, w.Body.String())
	}
	if out != nil {
		raw, _ := json.Marshal(body.Data)
		if err := json.Unmarshal(raw, out); err != nil {
			s.t.Fatalf("decode data: %v", err)
		}
	}
	return body
}

func (s *server) login(path, email, password string) string {
	s.t.Helper()
	var res dto.LoginResponse
	s.expect(http.StatusOK, &res, http.MethodPost, path, "", dto.LoginInput{Email: email, Password: password})
	if res.Token == "" {
		s.t.Fatal("empty token")
	}
	return res.Token
}

func (s *server) createStaff(admin, name, email, role string) string {
	s.t.Helper()
	s.expect(http.StatusCreated, nil, http.MethodPost, "/api/auth/create-staff", admin, dto.CreateStaffRequest{
		Name: name, Email: email, Password: "secret123", Role: role,
	})
	return s.login("/api/auth/login", email, "secret123")
}

func (s *server) apply(token, path, filename string, content []byte) (*httptest.ResponseRecorder, response.Response) {
	s.t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		s.t.Fatalf("form file: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return s.send(req, token)
}

func TestAuthFlow(t *testing.T) {
	s := newServer(t)

	var user dto.UserResponse
	s.expect(http.StatusCreated, &user, http.MethodPost, "/api/auth/register", "", dto.RegisterInput{
		Name: "Alice", Email: "Alice@Example.com", Password: "secret123",
	})
	if user.Email != "alice@example.com" || user.Role != constants.RoleUser {
		t.Errorf("registered = %+v", user)
	}

	body := s.expect(http.StatusConflict, nil, http.MethodPost, "/api/auth/register", "", dto.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})
	if body.Code != 0 || body.Error == "" {
		t.Errorf("conflict body = %+v", body)
	}
	s.expect(http.StatusBadRequest, nil, http.MethodPost, "/api/auth/register", "", map[string]string{"email": "x"})

	s.expect(http.StatusUnauthorized, nil, http.MethodPost, "/api/auth/login", "", dto.LoginInput{Email: "alice@example.com", Password: "wrong"})
	s.expect(http.StatusNotFound, nil, http.MethodPost, "/api/auth/login", "", dto.LoginInput{Email: "bob@example.com", Password: "secret123"})
	s.expect(http.StatusUnauthorized, nil, http.MethodPost, "/api/auth/superadmin/login", "", dto.LoginInput{Email: "alice@example.com", Password: "secret123"})
	s.expect(http.StatusBadRequest, nil, http.MethodPost, "/api/auth/google", "", dto.GoogleLoginInput{IDToken: "token"})

	token := s.login("/api/auth/login", "alice@example.com", "secret123")
	var profile dto.UserResponse
	s.expect(http.StatusOK, &profile, http.MethodGet, "/api/auth/profile", token, nil)
	if profile.ID != user.ID {
		t.Errorf("profile = %+v", profile)
	}

	s.expect(http.StatusOK, nil, http.MethodDelete, "/api/auth/logout", token, nil)
	s.expect(http.StatusUnauthorized, nil, http.MethodGet, "/api/auth/profile", token, nil)

	// suspended users are refused at login
	admin := s.login("/api/auth/superadmin/login", adminEmail, adminPassword)
	s.expect(http.StatusOK, nil, http.MethodPut, "/api/admin/users/"+itoa(user.ID)+"/suspend", admin, nil)
	s.expect(http.StatusForbidden, nil, http.MethodPost, "/api/auth/login", "", dto.LoginInput{Email: "alice@example.com", Password: "secret123"})
	s.expect(http.StatusOK, nil, http.MethodPut, "/api/admin/users/"+itoa(user.ID)+"/approve", admin, nil)
	s.login("/api/auth/login", "alice@example.com", "secret123")
}

func TestStaffManagement(t *testing.T) {
	s := newServer(t)
	admin := s.login("/api/auth/superadmin/login", adminEmail, adminPassword)
	hr := s.createStaff(admin, "Hana", "hana@example.com", constants.RoleHR)

	s.expect(http.StatusForbidden, nil, http.MethodGet, "/api/auth/staff", hr, nil)
	s.expect(http.StatusBadRequest, nil, http.MethodPost, "/api/auth/create-staff", admin, dto.CreateStaffRequest{
		Name: "X", Email: "x@example.com", Password: "secret123", Role: constants.RoleUser,
	})

	var staff []dto.UserResponse
	s.expect(http.StatusOK, &staff, http.MethodGet, "/api/auth/staff", admin, nil)
	if len(staff) != 1 || staff[0].Email != "hana@example.com" {
		t.Fatalf("staff = %+v", staff)
	}
	id := itoa(staff[0].ID)

	role := constants.RoleDeveloper
	var updated dto.UserResponse
	s.expect(http.StatusOK, &updated, http.MethodPut, "/api/auth/staff/"+id, admin, dto.UpdateStaffRequest{Role: &role})
	if updated.Role != constants.RoleDeveloper {
		t.Errorf("role = %q", updated.Role)
	}

	s.expect(http.StatusBadRequest, nil, http.MethodPut, "/api/auth/staff/"+id+"/status", admin, dto.StatusRequest{Status: "on-leave"})
	body := s.expect(http.StatusOK, nil, http.MethodPut, "/api/auth/staff/"+id+"/status", admin, dto.StatusRequest{Status: constants.UserStatusSuspended})
	if body.Message != "Status updated to suspended" {
		t.Errorf("message = %q", body.Message)
	}
	s.expect(http.StatusForbidden, nil, http.MethodPost, "/api/auth/login", "", dto.LoginInput{Email: "hana@example.com", Password: "secret123"})

	s.expect(http.StatusBadRequest, nil, http.MethodDelete, "/api/auth/staff/abc", admin, nil)
	s.expect(http.StatusOK, nil, http.MethodDelete, "/api/auth/staff/"+id, admin, nil)
	s.expect(http.StatusNotFound, nil, http.MethodDelete, "/api/auth/staff/"+id, admin, nil)
}

func TestJobBoard(t *testing.T) {
	s := newServer(t)
	admin := s.login("/api/auth/superadmin/login", adminEmail, adminPassword)
	hr := s.createStaff(admin, "Hana", "hana@example.com", constants.RoleHR)
	otherHR := s.createStaff(admin, "Omar", "omar@example.com", constants.RoleHR)

	s.expect(http.StatusCreated, nil, http.MethodPost, "/api/auth/register", "", dto.RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "secret123"})
	user := s.login("/api/auth/login", "alice@example.com", "secret123")

	salary := 90000.0
	newJob := dto.CreateJobRequest{
		Title: "Backend Developer", Description: "Go services", Location: "Pune",
		Salary: &salary, Experience: "2 years", CompanyName: "Acme",
		Skills: []string{"go", "sql"},
	}
	s.expect(http.StatusForbidden, nil, http.MethodPost, "/api/jobs", user, newJob)
	s.expect(http.StatusBadRequest, nil, http.MethodPost, "/api/jobs", hr, map[string]string{"title": "x"})

	var job struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Type   string `json:"type"`
	}
	s.expect(http.StatusCreated, &job, http.MethodPost, "/api/jobs", hr, newJob)
	if job.Status != constants.JobStatusActive || job.Type != constants.JobTypeFullTime {
		t.Errorf("defaults = %+v", job)
	}
	id := itoa(job.ID)

	title := "Senior Backend Developer"
	s.expect(http.StatusNotFound, nil, http.MethodPut, "/api/jobs/"+id, otherHR, dto.UpdateJobRequest{Title: &title})
	s.expect(http.StatusOK, nil, http.MethodPut, "/api/jobs/"+id, hr, dto.UpdateJobRequest{Title: &title})

	var listed []struct {
		Title string `json:"title"`
	}
	s.expect(http.StatusOK, &listed, http.MethodGet, "/api/jobs/all?keyword=senior&location=Pune", user, nil)
	if len(listed) != 1 || listed[0].Title != title {
		t.Errorf("listed = %+v", listed)
	}
	s.expect(http.StatusOK, &listed, http.MethodGet, "/api/jobs", otherHR, nil)
	if len(listed) != 0 {
		t.Errorf("other hr sees %d jobs", len(listed))
	}

	var suggestions []dto.JobSuggestion
	s.expect(http.StatusOK, &suggestions, http.MethodGet, "/api/jobs/suggest?q=backend+develper", user, nil)
	if len(suggestions) == 0 || suggestions[0].ID != job.ID {
		t.Errorf("suggestions = %+v", suggestions)
	}

	w, _ := s.apply(user, "/api/jobs/apply/"+id, "cv.txt", []byte("plain"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("txt resume status = %d", w.Code)
	}
	w, _ = s.apply(user, "/api/jobs/apply/"+id, "cv.pdf", []byte("%PDF-1.4"))
	if w.Code != http.StatusCreated {
		t.Fatalf("apply status = %d: %s", w.Code, w.Body.String())
	}
	w, _ = s.apply(user, "/api/jobs/apply/"+id, "cv.pdf", []byte("%PDF-1.4"))
	if w.Code != http.StatusConflict {
		t.Errorf("second apply status = %d", w.Code)
	}

	var applied []dto.AppliedJobResponse
	s.expect(http.StatusOK, &applied, http.MethodGet, "/api/jobs/my-applications", user, nil)
	if len(applied) != 1 {
		t.Errorf("applications = %d", len(applied))
	}

	var applicants []dto.ApplicantResponse
	s.expect(http.StatusOK, &applicants, http.MethodGet, "/api/jobs/applicants/"+id, hr, nil)
	if len(applicants) != 1 || applicants[0].Email != "alice@example.com" || applicants[0].Position != title {
		t.Fatalf("applicants = %+v", applicants)
	}
	s.expect(http.StatusForbidden, nil, http.MethodGet, "/api/jobs/applicants/"+id, user, nil)
	s.expect(http.StatusOK, &applicants, http.MethodGet, "/api/jobs/superadmin/applicants/"+id, admin, nil)

	// the stored resume is served back
	req := httptest.NewRequest(http.MethodGet, applicants[0].ResumeURL, nil)
	w, _ = s.send(req, "")
	if w.Code != http.StatusOK || w.Body.String() != "%PDF-1.4" {
		t.Errorf("resume download = %d %q", w.Code, w.Body.String())
	}

	s.expect(http.StatusOK, nil, http.MethodDelete, "/api/jobs/"+id, hr, nil)
	s.expect(http.StatusNotFound, nil, http.MethodGet, "/api/jobs/view/"+id, user, nil)
}

func TestAttendanceAndSalary(t *testing.T) {
	s := newServer(t)
	admin := s.login("/api/auth/superadmin/login", adminEmail, adminPassword)
	hr := s.createStaff(admin, "Hana", "hana@example.com", constants.RoleHR)
	dev := s.createStaff(admin, "Dev", "dev@example.com", constants.RoleDeveloper)

	s.expect(http.StatusForbidden, nil, http.MethodPost, "/api/attendance/check-in", hr, nil)
	s.expect(http.StatusForbidden, nil, http.MethodPost, "/api/attendance/check-in", admin, nil)
	s.expect(http.StatusBadRequest, nil, http.MethodPost, "/api/attendance/check-out", dev, nil)

	var rec dto.AttendanceResponse
	s.expect(http.StatusCreated, &rec, http.MethodPost, "/api/attendance/check-in", dev, nil)
	if rec.Date != "2025-04-07" || rec.CheckIn != "09:00:00" {
		t.Errorf("check-in = %+v", rec)
	}
	s.expect(http.StatusBadRequest, nil, http.MethodPost, "/api/attendance/check-in", dev, nil)

	s.clock.now = s.clock.now.Add(8 * time.Hour)
	s.expect(http.StatusOK, &rec, http.MethodPost, "/api/attendance/check-out", dev, nil)
	if rec.Duration != "08:00:00" {
		t.Errorf("duration = %q", rec.Duration)
	}

	var all []dto.AttendanceResponse
	s.expect(http.StatusForbidden, nil, http.MethodGet, "/api/attendance/all", dev, nil)
	s.expect(http.StatusOK, &all, http.MethodGet, "/api/attendance/all", hr, nil)
	if len(all) != 1 || all[0].Staff == nil || all[0].Staff.Email != "dev@example.com" {
		t.Fatalf("all = %+v", all)
	}
	devID := itoa(all[0].StaffID)

	var hours dto.WorkingHoursResponse
	s.expect(http.StatusOK, &hours, http.MethodGet, "/api/attendance/working-hours?staffId="+devID+"&month=2025-04", dev, nil)
	if hours.TotalHours != 8 || hours.ExactHours != 8 {
		t.Errorf("hours = %+v", hours)
	}
	s.expect(http.StatusBadRequest, nil, http.MethodGet, "/api/attendance/working-hours?staffId="+devID+"&month=April", hr, nil)

	slipReq := dto.GenerateSlipRequest{StaffID: all[0].StaffID, Month: "2025-04", LPA: 288000}
	s.expect(http.StatusForbidden, nil, http.MethodPost, "/api/salary-slips", hr, slipReq)
	var slip dto.SlipResponse
	s.expect(http.StatusCreated, &slip, http.MethodPost, "/api/salary-slips", admin, slipReq)
	if slip.TotalWorkingHours != 8 || slip.CalculatedSalary != 800 || slip.Status != constants.SlipStatusPending {
		t.Errorf("slip = %+v", slip)
	}
	s.expect(http.StatusConflict, nil, http.MethodPost, "/api/salary-slips", admin, slipReq)

	var mine []dto.SlipResponse
	s.expect(http.StatusOK, &mine, http.MethodGet, "/api/salary-slips/my", dev, nil)
	if len(mine) != 1 {
		t.Errorf("my slips = %d", len(mine))
	}
	s.expect(http.StatusForbidden, nil, http.MethodGet, "/api/salary-slips/my", hr, nil)

	body := s.expect(http.StatusOK, nil, http.MethodPut, "/api/salary-slips/status/"+itoa(slip.ID), admin,
		dto.SlipStatusRequest{Status: constants.SlipStatusRejected, Reason: "check hours"})
	if body.Message != "Slip rejected successfully" {
		t.Errorf("message = %q", body.Message)
	}

	var listed []dto.SlipResponse
	s.expect(http.StatusOK, &listed, http.MethodGet, "/api/salary-slips/all?month=2025-04", hr, nil)
	if len(listed) != 1 || listed[0].RejectionReason != "check hours" || listed[0].Staff == nil {
		t.Errorf("listed = %+v", listed)
	}

	w, _ := s.call(http.MethodGet, "/api/salary-slips/export?month=2025-04", hr, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Header().Get("Content-Disposition"), "attachment") {
		t.Errorf("export = %d %q", w.Code, w.Header().Get("Content-Disposition"))
	}
	if w.Body.Len() == 0 {
		t.Error("empty workbook")
	}
}

func TestHealthAndDocs(t *testing.T) {
	s := newServer(t)
	for _, path := range []string{"/ping", "/metrics", "/swagger/doc.json"} {
		w, _ := s.call(http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, w.Code)
		}
	}
	w, _ := s.call(http.MethodGet, "/api/jobs/all", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous jobs status = %d", w.Code)
	}
}
