package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"crm/constants"
	"crm/dto"
	apperrors "crm/errors"
	"crm/models"
	"crm/services/logger"
	"crm/services/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultMaxResumeSize = 5 << 20

var resumeExtensions = []string{".pdf", ".doc", ".docx"}

type JobService struct {
	db            *gorm.DB
	storage       storage.Provider
	maxResumeSize int64
	logger        logger.Logger
}

type JobServiceOptions struct {
	DB            *gorm.DB
	Storage       storage.Provider
	MaxResumeSize int64
	Logger        logger.Logger
}

func NewJobService(opts JobServiceOptions) *JobService {
	if opts.MaxResumeSize <= 0 {
		opts.MaxResumeSize = defaultMaxResumeSize
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &JobService{
		db:            opts.DB,
		storage:       opts.Storage,
		maxResumeSize: opts.MaxResumeSize,
		logger:        opts.Logger,
	}
}

func (s *JobService) Create(ctx context.Context, hrID uint, input dto.CreateJobRequest) (models.Job, error) {
	if input.Salary == nil {
		return models.Job{}, apperrors.Validation("salary is required")
	}

	job := models.Job{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Type:        orDefault(input.Type, constants.JobTypeFullTime),
		Status:      orDefault(input.Status, constants.JobStatusActive),
		Salary:      *input.Salary,
		Experience:  input.Experience,
		CompanyName: input.CompanyName,
		Skills:      models.StringList(input.Skills),
		Education:   orDefault(strings.TrimSpace(input.Education), constants.DefaultEducation),
		Benefits:    models.StringList(input.Benefits),
		Deadline:    input.Deadline.Ptr(),
		CreatedBy:   hrID,
	}
	if err := validateJob(job); err != nil {
		return models.Job{}, err
	}

	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return models.Job{}, apperrors.Server("Could not create job", err)
	}
	s.logger.Info("hr %d created job %d", hrID, job.ID)
	return job, nil
}

// Update only touches jobs created by hrID; anything else is reported as not found.
func (s *JobService) Update(ctx context.Context, id, hrID uint, input dto.UpdateJobRequest) (models.Job, error) {
	job, err := s.findOwned(ctx, id, hrID)
	if err != nil {
		return models.Job{}, err
	}

	setString(&job.Title, input.Title)
	setString(&job.Description, input.Description)
	setString(&job.Location, input.Location)
	setString(&job.Type, input.Type)
	setString(&job.Status, input.Status)
	setString(&job.Experience, input.Experience)
	setString(&job.CompanyName, input.CompanyName)
	setString(&job.Education, input.Education)
	if input.Salary != nil {
		job.Salary = *input.Salary
	}
	if input.Skills != nil {
		job.Skills = models.StringList(*input.Skills)
	}
	if input.Benefits != nil {
		job.Benefits = models.StringList(*input.Benefits)
	}
	if input.Deadline != nil {
		job.Deadline = input.Deadline.Ptr()
	}
	if strings.TrimSpace(job.Education) == "" {
		job.Education = constants.DefaultEducation
	}
	if err := validateJob(job); err != nil {
		return models.Job{}, err
	}

	res := s.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ? AND created_by = ?", id, hrID).
		Updates(map[string]interface{}{
			"title":        job.Title,
			"description":  job.Description,
			"location":     job.Location,
			"type":         job.Type,
			"status":       job.Status,
			"salary":       job.Salary,
			"experience":   job.Experience,
			"company_name": job.CompanyName,
			"skills":       job.Skills,
			"education":    job.Education,
			"benefits":     job.Benefits,
			"deadline":     job.Deadline,
		})
	if res.Error != nil {
		return models.Job{}, apperrors.Server("Could not update job", res.Error)
	}
	return s.findOwned(ctx, id, hrID)
}

func (s *JobService) Delete(ctx context.Context, id, hrID uint) error {
	res := s.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, hrID).Delete(&models.Job{})
	if res.Error != nil {
		return apperrors.Server("Could not delete job", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Job not found or unauthorized")
	}
	s.logger.Info("hr %d deleted job %d", hrID, id)
	return nil
}

// ListForHR returns the postings of hrID, newest first.
func (s *JobService) ListForHR(ctx context.Context, hrID uint, filter dto.JobFilter) ([]models.Job, error) {
	q := s.db.WithContext(ctx).Model(&models.Job{}).Where("created_by = ?", hrID)
	q = applyKeyword(q, filter.Keyword)
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, apperrors.Server("Could not load jobs", err)
	}
	return jobs, nil
}

// ListForUsers only ever returns active postings.
func (s *JobService) ListForUsers(ctx context.Context, filter dto.JobFilter) ([]models.Job, error) {
	q := s.db.WithContext(ctx).Model(&models.Job{}).Where("status = ?", constants.JobStatusActive)
	q = applyKeyword(q, filter.Keyword)
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.CompanyName != "" {
		q = q.Where("company_name = ?", filter.CompanyName)
	}
	if filter.MinSalary != nil {
		q = q.Where("salary >= ?", *filter.MinSalary)
	}

	var jobs []models.Job
	if err := q.Order("created_at DESC").Order("id DESC").Find(&jobs).Error; err != nil {
		return nil, apperrors.Server("Could not load jobs", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id uint) (models.Job, error) {
	var job models.Job
	if err := s.db.WithContext(ctx).First(&job, id).Error; err != nil {
		if isNotFound(err) {
			return models.Job{}, apperrors.NotFound("Job not found")
		}
		return models.Job{}, apperrors.Server("Could not load job", err)
	}
	return job, nil
}

// Apply stores the resume and records the application. The file is removed
// again when the application cannot be saved.
func (s *JobService) Apply(ctx context.Context, userID, jobID uint, resume *multipart.FileHeader) (models.Application, error) {
	if resume == nil {
		return models.Application{}, apperrors.Validation("Resume is required")
	}
	ext := strings.ToLower(filepath.Ext(resume.Filename))
	if !constants.Contains(resumeExtensions, ext) {
		return models.Application{}, apperrors.Validation("Resume must be a PDF or Word document")
	}
	if resume.Size > s.maxResumeSize {
		return models.Application{}, apperrors.Validation(fmt.Sprintf("Resume must be at most %d MB", s.maxResumeSize>>20))
	}

	if _, err := s.Get(ctx, jobID); err != nil {
		return models.Application{}, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error; err != nil {
		return models.Application{}, apperrors.Server("Could not check application", err)
	}
	if count > 0 {
		return models.Application{}, apperrors.Conflict("You have already applied to this job")
	}

	filename := uuid.NewString() + ext
	key := resumeKey(filename)

	src, err := resume.Open()
	if err != nil {
		return models.Application{}, apperrors.Server("Could not read resume", err)
	}
	defer src.Close()

	if err := s.storage.Put(ctx, key, src, storage.ContentType(ext)); err != nil {
		return models.Application{}, apperrors.Server("Could not store resume", err)
	}

	app := models.Application{UserID: userID, JobID: jobID, Resume: filename}
	if err := s.db.WithContext(ctx).Create(&app).Error; err != nil {
		if derr := s.storage.Delete(ctx, key); derr != nil {
			s.logger.Warn("could not remove orphaned resume %s: %v", key, derr)
		}
		if isDuplicate(err) {
			return models.Application{}, apperrors.Conflict("You have already applied to this job")
		}
		return models.Application{}, apperrors.Server("Could not save application", err)
	}

	jobApplications.Inc()
	s.logger.Info("user %d applied to job %d", userID, jobID)
	return app, nil
}

func (s *JobService) Applicants(ctx context.Context, jobID uint) ([]dto.ApplicantResponse, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var apps []models.Application
	if err := s.db.WithContext(ctx).Preload("User").
		Where("job_id = ?", jobID).
		Order("applied_at ASC").Order("id ASC").
		Find(&apps).Error; err != nil {
		return nil, apperrors.Server("Could not load applicants", err)
	}

	out := make([]dto.ApplicantResponse, 0, len(apps))
	for _, a := range apps {
		if a.User.ID == 0 {
			continue
		}
		key := resumeKey(a.Resume)
		out = append(out, dto.ApplicantResponse{
			ID:        a.User.ID,
			Name:      a.User.Name,
			Email:     a.User.Email,
			Phone:     a.User.Phone,
			Position:  job.Title,
			Resume:    key,
			ResumeURL: s.storage.URL(key),
			AppliedAt: a.AppliedAt,
		})
	}
	return out, nil
}

func (s *JobService) MyApplications(ctx context.Context, userID uint) ([]dto.AppliedJobResponse, error) {
	var apps []models.Application
	if err := s.db.WithContext(ctx).Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_at DESC").Order("id DESC").
		Find(&apps).Error; err != nil {
		return nil, apperrors.Server("Could not load applications", err)
	}

	out := make([]dto.AppliedJobResponse, 0, len(apps))
	for _, a := range apps {
		if a.Job.ID == 0 {
			continue
		}
		out = append(out, dto.AppliedJobResponse{
			ID:          a.Job.ID,
			Title:       a.Job.Title,
			CompanyName: a.Job.CompanyName,
			Location:    a.Job.Location,
			Type:        a.Job.Type,
			Deadline:    a.Job.Deadline,
			Status:      a.Job.Status,
			AppliedAt:   a.AppliedAt,
		})
	}
	return out, nil
}

func (s *JobService) findOwned(ctx context.Context, id, hrID uint) (models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).Where("id = ? AND created_by = ?", id, hrID).First(&job).Error
	if err != nil {
		if isNotFound(err) {
			return models.Job{}, apperrors.NotFound("Job not found or unauthorized")
		}
		return models.Job{}, apperrors.Server("Could not load job", err)
	}
	return job, nil
}

func resumeKey(filename string) string {
	return constants.ResumeFolder + "/" + filename
}

func validateJob(job models.Job) error {
	required := map[string]string{
		"title":       job.Title,
		"description": job.Description,
		"location":    job.Location,
		"experience":  job.Experience,
		"companyName": job.CompanyName,
	}
	for _, field := range []string{"title", "description", "location", "experience", "companyName"} {
		if strings.TrimSpace(required[field]) == "" {
			return apperrors.Validation(field + " is required")
		}
	}
	if job.Salary < 0 {
		return apperrors.Validation("salary must not be negative")
	}
	if !constants.Contains(constants.JobTypes, job.Type) {
		return apperrors.Validation("Invalid job type")
	}
	if !constants.Contains(constants.JobStatuses, job.Status) {
		return apperrors.Validation("Invalid job status")
	}
	return nil
}

// applyKeyword matches keyword case-insensitively inside title, description
// or company name. LIKE wildcards in the keyword are matched literally.
func applyKeyword(q *gorm.DB, keyword string) *gorm.DB {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return q
	}
	pattern := "%" + escapeLike(strings.ToLower(keyword)) + "%"
	return q.Where(
		"LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(company_name) LIKE ? ESCAPE '!'",
		pattern, pattern, pattern,
	)
}

func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
