package controllers

import (
	"net/http"

	"crm/dto"
	"crm/response"
	"crm/services"

	"github.com/gin-gonic/gin"
)

type JobController struct {
	Service *services.JobService
}

func NewJobController(service *services.JobService) JobController {
	return JobController{Service: service}
}

// CreateJob godoc
// @Summary Post a job
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateJobRequest true "Job"
// @Success 201 {object} response.Response
// @Router /jobs [post]
func (j JobController) CreateJob(c *gin.Context) {
	hrID, _, ok := caller(c)
	if !ok {
		return
	}
	var req dto.CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := j.Service.Create(c.Request.Context(), hrID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Job created successfully", job)
}

// GetHRJobs godoc
// @Summary Jobs posted by the caller
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Matches title, description or company"
// @Param location query string false "Location"
// @Param type query string false "Job type"
// @Param status query string false "active or closed"
// @Success 200 {object} response.Response
// @Router /jobs [get]
func (j JobController) GetHRJobs(c *gin.Context) {
	hrID, _, ok := caller(c)
	if !ok {
		return
	}
	var filter dto.JobFilter
	if !bindQuery(c, &filter) {
		return
	}

	jobs, err := j.Service.ListForHR(c.Request.Context(), hrID, filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Jobs", jobs)
}

// UpdateJob godoc
// @Summary Update an own job posting
// @Tags jobs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Job id"
// @Param body body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /jobs/{id} [put]
func (j JobController) UpdateJob(c *gin.Context) {
	hrID, _, ok := caller(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := j.Service.Update(c.Request.Context(), id, hrID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Job updated successfully", job)
}

// DeleteJob godoc
// @Summary Delete an own job posting
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} response.Response
// @Router /jobs/{id} [delete]
func (j JobController) DeleteJob(c *gin.Context) {
	hrID, _, ok := caller(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := j.Service.Delete(c.Request.Context(), id, hrID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Job deleted successfully", nil)
}

// GetJobsForUsers godoc
// @Summary Browse active jobs
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Matches title, description or company"
// @Param location query string false "Location"
// @Param type query string false "Job type"
// @Param companyName query string false "Company"
// @Param minSalary query number false "Minimum salary"
// @Success 200 {object} response.Response
// @Router /jobs/all [get]
func (j JobController) GetJobsForUsers(c *gin.Context) {
	var filter dto.JobFilter
	if !bindQuery(c, &filter) {
		return
	}

	jobs, err := j.Service.ListForUsers(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Jobs", jobs)
}

// GetJob godoc
// @Summary Job details
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} response.Response
// @Router /jobs/view/{id} [get]
func (j JobController) GetJob(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	job, err := j.Service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Job", job)
}

// SuggestJobs godoc
// @Summary Closest job titles to a query
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} response.Response
// @Router /jobs/suggest [get]
func (j JobController) SuggestJobs(c *gin.Context) {
	suggestions, err := j.Service.Suggest(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Suggestions", suggestions)
}

// ApplyToJob godoc
// @Summary Apply with a resume
// @Tags jobs
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Job id"
// @Param resume formData file true "PDF or Word resume"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /jobs/apply/{id} [post]
func (j JobController) ApplyToJob(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}

	// a missing file is reported by the service
	resume, err := c.FormFile("resume")
	if err != nil && err != http.ErrMissingFile {
		response.BadRequest(c, "Invalid resume upload")
		return
	}

	app, err := j.Service.Apply(c.Request.Context(), userID, jobID, resume)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Applied successfully", app)
}

// GetApplicants godoc
// @Summary Applicants of a job
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Param jobId path int true "Job id"
// @Success 200 {object} response.Response
// @Router /jobs/applicants/{jobId} [get]
func (j JobController) GetApplicants(c *gin.Context) {
	jobID, ok := paramID(c, "jobId")
	if !ok {
		return
	}

	applicants, err := j.Service.Applicants(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Applicants", applicants)
}

// GetMyApplications godoc
// @Summary Jobs the caller applied to
// @Tags jobs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /jobs/my-applications [get]
func (j JobController) GetMyApplications(c *gin.Context) {
	userID, _, ok := caller(c)
	if !ok {
		return
	}

	apps, err := j.Service.MyApplications(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Applications", apps)
}
