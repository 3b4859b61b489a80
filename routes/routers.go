package routes

import (
	"net/http"

	"crm/constants"
	"crm/controllers"
	_ "crm/docs"
	"crm/middleware"
	"crm/services"
	"crm/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Tokens     *services.TokenService
	Revoker    services.Revoker
	Auth       *services.AuthService
	Staff      *services.StaffService
	Users      *services.UserService
	Jobs       *services.JobService
	Attendance *services.AttendanceService
	Salary     *services.SalaryService
	Logger     logger.Logger

	// UploadDir is served at /uploads when resumes are stored locally
	UploadDir string
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	if deps.Revoker == nil {
		deps.Revoker = services.NoopRevoker{}
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop{}
	}

	router.Use(
		middleware.RequestIDMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.ErrorLogger(deps.Logger),
	)

	authController := controllers.NewAuthController(deps.Auth)
	staffController := controllers.NewStaffController(deps.Staff)
	userController := controllers.NewUserController(deps.Users)
	jobController := controllers.NewJobController(deps.Jobs)
	attendanceController := controllers.NewAttendanceController(deps.Attendance)
	salaryController := controllers.NewSalaryController(deps.Salary)

	authenticated := middleware.AuthMiddleware(deps.Tokens, deps.Revoker)
	superAdmin := middleware.RoleMiddleware(constants.RoleSuperAdmin)
	hr := middleware.RoleMiddleware(constants.RoleHR)
	hrOrSuperAdmin := middleware.RoleMiddleware(constants.RoleHR, constants.RoleSuperAdmin)
	developer := middleware.RoleMiddleware(constants.RoleDeveloper)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)
	auth.POST("/superadmin/login", authController.LoginSuperAdmin)
	auth.POST("/google", authController.LoginGoogle)
	auth.DELETE("/logout", authenticated, authController.Logout)
	auth.GET("/profile", authenticated, authController.Profile)
	auth.POST("/create-staff", authenticated, superAdmin, staffController.CreateStaff)
	auth.GET("/staff", authenticated, superAdmin, staffController.ListStaff)
	auth.PUT("/staff/:id", authenticated, superAdmin, staffController.UpdateStaff)
	auth.DELETE("/staff/:id", authenticated, superAdmin, staffController.DeleteStaff)
	auth.PUT("/staff/:id/status", authenticated, superAdmin, staffController.ChangeStaffStatus)

	admin := api.Group("/admin", authenticated, superAdmin)
	admin.GET("/users", userController.GetUsers)
	admin.PUT("/users/:id/approve", userController.ApproveUser)
	admin.PUT("/users/:id/suspend", userController.SuspendUser)

	jobs := api.Group("/jobs", authenticated)
	jobs.POST("", hr, jobController.CreateJob)
	jobs.GET("", hr, jobController.GetHRJobs)
	jobs.PUT("/:id", hr, jobController.UpdateJob)
	jobs.DELETE("/:id", hr, jobController.DeleteJob)
	jobs.GET("/all", jobController.GetJobsForUsers)
	jobs.GET("/view/:id", jobController.GetJob)
	jobs.GET("/suggest", jobController.SuggestJobs)
	jobs.GET("/my-applications", jobController.GetMyApplications)
	jobs.POST("/apply/:id", jobController.ApplyToJob)
	jobs.GET("/applicants/:jobId", hr, jobController.GetApplicants)
	jobs.GET("/superadmin/applicants/:jobId", hrOrSuperAdmin, jobController.GetApplicants)

	attendance := api.Group("/attendance", authenticated)
	attendance.POST("/check-in", attendanceController.CheckIn)
	attendance.POST("/check-out", attendanceController.CheckOut)
	attendance.GET("/my", attendanceController.GetMyAttendance)
	attendance.GET("/all", hrOrSuperAdmin, attendanceController.GetAllAttendance)
	attendance.GET("/working-hours",
		middleware.RoleMiddleware(constants.RoleHR, constants.RoleSuperAdmin, constants.RoleDeveloper),
		attendanceController.GetWorkingHours)

	slips := api.Group("/salary-slips", authenticated)
	slips.POST("", superAdmin, salaryController.GenerateSlip)
	slips.PUT("/status/:slipId", superAdmin, salaryController.UpdateSlipStatus)
	slips.GET("/my", developer, salaryController.GetMySlips)
	slips.GET("/all", hrOrSuperAdmin, salaryController.GetAllSlips)
	slips.GET("/export", hrOrSuperAdmin, salaryController.ExportSlips)

	if deps.UploadDir != "" {
		router.Static("/uploads", deps.UploadDir)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
