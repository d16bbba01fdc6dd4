package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/platform/config"
)

// RegisterRoutes wires all HTTP routes onto the engine.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer, cfg *config.Config) error {
	authHandler := NewAuthHandler(services.Staff, cfg)
	staffHandler := NewStaffHandler(services.Staff)
	studentHandler := NewStudentHandler(services.Student)
	feeHandler := NewFeeHandler(services.Fee)
	paymentHandler := NewPaymentHandler(services.Fee)
	attendanceHandler := NewAttendanceHandler(services.Attendance)
	homeworkHandler := NewHomeworkHandler(services.Homework)
	reportingHandler := NewReportingHandler(services.Reporting)

	r.GET("/health", HealthCheck)

	loginRate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		return fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}
	loginLimiter := limiter.New(memory.NewStore(), loginRate)

	api := r.Group("/api")

	api.POST("/login", middleware.RateLimit(loginLimiter), authHandler.Login)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/dashboard", reportingHandler.GetDashboard)

		students := authed.Group("/students")
		{
			students.GET("", studentHandler.ListStudents)
			students.GET("/next-adm-no", studentHandler.NextAdmissionNumber)
			students.GET("/:studentID", studentHandler.GetStudent)
			students.POST("", studentHandler.CreateStudent)
			students.PUT("/:studentID", studentHandler.UpdateStudent)
			students.DELETE("/:studentID", middleware.RequireRoles(domain.RoleAdmin), studentHandler.DeleteStudent)
		}
		authed.POST("/import/students", middleware.RequireRoles(domain.RoleAdmin), studentHandler.ImportStudents)

		staff := authed.Group("/staff")
		{
			staff.GET("", staffHandler.ListStaff)
			staff.POST("", middleware.RequireRoles(domain.RoleAdmin), staffHandler.CreateStaff)
			staff.PUT("/:staffID", middleware.RequireRoles(domain.RoleAdmin), staffHandler.UpdateStaff)
			staff.DELETE("/:staffID", middleware.RequireRoles(domain.RoleAdmin), staffHandler.DeleteStaff)
		}

		fees := authed.Group("/fees")
		{
			fees.GET("", feeHandler.ListFees)
			fees.GET("/:studentID", feeHandler.GetFeeAccount)
			fees.POST("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), feeHandler.RecordPayment)
		}

		authed.GET("/payments", paymentHandler.ListPayments)
		authed.GET("/receipt/:id", paymentHandler.GetReceipt)

		attendance := authed.Group("/attendance")
		{
			attendance.GET("", attendanceHandler.GetRoster)
			attendance.POST("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), attendanceHandler.SaveAttendance)
		}

		homework := authed.Group("/homework")
		{
			homework.GET("", homeworkHandler.ListHomework)
			homework.POST("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), homeworkHandler.CreateHomework)
		}
	}

	return nil
}
