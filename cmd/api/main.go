package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hrms-suite/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-suite/hrms-backend-go/internal/handler/http"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/oauth"
	"github.com/hrms-suite/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-suite/hrms-backend-go/internal/service/attendance"
	authService "github.com/hrms-suite/hrms-backend-go/internal/service/auth"
	employeeService "github.com/hrms-suite/hrms-backend-go/internal/service/employee"
	leaveService "github.com/hrms-suite/hrms-backend-go/internal/service/leave"
	payrollService "github.com/hrms-suite/hrms-backend-go/internal/service/payroll"
	reportService "github.com/hrms-suite/hrms-backend-go/internal/service/report"
	userService "github.com/hrms-suite/hrms-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	salaryStructureRepo := postgresql.NewSalaryStructureRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL, cfg.Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, cfg.Office)
	leaveSvc := leaveService.NewLeaveService(db, leaveTypeRepo, leaveRequestRepo, leaveBalanceRepo, employeeRepo, userRepo)
	payrollSvc := payrollService.NewPayrollService(salaryStructureRepo, payrollRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo, leaveRequestRepo, payrollRepo)

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc, googleSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	holidayHandler := appHTTP.NewHolidayHandler()
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtSvc,
		authHandler,
		userHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		holidayHandler,
		reportHandler,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
