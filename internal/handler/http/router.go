package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hrms-suite/hrms-backend-go/internal/config"
	"github.com/hrms-suite/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			if cfg.GoogleEnabled() {
				r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
				r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
			}
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Get("/unlinked", userHandler.ListUnlinked)
				r.Get("/{id}", userHandler.Get)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.MyProfile)
				r.Put("/me", employeeHandler.UpdateMyProfile)
				r.Put("/me/profile-image", employeeHandler.UpdateProfileImage)

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/unlinked-users", employeeHandler.ListUnlinkedUsers)
					r.Get("/{id}", employeeHandler.Get)
					r.Put("/{id}", employeeHandler.Update)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/me", attendanceHandler.Mine)

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", attendanceHandler.ByDate)
					r.Post("/", attendanceHandler.Mark)
					r.Get("/employee/{employeeId}", attendanceHandler.ByEmployee)
					r.Get("/summary/{employeeId}", attendanceHandler.MonthlySummary)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Route("/types", func(r chi.Router) {
					r.Get("/", leaveHandler.ListTypes)
					r.Get("/{id}", leaveHandler.GetType)

					// HR and admin
					r.Group(func(r chi.Router) {
						r.Use(middleware.HROnly)
						r.Post("/", leaveHandler.CreateType)
						r.Put("/{id}", leaveHandler.UpdateType)
						r.Delete("/{id}", leaveHandler.DeleteType)
					})
				})

				r.Post("/", leaveHandler.Apply)
				r.Get("/me", leaveHandler.Mine)
				r.Get("/balances/me", leaveHandler.MyBalances)
				r.Delete("/{id}", leaveHandler.Cancel)

				// Approvers; the service re-checks approver identity
				r.Group(func(r chi.Router) {
					r.Use(middleware.ApproverOnly)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", leaveHandler.List)
					r.Get("/employee/{employeeId}", leaveHandler.ByEmployee)
					r.Get("/balances/{employeeId}", leaveHandler.Balances)
					r.Get("/{id}", leaveHandler.Get)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/me", payrollHandler.Mine)

				// HR and admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Route("/structures", func(r chi.Router) {
						r.Get("/", payrollHandler.ListStructures)
						r.Post("/", payrollHandler.UpsertStructure)
						r.Post("/calculate", payrollHandler.CalculateComponent)
						r.Get("/employee/{employeeId}", payrollHandler.GetStructureByEmployee)
						r.Get("/{id}", payrollHandler.GetStructure)
						r.Delete("/{id}", payrollHandler.DeleteStructure)
					})

					r.Get("/", payrollHandler.ListByMonth)
					r.Post("/generate", payrollHandler.Generate)
					r.Get("/employee/{employeeId}", payrollHandler.ByEmployee)
					r.Get("/{id}", payrollHandler.Get)
					r.Patch("/{id}/status", payrollHandler.UpdateStatus)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", payrollHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.Calendar)
				r.Get("/upcoming", holidayHandler.Upcoming)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.HROnly)
				r.Get("/employee/{employeeId}", reportHandler.EmployeeReport)
			})
		})
	})

	return r
}
