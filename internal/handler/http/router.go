package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stafflow/hr-backend-go/internal/handler/http/middleware"
	"github.com/stafflow/hr-backend-go/internal/pkg/jwt"
)

type RouterDeps struct {
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	EmployeeHandler   EmployeeHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	CallDataHandler   CallDataHandler
	HolidayHandler    HolidayHandler
	PayslipHandler    PayslipHandler
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(httprate.LimitByIP(300, time.Minute))

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			// Tighter limit on credential endpoints
			r.Use(httprate.LimitByIP(20, time.Minute))

			r.Post("/login", deps.AuthHandler.Login)
			r.Post("/refresh", deps.AuthHandler.RefreshToken)
			r.Post("/logout", deps.AuthHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", deps.AuthHandler.LoginWithGoogle)
				r.Get("/callback/google", deps.AuthHandler.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", deps.EmployeeHandler.List)
				r.Get("/{id}", deps.EmployeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", deps.EmployeeHandler.Create)
					r.Put("/{id}", deps.EmployeeHandler.Update)
					r.Delete("/{id}", deps.EmployeeHandler.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", deps.AttendanceHandler.ClockIn)
				r.Post("/clock-out", deps.AttendanceHandler.ClockOut)
				r.Post("/break/start", deps.AttendanceHandler.StartBreak)
				r.Post("/break/end", deps.AttendanceHandler.EndBreak)
				r.Get("/my", deps.AttendanceHandler.GetMyAttendance)
				r.Get("/{id}", deps.AttendanceHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.AttendanceHandler.List)
					r.Post("/", deps.AttendanceHandler.Create)
					r.Put("/{id}", deps.AttendanceHandler.Update)
					r.Delete("/{id}", deps.AttendanceHandler.Delete)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", deps.LeaveHandler.Create)
				r.Get("/my", deps.LeaveHandler.GetMyLeave)
				r.Get("/{id}", deps.LeaveHandler.Get)
				r.Put("/{id}", deps.LeaveHandler.Update)
				r.Post("/{id}/cancel", deps.LeaveHandler.Cancel)
				r.Delete("/{id}", deps.LeaveHandler.Delete)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.LeaveHandler.List)
					r.Post("/{id}/approve", deps.LeaveHandler.Approve)
					r.Post("/{id}/reject", deps.LeaveHandler.Reject)
				})
			})

			r.Route("/call-data", func(r chi.Router) {
				r.Post("/", deps.CallDataHandler.Submit)
				r.Get("/my", deps.CallDataHandler.GetMyCallData)
				r.Get("/{id}", deps.CallDataHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.CallDataHandler.List)
					r.Delete("/{id}", deps.CallDataHandler.Delete)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", deps.HolidayHandler.ListByYear)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", deps.HolidayHandler.Create)
					r.Put("/{id}", deps.HolidayHandler.Update)
					r.Delete("/{id}", deps.HolidayHandler.Delete)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/my", deps.PayslipHandler.GetMyPayslips)
				r.Get("/{id}/download", deps.PayslipHandler.Download)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", deps.PayslipHandler.List)
					r.Post("/", deps.PayslipHandler.Upload)
					r.Delete("/{id}", deps.PayslipHandler.Delete)
				})
			})
		})
	})

	return r
}
