package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/stafflow/hr-backend-go/internal/config"
	"github.com/stafflow/hr-backend-go/internal/domain/attendance"
	"github.com/stafflow/hr-backend-go/internal/domain/calldata"
	"github.com/stafflow/hr-backend-go/internal/domain/employee"
	"github.com/stafflow/hr-backend-go/internal/domain/holiday"
	"github.com/stafflow/hr-backend-go/internal/domain/leave"
	"github.com/stafflow/hr-backend-go/internal/domain/payslip"
	"github.com/stafflow/hr-backend-go/internal/domain/user"
	appHTTP "github.com/stafflow/hr-backend-go/internal/handler/http"
	"github.com/stafflow/hr-backend-go/internal/pkg/clock"
	"github.com/stafflow/hr-backend-go/internal/pkg/database"
	"github.com/stafflow/hr-backend-go/internal/pkg/jwt"
	"github.com/stafflow/hr-backend-go/internal/pkg/oauth"
	"github.com/stafflow/hr-backend-go/internal/pkg/storage"
	"github.com/stafflow/hr-backend-go/internal/repository/memory"
	"github.com/stafflow/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafflow/hr-backend-go/internal/service/attendance"
	authService "github.com/stafflow/hr-backend-go/internal/service/auth"
	callDataService "github.com/stafflow/hr-backend-go/internal/service/calldata"
	employeeService "github.com/stafflow/hr-backend-go/internal/service/employee"
	holidayService "github.com/stafflow/hr-backend-go/internal/service/holiday"
	leaveService "github.com/stafflow/hr-backend-go/internal/service/leave"
	payslipService "github.com/stafflow/hr-backend-go/internal/service/payslip"
)

// repositories groups one store driver's implementations.
type repositories struct {
	user       user.UserRepository
	employee   employee.EmployeeRepository
	attendance attendance.AttendanceRepository
	leave      leave.LeaveRequestRepository
	callData   calldata.CallDataRepository
	holiday    holiday.HolidayRepository
	payslip    payslip.PayslipRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var repos repositories
	switch cfg.App.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		repos = repositories{
			user:       postgresql.NewUserRepository(db),
			employee:   postgresql.NewEmployeeRepository(db),
			attendance: postgresql.NewAttendanceRepository(db),
			leave:      postgresql.NewLeaveRequestRepository(db),
			callData:   postgresql.NewCallDataRepository(db),
			holiday:    postgresql.NewHolidayRepository(db),
			payslip:    postgresql.NewPayslipRepository(db),
		}
	case config.StoreDriverMemory:
		repos = repositories{
			user:       memory.NewUserRepository(),
			employee:   memory.NewEmployeeRepository(),
			attendance: memory.NewAttendanceRepository(),
			leave:      memory.NewLeaveRequestRepository(),
			callData:   memory.NewCallDataRepository(),
			holiday:    memory.NewHolidayRepository(),
			payslip:    memory.NewPayslipRepository(),
		}
		if err := seedAdminUser(repos.user); err != nil {
			log.Fatal("Failed to seed admin user: ", err)
		}
	default:
		log.Fatal("Unsupported store driver: ", cfg.App.StoreDriver)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}
	clk := clock.NewSystemClock(loc)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.ClientID != "" {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	authSvc := authService.NewAuthService(repos.user, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(repos.employee)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, clk)
	leaveSvc := leaveService.NewLeaveService(repos.leave, repos.employee, clk)
	callDataSvc := callDataService.NewCallDataService(repos.callData, repos.attendance, repos.employee, clk)
	holidaySvc := holidayService.NewHolidayService(repos.holiday)
	payslipSvc := payslipService.NewPayslipService(repos.payslip, repos.employee, fileStorage)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:        jwtService,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		CallDataHandler:   appHTTP.NewCallDataHandler(callDataSvc),
		HolidayHandler:    appHTTP.NewHolidayHandler(holidaySvc),
		PayslipHandler:    appHTTP.NewPayslipHandler(payslipSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

// seedAdminUser provisions a default admin account so the memory driver is
// usable out of the box. Dev convenience only; the memory store never holds
// production data.
func seedAdminUser(users user.UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = users.Create(context.Background(), user.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	return err
}
