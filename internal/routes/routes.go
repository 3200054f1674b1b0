package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	"github.com/BruksfildServices01/plantoes/internal/config"
	"github.com/BruksfildServices01/plantoes/internal/handlers"
	"github.com/BruksfildServices01/plantoes/internal/infra/imaging"
	infraRepo "github.com/BruksfildServices01/plantoes/internal/infra/repository"
	"github.com/BruksfildServices01/plantoes/internal/middleware"
	"github.com/BruksfildServices01/plantoes/internal/session"
	ucAuth "github.com/BruksfildServices01/plantoes/internal/usecase/auth"
	ucHospital "github.com/BruksfildServices01/plantoes/internal/usecase/hospital"
	ucProof "github.com/BruksfildServices01/plantoes/internal/usecase/proof"
	ucReport "github.com/BruksfildServices01/plantoes/internal/usecase/report"
	ucShift "github.com/BruksfildServices01/plantoes/internal/usecase/shift"
	"github.com/BruksfildServices01/plantoes/internal/validators"
)

// RegisterRoutes wires every handler. proofs may be nil when no bucket is
// configured.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	revoker session.Revoker,
	proofs ucProof.Store,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)
	hospitalRepo := infraRepo.NewHospitalGormRepository(db)
	shiftRepo := infraRepo.NewShiftGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	tokens := ucAuth.Tokens{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL}

	// ======================================================
	// 🧠 USE CASES - AUTH / PROFILE
	// ======================================================
	registerUC := ucAuth.NewRegister(professionalRepo, tokens, auditDispatcher, validators.IsEmailDomainValid)
	loginUC := ucAuth.NewLogin(professionalRepo, tokens)
	logoutUC := ucAuth.NewLogout(revoker)
	getProfileUC := ucAuth.NewGetProfile(professionalRepo)
	updateProfileUC := ucAuth.NewUpdateProfile(professionalRepo, auditDispatcher)

	// ======================================================
	// 🧠 USE CASES - HOSPITALS
	// ======================================================
	createHospitalUC := ucHospital.NewCreateHospital(hospitalRepo, auditDispatcher)
	updateHospitalUC := ucHospital.NewUpdateHospital(hospitalRepo, auditDispatcher)
	deleteHospitalUC := ucHospital.NewDeleteHospital(hospitalRepo, auditDispatcher)
	listHospitalsUC := ucHospital.NewListHospitals(hospitalRepo)
	getHospitalUC := ucHospital.NewGetHospital(hospitalRepo)

	// ======================================================
	// 🧠 USE CASES - SHIFTS
	// ======================================================
	recordShiftUC := ucShift.NewRecordShift(shiftRepo, auditDispatcher)
	updateShiftUC := ucShift.NewUpdateShift(shiftRepo, auditDispatcher)
	deleteShiftUC := ucShift.NewDeleteShift(shiftRepo, auditDispatcher)
	forecastShiftUC := ucShift.NewForecastShift(shiftRepo, auditDispatcher)
	recordReceiptUC := ucShift.NewRecordReceipt(shiftRepo, auditDispatcher)
	conciliateShiftUC := ucShift.NewConciliateShift(shiftRepo, auditDispatcher)
	listShiftsUC := ucShift.NewListShifts(shiftRepo)
	getShiftUC := ucShift.NewGetShift(shiftRepo)

	// ======================================================
	// 🧠 USE CASES - REPORTS
	// ======================================================
	calendarUC := ucReport.NewCalendar(shiftRepo)
	historyUC := ucReport.NewHistory(shiftRepo)
	historyRangeUC := ucReport.NewHistoryRange(shiftRepo, cfg.Timezone)
	dashboardUC := ucReport.NewDashboard(shiftRepo)

	// ======================================================
	// 🧠 USE CASES - PROOFS
	// ======================================================
	var uploadProofUC *ucProof.UploadProof
	if proofs != nil {
		uploadProofUC = ucProof.NewUploadProof(proofs, imaging.Convert, cfg.ProofMaxWidth, auditDispatcher)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC)
	meHandler := handlers.NewMeHandler(getProfileUC, updateProfileUC)

	hospitalHandler := handlers.NewHospitalHandler(
		createHospitalUC,
		updateHospitalUC,
		deleteHospitalUC,
		listHospitalsUC,
		getHospitalUC,
	)

	shiftHandler := handlers.NewShiftHandler(
		recordShiftUC,
		updateShiftUC,
		deleteShiftUC,
		forecastShiftUC,
		recordReceiptUC,
		conciliateShiftUC,
		listShiftsUC,
		getShiftUC,
		cfg.Timezone,
	)

	reportHandler := handlers.NewReportHandler(
		calendarUC,
		historyUC,
		historyRangeUC,
		dashboardUC,
		cfg.Timezone,
	)

	proofHandler := handlers.NewProofHandler(uploadProofUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, revoker))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.POST("/me/logout", authHandler.Logout)

			// ------------------------------
			// HOSPITALS
			// ------------------------------
			secured.GET("/me/hospitals", hospitalHandler.List)
			secured.POST("/me/hospitals", hospitalHandler.Create)
			secured.GET("/me/hospitals/:id", hospitalHandler.Get)
			secured.PATCH("/me/hospitals/:id", hospitalHandler.Update)
			secured.DELETE("/me/hospitals/:id", hospitalHandler.Delete)

			// ------------------------------
			// SHIFTS
			// ------------------------------
			secured.GET("/me/shifts", shiftHandler.List)
			secured.POST("/me/shifts", shiftHandler.Create)
			secured.GET("/me/shifts/:id", shiftHandler.Get)
			secured.PATCH("/me/shifts/:id", shiftHandler.Update)
			secured.DELETE("/me/shifts/:id", shiftHandler.Delete)
			secured.POST("/me/shifts/:id/forecast", shiftHandler.Forecast)
			secured.POST("/me/shifts/:id/receipts", shiftHandler.Receive)
			secured.POST("/me/shifts/:id/conciliate", shiftHandler.Conciliate)

			// ------------------------------
			// REPORTS
			// ------------------------------
			secured.GET("/me/calendar", reportHandler.Calendar)
			secured.GET("/me/history", reportHandler.History)
			secured.GET("/me/history/range", reportHandler.HistoryRange)
			secured.GET("/me/history/export", reportHandler.Export)
			secured.GET("/me/dashboard", reportHandler.Dashboard)

			secured.POST("/me/proofs", proofHandler.Upload)
			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
