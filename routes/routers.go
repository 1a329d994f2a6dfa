package routes

import (
	"net/http"

	"nexustech/controllers"
	_ "nexustech/docs"
	"nexustech/middleware"
	"nexustech/models"
	"nexustech/response"
	"nexustech/services"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the services the HTTP layer is built from
type Dependencies struct {
	Users    *services.UserService
	Work     *services.WorkService
	Payroll  *services.PayrollService
	Reports  *services.ReportService
	Contacts *services.ContactService
	AI       *services.AIService
	Avatars  *services.AvatarService
	Auth     *services.AuthService
	Tokens   middleware.TokenParser
	Melody   *melody.Melody
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	userController := controllers.NewUserController(deps.Users, deps.Avatars)
	authController := controllers.NewAuthController(deps.Auth)
	workController := controllers.NewWorkController(deps.Work, deps.Users)
	paymentController := controllers.NewPaymentController(deps.Payroll)
	reportController := controllers.NewReportController(deps.Reports)
	contactController := controllers.NewContactController(deps.Contacts, deps.AI)

	authed := middleware.Authenticate(deps.Tokens)
	role := func(roles ...models.Role) gin.HandlerFunc {
		return middleware.RequireRole(deps.Users, roles...)
	}
	employee := role(models.RoleEmployee)
	hr := role(models.RoleHR)
	admin := role(models.RoleAdmin)
	staff := role(models.RoleAdmin, models.RoleHR)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "NexusTech server running...")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.NoRoute(response.NotFound)
	if deps.Melody != nil {
		router.GET("/ws", authed, staff, func(c *gin.Context) {
			deps.Melody.HandleRequest(c.Writer, c.Request)
		})
	}

	// auth
	router.POST("/login", authController.Login)
	router.POST("/login/google", authController.LoginWithGoogle)
	router.POST("/logout", authController.Logout)

	// users
	router.POST("/users", userController.CreateUser)
	router.GET("/user/role/:email", userController.GetRole)
	router.GET("/fired/:email", userController.IsFired)
	router.GET("/employee-list", authed, userController.ListEmployees)
	router.GET("/users", authed, admin, userController.ListStaff)
	router.GET("/all-users/:email", authed, userController.GetProfile)
	router.PATCH("/employee-verify/:id", authed, hr, userController.Verify)
	router.PATCH("/make-hr/:id", authed, admin, userController.MakeHR)
	router.PATCH("/fired/:id", authed, admin, userController.Fire)
	router.PATCH("/pay/salary-update", authed, admin, userController.UpdateSalary)
	router.POST("/upload/avatar", authed, userController.UploadAvatar)

	// work
	router.GET("/worksheet/:email", authed, employee, workController.ListWork)
	router.POST("/daily-work", authed, employee, workController.SubmitWork)
	router.PUT("/worksheet/:id", authed, employee, workController.UpdateWork)
	router.DELETE("/worksheet/:id", authed, employee, workController.DeleteWork)
	router.GET("/submited-work", authed, hr, workController.Summary)

	// payroll
	router.GET("/payment-requests", authed, admin, paymentController.ListPaymentRequests)
	router.POST("/payment/request", authed, hr, paymentController.CreatePaymentRequest)
	router.POST("/approve-pay-request", authed, admin, paymentController.ApprovePaymentRequest)
	router.GET("/payment-history/:slug", authed, paymentController.PaymentHistory)

	// reports
	router.GET("/admin-stats", authed, admin, reportController.AdminStats)
	router.GET("/salary-request-summary", authed, admin, reportController.SalaryRequestSummary)

	// contacts and ai
	router.GET("/contacts", authed, admin, contactController.List)
	router.POST("/contact", contactController.Create)
	router.DELETE("/contact/:id", authed, admin, contactController.Delete)
	router.GET("/gemini-ai", contactController.Ask)
}
