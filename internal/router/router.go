package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"madrasa/internal/auth"
	apperrors "madrasa/internal/errors"
	"madrasa/internal/handler"
)

// Handlers groups everything Register needs to wire routes.
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Student      *handler.StudentHandler
	Teacher      *handler.TeacherHandler
	Subject      *handler.SubjectHandler
	Level        *handler.LevelHandler
	Subscription *handler.SubscriptionHandler
	Settings     *handler.SettingsHandler
	Report       *handler.ReportHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/verify", h.Auth.Verify)
	api.POST("/auth/refresh", h.Auth.Refresh)

	// Secured routes. The token may arrive in the Authorization header, the
	// token query parameter or a JSON body; validation also rejects access
	// tokens blacklisted on logout.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookupFuncs: []middleware.ValuesExtractor{auth.ExtractToken},
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			blacklisted, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
			if blacklisted {
				return nil, errors.New("token has been revoked")
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if errors.Is(err, auth.ErrNoToken) {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "authentication token required",
					Code:  "MISSING_TOKEN",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "INVALID_TOKEN",
			})
		},
	}))

	secured.POST("/auth/logout", h.Auth.Logout)

	// Admin account management, global scope
	adminGroup := secured.Group("/admin", auth.RequireAdmin)
	adminGroup.GET("/users", h.User.ListUsers)
	adminGroup.POST("/users", h.User.CreateUser)
	adminGroup.PUT("/users/:id", h.User.UpdateUser)
	adminGroup.DELETE("/users/:id", h.User.DeleteUser)

	// Tenant-scoped resources
	secured.GET("/students", h.Student.ListStudents)
	secured.POST("/students", h.Student.CreateStudent)
	secured.PUT("/students/:id", h.Student.UpdateStudent)
	secured.DELETE("/students/:id", h.Student.DeleteStudent)

	secured.GET("/teachers", h.Teacher.ListTeachers)
	secured.POST("/teachers", h.Teacher.CreateTeacher)
	secured.PUT("/teachers/:id", h.Teacher.UpdateTeacher)
	secured.DELETE("/teachers/:id", h.Teacher.DeleteTeacher)

	secured.GET("/subjects", h.Subject.ListSubjects)
	secured.POST("/subjects", h.Subject.CreateSubject)
	secured.PUT("/subjects/:id", h.Subject.UpdateSubject)
	secured.DELETE("/subjects/:id", h.Subject.DeleteSubject)

	secured.GET("/levels", h.Level.ListLevels)
	secured.POST("/levels", h.Level.CreateLevel)
	secured.PUT("/levels/:id", h.Level.UpdateLevel)
	secured.DELETE("/levels/:id", h.Level.DeleteLevel)

	secured.GET("/subscriptions", h.Subscription.ListSubscriptions)
	secured.POST("/subscriptions", h.Subscription.CreateSubscription)
	secured.PUT("/subscriptions/:id", h.Subscription.UpdateSubscription)
	secured.DELETE("/subscriptions/:id", h.Subscription.DeleteSubscription)

	secured.GET("/settings", h.Settings.GetSettings)
	secured.PUT("/settings", h.Settings.UpdateSettings)

	secured.GET("/reports", h.Report.GetReports)
	secured.GET("/revenue", h.Report.GetRevenue)
	secured.POST("/dashboard/stats", h.Report.DashboardStats)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
