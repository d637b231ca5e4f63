package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/julioszeferino/api-faculdade/internal/auth"
	"github.com/julioszeferino/api-faculdade/internal/handler"
	"github.com/julioszeferino/api-faculdade/internal/repository"
)

// Register wires routes and middleware. guard is built once from the token
// service and user repository and shared by every protected route.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	users repository.UserRepository,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	guard := auth.SessionGuard(tokens, users)

	api := e.Group("/api/v1")

	usuarios := api.Group("/usuarios")
	usuarios.POST("/signup", userHandler.SignUp)
	usuarios.POST("/login", userHandler.Login)
	usuarios.GET("/logado", userHandler.Logado, guard)
	usuarios.GET("/", userHandler.ListUsers)
	usuarios.GET("/:id", userHandler.GetUser)
	usuarios.PUT("/:id", userHandler.UpdateUser)
	usuarios.DELETE("/:id", userHandler.DeleteUser)

	artigos := api.Group("/artigos")
	artigos.POST("/", articleHandler.CreateArticle, guard)
	artigos.GET("/", articleHandler.ListArticles)
	artigos.GET("/:id", articleHandler.GetArticle)
	artigos.PUT("/:id", articleHandler.UpdateArticle, guard)
	artigos.DELETE("/:id", articleHandler.DeleteArticle, guard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
