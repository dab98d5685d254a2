// Package server assembles the gin engine serving the trivia API.
package server

import (
	"log/slog"

	_ "trivia-api/docs"
	"trivia-api/internal/handlers"
	"trivia-api/internal/middleware"
	"trivia-api/internal/services"
	"trivia-api/internal/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

type Options struct {
	DB     *gorm.DB
	Hub    *ws.Hub
	Auth   *services.AuthService
	Logger *slog.Logger
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// New wires services, handlers and middleware into a router.
func New(opts Options) *gin.Engine {
	if opts.Hub == nil {
		opts.Hub = ws.NewHub()
	}
	if opts.Auth == nil {
		opts.Auth = services.NewAuthService("", "")
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.TracerProvider == nil {
		opts.TracerProvider = otel.GetTracerProvider()
	}

	categoryService := services.NewCategoryService(opts.DB)
	questionService := services.NewQuestionService(opts.DB, categoryService)
	quizService := services.NewQuizService(opts.DB)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService, opts.Hub)
	quizHandler := handlers.NewQuizHandler(quizService)
	authHandler := handlers.NewAuthHandler(opts.Auth)
	wsHandler := handlers.NewWSHandler(opts.Hub)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Tracing(opts.TracerProvider),
		middleware.Logger(opts.Logger),
		cors.New(cors.Config{
			AllowOrigins: []string{"*"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		}),
	)

	r.NoRoute(handlers.NotFound)
	r.NoMethod(handlers.MethodNotAllowed)

	r.GET("/", handlers.Health)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/questions", wsHandler.HandleQuestionEvents)

	if opts.Auth.Enabled() {
		r.POST("/auth/login", authHandler.Login)
	}

	admin := middleware.AdminAuth(opts.Auth)

	r.GET("/categories", categoryHandler.ListCategories)
	r.GET("/categories/:id/questions", categoryHandler.QuestionsByCategory)

	questions := r.Group("/questions")
	{
		questions.GET("", questionHandler.ListQuestions)
		questions.POST("", admin, questionHandler.CreateQuestion)
		questions.POST("/search", questionHandler.SearchQuestions)
		questions.GET("/export", admin, questionHandler.ExportQuestions)
		questions.POST("/import", admin, questionHandler.ImportQuestions)
		questions.DELETE("/:id", admin, questionHandler.DeleteQuestion)
	}

	r.POST("/quizzes", quizHandler.NextQuestion)

	return r
}
