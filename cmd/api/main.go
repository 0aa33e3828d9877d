package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/checkmyxy-api/internal/config"
	"github.com/yourusername/checkmyxy-api/internal/handler"
	"github.com/yourusername/checkmyxy-api/internal/middleware"
	pgRepo "github.com/yourusername/checkmyxy-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/checkmyxy-api/internal/repository/redis"
	"github.com/yourusername/checkmyxy-api/internal/service"
	ws "github.com/yourusername/checkmyxy-api/internal/websocket"
	"github.com/yourusername/checkmyxy-api/pkg/auth"
	"github.com/yourusername/checkmyxy-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	sessionRepo, err := redisRepo.NewSessionRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize SessionRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервис JWT учителя
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWT service: %v", err)
		os.Exit(1)
	}

	// WebSocket-менеджер live-ленты результатов
	wsManager := ws.NewManager()

	// Инициализируем сервисы
	authService, err := service.NewAuthService(cfg.Auth.TeacherPassword, jwtService)
	if err != nil {
		log.Printf("Failed to initialize auth service: %v", err)
		os.Exit(1)
	}

	questionService := service.NewQuestionService(questionRepo)
	resultService := service.NewResultService(resultRepo, questionRepo, wsManager)
	attemptService := service.NewAttemptService(questionRepo, resultRepo, resultService)
	studentService := service.NewStudentService(sessionRepo, time.Duration(cfg.Auth.SessionTTLHrs)*time.Hour)

	var emailService service.EmailService = &service.NoopEmailService{}
	if cfg.Email.Enabled {
		resendService, err := service.NewResendEmailService(cfg.Email.ResendAPIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Failed to initialize email service: %v", err)
			os.Exit(1)
		}
		emailService = resendService
	}

	// Пустой банк вопросов наполняется стартовым набором
	if err := questionService.EnsureSampleQuestions(); err != nil {
		log.Printf("Failed to seed sample questions: %v", err)
		os.Exit(1)
	}

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	studentHandler := handler.NewStudentHandler(studentService, attemptService)
	teacherHandler := handler.NewTeacherHandler(questionService, resultService, emailService, cfg.Email.TeacherEmail)
	wsHandler := handler.NewWSHandler(wsManager, jwtService)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	sessionMiddleware := middleware.NewSessionMiddleware(studentService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := os.Getenv("GIN_MODE") == "release"
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8000", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Вход учителя
		api.POST("/auth/teacher/login", authHandler.LoginTeacher)

		// Маршруты ученика
		student := api.Group("/student")
		{
			student.POST("/login", studentHandler.Login)

			authedStudent := student.Group("")
			authedStudent.Use(sessionMiddleware.RequireStudent())
			{
				authedStudent.POST("/logout", studentHandler.Logout)
				authedStudent.GET("/dashboard", studentHandler.Dashboard)
				authedStudent.POST("/stages/:stage/start", middleware.ExtractStageParam("stage"), studentHandler.StartStage)

				attempt := authedStudent.Group("/attempt")
				{
					attempt.GET("/question", studentHandler.CurrentQuestion)
					attempt.POST("/answer", studentHandler.Answer)
					attempt.POST("/next", studentHandler.Next)
					attempt.POST("/back", studentHandler.Back)
					attempt.POST("/finish", studentHandler.Finish)
				}
			}
		}

		// Маршруты учителя
		teacher := api.Group("/teacher")
		teacher.Use(authMiddleware.RequireTeacher())
		{
			teacher.GET("/stats", teacherHandler.Stats)

			questions := teacher.Group("/questions")
			{
				questions.GET("", teacherHandler.ListQuestions)
				questions.POST("", teacherHandler.AddQuestion)
				questions.DELETE("/:id", teacherHandler.DeleteQuestion)
				questions.POST("/reset", teacherHandler.ResetQuestions)
				questions.GET("/export", teacherHandler.ExportQuestions)
			}

			results := teacher.Group("/results")
			{
				results.GET("", teacherHandler.ClassResults)
				results.GET("/student", teacherHandler.StudentResults)
				results.GET("/export", teacherHandler.ExportResultsXLSX)
				results.POST("/email-recap", teacherHandler.EmailRecap)
				results.DELETE("/:id", middleware.ExtractUintParam("id", "resultID"), teacherHandler.DeleteResult)
			}
		}
	}

	// WebSocket маршрут live-ленты результатов
	router.GET("/ws", wsHandler.HandleConnection)

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
