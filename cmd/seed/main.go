package main

import (
	"flag"
	"log"
	"os"

	"github.com/yourusername/checkmyxy-api/internal/config"
	pgRepo "github.com/yourusername/checkmyxy-api/internal/repository/postgres"
	"github.com/yourusername/checkmyxy-api/internal/service"
	"github.com/yourusername/checkmyxy-api/pkg/database"
)

// Утилита наполнения банка вопросов стартовым набором.
// По умолчанию наполняет только пустой банк; с флагом -force
// заменяет текущее содержимое целиком.
func main() {
	force := flag.Bool("force", false, "заменить банк вопросов стартовым набором даже если он не пуст")
	flag.Parse()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	questionService := service.NewQuestionService(pgRepo.NewQuestionRepo(db))

	if *force {
		if err := questionService.ResetToSample(); err != nil {
			log.Printf("Failed to reset question bank: %v", err)
			os.Exit(1)
		}
		log.Println("Банк вопросов заменён стартовым набором.")
		return
	}

	if err := questionService.EnsureSampleQuestions(); err != nil {
		log.Printf("Failed to seed questions: %v", err)
		os.Exit(1)
	}
	log.Println("Наполнение завершено.")
}
