package main

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/UserBastianProboste/practicas-api/internal/config"
	"github.com/UserBastianProboste/practicas-api/internal/domain/fiber/handler"
	"github.com/UserBastianProboste/practicas-api/internal/mail"
	"github.com/UserBastianProboste/practicas-api/internal/middleware"
	"github.com/UserBastianProboste/practicas-api/internal/model"
	"github.com/UserBastianProboste/practicas-api/internal/notify"
	"github.com/UserBastianProboste/practicas-api/internal/repository"
	"github.com/UserBastianProboste/practicas-api/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName: appConfig.Name,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			message := err.Error()
			if message == "" {
				message = "Internal Server Error"
			}
			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: appConfig.Env != "production",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.Env == "production"
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(middleware.RateLimiter(50, 1*time.Minute))

	db := ConnectDB()

	practicaRepo := repository.NewPracticaRepository(db)
	autoevaluacionRepo := repository.NewAutoevaluacionRepository(db)
	informeRepo := repository.NewInformeRepository(db)
	directorioRepo := repository.NewDirectorioRepository(db)
	notificacionRepo := repository.NewNotificacionRepository(db)
	evaluacionRepo := repository.NewEvaluacionSupervisorRepository(db)

	cliente := mail.NewCliente(config.LoadMailerConfig(), "")
	dispatcher := notify.NewDispatcher(cliente, notificacionRepo, mail.Opciones{})

	practicaUC := usecase.NewPracticaUsecase(practicaRepo, directorioRepo, dispatcher)
	autoevaluacionUC := usecase.NewAutoevaluacionUsecase(autoevaluacionRepo, practicaRepo, dispatcher)
	informeUC := usecase.NewInformeUsecase(informeRepo, practicaRepo, dispatcher)
	evaluacionUC := usecase.NewEvaluacionSupervisorUsecase(evaluacionRepo, practicaRepo, directorioRepo, dispatcher, config.LoadAuthConfig(), appConfig.BaseURL)

	handler.NewPracticaHandler(practicaUC).RegisterRoutes(app)
	handler.NewAutoevaluacionHandler(autoevaluacionUC).RegisterRoutes(app)
	handler.NewInformeHandler(informeUC).RegisterRoutes(app)
	handler.NewEvaluacionSupervisorHandler(evaluacionUC).RegisterRoutes(app)
	handler.NewNotificacionHandler(notificacionRepo).RegisterRoutes(app)

	log.Println("Server running on ", appConfig.Port)
	if err := app.Listen(appConfig.Port); err != nil {
		log.Fatal(err)
	}
}

func ConnectDB() *gorm.DB {
	dbConfig := config.LoadDBConfig()
	appConfig := config.LoadAppConfig()

	db, err := gorm.Open(postgres.Open(dbConfig.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not connect to database: %v", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		log.Fatalf("Could not get database instance: %v", err)
	}
	if appConfig.Env != "production" {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	err = db.AutoMigrate(
		&model.Estudiante{},
		&model.Empresa{},
		&model.Coordinador{},
		&model.Practica{},
		&model.Autoevaluacion{},
		&model.Informe{},
		&model.RubricaInformeFinal{},
		&model.EvaluacionSupervisor{},
		&model.Notificacion{},
	)
	if err != nil {
		log.Fatal("migration failed: ", err)
	}
	return db
}
