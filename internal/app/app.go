package app

import (
	"context"
	"fmt"

	"promoadmin/internal/auth"
	"promoadmin/internal/config"
	"promoadmin/internal/handlers"
	"promoadmin/internal/logger"
	"promoadmin/internal/models"
	"promoadmin/internal/repositories"
	"promoadmin/internal/routes"
	"promoadmin/internal/services"
	"promoadmin/internal/storage"
	"promoadmin/internal/utils"
	"promoadmin/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Run boots the admin API: config, logging, database, migrations, DI and
// the HTTP server.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if err := migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed first admin: %w", err)
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Server.Env)
	return router.Run(addr)
}

// SetupRouter builds the gin engine with all dependencies wired. Tests call
// it directly against their own database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	v := validator.New()
	emailSender := utils.NewEmailSender(cfg)
	imageService := services.NewImageService(store, services.ImageConfigFromApp(cfg))

	svc := &services.ServiceContainer{
		AuthService:    services.NewAuthService(repositories.NewUserRepository(db), emailSender),
		BannerService:  services.NewBannerService(repositories.NewBannerRepository(db), imageService),
		EventService:   services.NewEventService(repositories.NewEventRepository(db), imageService),
		PartnerService: services.NewPartnerService(repositories.NewPartnerRepository(db), imageService),
		SupportService: services.NewSupportService(repositories.NewSupportRepository(db)),
		ImageService:   imageService,
	}

	h := handlers.NewAppHandlers(v, svc, store)

	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, h)

	return router, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}

func migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension on postgres.
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Banner{},
		&models.Event{},
		&models.EventParticipant{},
		&models.EventCertificate{},
		&models.PartnerCategory{},
		&models.Partner{},
		&models.SupportSection{},
		&models.SupportPlan{},
		&models.SupportFeature{},
		&models.SupportOption{},
	)
}

// seedFirstAdmin creates the bootstrap admin account on an empty users
// table, so a fresh deployment can log in.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hashed,
		Role:         models.UserRoleAdmin,
		IsActive:     true,
	}

	userRepo := repositories.NewUserRepository(db)
	if err := userRepo.Create(context.Background(), admin); err != nil {
		return err
	}

	logger.Info("Seeded first admin account", "email", admin.Email)
	return nil
}
