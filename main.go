package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"progression-service/internal/cache"
	"progression-service/internal/config"
	"progression-service/internal/db"
	"progression-service/internal/event"
	"progression-service/internal/handlers"
	"progression-service/internal/middleware"
	"progression-service/internal/models"
	"progression-service/internal/repository"
	"progression-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	db.InitMongo(cfg.MongoDB.URI)
	database := db.Client.Database(cfg.MongoDB.Database)

	// Redis stage cache (optional)
	var stageCache *cache.StageCache
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis not reachable, stage cache disabled: %v", err)
		} else {
			stageCache = cache.NewStageCache(redisClient, cfg.Redis.StageTTL)
		}
		cancel()
	} else {
		log.Println("Redis not configured, stage cache disabled")
	}

	// RabbitMQ event publisher (optional)
	var events service.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		publisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		events = publisher
	} else {
		log.Println("RabbitMQ not configured, progression events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Repositories
	userRepo := repository.NewUserRepository(database)
	stageRepo := repository.NewStageRepository(database)
	questRepo := repository.NewQuestRepository(database)
	badgeRepo := repository.NewBadgeRepository(database)
	characterRepo := repository.NewCharacterRepository(database)
	resultRepo := repository.NewResultRepository(database)

	// Services
	authService := service.NewAuthService(userRepo, characterRepo, events, cfg.JWT.Secret, cfg.JWT.TTL)
	stageService := service.NewStageService(userRepo, stageRepo, badgeRepo, stageCache, events)
	questService := service.NewQuestService(userRepo, questRepo, resultRepo, events)
	userService := service.NewUserService(userRepo)
	characterService := service.NewCharacterService(characterRepo)
	badgeService := service.NewBadgeService(badgeRepo)
	resultService := service.NewResultService(resultRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	stageHandler := handlers.NewStageHandler(stageService)
	questHandler := handlers.NewQuestHandler(questService)
	userHandler := handlers.NewUserHandler(userService)
	characterHandler := handlers.NewCharacterHandler(characterService)
	badgeHandler := handlers.NewBadgeHandler(badgeService)
	resultHandler := handlers.NewResultHandler(resultService)

	requireAuth := middleware.RequireAuth([]byte(cfg.JWT.Secret))
	requireAdmin := middleware.RequireRole(models.RoleAdmin)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	stages := api.Group("/stages")
	{
		stages.GET("/", requireAuth, stageHandler.ListStages)
		stages.GET("/:id", requireAuth, stageHandler.GetStage)
		stages.POST("/:id/complete", requireAuth, stageHandler.CompleteStage)
		stages.POST("/", requireAuth, requireAdmin, stageHandler.CreateStage)
		stages.PATCH("/:id", requireAuth, requireAdmin, stageHandler.UpdateStage)
		stages.DELETE("/:id", requireAuth, requireAdmin, stageHandler.DeleteStage)
	}

	quests := api.Group("/quests")
	{
		quests.GET("/", requireAuth, questHandler.ListQuests)
		quests.GET("/:id", requireAuth, questHandler.GetQuest)
		quests.POST("/:id/submit", requireAuth, questHandler.SubmitQuest)
		quests.GET("/:id/full", requireAuth, requireAdmin, questHandler.GetQuestAdmin)
		quests.POST("/", requireAuth, requireAdmin, questHandler.CreateQuest)
		quests.PATCH("/:id", requireAuth, requireAdmin, questHandler.UpdateQuest)
		quests.DELETE("/:id", requireAuth, requireAdmin, questHandler.DeleteQuest)
	}

	users := api.Group("/users")
	{
		users.GET("/me", requireAuth, userHandler.GetMe)
		users.GET("/", requireAuth, requireAdmin, userHandler.ListUsers)
		users.GET("/:id", requireAuth, requireAdmin, userHandler.GetUser)
		users.DELETE("/:id", requireAuth, requireAdmin, userHandler.DeleteUser)
	}

	characters := api.Group("/characters")
	{
		characters.GET("/", characterHandler.ListCharacters)
		characters.GET("/:id", characterHandler.GetCharacter)
		characters.POST("/", requireAuth, requireAdmin, characterHandler.CreateCharacter)
		characters.PATCH("/:id", requireAuth, requireAdmin, characterHandler.UpdateCharacter)
		characters.DELETE("/:id", requireAuth, requireAdmin, characterHandler.DeleteCharacter)
	}

	badges := api.Group("/badges")
	{
		badges.GET("/", badgeHandler.ListBadges)
		badges.GET("/:id", badgeHandler.GetBadge)
		badges.POST("/", requireAuth, requireAdmin, badgeHandler.CreateBadge)
	}

	results := api.Group("/results")
	{
		results.GET("/me", requireAuth, resultHandler.ListMyResults)
		results.GET("/quest/:id", requireAuth, requireAdmin, resultHandler.ListQuestResults)
	}

	log.Printf("progression-service listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
