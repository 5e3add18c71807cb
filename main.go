package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/maxfahl/Labyrinths/api"
	"github.com/maxfahl/Labyrinths/api/historyapi"
	api_i "github.com/maxfahl/Labyrinths/api/i"
	"github.com/maxfahl/Labyrinths/api/identity"
	"github.com/maxfahl/Labyrinths/api/mazeapi"
	"github.com/maxfahl/Labyrinths/config"
	"github.com/maxfahl/Labyrinths/infrastruture/cache"
	logger "github.com/maxfahl/Labyrinths/infrastruture/log"
	"github.com/maxfahl/Labyrinths/infrastruture/repo"
	"github.com/maxfahl/Labyrinths/infrastruture/sortedstorage"
	"github.com/maxfahl/Labyrinths/infrastruture/token"
	"github.com/maxfahl/Labyrinths/service"
	"github.com/maxfahl/Labyrinths/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient       *mongo.Client
	redisClient       *redis.Client
	userRepo          *repo.UserRepo
	historyRepo       *repo.HistoryRepo
	mazeCache         i.MazeCache
	recentQueue       i.SortedQueue
	mazeService       i.MazeGenerator
	historyService    i.HistoryKeeper
	jwtTokenizer      i.Tokenizer
	authService       i.Authenticator
	mazeController    api_i.Controller
	historyController api_i.Controller
	authController    api_i.Controller
	router            *api.Router
	appLogger         i.Logger
)

func mustLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(ctx context.Context, client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	historyRepo = repo.NewHistoryRepo(client, config.Envs.DBName, "history")

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating user indexes: %v", err))
		os.Exit(1)
	}
	if err := historyRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Error(fmt.Sprintf("Creating history indexes: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Repositories initialized")
}

func initStorage(client *redis.Client) {
	var err error
	mazeCache, err = cache.NewRedisMazeCache(client, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze cache: %v", err))
		os.Exit(1)
	}

	recentQueue, err = sortedstorage.NewRedisSortedQueue(client, config.Envs.CacheTTLSeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating recent maze queue: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Redis storage initialized")
}

func initMazeService() {
	var err error
	mazeService, err = service.NewMazeService(mazeCache, recentQueue, mustLogger("MAZE", config.ColorCyan), service.MazeOptions{
		MaxDimension: config.Envs.MaxMazeDimension,
		RecentLimit:  int64(config.Envs.RecentLimit),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initHistoryService() {
	var err error
	historyService, err = service.NewHistoryService(historyRepo, mazeService, mustLogger("HISTORY", config.ColorMagenta))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating history service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("History service initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer, mustLogger("AUTH", config.ColorBlue))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initControllers() {
	var err error
	authController = identity.NewIdentityServer(authService)

	mazeController, err = mazeapi.NewMazeController(mazeService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}

	historyController, err = historyapi.NewHistoryController(historyService)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating history controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Mode:                    config.Envs.GinMode,
		Controllers:             []api_i.Controller{authController, mazeController, historyController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = mustLogger("APP", config.ColorGreen)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(ctx, mongoClient)
	initStorage(redisClient)
	initMazeService()
	initHistoryService()
	initJWTTokenizer()
	initAuthService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
