package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	mysqlRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
	redisRepo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/redis"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/comment"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/reply"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/user"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/workers"
)

const (
	defaultTimeout      = 30
	defaultAddress      = ":9090"
	defaultCacheDB      = 0
	defaultBloomBitSize = 10000000
	dbMaxRetry          = 10
	dbRetryIntervalSec  = 2
	migrationsDir       = "migrations"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// run migrations
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("got error when getting sql.DB from gorm.DB", err)
	}
	if err := goose.SetDialect("mysql"); err != nil {
		log.Fatal("failed to set goose dialect:", err)
	}
	if err := goose.Up(sqlDB, migrationsDir); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	// prepare cache
	cacheHost := os.Getenv("CACHE_HOST")
	cachePort := os.Getenv("CACHE_PORT")
	cachePass := os.Getenv("CACHE_PASS")
	cacheDBStr := os.Getenv("CACHE_DB")
	cacheDB, err := strconv.Atoi(cacheDBStr)
	if err != nil {
		log.Println("failed to parse cacheDB, using default cacheDB")
		cacheDB = defaultCacheDB
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cacheHost + ":" + cachePort,
		Password: cachePass,
		DB:       cacheDB,
	})
	defer func() {
		err = client.Close()
		if err != nil {
			log.Fatal("got error when closing the cache connection", err)
		}
	}()

	if _, err = client.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to open connection to cache", err)
		return
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	if err := request.RegisterValidations(); err != nil {
		log.Fatal("failed to register request validations:", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db, repository.UUIDGenerator)
	threadRepo := mysqlRepo.NewThreadRepository(db, repository.UUIDGenerator)
	commentRepo := mysqlRepo.NewCommentRepository(db, repository.UUIDGenerator)
	replyRepo := mysqlRepo.NewReplyRepository(db, repository.UUIDGenerator)

	// CommentLike相关的三层架构
	// 1. DB层
	likeDBRepo := mysqlRepo.NewCommentLikeRepository(db, repository.UUIDGenerator)
	// 2. Cache层
	likeCache := redisRepo.NewCommentLikeCache(client)
	// 3. Repository协调层
	likeRepo := repository.NewCommentLikeRepository(likeDBRepo, likeCache)

	bloomBitSizeStr := os.Getenv("BLOOM_FILTER_SIZE")
	bloomBitSize, err := strconv.ParseUint(bloomBitSizeStr, 10, 64)
	if err != nil {
		log.Printf("failed to parse bloom bit size, using default size")
		bloomBitSize = defaultBloomBitSize
	}
	bloomRepo := redisRepo.NewRedisBloomRepo(client, bloomBitSize)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	likeCountSyncer := workers.NewSyncLikeCountsWorker(likeDBRepo, likeCache)
	go likeCountSyncer.Start(ctx)

	// Build service Layer
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	jwtTTLStr := os.Getenv("JWT_EXPIRE_HOURS")
	jwtTTL, err := strconv.Atoi(jwtTTLStr)
	if err != nil {
		log.Println("failed to parse JWT TTL, using default 24 hours")
		jwtTTL = 24
	}
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo, bloomRepo)
	commentSvc := comment.NewService(commentRepo, threadRepo, likeRepo, bloomRepo, likeCountSyncer)
	replySvc := reply.NewService(replyRepo, threadRepo, commentRepo, bloomRepo)
	userSvc := user.NewService(userRepo, jwtSecret, time.Duration(jwtTTL)*time.Hour)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	userHandler := rest.NewUserHandler(userSvc)

	authMiddleware := middleware.AuthMiddleware(string(jwtSecret))

	// Prepare bloom filter
	if err := threadSvc.InitBloomFilter(ctx); err != nil {
		log.Printf("failed to init bloom filter: %v\n", err)
		return
	}

	// Register routes
	route.POST("/register", userHandler.Register)
	route.POST("/login", userHandler.Login)

	route.GET("/threads/:threadId", threadHandler.GetDetail)

	authorized := route.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.POST("/threads", threadHandler.Store)
		authorized.POST("/threads/:threadId/comments", commentHandler.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.DeleteComment)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", commentHandler.ToggleLike)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.CreateReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.DeleteReply)
	}

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}
	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Waiting for worker to cleanup...")
	time.Sleep(2 * time.Second)

	log.Println("Server exiting")
}
