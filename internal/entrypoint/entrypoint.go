package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcircle/internal/app"
	"github.com/mrlokans/bookcircle/internal/auth"
	"github.com/mrlokans/bookcircle/internal/config"
	"github.com/mrlokans/bookcircle/internal/covers"
	"github.com/mrlokans/bookcircle/internal/exporters"
	http_controllers "github.com/mrlokans/bookcircle/internal/http"
	"github.com/mrlokans/bookcircle/internal/scheduler"
	"github.com/mrlokans/bookcircle/internal/tasks"
	"github.com/mrlokans/bookcircle/internal/validation"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// csrfSecret accepts a hex encoded secret, or any other string as raw bytes.
func csrfSecret(configured string) []byte {
	if configured == "" {
		return nil
	}
	secret, err := hex.DecodeString(configured)
	if err != nil {
		return []byte(configured)
	}
	return secret
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting BookCircle v%s", version)

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize stores: %v", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if cfg.Latency.Scale > 0 {
		log.Printf("Simulated network latency enabled (scale %.2f)", cfg.Latency.Scale)
	}

	routerCfg := http_controllers.RouterConfig{
		Sessions:      a.Sessions,
		Library:       a.Library,
		Reviews:       a.Reviews,
		Database:      a.DB,
		Validator:     validation.New(),
		CSRFSecret:    csrfSecret(cfg.Auth.CSRFSecret),
		SecureCookies: cfg.Auth.SecureCookies,
		HSTSMaxAge:    cfg.HTTP.HSTSMaxAge,
		Version:       version,
	}
	if routerCfg.CSRFSecret == nil {
		log.Printf("CSRF protection disabled (set AUTH_CSRF_SECRET to enable)")
	}

	// Get underlying SQL DB for the cookie session store
	sqlDB, err := a.DB.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}
	routerCfg.SessionManager, err = auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	rateLimiter := auth.NewRateLimiter(auth.RateLimitConfig{
		MaxAttempts:     cfg.Auth.MaxLoginAttempts,
		WindowDuration:  cfg.Auth.RateLimitWindow,
		LockoutDuration: cfg.Auth.LockoutDuration,
	})
	routerCfg.RateLimiter = rateLimiter

	if cfg.Covers.CacheDir != "" {
		coverCache, err := covers.NewCache(cfg.Covers.CacheDir)
		if err != nil {
			log.Printf("Cover cache disabled: %v", err)
		} else {
			routerCfg.Covers = coverCache
		}
	}

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:         cfg.Tasks.Workers,
			ReleaseAfter:    cfg.Tasks.ReleaseAfter,
			CleanupInterval: cfg.Tasks.CleanupInterval,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewExportLibraryQueue(a.Library, exporters.NewFileExporter(cfg.Export.Dir)),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		routerCfg.TaskQueue = taskClient
		log.Printf("Library exports will be written to %s", cfg.Export.Dir)
	}

	// Scheduled demo data reset
	var resetScheduler *scheduler.DemoResetScheduler
	if cfg.Demo.ResetEnabled {
		resetScheduler = scheduler.NewDemoResetScheduler(a.Reviews, a.Library, cfg.Demo.ResetSchedule)
		if err := resetScheduler.Start(context.Background()); err != nil {
			log.Fatalf("Failed to start demo reset scheduler: %v", err)
		}
		routerCfg.DemoReset = resetScheduler
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if resetScheduler != nil {
			resetScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
		rateLimiter.Stop()
	}

	Serve(router, cfg, onShutdown)
}
