package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitewatch/internal/handlers"
	"sitewatch/internal/logger"
	"sitewatch/internal/models"
	"sitewatch/internal/registry"
	"sitewatch/internal/repository"
	"sitewatch/internal/server"
	"sitewatch/internal/service"

	"github.com/spf13/viper"
)

const defaultSimTick = 30 * time.Second

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// device registry is fixed at startup
	reg := registry.New(loadDevices(log))

	// flat-file storage
	repos, err := repository.NewRepository(storageConfig(), reg.IDs())
	if err != nil {
		log.Fatalw("failed to init storage", "err", err)
	}

	// wire dependencies
	services := service.NewService(repos, reg)
	apiHandler := handlers.NewHandler(services, reg, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// demo simulator loop, off unless enabled in config
	if viper.GetBool("simulator.enabled") {
		tick := viper.GetDuration("simulator.tick")
		if tick <= 0 {
			tick = defaultSimTick
		}
		log.Infow("starting power simulator", "tick", tick)
		go services.Simulator.Run(ctx, tick)
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// loadDevices reads the registry from config, defaulting to the single
// pilot-site junction box when none are configured.
func loadDevices(log *logger.Logger) []models.Device {
	var devices []models.Device
	if err := viper.UnmarshalKey("devices", &devices); err != nil {
		log.Fatalw("invalid devices config", "err", err)
	}
	if len(devices) == 0 {
		log.Infow("no devices configured; using default registry")
		devices = []models.Device{
			{ID: "DEV001", Name: "Junction Box A", Lat: 18.645917, Lng: 73.792500},
		}
	}
	return devices
}

func storageConfig() repository.StorageConfig {
	cfg := repository.StorageConfig{
		AlertsFile:   viper.GetString("storage.alerts_file"),
		MessagesFile: viper.GetString("storage.messages_file"),
		ImagesDir:    viper.GetString("storage.images_dir"),
	}
	if cfg.AlertsFile == "" {
		cfg.AlertsFile = "alerts_history.json"
	}
	if cfg.MessagesFile == "" {
		cfg.MessagesFile = "messages.txt"
	}
	if cfg.ImagesDir == "" {
		cfg.ImagesDir = "received_images"
	}
	return cfg
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "5000"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
