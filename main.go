package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/tasks-api/config"
	"github.com/example/tasks-api/modules/api"
	"github.com/example/tasks-api/modules/audit"
	"github.com/example/tasks-api/modules/task"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Tasks API ===")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Order: independent modules first, then modules with dependencies.
	app.Register(audit.NewModule())    // event consumer
	app.Register(task.NewModule(cfg))  // core domain (emits events)
	app.Register(api.NewModule(cfg))   // driving adapter (depends on task)

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo(cfg)

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo(cfg config.Config) {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("REST API Endpoints (%s):", cfg.BaseURL)
	log.Println("  GET    /api/tasks      - List tasks (status, sort_by, sort_order, per_page, page)")
	log.Println("  POST   /api/tasks      - Create a task")
	log.Println("  GET    /api/tasks/:id  - Get a task by ID")
	log.Println("  PUT    /api/tasks/:id  - Update a task (partial)")
	log.Println("  DELETE /api/tasks/:id  - Delete a task")
	log.Println("  GET    /health         - Health check")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
