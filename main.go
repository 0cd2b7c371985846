package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/task-manager/modules/api"
	"github.com/example/task-manager/modules/auth"
	"github.com/example/task-manager/modules/tasks"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Best-effort .env loading; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Independent modules first, then dependent modules.
	app.Register(auth.NewModule())
	app.Register(tasks.NewModule())
	app.Register(api.NewModule())

	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

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

func printStartupInfo() {
	log.Println("")
	log.Println("Task Manager started successfully!")
	log.Println("")
	log.Println("  Public Endpoints:")
	log.Println("  POST   /api/users/register  - Register and get a token")
	log.Println("  POST   /api/users/login     - Login and get a token")
	log.Println("  GET    /health              - Health check")
	log.Println("  GET    /                    - Browser client")
	log.Println("")
	log.Println("  Protected Endpoints (require Bearer token):")
	log.Println("  POST   /api/tasks           - Create a task")
	log.Println("  GET    /api/tasks           - List tasks (page, limit, priority, status, search, sort)")
	log.Println("  GET    /api/tasks/:id       - Get a task")
	log.Println("  PUT    /api/tasks/:id       - Update a task")
	log.Println("  DELETE /api/tasks/:id       - Delete a task")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
