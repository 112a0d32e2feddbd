// Entry point for the churnboard dashboard server
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/churnboard/churnboard-go/utils"
	"github.com/rs/cors"
)

const churnboardVersion = "v0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		runServer(0)
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return
	case "--version", "-v":
		fmt.Println("churnboard version:", churnboardVersion)
		return
	case "--server":
		port := 0
		if len(args) > 1 {
			p, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid port %q\n", args[1])
				os.Exit(1)
			}
			port = p
		}
		runServer(port)
		return
	default:
		fmt.Fprintln(os.Stderr, "Unknown argument. Use --help for usage.")
		os.Exit(1)
	}
}

// runServer starts the HTTP server. A port of 0 means "use the configured
// port".
func runServer(port int) {
	server := NewServer()
	cfg := server.config.GetConfig()
	if port == 0 {
		port = cfg.Server.Port
	}

	var handler http.Handler = server.router
	if cfg.Server.EnableCORS {
		c := cors.New(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
		})
		handler = c.Handler(server.router)
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, port),
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		utils.GetLogger().Info("Starting churnboard server",
			utils.String("addr", httpServer.Addr),
			utils.Component("server"))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.GetLogger().Fatal("Error starting server", err, utils.Component("server"))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	utils.GetLogger().Info("Shutting down server...", utils.Component("server"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		utils.GetLogger().Error("HTTP server forced to shutdown", err, utils.Component("server"))
	}

	utils.GetLogger().Info("Server exited", utils.Component("server"))
}

func printHelp() {
	fmt.Println("Usage:")
	fmt.Println("  --server [port]    Start HTTP server (default: configured port)")
	fmt.Println("  (no arguments)     Start HTTP server on the configured port")
	fmt.Println("  -h, --help, help   Show this help message")
	fmt.Println("  -v, --version      Show churnboard version")
}
