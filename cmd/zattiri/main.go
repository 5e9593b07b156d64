package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/shravanasati/zattiri/middleware"
	"github.com/shravanasati/zattiri/server"
)

const port = 1453

func index() string {
	return "<h1>Hello World!</h1>"
}

func about() string {
	return `<h1>Welcome to the About Page!</h1>



    <input type='text'>`
}

func notFound() string {
	return `<h1>Nothing to see here</h1>
<p><a href="/">Back home</a></p>`
}

func main() {
	srv, err := server.Launch(server.ServerOpts{
		Port:          port,
		Mode:          server.Concurrent,
		NotFoundRoute: "/404",
	})
	if err != nil {
		log.Fatalf("Server couldn't start: %v", err)
	}

	metrics, err := middleware.MetricsMiddleware(nil)
	if err != nil {
		log.Fatalf("Error creating metrics middleware: %v", err)
	}
	srv.Use(middleware.LoggingMiddlewareColored(nil), metrics)

	srv.AddRoute("/", index)
	srv.AddRoute("/about", about)
	srv.AddRoute("/404", notFound)

	go func() {
		if err := srv.Serve(); !errors.Is(err, server.ErrServerClosed) {
			log.Fatalf("Error serving: %v", err)
		}
	}()
	log.Println("Server started on port", port, "serving", srv.Routes().Routes())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	srv.Close()
	log.Println("Server gracefully stopped")
}
