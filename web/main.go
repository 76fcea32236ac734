package main

import (
	"flag"
	"os"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	logger := renderer.NewDefaultLogger()
	webServer := server.NewServer(*port, logger)

	logger.Printf("Path Tracer Web Server\n")
	logger.Printf("Render with http://localhost:%d/api/render?scene=cornell&width=200&samples=16\n", *port)

	if err := webServer.Start(); err != nil {
		logger.Printf("Error starting server: %v\n", err)
		os.Exit(1)
	}
}
