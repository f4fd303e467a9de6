package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer cleanup()

	r := mux.NewRouter()
	r.HandleFunc("/ws/chat/{user_id}", app.Handler.HandleConnection).Methods("GET")
	r.HandleFunc("/chat/history", app.Handler.HandleHistory).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	srv := &http.Server{Addr: app.Config.HTTPAddr, Handler: r}

	go func() {
		log.Printf("Server starting on %s", app.Config.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	app.Hub.Shutdown()
}
