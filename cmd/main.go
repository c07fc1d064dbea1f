package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "lavka/internal/http"
	"lavka/internal/repository"
	"lavka/internal/service"

	_ "lavka/docs"
)

func main() {
	dbPath := flag.String("db", "orders.db", "path to the database file")
	addr := flag.String("addr", ":9091", "listen address")
	flag.Parse()

	db, err := repository.Open(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	store, err := repository.NewSQLStore(context.Background(), db)
	if err != nil {
		log.Fatalf("init store: %v", err)
	}

	customersSvc := service.NewCustomerService(store)
	productsSvc := service.NewProductService(store)
	ordersSvc := service.NewOrderService(store)

	srv := httpapi.NewServer(customersSvc, productsSvc, ordersSvc)

	httpServer := &http.Server{
		Addr:    *addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("HTTP server listening on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
