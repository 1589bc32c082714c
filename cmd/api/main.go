package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"studenthub.org/internal/auth"
	"studenthub.org/internal/content"
	"studenthub.org/internal/httpapi"
	"studenthub.org/internal/obs"
	"studenthub.org/internal/store/pg"
	"studenthub.org/internal/stream"
)

var (
	version = "0.3.1"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	// Storage. Without a DSN the service runs fully in-memory, which is what
	// local frontend development uses.
	var (
		accounts     auth.AccountStore
		contentStore content.Store
		pgStore      *pg.Store
	)
	if dsn := os.Getenv("HUB_PG_DSN"); dsn != "" {
		var err error
		pgStore, err = pg.Open(dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		accounts = pgStore.Accounts()
		contentStore = pgStore.Content()
	} else {
		log.Println("HUB_PG_DSN not set, using in-memory storage")
		accounts = auth.NewInMemoryAccounts()
		contentStore = content.NewInMemory()
	}

	var authOpts []auth.ServiceOption
	if mode := os.Getenv("HUB_TOKEN_MODE"); mode != "" {
		authOpts = append(authOpts, auth.WithTokenMode(auth.TokenMode(mode)))
	}
	authSvc, err := auth.NewService(accounts, authOpts...)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	contentSvc, err := content.NewService(contentStore)
	if err != nil {
		log.Fatalf("content service: %v", err)
	}

	notifications := stream.New()

	probe := httpapi.ReadyProbe{}
	if pgStore != nil {
		probe.DB = pgStore.DB()
	}
	api := httpapi.New(authSvc, contentSvc, notifications, probe, version)

	handler := httpapi.RequestID(
		httpapi.LoggingJSON(
			httpapi.SecurityHeaders(
				httpapi.CORS(
					httpapi.MaxBodyBytes(
						httpapi.RateLimit(api.Handler(), 50, 100),
						1<<20,
					),
				),
			),
		),
	)

	addr := os.Getenv("HUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// gRPC health endpoint for orchestration probes.
	var grpcSrv *grpc.Server
	if grpcAddr := os.Getenv("HUB_GRPC_ADDR"); grpcAddr != "" {
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			log.Fatalf("grpc listen: %v", err)
		}
		grpcSrv = grpc.NewServer()
		grpc_health_v1.RegisterHealthServer(grpcSrv, httpapi.NewHealthServer(probe))
		go func() {
			log.Printf("grpc health on %s", grpcAddr)
			if err := grpcSrv.Serve(lis); err != nil {
				log.Fatalf("grpc serve: %v", err)
			}
		}()
	}

	log.Printf("Starting studenthub-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if pgStore != nil {
		_ = pgStore.Close()
	}
	log.Println("Stopped")
}
