package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/ipc-metadata/internal/handlers/gateway"
	ipcv1 "github.com/KirkDiggler/ipc-metadata/internal/handlers/ipc/v1"
)

var (
	grpcPort int
	httpAddr string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the ipc.v1 MetadataService gRPC server and the HTTP JSON gateway.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (env IPC_GRPC_PORT)")
	serverCmd.Flags().StringVar(&httpAddr, "http", "", "HTTP gateway address (env IPC_HTTP_ADDR)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http") {
		cfg.HTTPAddr = httpAddr
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	metadataService, closeStore, err := newMetadataService(ctx, cfg, reg)
	if err != nil {
		return fmt.Errorf("failed to create metadata service: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Printf("Closing token store: %v", err)
		}
	}()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	metadataHandler, err := ipcv1.NewHandler(&ipcv1.HandlerConfig{
		MetadataService: metadataService,
	})
	if err != nil {
		return fmt.Errorf("failed to create metadata handler: %w", err)
	}
	ipcv1.RegisterMetadataServiceServer(srv, metadataHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ipcv1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	gatewayHandler, err := gateway.NewHandler(&gateway.HandlerConfig{
		MetadataService: metadataService,
		Gatherer:        reg,
	})
	if err != nil {
		return fmt.Errorf("failed to create gateway handler: %w", err)
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           gatewayHandler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		log.Printf("gRPC server starting on port %d...", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()
	go func() {
		log.Printf("HTTP gateway starting on %s...", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP gateway shutdown: %v", err)
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		srv.Stop()
		_ = httpSrv.Close()
		return err
	}
}

func logFunc(_ context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
