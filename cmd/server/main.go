package main

import (
	pbchat "chat-rpc/api/chat"
	"chat-rpc/client"
	"chat-rpc/infrastructure/grpc/server"
	"chat-rpc/repositories"
	"chat-rpc/runtime"
	"chat-rpc/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chat server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run owns every resource so deferred cleanups happen before the exit code is returned.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Stores (in memory only)
	db, err := repositories.OpenInMemory(logger)
	if err != nil {
		return exitRuntime, err
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, endpoint, repositories.InspectMapper)
	}

	users := services.NewUserDirectory(repositories.NewUserRepository(db))
	rooms := runtime.NewRoomManager(logger, users, repositories.NewMessageRepository(db, logger))
	chatService := services.NewChatService(logger, users, rooms, config.HistoryLimit)

	// 3. Bind first so the published port is the one we serve on
	address := net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	port := listener.Addr().(*net.TCPAddr).Port

	// 4. Publish every procedure before accepting traffic
	binderConn, err := grpc.NewClient(config.BinderAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		_ = listener.Close()
		return exitConfig, fmt.Errorf("binder client: %w", err)
	}
	defer func() { _ = binderConn.Close() }()

	bootCtx, cancelBoot := context.WithTimeout(ctx, config.RegistrationTimeout)
	defer cancelBoot()
	registrar := client.NewBinderClient(binderConn)
	if err := runtime.Bootstrap(bootCtx, logger, registrar, config.Advertised(), port, pbchat.Procedures); err != nil {
		_ = listener.Close()
		return exitRuntime, fmt.Errorf("registration with binder at %s failed: %w", config.BinderAddr, err)
	}

	// 5. gRPC Server Setup
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
	pbchat.RegisterChatServiceServer(s, server.NewChatServer(logger, chatService))

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting chat server", "address", listener.Addr().String(), "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed service", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	logger.Info("Chat server stopped cleanly")
	return exitOK, nil
}
