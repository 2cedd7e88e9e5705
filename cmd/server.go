package cmd

import (
	"context"
	"fmt"
	"mingle/internal/config"
	"mingle/internal/core"
	"mingle/internal/db"
	"mingle/internal/http/handler"
	"mingle/internal/http/handler/middleware"
	"mingle/internal/http/payload"
	"mingle/internal/http/server"
	"mingle/internal/repository"
	"mingle/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("mingle", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewMongoDB(context.Background(), config.DBConnectionURL, config.DBName)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer func() {
		if err := dbConn.Close(context.Background()); err != nil {
			logger.Errorw("failed to close database connection", "error", err)
		}
	}()

	// repository
	repo := repository.NewSocialRepository(dbConn)

	// social service
	social := core.NewSocial(logger, repo)

	// handler
	socialHlr := handler.NewSocialHandler(
		logger,
		payload.Decoder{},
		social)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Signup, socialHlr.HandleSignup)
	mux.HandleFunc(handler.Login, socialHlr.HandleLogin)
	mux.HandleFunc(handler.CreatePost, socialHlr.HandleCreatePost)
	mux.HandleFunc(handler.GetPosts, socialHlr.HandleGetPosts)
	mux.HandleFunc(handler.DeletePost, socialHlr.HandleDeletePost)
	mux.HandleFunc(handler.LikePost, socialHlr.HandleLikePost)
	mux.HandleFunc(handler.Follow, socialHlr.HandleFollow)
	mux.HandleFunc(handler.Unfollow, socialHlr.HandleUnfollow)
	mux.HandleFunc(handler.Connections, socialHlr.HandleConnections)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
