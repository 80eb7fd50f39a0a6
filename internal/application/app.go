package application

import (
	"context"
	"errors"
	"net"
	"net/http"
	"runtime"
	"strconv"
	"time"

	router "github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http"
	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/handler"
	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	"github.com/VictorKimathi/medical-ai-assistant/internal/infrastructure/ai"
	config "github.com/VictorKimathi/medical-ai-assistant/internal/infrastructure/configs"
	"github.com/VictorKimathi/medical-ai-assistant/internal/usecase"
	"github.com/gin-gonic/gin"
)

type App struct {
	Cfg    *config.Config
	Logger domain.LoggingRepository
	// Listening, when set, receives the bound address once the server accepts
	// connections.
	Listening chan<- net.Addr
}

// NewAnalysisService builds the Gemini client and the service around it.
// styleOverride, when not empty, replaces the configured session style.
func NewAnalysisService(ctx context.Context, cfg *config.Config, logger domain.LoggingRepository, styleOverride string) (*usecase.ImageAnalysisService, error) {
	styleName := cfg.SessionStyle
	if styleOverride != "" {
		styleName = styleOverride
	}
	style, err := domain.ParseSessionStyle(styleName)
	if err != nil {
		return nil, err
	}

	geminiClient, err := ai.NewGeminiClient(ctx, ai.GeminiConfig{
		APIKey: cfg.GeminiAPI,
		Model:  cfg.GeminiModel,
		Style:  style,
	})
	if err != nil {
		return nil, err
	}

	timeout := time.Duration(cfg.AnalysisTimeoutSeconds) * time.Second
	return usecase.NewImageAnalysisService(geminiClient, logger, timeout), nil
}

// Run serves the web UI until ctx is canceled, then shuts the server down.
func (a App) Run(ctx context.Context) error {

	logger := a.Logger

	gin.SetMode(a.Cfg.GinMode)

	analysisSvc, err := NewAnalysisService(ctx, a.Cfg, logger, "")
	if err != nil {
		logger.Error("failed to create image analysis service", "reason", err.Error())
		return err
	}

	h, err := handler.NewAnalysisHandler(analysisSvc, logger, int64(a.Cfg.MaxUploadBytes))
	if err != nil {
		logger.Error("failed to create analysis handler", "reason", err.Error())
		return err
	}

	routerCfg := router.RouterConfig{AnalysisHandler: h}

	g := router.SetupRoutes(routerCfg)

	server := &http.Server{
		Addr:              net.JoinHostPort(a.Cfg.ServerHost, strconv.Itoa(a.Cfg.ServerPort)),
		Handler:           g,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listener, err := net.Listen("tcp", server.Addr)
	if err != nil {
		logger.Error("failed to start the server", "reason", err.Error())
		return err
	}
	logger.Info("successfully start the server", "addr", listener.Addr().String(),
		"ai.model", a.Cfg.GeminiModel, "ai.session_style", a.Cfg.SessionStyle)
	if a.Listening != nil {
		a.Listening <- listener.Addr()
	}

	serverErr := make(chan error, 1)
	go func() {
		err := server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server stopped unexpectedly", "reason", err.Error())
			return err
		}
	case <-ctx.Done():
	}

	shutdownctx, shutdowncancelFunc := context.WithTimeout(context.Background(), time.Duration(a.Cfg.ServerShutdownTimeout)*time.Second)
	defer shutdowncancelFunc()
	if err := server.Shutdown(shutdownctx); err != nil {
		logger.Error("server closed with error", "reason", err.Error())
		return err
	}

	logger.Info("server stopped", "goroutines", runtime.NumGoroutine())
	return nil

}
