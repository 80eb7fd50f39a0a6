package application

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	config "github.com/VictorKimathi/medical-ai-assistant/internal/infrastructure/configs"
	"github.com/VictorKimathi/medical-ai-assistant/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:            "127.0.0.1",
		ServerPort:            0,
		GeminiModel:           "gemini-1.5-flash",
		GeminiAPI:             "test-key",
		SessionStyle:          "prompt",
		MaxUploadBytes:        1 << 20,
		ServerShutdownTimeout: 5,
		GinMode:               "test",
	}
}

func TestNewAnalysisServiceStyle(t *testing.T) {
	cfg := testConfig()
	log := logger.New(io.Discard)

	svc, err := NewAnalysisService(context.Background(), cfg, log, "")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStylePrompt, svc.AI.Style())
	assert.Equal(t, "gemini-1.5-flash", svc.AI.Model())

	svc, err = NewAnalysisService(context.Background(), cfg, log, "chat")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStyleChat, svc.AI.Style())

	_, err = NewAnalysisService(context.Background(), cfg, log, "stream")
	require.Error(t, err)
}

func TestNewAnalysisServiceTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.AnalysisTimeoutSeconds = 45

	svc, err := NewAnalysisService(context.Background(), cfg, logger.New(io.Discard), "")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, svc.Timeout)
}

func TestRunServesPageAndShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listening := make(chan net.Addr, 1)
	app := App{Cfg: testConfig(), Logger: logger.New(io.Discard), Listening: listening}

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	var addr net.Addr
	select {
	case addr = <-listening:
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), domain.PageHeader))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
