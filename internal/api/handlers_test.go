package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katakuxiko/answerchain/internal/llm"
	"github.com/katakuxiko/answerchain/internal/model"
	"github.com/katakuxiko/answerchain/internal/service"
	"github.com/katakuxiko/answerchain/internal/telemetry"
)

type stubCompleter struct {
	content []string
	err     error
	models  []model.ModelInfo
}

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(ctx context.Context, prompt string) (*llm.Completion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &llm.Completion{Provider: "stub", Model: "stub-1", Content: s.content}, nil
}

type listingCompleter struct {
	stubCompleter
}

func (l *listingCompleter) ListModels(context.Context) ([]model.ModelInfo, error) {
	return l.models, nil
}

func newTestApp(t *testing.T, completer llm.Completer) *fiber.App {
	t.Helper()
	chain, err := service.NewAnswerChain(completer)
	require.NoError(t, err)

	app := fiber.New()
	RegisterRoutes(app, chain, 5*time.Second)
	return app
}

func postAnswer(t *testing.T, app *fiber.App, body string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/answer", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp, out
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, &stubCompleter{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestAnswer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := newTestApp(t, &stubCompleter{content: []string{"Emil Eifrem is the CEO of Neo4j"}})

		resp, out := postAnswer(t, app, `{"question":"Who is the CEO of Neo4j?","context":"Neo4j CEO: Emil Eifrem"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Emil Eifrem is the CEO of Neo4j", out["answer"])
		assert.Equal(t, "stub", out["provider"])
		assert.Equal(t, "stub-1", out["model"])
	})

	t.Run("Missing context", func(t *testing.T) {
		app := newTestApp(t, &stubCompleter{content: []string{"x"}})

		resp, out := postAnswer(t, app, `{"question":"Who?"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, out["error"], "Context")
	})

	t.Run("Malformed body", func(t *testing.T) {
		app := newTestApp(t, &stubCompleter{content: []string{"x"}})

		resp, _ := postAnswer(t, app, `{"question":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Provider failure", func(t *testing.T) {
		app := newTestApp(t, &stubCompleter{err: errors.New("insufficient_quota")})

		resp, out := postAnswer(t, app, `{"question":"q","context":"c"}`)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, out["error"], "InvocationError")
		assert.NotContains(t, out, "answer")
	})

	t.Run("Empty completion", func(t *testing.T) {
		app := newTestApp(t, &stubCompleter{})

		resp, out := postAnswer(t, app, `{"question":"q","context":"c"}`)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, out["error"], "ParseError")
	})
}

func TestListModels(t *testing.T) {
	t.Run("Not supported", func(t *testing.T) {
		app := newTestApp(t, &stubCompleter{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/models", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	})

	t.Run("Listed", func(t *testing.T) {
		app := newTestApp(t, &listingCompleter{stubCompleter{models: []model.ModelInfo{{ID: "google/gemma-3n-e4b"}}}})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/models", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var models []model.ModelInfo
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&models))
		require.Len(t, models, 1)
		assert.Equal(t, "google/gemma-3n-e4b", models[0].ID)
	})
}

func TestAnswerFailureIsLoggedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	logger := telemetry.Init(telemetry.Config{Level: "info", JSON: true, File: path})
	t.Cleanup(func() { telemetry.Init(telemetry.Config{Level: "disabled", JSON: true}) })

	chain, err := service.NewAnswerChain(&stubCompleter{err: errors.New("insufficient_quota")}, service.WithLogger(logger))
	require.NoError(t, err)
	app := fiber.New()
	RegisterRoutes(app, chain, time.Second)

	resp, _ := postAnswer(t, app, `{"question":"q","context":"c"}`)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	logs := string(data)
	assert.Equal(t, 1, strings.Count(logs, `"level":"error"`), logs)
	assert.Contains(t, logs, "answer_invocation_failed")
	assert.NotContains(t, logs, `"message":"answer_failed"`)
}
