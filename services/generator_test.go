package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// newTestGenerator points a real genai client at a local server.
func newTestGenerator(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:     "test-key",
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: srv.Client(),
		HTTPOptions: genai.HTTPOptions{
			BaseURL: srv.URL + "/",
		},
	})
	require.NoError(t, err)
	return NewGeminiGenerator(client, "test-model")
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var gotPath, gotBody string
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotBody = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"  Paris.  "}]}}]}`)
	})

	text, err := gen.Generate(context.Background(), "Answer briefly.", "Capital of France?")
	require.NoError(t, err)
	assert.Equal(t, "  Paris.  ", text)

	assert.Contains(t, gotPath, "test-model:generateContent")
	assert.Contains(t, gotBody, "Capital of France?")
	assert.Contains(t, gotBody, "Answer briefly.")
}

func TestGeminiGenerator_Generate_NoCandidates(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	text, err := gen.Generate(context.Background(), DefaultSystemPrompt, "Hello?")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiGenerator_Generate_APIError(t *testing.T) {
	gen := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})

	text, err := gen.Generate(context.Background(), DefaultSystemPrompt, "Hello?")
	require.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestSystemInstruction(t *testing.T) {
	assert.Nil(t, SystemInstruction(""))

	content := SystemInstruction("Be nice.")
	require.NotNil(t, content)
	require.Len(t, content.Parts, 1)
	assert.Equal(t, "Be nice.", content.Parts[0].Text)
}
