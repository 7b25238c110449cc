package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

func userConversation(text string) entities.Conversation {
	return entities.Conversation{
		{Role: entities.RoleUser, Content: []entities.ContentPart{
			{Type: entities.PartTypeText, Text: text},
		}},
	}
}

func TestRunnerGateway_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/infer", r.URL.Path)

		var req map[string]entities.Conversation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req["conversation"], 1)

		json.NewEncoder(w).Encode(map[string]any{
			"response": "Hello there!",
			"tokens":   4,
		})
	}))
	defer server.Close()

	gw := NewRunnerGateway(server.URL, 5*time.Second)
	result, err := gw.Generate(context.Background(), userConversation("hi"))

	require.NoError(t, err)
	assert.Equal(t, "Hello there!", result.Text())
	assert.Equal(t, 4, result.TokenCount)
}

func TestRunnerGateway_ListResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"response": []string{"first", "second"},
			"tokens":   10,
		})
	}))
	defer server.Close()

	gw := NewRunnerGateway(server.URL, 5*time.Second)
	result, err := gw.Generate(context.Background(), userConversation("hi"))

	require.NoError(t, err)
	assert.Equal(t, "first second", result.Text())
}

func TestRunnerGateway_MultimodalPartsPassThrough(t *testing.T) {
	var received entities.Conversation
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Conversation entities.Conversation `json:"conversation"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		received = req.Conversation
		json.NewEncoder(w).Encode(map[string]any{"response": "ok", "tokens": 1})
	}))
	defer server.Close()

	conv := entities.Conversation{
		{Role: entities.RoleUser, Content: []entities.ContentPart{
			{Type: "video", Video: "https://example.com/clip.mp4"},
			{Type: entities.PartTypeText, Text: "what happens in this video?"},
		}},
	}

	gw := NewRunnerGateway(server.URL, 5*time.Second)
	_, err := gw.Generate(context.Background(), conv)

	require.NoError(t, err)
	require.Len(t, received, 1)
	require.Len(t, received[0].Content, 2)
	assert.Equal(t, "video", received[0].Content[0].Type)
	assert.Equal(t, "https://example.com/clip.mp4", received[0].Content[0].Video)
}

func TestRunnerGateway_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": "model not loaded"})
	}))
	defer server.Close()

	gw := NewRunnerGateway(server.URL, 5*time.Second)
	_, err := gw.Generate(context.Background(), userConversation("hi"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestRunnerGateway_Unreachable(t *testing.T) {
	gw := NewRunnerGateway("http://127.0.0.1:1", time.Second)
	_, err := gw.Generate(context.Background(), userConversation("hi"))
	require.Error(t, err)
}

func TestRunnerGateway_Defaults(t *testing.T) {
	gw := NewRunnerGateway("", 0)
	assert.Equal(t, "http://localhost:5000", gw.baseURL)
	assert.Equal(t, DefaultTimeout, gw.client.Timeout)
}
