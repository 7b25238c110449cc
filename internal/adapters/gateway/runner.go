// Package gateway provides the inference gateway adapter implementing
// ports.InferenceGateway against the external model runner's HTTP API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

// DefaultTimeout bounds a single generation call. Multimodal generation on
// the runner can take minutes for long video inputs.
const DefaultTimeout = 300 * time.Second

// RunnerGateway calls the model runner process that owns the pretrained
// multimodal model. The conversation is forwarded verbatim, content parts
// included, so audio/video parts reach the runner's chat-template processor.
type RunnerGateway struct {
	baseURL string
	client  *http.Client
}

// NewRunnerGateway creates a gateway for the runner at baseURL.
func NewRunnerGateway(baseURL string, timeout time.Duration) *RunnerGateway {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RunnerGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// inferRequest is the runner's inference API request.
type inferRequest struct {
	Conversation entities.Conversation `json:"conversation"`
}

// inferResponse is the runner's inference API response. The runner may decode
// a batch, in which case response is a list of strings.
type inferResponse struct {
	Response textOrList `json:"response"`
	Tokens   int        `json:"tokens"`
	Error    string     `json:"error,omitempty"`
}

// textOrList accepts either a JSON string or a list of strings.
type textOrList []string

func (t *textOrList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*t = textOrList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = textOrList(many)
	return nil
}

// Generate executes one blocking generation call on the runner.
func (g *RunnerGateway) Generate(ctx context.Context, conv entities.Conversation) (*entities.GenerationResult, error) {
	body, err := json.Marshal(inferRequest{Conversation: conv})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/infer", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling model runner: %w", err)
	}
	defer resp.Body.Close()

	var result inferResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != "" {
			return nil, fmt.Errorf("model runner: %s", result.Error)
		}
		return nil, fmt.Errorf("model runner returned status %d", resp.StatusCode)
	}

	return &entities.GenerationResult{
		Texts:      result.Response,
		TokenCount: result.Tokens,
	}, nil
}
