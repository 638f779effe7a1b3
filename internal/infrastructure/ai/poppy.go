package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// PoppyClient talks to the hosted PoppyAI generation API.
type PoppyClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewPoppyClient(baseURL, apiKey string) *PoppyClient {
	return &PoppyClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type poppyRequest struct {
	Kind   string            `json:"kind"`
	Inputs map[string]string `json:"inputs"`
}

type poppyResponse struct {
	Text string `json:"text"`
}

func (c *PoppyClient) CoachReply(ctx context.Context, message string) (string, error) {
	return c.generate(ctx, poppyRequest{
		Kind:   "coach_chat",
		Inputs: map[string]string{"message": message},
	})
}

func (c *PoppyClient) Manifesto(ctx context.Context, in ManifestoInput) (string, error) {
	return c.generate(ctx, poppyRequest{
		Kind: "avatar_manifesto",
		Inputs: map[string]string{
			"usuario":    in.Usuario,
			"valores":    in.Valores,
			"proposito":  in.Proposito,
			"superpoder": in.Superpoder,
		},
	})
}

func (c *PoppyClient) generate(ctx context.Context, payload poppyRequest) (string, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("poppyai error: status=%d body=%s", resp.StatusCode, body)
	}

	var out poppyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}
