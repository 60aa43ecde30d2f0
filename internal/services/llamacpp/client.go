package llamacpp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	defaultRequestTimeout = 120 * time.Second
	defaultStartupTimeout = 5 * time.Minute
	healthPollInterval    = 500 * time.Millisecond
)

// ErrEmptyPrompt reports a blank generation request.
var ErrEmptyPrompt = errors.New("empty prompt")

// ErrModelUnavailable reports that the model could not be loaded.
var ErrModelUnavailable = errors.New("model unavailable")

// Config captures the runtime settings for the local generation server.
type Config struct {
	Binary         string
	ArtifactPath   string
	Port           int
	ContextSize    int
	Threads        int
	StartupTimeout time.Duration
	RequestTimeout time.Duration
}

// Client drives a llama.cpp completion server.
type Client struct {
	cfg        Config
	httpClient *http.Client
	baseURL    string
	external   bool

	mu       sync.Mutex
	started  bool
	startErr error
	cmd      *exec.Cmd
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithEndpoint points the client at an existing completion server and
// disables process management.
func WithEndpoint(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
		if trimmed != "" {
			c.baseURL = trimmed
			c.external = true
		}
	}
}

// NewClient constructs a generation client from the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.Binary == "" {
		cfg.Binary = "llama-server"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.StartupTimeout <= 0 {
		cfg.StartupTimeout = defaultStartupTimeout
	}
	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.baseURL == "" {
		client.baseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Port)
	}
	return client
}

type completionRequest struct {
	Prompt   string   `json:"prompt"`
	NPredict int      `json:"n_predict"`
	Stop     []string `json:"stop,omitempty"`
	Stream   bool     `json:"stream"`
}

type completionResponse struct {
	Content string `json:"content"`
}

// Generate produces text for the prompt. The underlying server is started on
// first use; output is trimmed of surrounding whitespace and otherwise
// returned verbatim.
func (c *Client) Generate(ctx context.Context, prompt string, maxTokens int, stop []string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("generate: %w", ErrEmptyPrompt)
	}
	if err := c.ensureStarted(ctx); err != nil {
		return "", err
	}

	payload := completionRequest{
		Prompt:   prompt,
		NPredict: maxTokens,
		Stop:     stop,
		Stream:   false,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("generate: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/completion", bytes.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("generate: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate: http error: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("generate: read response: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("generate: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var completion completionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("generate: decode response: %w", err)
	}
	return strings.TrimSpace(completion.Content), nil
}

// HealthCheck probes the server's health endpoint.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("health: new request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health: http %d", resp.StatusCode)
	}
	return nil
}

// ensureStarted performs the at-most-once model load. A failed load is
// cached; later calls return the same error instead of retrying an
// expensive spawn.
func (c *Client) ensureStarted(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return c.startErr
	}
	c.started = true
	if c.external {
		return nil
	}
	c.startErr = c.startServer(ctx)
	return c.startErr
}

func (c *Client) startServer(ctx context.Context) error {
	info, err := os.Stat(c.cfg.ArtifactPath)
	if err != nil {
		return fmt.Errorf("%w: stat model artifact %s: %v", ErrModelUnavailable, c.cfg.ArtifactPath, err)
	}
	if info.IsDir() || info.Size() == 0 {
		return fmt.Errorf("%w: model artifact %s is not a usable file", ErrModelUnavailable, c.cfg.ArtifactPath)
	}

	args := []string{
		"-m", c.cfg.ArtifactPath,
		"--host", "127.0.0.1",
		"--port", strconv.Itoa(c.cfg.Port),
	}
	if c.cfg.ContextSize > 0 {
		args = append(args, "-c", strconv.Itoa(c.cfg.ContextSize))
	}
	if c.cfg.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(c.cfg.Threads))
	}

	cmd := exec.Command(c.cfg.Binary, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: start %s: %v", ErrModelUnavailable, c.cfg.Binary, err)
	}
	c.cmd = cmd

	if err := c.awaitReady(ctx); err != nil {
		c.stopLocked()
		return fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	return nil
}

// awaitReady polls the health endpoint until the model finishes loading.
func (c *Client) awaitReady(ctx context.Context) error {
	deadline := time.Now().Add(c.cfg.StartupTimeout)
	probe := &http.Client{Timeout: 2 * time.Second}
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("server not ready after %s", c.cfg.StartupTimeout)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
		if err != nil {
			return err
		}
		resp, err := probe.Do(req)
		if err == nil {
			status := resp.StatusCode
			resp.Body.Close()
			if status == http.StatusOK {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(healthPollInterval):
		}
	}
}

// Close stops the managed server process, if any.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	return nil
}

func (c *Client) stopLocked() {
	if c.cmd == nil || c.cmd.Process == nil {
		return
	}
	_ = c.cmd.Process.Kill()
	_ = c.cmd.Wait()
	c.cmd = nil
}
