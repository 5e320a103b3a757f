package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"
	"google.golang.org/genai"

	"wada-stylist/internal/domain/repositories"
)

// vertexAIClientPool creates the Vertex client on first use. Analysis on the gemini backend never touches it.
type vertexAIClientPool struct {
	config *repositories.AIClientConfig

	mu     sync.Mutex
	client *vertexgenai.Client
}

func newVertexAIClientPool(config *repositories.AIClientConfig) repositories.VertexAIClientPool {
	return &vertexAIClientPool{config: config}
}

func (p *vertexAIClientPool) GetVertexAIClient(ctx context.Context) (*vertexgenai.Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if p.config.ProjectID == "" {
		return nil, errors.New("vertex AI client requires a project id")
	}

	endpoint := p.config.Location + "-aiplatform.googleapis.com:443"
	client, err := vertexgenai.NewClient(ctx, p.config.ProjectID, p.config.Location, option.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create VertexAI client: %w", err)
	}
	slog.Debug("Vertex AI client created", "project", p.config.ProjectID, "location", p.config.Location)

	p.client = client
	return client, nil
}

func (p *vertexAIClientPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client == nil {
		return nil
	}
	err := p.client.Close()
	p.client = nil
	return err
}

// genAIClientPool keeps one client per API key; analysis and image generation may use different keys.
type genAIClientPool struct {
	mu      sync.Mutex
	clients map[string]*genai.Client
}

func newGenAIClientPool() repositories.GenAIClientPool {
	return &genAIClientPool{clients: make(map[string]*genai.Client)}
}

func (p *genAIClientPool) GetGenAIClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is not configured")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if client, ok := p.clients[apiKey]; ok {
		return client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	slog.Debug("GenAI client created", "clients", len(p.clients)+1)

	p.clients[apiKey] = client
	return client, nil
}

// Close forgets the clients. genai clients hold no connections of their own.
func (p *genAIClientPool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	clear(p.clients)
	return nil
}

type clientPoolService struct {
	config *repositories.AIClientConfig
	vertex repositories.VertexAIClientPool
	gemini repositories.GenAIClientPool
}

func NewClientPoolService(projectID, location string) repositories.ClientPoolService {
	config := &repositories.AIClientConfig{ProjectID: projectID, Location: location}
	return &clientPoolService{
		config: config,
		vertex: newVertexAIClientPool(config),
		gemini: newGenAIClientPool(),
	}
}

func (s *clientPoolService) VertexAIPool() repositories.VertexAIClientPool { return s.vertex }

func (s *clientPoolService) GenAIPool() repositories.GenAIClientPool { return s.gemini }

func (s *clientPoolService) Config() *repositories.AIClientConfig { return s.config }

func (s *clientPoolService) Close() error {
	return errors.Join(
		wrapClose("VertexAI", s.vertex.Close()),
		wrapClose("GenAI", s.gemini.Close()),
	)
}

func wrapClose(pool string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s pool close error: %w", pool, err)
}
