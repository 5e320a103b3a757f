package repositories

import (
	"context"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/genai"
)

type AIClientConfig struct {
	ProjectID string
	Location  string
}

// Vertexバックエンドの色分析だけが使う
type VertexAIClientPool interface {
	GetVertexAIClient(ctx context.Context) (*vertexgenai.Client, error)

	Close() error
}

// Gemini APIキーごとのクライアント
type GenAIClientPool interface {
	GetGenAIClient(ctx context.Context, apiKey string) (*genai.Client, error)

	Close() error
}

// ClientPoolService owns every AI client the server creates.
type ClientPoolService interface {
	VertexAIPool() VertexAIClientPool
	GenAIPool() GenAIClientPool
	Config() *AIClientConfig

	Close() error
}
