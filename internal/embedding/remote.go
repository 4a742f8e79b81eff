package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/hyperjump/kotae/pkg/utils"
)

// RemoteEmbedder produces embeddings through a langchaingo embedding client
// (Ollama or an OpenAI-compatible API). Vectors are validated against the
// configured dimensionality, normalized, and cached.
type RemoteEmbedder struct {
	embedder   *embeddings.EmbedderImpl
	name       string
	dimensions int
	cache      *EmbeddingCache
}

// NewOllamaEmbedder returns an embedder backed by a running Ollama server.
func NewOllamaEmbedder(serverURL, model string, dimensions, cacheSize int) (*RemoteEmbedder, error) {
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("connect ollama embedder: %w", err)
	}
	return newRemoteEmbedder(llm, "ollama:"+model, dimensions, cacheSize)
}

// NewOpenAIEmbedder returns an embedder backed by an OpenAI-compatible API.
// baseURL may be empty for the default endpoint.
func NewOpenAIEmbedder(baseURL, token, model string, dimensions, cacheSize int) (*RemoteEmbedder, error) {
	opts := []openai.Option{
		openai.WithToken(token),
		openai.WithEmbeddingModel(model),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("connect openai embedder: %w", err)
	}
	return newRemoteEmbedder(llm, "openai:"+model, dimensions, cacheSize)
}

// newRemoteEmbedder wraps any langchaingo embedding client. Exposed to tests
// through NewRemoteEmbedderForClient.
func newRemoteEmbedder(client embeddings.EmbedderClient, name string, dimensions, cacheSize int) (*RemoteEmbedder, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("remote embedder %s: dimensions must be positive, got %d", name, dimensions)
	}
	impl, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("create embedder %s: %w", name, err)
	}
	return &RemoteEmbedder{
		embedder:   impl,
		name:       name,
		dimensions: dimensions,
		cache:      NewEmbeddingCache(cacheSize),
	}, nil
}

// NewRemoteEmbedderForClient builds a RemoteEmbedder over a caller-supplied
// client. Used by tests to avoid network access.
func NewRemoteEmbedderForClient(client embeddings.EmbedderClient, name string, dimensions, cacheSize int) (*RemoteEmbedder, error) {
	return newRemoteEmbedder(client, name, dimensions, cacheSize)
}

// Embed returns the normalized embedding for text, serving repeats from the
// cache.
func (e *RemoteEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if cached, ok := e.cache.Get(text); ok {
		return cached, nil
	}
	vec, err := e.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%s embed: %w", e.name, err)
	}
	if len(vec) != e.dimensions {
		return nil, fmt.Errorf("%s embed: got %d dimensions, expected %d", e.name, len(vec), e.dimensions)
	}
	utils.NormalizeL2(vec)
	e.cache.Set(text, vec)
	return vec, nil
}

// EmbedBatch embeds all texts in one call. The backend must return exactly
// one vector per input text, in input order.
func (e *RemoteEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	vecs, err := e.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("%s embed batch: %w", e.name, err)
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("%s embed batch: got %d vectors for %d texts", e.name, len(vecs), len(texts))
	}
	for i, vec := range vecs {
		if len(vec) != e.dimensions {
			return nil, fmt.Errorf("%s embed batch: vector %d has %d dimensions, expected %d",
				e.name, i, len(vec), e.dimensions)
		}
		utils.NormalizeL2(vec)
		e.cache.Set(texts[i], vec)
	}
	return vecs, nil
}

// Dimensions returns the configured embedding dimensionality.
func (e *RemoteEmbedder) Dimensions() int {
	return e.dimensions
}

// Name identifies the backing service and model.
func (e *RemoteEmbedder) Name() string {
	return e.name
}

// Close is a no-op; the underlying clients hold no persistent connections.
func (e *RemoteEmbedder) Close() error {
	return nil
}
