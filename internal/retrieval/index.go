package retrieval

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

// ErrNoCredentials reports that no embedding capability is configured.
// Callers treat it the same as a provider failure (degraded retrieval), but
// the distinction is kept so a retry policy can tell them apart later.
var ErrNoCredentials = errors.New("retrieval: embedding capability not configured")

// Index is an ephemeral nearest-neighbor store over one recipe's chunks.
// It is built fresh per orchestration call and never shared across requests.
type Index struct {
	embedder domain.Embedder
	chunks   []domain.Chunk
	vectors  [][]float32
}

// Build embeds every chunk and returns a queryable index. A nil embedder
// yields ErrNoCredentials; any provider error abandons the build. Either way
// the caller falls back to using all chunks unranked.
func Build(ctx context.Context, embedder domain.Embedder, chunks []domain.Chunk) (*Index, error) {
	if embedder == nil {
		return nil, ErrNoCredentials
	}
	vectors := make([][]float32, len(chunks))
	for i, ch := range chunks {
		vec, err := embedder.Embed(ctx, ch.Text)
		if err != nil {
			return nil, fmt.Errorf("retrieval: embed chunk %q: %w", ch.Field, err)
		}
		vectors[i] = vec
	}
	return &Index{embedder: embedder, chunks: chunks, vectors: vectors}, nil
}

// Query returns up to k chunks ranked by cosine similarity to the question,
// ties broken by original chunk order.
func (ix *Index) Query(ctx context.Context, question string, k int) ([]domain.Chunk, error) {
	if k <= 0 {
		k = 5
	}
	qvec, err := ix.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("retrieval: embed question: %w", err)
	}
	scores := make([]float64, len(ix.vectors))
	for i := range ix.vectors {
		scores[i] = cosine(ix.vectors[i], qvec)
	}
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps original chunk order among equal scores.
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	if k > len(order) {
		k = len(order)
	}
	out := make([]domain.Chunk, 0, k)
	for _, idx := range order[:k] {
		out = append(out, ix.chunks[idx])
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
