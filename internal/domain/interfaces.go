package domain

import "context"

// Recipe is a single catalog record. The answer pipeline receives it as a
// read-only snapshot; only the store mutates recipe rows.
type Recipe struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	Ingredients        string `json:"ingredients"`
	Instructions       string `json:"instructions"`
	ImageName          string `json:"image_name,omitempty"`
	CleanedIngredients string `json:"cleaned_ingredients,omitempty"`
}

// Chunk is a labeled text passage derived from one recipe field, used as a
// retrieval unit. Chunks live for a single orchestration call.
type Chunk struct {
	Field string
	Text  string
}

// SearchResult is one normalized web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// Embedder converts free text into a numeric vector representation.
// A nil Embedder handle means the capability is not configured.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Generator produces text from a system instruction and a user prompt.
// A nil Generator handle means the capability is not configured.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// WebSearcher queries an external search index for ranked snippets.
// A nil WebSearcher handle means the capability is not configured.
type WebSearcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// RecipeStore is the catalog collaborator: recipe rows and per-user favorites.
type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]Recipe, error)
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	ListFavorites(ctx context.Context, userID string) ([]int64, error)
	ToggleFavorite(ctx context.Context, userID string, recipeID int64) (bool, error)
}
