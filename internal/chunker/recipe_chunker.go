package chunker

import (
	"strings"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

// SentinelText is the single chunk emitted for a recipe with no usable text,
// so retrieval never operates on an empty collection.
const SentinelText = "No recipe content available."

// Split turns one recipe snapshot into an ordered list of labeled chunks:
// title, then ingredients (cleaned_ingredients preferred), then instructions.
// Pure transformation; calling it twice on the same snapshot yields the same
// sequence.
func Split(recipe domain.Recipe) []domain.Chunk {
	var chunks []domain.Chunk
	if title := strings.TrimSpace(recipe.Title); title != "" {
		chunks = append(chunks, domain.Chunk{Field: "title", Text: "Recipe title: " + title})
	}
	ingredients := strings.TrimSpace(recipe.CleanedIngredients)
	if ingredients == "" {
		ingredients = strings.TrimSpace(recipe.Ingredients)
	}
	if ingredients != "" {
		chunks = append(chunks, domain.Chunk{Field: "ingredients", Text: "Ingredients: " + ingredients})
	}
	if instructions := strings.TrimSpace(recipe.Instructions); instructions != "" {
		chunks = append(chunks, domain.Chunk{Field: "instructions", Text: "Instructions: " + instructions})
	}
	if len(chunks) == 0 {
		chunks = append(chunks, domain.Chunk{Field: "sentinel", Text: SentinelText})
	}
	return chunks
}

// Join concatenates chunk texts into a single context string.
func Join(chunks []domain.Chunk) string {
	parts := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		parts = append(parts, ch.Text)
	}
	return strings.Join(parts, "\n\n")
}
