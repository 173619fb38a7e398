package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

func TestSplit(t *testing.T) {
	t.Run("Should emit title, ingredients and instructions in order", func(t *testing.T) {
		recipe := domain.Recipe{
			Title:        "Pasta",
			Ingredients:  "pasta, water, salt",
			Instructions: "Boil water, add salt, add pasta, cook 8 minutes",
		}
		chunks := Split(recipe)
		require.Len(t, chunks, 3)
		assert.Equal(t, "title", chunks[0].Field)
		assert.Equal(t, "Recipe title: Pasta", chunks[0].Text)
		assert.Equal(t, "ingredients", chunks[1].Field)
		assert.Equal(t, "Ingredients: pasta, water, salt", chunks[1].Text)
		assert.Equal(t, "instructions", chunks[2].Field)
		assert.Equal(t, "Instructions: Boil water, add salt, add pasta, cook 8 minutes", chunks[2].Text)
	})

	t.Run("Should prefer cleaned ingredients over raw ingredients", func(t *testing.T) {
		recipe := domain.Recipe{
			Ingredients:        "2 cups flour (sifted)",
			CleanedIngredients: "flour",
		}
		chunks := Split(recipe)
		require.Len(t, chunks, 1)
		assert.Equal(t, "Ingredients: flour", chunks[0].Text)
	})

	t.Run("Should fall back to raw ingredients when cleaned is blank", func(t *testing.T) {
		recipe := domain.Recipe{CleanedIngredients: "   ", Ingredients: "eggs"}
		chunks := Split(recipe)
		require.Len(t, chunks, 1)
		assert.Equal(t, "Ingredients: eggs", chunks[0].Text)
	})

	t.Run("Should skip fields that are empty after trimming", func(t *testing.T) {
		recipe := domain.Recipe{Title: "  ", Instructions: "Bake at 180C"}
		chunks := Split(recipe)
		require.Len(t, chunks, 1)
		assert.Equal(t, "instructions", chunks[0].Field)
	})

	t.Run("Should emit exactly one sentinel chunk for an empty recipe", func(t *testing.T) {
		chunks := Split(domain.Recipe{})
		require.Len(t, chunks, 1)
		assert.Equal(t, "sentinel", chunks[0].Field)
		assert.Equal(t, SentinelText, chunks[0].Text)
	})

	t.Run("Should be deterministic across calls", func(t *testing.T) {
		recipe := domain.Recipe{Title: "Soup", Ingredients: "water", Instructions: "Boil."}
		assert.Equal(t, Split(recipe), Split(recipe))
	})
}

func TestJoin(t *testing.T) {
	t.Run("Should concatenate chunk texts with blank lines", func(t *testing.T) {
		chunks := []domain.Chunk{{Text: "a"}, {Text: "b"}}
		assert.Equal(t, "a\n\nb", Join(chunks))
	})
}
