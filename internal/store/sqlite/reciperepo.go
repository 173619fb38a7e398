package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CodeWithAdnan47/AI-Recipe-Scrapper/internal/domain"
)

// ErrNotFound reports a missing recipe id.
var ErrNotFound = errors.New("sqlite: recipe not found")

// RecipeRepo implements domain.RecipeStore on top of a SQLite *sql.DB.
type RecipeRepo struct{ db *sql.DB }

// NewRecipeRepo creates a SQLite-backed recipe repository.
func NewRecipeRepo(db *sql.DB) *RecipeRepo { return &RecipeRepo{db: db} }

func (r *RecipeRepo) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	const q = `SELECT id, title, ingredients, instructions, image_name, cleaned_ingredients FROM recipes ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list recipes: %w", err)
	}
	defer rows.Close()
	var out []domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan recipe: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iter recipes: %w", err)
	}
	return out, nil
}

func (r *RecipeRepo) GetRecipe(ctx context.Context, id int64) (domain.Recipe, error) {
	const q = `SELECT id, title, ingredients, instructions, image_name, cleaned_ingredients FROM recipes WHERE id = ?`
	rec, err := scanRecipe(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Recipe{}, ErrNotFound
		}
		return domain.Recipe{}, fmt.Errorf("sqlite: get recipe %d: %w", id, err)
	}
	return rec, nil
}

// CreateRecipe inserts a recipe row and returns its assigned id.
func (r *RecipeRepo) CreateRecipe(ctx context.Context, rec domain.Recipe) (int64, error) {
	const q = `INSERT INTO recipes (title, ingredients, instructions, image_name, cleaned_ingredients) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, rec.Title, rec.Ingredients, rec.Instructions,
		nullable(rec.ImageName), nullable(rec.CleanedIngredients))
	if err != nil {
		return 0, fmt.Errorf("sqlite: create recipe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("sqlite: last insert id: %w", err)
	}
	return id, nil
}

func (r *RecipeRepo) ListFavorites(ctx context.Context, userID string) ([]int64, error) {
	const q = `SELECT recipe_id FROM favorites WHERE user_id = ? ORDER BY recipe_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list favorites: %w", err)
	}
	defer rows.Close()
	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("sqlite: scan favorite: %w", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iter favorites: %w", err)
	}
	return out, nil
}

// ToggleFavorite flips the favorite state for (user, recipe) and returns the
// new state: true when the row was inserted, false when it was removed.
func (r *RecipeRepo) ToggleFavorite(ctx context.Context, userID string, recipeID int64) (bool, error) {
	if _, err := r.GetRecipe(ctx, recipeID); err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM favorites WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("sqlite: unfavorite: %w", err)
	}
	if n, raErr := res.RowsAffected(); raErr != nil {
		return false, fmt.Errorf("sqlite: rows affected (unfavorite): %w", raErr)
	} else if n > 0 {
		return false, nil
	}
	if _, err := r.db.ExecContext(ctx, `INSERT INTO favorites (user_id, recipe_id) VALUES (?, ?)`, userID, recipeID); err != nil {
		return false, fmt.Errorf("sqlite: favorite: %w", err)
	}
	return true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (domain.Recipe, error) {
	var rec domain.Recipe
	var imageName, cleaned sql.NullString
	if err := row.Scan(&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions, &imageName, &cleaned); err != nil {
		return domain.Recipe{}, err
	}
	rec.ImageName = imageName.String
	rec.CleanedIngredients = cleaned.String
	return rec, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
