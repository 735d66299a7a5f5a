package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipe-scraper/internal/domain"
)

// PostgresStore handles interactions with the PostgreSQL database.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// SaveRecipes upserts a batch of recipes in one transaction. The owned flag
// is deliberately left out of the update set: it belongs to the consuming
// app and must survive re-scrapes.
func (s *PostgresStore) SaveRecipes(ctx context.Context, recipes []domain.Recipe) error {
	if len(recipes) == 0 {
		return nil
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for i, r := range recipes {
		batch.Queue(
			`INSERT INTO recipes (id, name_en, name_ko, category_en, category_ko, image_url, source_url,
			                      materials_en, materials_ko, source_en, source_ko, buy_price, sell_price,
			                      owned, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			 ON CONFLICT (id) DO UPDATE SET
			   name_en = EXCLUDED.name_en, name_ko = EXCLUDED.name_ko,
			   category_en = EXCLUDED.category_en, category_ko = EXCLUDED.category_ko,
			   image_url = EXCLUDED.image_url, source_url = EXCLUDED.source_url,
			   materials_en = EXCLUDED.materials_en, materials_ko = EXCLUDED.materials_ko,
			   source_en = EXCLUDED.source_en, source_ko = EXCLUDED.source_ko,
			   buy_price = EXCLUDED.buy_price, sell_price = EXCLUDED.sell_price,
			   position = EXCLUDED.position, updated_at = NOW()`,
			r.ID, r.NameEN, r.NameKO, r.CategoryEN, r.CategoryKO, r.ImageURL, r.SourceURL,
			r.MaterialsEN, r.MaterialsKO, r.SourceEN, r.SourceKO, r.BuyPrice, r.SellPrice,
			r.Owned, i,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListRecipes returns stored recipes, optionally filtered by English
// category name, in source-table row order.
func (s *PostgresStore) ListRecipes(ctx context.Context, category string) ([]domain.Recipe, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name_en, name_ko, category_en, category_ko, image_url, source_url,
		        materials_en, materials_ko, source_en, source_ko, buy_price, sell_price, owned
		 FROM recipes
		 WHERE $1 = '' OR category_en = $1
		 ORDER BY category_en, position`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var r domain.Recipe
		if err := rows.Scan(
			&r.ID, &r.NameEN, &r.NameKO, &r.CategoryEN, &r.CategoryKO, &r.ImageURL, &r.SourceURL,
			&r.MaterialsEN, &r.MaterialsKO, &r.SourceEN, &r.SourceKO, &r.BuyPrice, &r.SellPrice, &r.Owned,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, rows.Err()
}

// SaveScrapeStatus records the state of the latest scrape of a category.
func (s *PostgresStore) SaveScrapeStatus(ctx context.Context, category, status, failReason string, recipeCount int) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO scrape_runs (category, status, fail_reason, recipe_count)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (category) DO UPDATE SET
		   status = EXCLUDED.status, fail_reason = EXCLUDED.fail_reason,
		   recipe_count = EXCLUDED.recipe_count, updated_at = NOW()`,
		category, status, failReason, recipeCount,
	)
	return err
}

// GetScrapeStatus retrieves the latest scrape state of a category.
func (s *PostgresStore) GetScrapeStatus(ctx context.Context, category string) (*domain.ScrapeStatusResponse, error) {
	var status domain.ScrapeStatusResponse
	err := s.db.QueryRow(ctx,
		`SELECT category, status, fail_reason, recipe_count, updated_at FROM scrape_runs WHERE category = $1`,
		category,
	).Scan(&status.Category, &status.Status, &status.FailReason, &status.RecipeCount, &status.UpdatedAt)

	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("not_found")
	}
	return &status, err
}
