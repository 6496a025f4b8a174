package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"bewear/internal/domain"
)

// ListProducts returns catalog products with their variants, optionally
// restricted to a category slug.
func (q *Queries) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	query := `
		SELECT p.id, p.category_id, p.name, p.slug, p.description
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE $1 = '' OR c.slug = $1
		ORDER BY p.name`

	rows, err := q.db.Query(ctx, query, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return products, nil
	}

	ids := make([]uuid.UUID, len(products))
	index := make(map[uuid.UUID]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
		index[p.ID] = i
	}

	variants, err := q.listVariantsForProducts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, v := range variants {
		i := index[v.ProductID]
		products[i].Variants = append(products[i].Variants, v)
	}

	return products, nil
}

// GetProductByID returns one product with all its variants.
func (q *Queries) GetProductByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	query := `
		SELECT id, category_id, name, slug, description
		FROM products
		WHERE id = $1`

	var p domain.Product
	if err := q.db.QueryRow(ctx, query, id).Scan(&p.ID, &p.CategoryID, &p.Name, &p.Slug, &p.Description); err != nil {
		return domain.Product{}, err
	}

	variants, err := q.listVariantsForProducts(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return domain.Product{}, err
	}
	p.Variants = variants
	return p, nil
}

// GetVariantBySlug returns a single variant by its unique slug.
func (q *Queries) GetVariantBySlug(ctx context.Context, slug string) (domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, slug, color, price_in_cents, image_url
		FROM product_variants
		WHERE slug = $1`

	var v domain.ProductVariant
	err := q.db.QueryRow(ctx, query, slug).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.Slug, &v.Color, &v.PriceInCents, &v.ImageURL,
	)
	return v, err
}

// SearchProducts matches product names by case-insensitive substring.
// Each hit carries the image of the product's cheapest variant.
func (q *Queries) SearchProducts(ctx context.Context, term string, limit int32) ([]domain.SearchResult, error) {
	query := `
		SELECT p.id, p.name,
		       COALESCE((
			SELECT v.image_url FROM product_variants v
			WHERE v.product_id = p.id
			ORDER BY v.price_in_cents ASC
			LIMIT 1
		       ), '')
		FROM products p
		WHERE LOWER(p.name) LIKE LOWER($1)
		ORDER BY p.name
		LIMIT $2`

	rows, err := q.db.Query(ctx, query, "%"+term+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	results := []domain.SearchResult{}
	for rows.Next() {
		var r domain.SearchResult
		if err := rows.Scan(&r.ID, &r.Name, &r.ImageURL); err != nil {
			return nil, fmt.Errorf("scan search result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (q *Queries) listVariantsForProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, slug, color, price_in_cents, image_url
		FROM product_variants
		WHERE product_id = ANY($1)
		ORDER BY price_in_cents`

	rows, err := q.db.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list product variants: %w", err)
	}
	defer rows.Close()

	var variants []domain.ProductVariant
	for rows.Next() {
		var v domain.ProductVariant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Slug, &v.Color, &v.PriceInCents, &v.ImageURL); err != nil {
			return nil, fmt.Errorf("scan product variant: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}
