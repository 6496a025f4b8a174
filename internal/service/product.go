package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"bewear/internal/domain"
	"bewear/internal/repository"
)

// searchResultLimit caps how many hits the search box shows.
const searchResultLimit = 8

// minSearchTermLen is the shortest term worth hitting the database for.
const minSearchTermLen = 2

type productService struct {
	repo repository.Querier
}

// NewProductService creates the read-only catalog service.
func NewProductService(repo repository.Querier) domain.ProductService {
	return &productService{repo: repo}
}

// List returns catalog products with their variants, optionally filtered
// by category slug.
func (s *productService) List(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, categorySlug)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// GetVariantBySlug returns the variant plus its parent product with all
// sibling variants, so a product page can render the variant switcher.
func (s *productService) GetVariantBySlug(ctx context.Context, slug string) (*domain.ProductVariant, *domain.Product, error) {
	variant, err := s.repo.GetVariantBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, domain.ErrProductNotFound
		}
		return nil, nil, fmt.Errorf("get variant %q: %w", slug, err)
	}

	product, err := s.repo.GetProductByID(ctx, variant.ProductID)
	if err != nil {
		return nil, nil, fmt.Errorf("get product for variant %q: %w", slug, err)
	}

	return &variant, &product, nil
}

// Search runs a case-insensitive substring match on product names. Terms
// under two characters skip the database and return an empty slice, never
// nil, so callers always get a JSON array.
func (s *productService) Search(ctx context.Context, term string) ([]domain.SearchResult, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minSearchTermLen {
		return []domain.SearchResult{}, nil
	}

	results, err := s.repo.SearchProducts(ctx, term, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", term, err)
	}
	if results == nil {
		results = []domain.SearchResult{}
	}
	return results, nil
}
