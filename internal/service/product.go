package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fairyhunter13/inventory-task-simulator/internal/endpoint"
	"github.com/fairyhunter13/inventory-task-simulator/internal/model"
	"github.com/fairyhunter13/inventory-task-simulator/internal/obs"
	"github.com/fairyhunter13/inventory-task-simulator/internal/query"
	"github.com/fairyhunter13/inventory-task-simulator/internal/transport"
)

// ProductService reads and writes products and categories.
type ProductService struct {
	tr transport.Transport
	o  options
}

func NewProductService(tr transport.Transport, opts ...Option) *ProductService {
	return &ProductService{tr: tr, o: buildOptions(opts)}
}

// Products lists products narrowed and ordered by p.
func (s *ProductService) Products(ctx context.Context, p query.Params) ([]model.Product, error) {
	var out []model.Product
	if err := s.tr.Get(ctx, endpoint.PathProducts, p.Values(), &out); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return out, nil
}

func (s *ProductService) Product(ctx context.Context, id string) (model.Product, error) {
	var out model.Product
	if err := s.tr.Get(ctx, itemPath(endpoint.PathProducts, id), nil, &out); err != nil {
		return model.Product{}, fmt.Errorf("get product: %w", err)
	}
	return out, nil
}

// ProductsWithCategory fetches products and categories concurrently and
// joins each product to its category.
func (s *ProductService) ProductsWithCategory(ctx context.Context, p query.Params) ([]model.ProductWithCategory, error) {
	items, _, err := s.fetchJoined(ctx, p)
	return items, err
}

// Catalog returns the joined products together with the category filters,
// fetching categories once for both.
func (s *ProductService) Catalog(ctx context.Context, p query.Params) ([]model.ProductWithCategory, []model.Category, error) {
	items, cats, err := s.fetchJoined(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return items, withAll(cats), nil
}

func (s *ProductService) fetchJoined(ctx context.Context, p query.Params) ([]model.ProductWithCategory, []model.Category, error) {
	var (
		products   []model.Product
		categories []model.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.Products(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	byID := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}
	out := make([]model.ProductWithCategory, 0, len(products))
	for _, prod := range products {
		pc := model.ProductWithCategory{Product: prod}
		if prod.CategoryID != nil {
			if c, ok := byID[*prod.CategoryID]; ok {
				pc.Category = &c
			}
		}
		out = append(out, pc)
	}
	return out, categories, nil
}

func (s *ProductService) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := s.tr.Get(ctx, endpoint.PathCategories, nil, &out); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// CategoryFilters returns the categories with the synthetic "all" entry first.
func (s *ProductService) CategoryFilters(ctx context.Context) ([]model.Category, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return withAll(cats), nil
}

func withAll(cats []model.Category) []model.Category {
	return append([]model.Category{model.AllCategory()}, cats...)
}

// Create validates d and posts it. On the remote path the identifier,
// timestamps and physical stock are filled in here.
func (s *ProductService) Create(ctx context.Context, d model.ProductDraft) (model.Product, error) {
	if err := d.Validate(); err != nil {
		return model.Product{}, err
	}
	if st, ok := s.o.stamp(s.tr); ok {
		d.ID = st.id
		if d.StockPhysical == nil {
			d.StockPhysical = ptr(d.StockSystem)
		}
		d.CreatedAt = ptr(st.now)
		d.UpdatedAt = ptr(st.now)
	}
	var out model.Product
	if err := s.tr.Post(ctx, endpoint.PathProducts, d, &out); err != nil {
		return model.Product{}, fmt.Errorf("create product: %w", err)
	}
	obs.Logger.Info("resource_created", "resource", "product", "id", out.ID, "transport", s.tr.Kind())
	return out, nil
}

// Update merges p into the product and stamps updatedAt.
func (s *ProductService) Update(ctx context.Context, id string, p model.ProductPatch) (model.Product, error) {
	if err := p.Validate(); err != nil {
		return model.Product{}, err
	}
	p.UpdatedAt = ptr(s.o.now().UTC())
	var out model.Product
	if err := s.tr.Put(ctx, itemPath(endpoint.PathProducts, id), p, &out); err != nil {
		return model.Product{}, fmt.Errorf("update product: %w", err)
	}
	return out, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.tr.Delete(ctx, itemPath(endpoint.PathProducts, id), nil); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	obs.Logger.Info("resource_deleted", "resource", "product", "id", id)
	return nil
}

// LowStock lists products whose system stock is at or below the minimum.
func (s *ProductService) LowStock(ctx context.Context) ([]model.Product, error) {
	return s.Products(ctx, query.Params{LowStock: true})
}

func (s *ProductService) Search(ctx context.Context, text string, p query.Params) ([]model.Product, error) {
	p.Search = text
	return s.Products(ctx, p)
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID string, p query.Params) ([]model.Product, error) {
	p.CategoryID = categoryID
	return s.Products(ctx, p)
}

func (s *ProductService) Sorted(ctx context.Context, key query.SortKey, p query.Params) ([]model.Product, error) {
	p.SortBy = key
	return s.Products(ctx, p)
}

// Paginated returns one server-side page. Non-positive page and limit fall
// back to DefaultPage and DefaultLimit.
func (s *ProductService) Paginated(ctx context.Context, page, limit int, p query.Params) ([]model.Product, error) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	p.Page, p.Limit = page, limit
	return s.Products(ctx, p)
}

func (s *ProductService) CreateCategory(ctx context.Context, d model.CategoryDraft) (model.Category, error) {
	if err := d.Validate(); err != nil {
		return model.Category{}, err
	}
	if d.Slug == "" && model.Slugify(d.Name) == model.AllCategoryID {
		return model.Category{}, &model.ValidationError{Field: "name", Reason: "\"all\" is reserved"}
	}
	var out model.Category
	if err := s.tr.Post(ctx, endpoint.PathCategories, d, &out); err != nil {
		return model.Category{}, fmt.Errorf("create category: %w", err)
	}
	obs.Logger.Info("resource_created", "resource", "category", "id", out.ID, "transport", s.tr.Kind())
	return out, nil
}

func (s *ProductService) UpdateCategory(ctx context.Context, id string, p model.CategoryPatch) (model.Category, error) {
	if err := rejectAll(id); err != nil {
		return model.Category{}, err
	}
	if err := p.Validate(); err != nil {
		return model.Category{}, err
	}
	var out model.Category
	if err := s.tr.Put(ctx, itemPath(endpoint.PathCategories, id), p, &out); err != nil {
		return model.Category{}, fmt.Errorf("update category: %w", err)
	}
	return out, nil
}

func (s *ProductService) DeleteCategory(ctx context.Context, id string) error {
	if err := rejectAll(id); err != nil {
		return err
	}
	if err := s.tr.Delete(ctx, itemPath(endpoint.PathCategories, id), nil); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	obs.Logger.Info("resource_deleted", "resource", "category", "id", id)
	return nil
}
