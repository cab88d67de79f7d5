package ports

import "github.com/caiohportella/skillglyph/internal/domain"

// SkillCatalogLoader loads skill catalogs from a source (e.g., filesystem).
type SkillCatalogLoader interface {
	LoadCatalog(path string) (domain.Catalog, error)
	ListCatalogs(root string) ([]domain.CatalogRef, error)
}
