package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// seedPackage is the raw JSON shape of one package record in the seed file.
type seedPackage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Duration    string   `json:"duration"`
	Refundable  bool     `json:"refundable"`
}

type packageSeedFile struct {
	Packages []seedPackage `json:"packages"`
}

// PackageCatalog serves the travel-package catalogue from a JSON seed file.
type PackageCatalog struct {
	filePath string
}

// NewPackageCatalog creates a PackageCatalog reading from the given file path.
func NewPackageCatalog(filePath string) *PackageCatalog {
	return &PackageCatalog{filePath: filePath}
}

// Packages implements domain.PackageInventory.
func (c *PackageCatalog) Packages(ctx context.Context) ([]domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read package catalog: %w", err)
	}

	var seed packageSeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse package catalog: %w", err)
	}

	packages := make([]domain.Package, 0, len(seed.Packages))
	for _, p := range seed.Packages {
		normalized, err := normalizePackage(p)
		if err != nil {
			continue
		}
		packages = append(packages, normalized)
	}

	return packages, nil
}

// PackageByID implements domain.PackageInventory.
func (c *PackageCatalog) PackageByID(ctx context.Context, id string) (domain.Package, error) {
	packages, err := c.Packages(ctx)
	if err != nil {
		return domain.Package{}, err
	}

	for _, p := range packages {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Package{}, fmt.Errorf("%w: %s", domain.ErrPackageNotFound, id)
}

// normalizePackage converts a raw seed record to a domain Package entity.
func normalizePackage(p seedPackage) (domain.Package, error) {
	if p.ID == "" {
		return domain.Package{}, fmt.Errorf("package record has no id")
	}
	if p.Price < 0 {
		return domain.Package{}, fmt.Errorf("package %s has a negative price", p.ID)
	}
	if p.Rating < 0 || p.Rating > 5 {
		return domain.Package{}, fmt.Errorf("package %s has a rating outside [0, 5]", p.ID)
	}

	return domain.Package{
		ID:          p.ID,
		Title:       p.Title,
		Location:    p.Location,
		Image:       p.Image,
		Description: p.Description,
		Highlights:  p.Highlights,
		Price:       p.Price,
		Rating:      p.Rating,
		Duration:    p.Duration,
		Refundable:  p.Refundable,
	}, nil
}

// Ensure PackageCatalog implements PackageInventory at compile time.
var _ domain.PackageInventory = (*PackageCatalog)(nil)
