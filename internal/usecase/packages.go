package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/skyway/travel-booking-system/internal/domain"
)

// PackageUseCase serves the travel-package catalogue and its one-shot
// confirmation flow. Packages have no passenger wizard: an authenticated user
// confirms, the submission collaborator runs, done.
type PackageUseCase interface {
	// List returns the full catalogue.
	List(ctx context.Context) ([]domain.Package, error)

	// Find resolves one package by identifier.
	Find(ctx context.Context, id string) (domain.Package, error)

	// Book confirms a package order for the authenticated user.
	Book(ctx context.Context, id string, user domain.Identity) (domain.Confirmation, error)
}

type packageUseCase struct {
	inventory domain.PackageInventory
	gateway   domain.SubmissionGateway
	log       zerolog.Logger
}

// NewPackageUseCase creates a PackageUseCase over the given collaborators.
func NewPackageUseCase(inventory domain.PackageInventory, gateway domain.SubmissionGateway, log zerolog.Logger) PackageUseCase {
	return &packageUseCase{
		inventory: inventory,
		gateway:   gateway,
		log:       log,
	}
}

func (uc *packageUseCase) List(ctx context.Context) ([]domain.Package, error) {
	return uc.inventory.Packages(ctx)
}

func (uc *packageUseCase) Find(ctx context.Context, id string) (domain.Package, error) {
	return uc.inventory.PackageByID(ctx, id)
}

func (uc *packageUseCase) Book(ctx context.Context, id string, user domain.Identity) (domain.Confirmation, error) {
	if user.Email == "" {
		return domain.Confirmation{}, domain.ErrUnauthenticated
	}

	pkg, err := uc.inventory.PackageByID(ctx, id)
	if err != nil {
		return domain.Confirmation{}, err
	}

	confirmation, err := uc.gateway.SubmitPackageOrder(ctx, domain.PackageOrder{
		Package:  pkg,
		Customer: user,
	})
	if err != nil {
		uc.log.Warn().Str("package_id", id).Err(err).Msg("Package order rejected")
		return domain.Confirmation{}, fmt.Errorf("%w: %s", domain.ErrSubmissionFailed, err)
	}

	uc.log.Info().
		Str("package_id", id).
		Str("confirmation", confirmation.Reference).
		Msg("Package order confirmed")

	return confirmation, nil
}

// Ensure packageUseCase implements PackageUseCase at compile time.
var _ PackageUseCase = (*packageUseCase)(nil)
