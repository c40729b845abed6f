package http

import (
	"github.com/labstack/echo/v4"

	"github.com/skyway/travel-booking-system/internal/adapter/http/middleware"
	"github.com/skyway/travel-booking-system/internal/adapter/http/response"
	"github.com/skyway/travel-booking-system/internal/usecase"
)

// PackageHandler handles HTTP requests for travel package endpoints.
type PackageHandler struct {
	useCase  usecase.PackageUseCase
	loginURL string
}

// NewPackageHandler creates a new PackageHandler with the given use case.
func NewPackageHandler(uc usecase.PackageUseCase, loginURL string) *PackageHandler {
	return &PackageHandler{
		useCase:  uc,
		loginURL: loginURL,
	}
}

// ListPackages handles GET /api/v1/packages
//
// @Summary List travel packages
// @Tags packages
// @Produce json
// @Success 200 {array} PackageDTO
// @Router /api/v1/packages [get]
func (h *PackageHandler) ListPackages(c echo.Context) error {
	packages, err := h.useCase.List(c.Request().Context())
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToPackageDTOs(packages))
}

// GetPackage handles GET /api/v1/packages/:id
//
// @Summary Get one travel package
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} PackageDTO
// @Failure 404 {object} response.ErrorDetail "Package not found"
// @Router /api/v1/packages/{id} [get]
func (h *PackageHandler) GetPackage(c echo.Context) error {
	pkg, err := h.useCase.Find(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.OK(c, ToPackageDTO(pkg))
}

// BookPackage handles POST /api/v1/packages/:id/book
//
// @Summary Book a travel package
// @Description One-shot confirmation for the authenticated user
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 201 {object} PackageOrderDTO
// @Failure 401 {object} response.ErrorDetail "Authentication required"
// @Failure 404 {object} response.ErrorDetail "Package not found"
// @Failure 502 {object} response.ErrorDetail "Submission failed"
// @Router /api/v1/packages/{id}/book [post]
func (h *PackageHandler) BookPackage(c echo.Context) error {
	user := middleware.GetIdentity(c)
	id := c.Param("id")

	pkg, err := h.useCase.Find(c.Request().Context(), id)
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	confirmation, err := h.useCase.Book(c.Request().Context(), id, user)
	if err != nil {
		return handleError(c, h.loginURL, err)
	}

	return response.Created(c, &PackageOrderDTO{
		Package: ToPackageDTO(pkg),
		Confirmation: ConfirmationDTO{
			Reference:   confirmation.Reference,
			ProcessedAt: formatTimestamp(confirmation.ProcessedAt),
		},
	})
}
