package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain"
	"github.com/jhoicas/Cotizador-api/internal/domain/access"
	"github.com/jhoicas/Cotizador-api/internal/domain/entity"
	"github.com/jhoicas/Cotizador-api/internal/domain/repository"
)

// CompanyUseCase lectura y actualización de la empresa de la sesión.
type CompanyUseCase struct {
	companies repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companies repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies}
}

// Me devuelve la empresa del actor.
func (uc *CompanyUseCase) Me(ctx context.Context, actor access.Actor) (*dto.CompanyResponse, error) {
	company, err := uc.companies.GetByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Update actualiza datos de contacto. Solo OWNER/ADMIN.
func (uc *CompanyUseCase) Update(ctx context.Context, actor access.Actor, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if !actor.Role.CanManageCompany() {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companies.GetByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		company.Name = in.Name
	}
	if in.Address != "" {
		company.Address = in.Address
	}
	if in.Phone != "" {
		company.Phone = in.Phone
	}
	if in.Email != "" {
		company.Email = in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		TradeID:   c.TradeID,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
