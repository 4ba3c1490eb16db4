package request

import (
	"oficina_os/internal/domain/entities"
)

type CompanyProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	CNPJ    string `json:"cnpj"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logoUrl"`
}

func (r CompanyProfileRequest) ToEntity() entities.CompanyProfile {
	return entities.CompanyProfile{
		Name:    r.Name,
		CNPJ:    r.CNPJ,
		Phone:   r.Phone,
		LogoURL: r.LogoURL,
	}
}
