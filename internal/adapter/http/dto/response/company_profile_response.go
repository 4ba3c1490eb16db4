package response

import (
	"oficina_os/internal/domain/entities"
)

type CompanyProfileResponse struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Phone   string `json:"phone"`
	LogoURL string `json:"logoUrl,omitempty"`
}

func FromCompanyProfile(p entities.CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse{
		Name:    p.Name,
		CNPJ:    p.CNPJ,
		Phone:   p.Phone,
		LogoURL: p.LogoURL,
	}
}
