package handlers

import (
	"log"
	"net/http"

	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"

	"github.com/gin-gonic/gin"
)

// CompanyProfileHandler handles HTTP requests for the shop identity printed
// on every order document.

type CompanyProfileHandler struct {
	profile usecase.ICompanyProfileUseCase
}

func NewCompanyProfileHandler(uc usecase.ICompanyProfileUseCase) *CompanyProfileHandler {
	return &CompanyProfileHandler{profile: uc}
}

func (h *CompanyProfileHandler) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCompanyProfile(h.profile.Get()))
}

// SaveProfile replaces the company profile. Like every write here, the local
// copy is the durability boundary and the remote write is best-effort.
func (h *CompanyProfileHandler) SaveProfile(c *gin.Context) {
	var payload request.CompanyProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid company profile payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved := h.profile.Save(c.Request.Context(), payload.ToEntity())
	log.Printf("[profile][handler] save success name=%s", saved.Name)

	c.JSON(http.StatusOK, response.FromCompanyProfile(saved))
}
