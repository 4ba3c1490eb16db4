package routes

import (
	"oficina_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSettings = "/settings"
)

func addSettingsRoutes(rg *gin.RouterGroup, profileHandler *handlers.CompanyProfileHandler) {
	settings := rg.Group(PathSettings)
	{
		settings.GET("/company-profile", profileHandler.GetProfile)
		settings.PUT("/company-profile", profileHandler.SaveProfile)
	}
}
