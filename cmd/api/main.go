package main

import (
	_ "oficina_os/docs"
	"oficina_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Oficina OS API
// @version         1.0
// @description     Service order management for a heavy-diesel repair shop (orders + price catalog + company profile) backed by DynamoDB with a local SQLite mirror.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
