package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"journalfetch/docs"
)

// SwaggerUI serves the Swagger UI with the host and scheme of the incoming
// request, falling back to defaultHost (APP_HOST) when the request has none.
func SwaggerUI(defaultHost string) fiber.Handler {
	docs.SwaggerInfo.Host = defaultHost
	return func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = swaggerHost(c.Get("Host"), defaultHost)
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	}
}

func swaggerHost(requestHost, defaultHost string) string {
	if requestHost != "" {
		return requestHost
	}
	return defaultHost
}
