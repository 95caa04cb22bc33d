package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/arcanosig/arcano/backend/internal/api/docs"
)

const schemaPath = "/api/v1/schema/"

// docsCSP replaces the API policy on the documentation pages, which load
// scripts, styles and fonts.
const docsCSP = "default-src 'self'; script-src 'self' 'unsafe-inline' https://cdn.redoc.ly; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; font-src 'self' https://fonts.gstatic.com; " +
	"img-src 'self' data: https:; worker-src 'self' blob:; connect-src 'self'; frame-ancestors 'none'"

const redocPage = `<!DOCTYPE html>
<html>
<head>
<title>ARCANO API</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<redoc spec-url="` + schemaPath + `"></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`

// registerDocs serves the OpenAPI document as JSON, Swagger UI and ReDoc.
func registerDocs(router *gin.Engine) {
	pages := router.Group("", func(c *gin.Context) {
		c.Header("Content-Security-Policy", docsCSP)
		c.Next()
	})
	router.GET(schemaPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
	})
	pages.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL(schemaPath)))
	pages.GET("/redoc/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(redocPage))
	})
}
