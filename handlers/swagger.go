package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>whynotact-backend Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document describing the public API surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "whynotact-backend", "version": "v0.1.0" },
  "paths": {
    "/api/petition": {
      "post": {
        "summary": "Sign the petition",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["name","email","zipcode","consent"],"properties":{"name":{"type":"string"},"email":{"type":"string"},"zipcode":{"type":"string"},"consent":{"type":"boolean"},"phone":{"type":"string"},"reason":{"type":"string"},"theme":{"type":"string"}}}}}},
        "responses": { "201": { "description": "signature created" }, "400": { "description": "validation failed" }, "500": { "description": "store failure" } }
      },
      "get": { "summary": "Count signatures", "parameters": [{"name":"theme","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "aggregate count" } } }
    },
    "/api/story": {
      "post": {
        "summary": "Share a story",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["email","story"],"properties":{"email":{"type":"string"},"story":{"type":"string"},"name":{"type":"string"},"allowPublish":{"type":"boolean"},"allowContact":{"type":"boolean"},"theme":{"type":"string"}}}}}},
        "responses": { "201": { "description": "story created (pending moderation)" }, "400": { "description": "validation failed" }, "500": { "description": "store failure" } }
      },
      "get": { "summary": "List published stories", "parameters": [{"name":"theme","in":"query","schema":{"type":"string"}},{"name":"limit","in":"query","schema":{"type":"integer","default":10}},{"name":"offset","in":"query","schema":{"type":"integer","default":0}}], "responses": { "200": { "description": "published stories, newest first" } } }
    },
    "/api/questions": { "get": { "summary": "List survey questions", "parameters": [{"name":"layer","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "questions with per-lens variants" } } } },
    "/api/impact-points": { "get": { "summary": "List impact points for a lens", "parameters": [{"name":"lens","in":"query","required":true,"schema":{"type":"string","enum":["far-left","mid-left","mid-right","far-right"]}}], "responses": { "200": { "description": "resolved impact points" }, "400": { "description": "lens missing or unrecognized" } } } },
    "/api/data-points": { "get": { "summary": "List data points for a lens", "parameters": [{"name":"lens","in":"query","required":true,"schema":{"type":"string","enum":["far-left","mid-left","mid-right","far-right"]}}], "responses": { "200": { "description": "resolved data points" }, "400": { "description": "lens missing or unrecognized" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
