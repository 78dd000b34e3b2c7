package api

import "net/http"

// openAPIDocument is the static API description served at /openapi.json.
const openAPIDocument = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Trailhead",
    "description": "Trail catalogue API with role-based access control.",
    "version": "0.1.0"
  },
  "components": {
    "securitySchemes": {
      "bearerAuth": {
        "type": "http",
        "scheme": "bearer",
        "bearerFormat": "JWT"
      }
    }
  },
  "paths": {
    "/login": {
      "post": {
        "summary": "Exchange credentials for a session token",
        "responses": {
          "200": {"description": "Token issued"},
          "401": {"description": "Invalid credentials"},
          "404": {"description": "Verified user has no role record"}
        }
      }
    },
    "/trails": {
      "get": {
        "summary": "List all trails",
        "security": [{"bearerAuth": []}],
        "responses": {
          "200": {"description": "Array of trails"},
          "403": {"description": "Missing or insufficient role"}
        }
      },
      "post": {
        "summary": "Create a trail (Admin)",
        "security": [{"bearerAuth": []}],
        "responses": {
          "201": {"description": "Created trail"},
          "403": {"description": "Admin role required"},
          "422": {"description": "Payload rejected by storage constraints"}
        }
      }
    },
    "/trails/{id}": {
      "get": {
        "summary": "Get a trail by id",
        "security": [{"bearerAuth": []}],
        "responses": {
          "200": {"description": "Trail"},
          "403": {"description": "Missing or insufficient role"},
          "404": {"description": "Unknown trail id"}
        }
      },
      "put": {
        "summary": "Partially update a trail (Admin)",
        "security": [{"bearerAuth": []}],
        "responses": {
          "200": {"description": "Updated trail"},
          "403": {"description": "Admin role required"},
          "404": {"description": "Unknown trail id"}
        }
      },
      "delete": {
        "summary": "Delete a trail (Admin)",
        "security": [{"bearerAuth": []}],
        "responses": {
          "200": {"description": "Deletion confirmation"},
          "403": {"description": "Admin role required"},
          "404": {"description": "Unknown trail id"}
        }
      }
    }
  }
}`

// OpenAPIHandler serves the static OpenAPI document.
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(openAPIDocument))
}
