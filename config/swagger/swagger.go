// Package swagger registers the OpenAPI document served at /swagger.
// Regenerate the template with `swag init` after changing route annotations.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "description": "Liveness probe",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Ping the server",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object"}
                    }
                }
            }
        },
        "/signup": {
            "post": {
                "description": "Creates a user account plus its game profile",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign up",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "409": {"description": "Conflict", "schema": {"type": "object"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Exchanges credentials for a JWT",
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}}
                }
            }
        },
        "/auth/runs": {
            "get": {
                "description": "Lists the caller's archived runs",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Run history",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}}
                }
            }
        },
        "/leaderboard": {
            "get": {
                "description": "Best archived runs across all players",
                "produces": ["application/json"],
                "tags": ["runs"],
                "summary": "Leaderboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Farol API",
	Description:      "Gin-Gonic server for the \"Farol\" game API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
