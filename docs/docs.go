// Package docs holds the swagger document served at /swagger.
package docs

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
        "/shipments": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "List active shipments",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Create a shipment",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/shipments/analytics": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Shipment counts by status and value by currency",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            }
        },
        "/shipments/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "produces": ["application/json"],
                "tags": ["shipments"],
                "summary": "Get a shipment with its transporter",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            },
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["shipments"],
                "summary": "Update a shipment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["shipments"],
                "summary": "Soft delete a shipment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            }
        },
        "/shipments/{id}/status": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["shipments"],
                "summary": "Change the status of a shipment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            }
        },
        "/logistics-expenses": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "List active logistics expenses",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            },
            "post": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "Record a logistics expense",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Envelope"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/logistics-expenses/route/{route}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "List logistics expenses of one route",
                "parameters": [{"type": "string", "name": "route", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            }
        },
        "/logistics-expenses/{id}": {
            "get": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "Get a logistics expense with its shipment and transporter",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            },
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "Update a logistics expense and derive its totals again",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            },
            "delete": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "Soft delete a logistics expense",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            }
        },
        "/logistics-expenses/{id}/status": {
            "put": {
                "security": [{"Bearer": []}],
                "tags": ["logistics-expenses"],
                "summary": "Change the transport status of an expense",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Envelope"}}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "response.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "message": {"type": "string"},
                "page": {"type": "integer"},
                "pages": {"type": "integer"},
                "results": {"type": "integer"},
                "status": {"type": "string"},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "description": "Type \"Bearer\" followed by a space and the API token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Logistics Back Office API",
	Description:      "Shipments, logistics expenses and back office accounts backed by DynamoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
