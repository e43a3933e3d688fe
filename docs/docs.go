// Package docs holds the OpenAPI document served at /swagger. It mirrors the
// godoc annotations on the handlers and must be kept in sync with them by hand.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Root"],
                "summary": "Root",
                "responses": {
                    "200": {
                        "description": "Hello",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/item/": {
            "get": {
                "description": "Returns at most 100 items in storage order.",
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "List all items",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.itemResp"}}},
                    "500": {"description": "Database Connection Error", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Create a new item and return it",
                "parameters": [
                    {"description": "Item data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "422": {"description": "Missing or invalid fields", "schema": {"$ref": "#/definitions/response.ValidationResp"}},
                    "500": {"description": "Database Connection Error", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            }
        },
        "/item/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "View single item",
                "parameters": [
                    {"type": "string", "description": "Item ID (ObjectId hex)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "422": {"description": "Invalid ObjectId", "schema": {"$ref": "#/definitions/response.ValidationResp"}},
                    "500": {"description": "Database Connection Error", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            },
            "put": {
                "description": "Updates individual fields of an existing item. Omitted fields are left unchanged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Update an existing item and return it",
                "parameters": [
                    {"type": "string", "description": "Item ID (ObjectId hex)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to update", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.updateReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.itemResp"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "422": {"description": "Invalid ObjectId or fields", "schema": {"$ref": "#/definitions/response.ValidationResp"}},
                    "500": {"description": "Database Connection Error", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Items"],
                "summary": "Delete an existing item",
                "parameters": [
                    {"type": "string", "description": "Item ID (ObjectId hex)", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Item {id} deleted successfully", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "404": {"description": "Item not found", "schema": {"$ref": "#/definitions/response.DetailResp"}},
                    "422": {"description": "Invalid ObjectId", "schema": {"$ref": "#/definitions/response.ValidationResp"}},
                    "500": {"description": "Database Connection Error", "schema": {"$ref": "#/definitions/response.DetailResp"}}
                }
            }
        },
        "/product/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Return an example product",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.productResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API and its database are ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "Database not reachable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.createReq": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "http.updateReq": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 1},
                "type": {"type": "string", "minLength": 1}
            }
        },
        "http.itemResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "created_time": {"type": "string"},
                "updated_time": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "http.productResp": {
            "type": "object",
            "properties": {
                "quantity": {"type": "integer"}
            }
        },
        "response.DetailResp": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "response.FieldError": {
            "type": "object",
            "properties": {
                "loc": {"type": "array", "items": {"type": "string"}},
                "msg": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "response.ValidationResp": {
            "type": "object",
            "properties": {
                "detail": {"type": "array", "items": {"$ref": "#/definitions/response.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "An example API",
	Description:      "A example application: CRUD over an item collection stored in MongoDB.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
