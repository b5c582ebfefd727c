// Package docs holds the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "https://opensource.org/licenses/Apache-2.0"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/evaluate": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calc"],
                "summary": "Evaluate an expression from the query string",
                "parameters": [
                    {
                        "type": "string",
                        "description": "expression, e.g. 2 + 3 x 4",
                        "name": "expr",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.EvaluateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            },
            "post": {
                "description": "Evaluates alternating numbers and operators (+ - x * / %) with integer arithmetic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["calc"],
                "summary": "Evaluate an expression",
                "parameters": [
                    {
                        "description": "tokens or expression",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/router.EvaluateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/router.EvaluateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apperr.Response"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/apperr.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        }
    },
    "definitions": {
        "router.EvaluateRequest": {
            "type": "object",
            "properties": {
                "tokens": {"type": "array", "items": {"type": "string"}, "example": ["2", "+", "3", "x", "4"]},
                "expression": {"type": "string", "example": "2 + 3 x 4"}
            }
        },
        "router.EvaluateResponse": {
            "type": "object",
            "properties": {
                "result": {"type": "string", "example": "14"},
                "tokens": {"type": "array", "items": {"type": "string"}}
            }
        },
        "apperr.Response": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "title": {"type": "string"},
                "kind": {"type": "string", "example": "division_by_zero"}
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
	Title:            "Calc API",
	Description:      "Integer calculator over pre-split tokens with operator precedence and checked arithmetic",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
