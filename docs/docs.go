// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init` after changing controller annotations.
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
        "/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a user profile",
                "parameters": [
                    {"description": "profile", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue the session cookie for an email",
                "parameters": [
                    {"description": "email", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/employee-list": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Employees with a count per designation",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/pay/salary-update": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Raise an employee's salary",
                "parameters": [
                    {"description": "new salary", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.SalaryUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/daily-work": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["work"],
                "summary": "Submit a daily work entry",
                "parameters": [
                    {"description": "entry", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.WorkRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/submited-work": {
            "get": {
                "produces": ["application/json"],
                "tags": ["work"],
                "summary": "Aggregated work report",
                "parameters": [
                    {"type": "string", "description": "1-12 or month name", "name": "month", "in": "query"},
                    {"type": "string", "description": "employee name", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/payment/request": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payroll"],
                "summary": "File a pay request for an employee",
                "parameters": [
                    {"description": "request", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/approve-pay-request": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["payroll"],
                "summary": "Charge and approve a pending pay request",
                "parameters": [
                    {"description": "request id", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ApprovePaymentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/payment-history/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["payroll"],
                "summary": "Payment history by employee id or email",
                "parameters": [
                    {"type": "string", "description": "user id or email", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "page, from 1", "name": "page", "in": "query"},
                    {"type": "integer", "description": "page size", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/admin-stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Dashboard totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/gemini-ai": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ai"],
                "summary": "Text completion",
                "parameters": [
                    {"type": "string", "description": "prompt", "name": "prompt", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "mess": {"type": "string"},
                "data": {}
            }
        },
        "dto.CreateUserRequest": {
            "type": "object",
            "required": ["email", "name"],
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["employee", "hr", "admin"]},
                "designation": {"type": "string"},
                "salary": {"type": "integer"},
                "bankAccountNo": {"type": "string"},
                "photo": {"type": "string"}
            }
        },
        "dto.LoginRequest": {
            "type": "object",
            "required": ["email"],
            "properties": {"email": {"type": "string"}}
        },
        "dto.SalaryUpdateRequest": {
            "type": "object",
            "required": ["id", "salary"],
            "properties": {"id": {"type": "integer"}, "salary": {"type": "integer"}}
        },
        "dto.WorkRequest": {
            "type": "object",
            "required": ["hoursWorked", "task", "workedDate"],
            "properties": {
                "task": {"type": "string"},
                "hoursWorked": {"type": "number"},
                "workedDate": {"type": "string"}
            }
        },
        "dto.CreatePaymentRequest": {
            "type": "object",
            "required": ["employeeId", "employeeName", "month", "salary", "year"],
            "properties": {
                "employeeId": {"type": "integer"},
                "employeeName": {"type": "string"},
                "salary": {"type": "integer"},
                "month": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "dto.ApprovePaymentRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {"id": {"type": "integer"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NexusTech API",
	Description:      "Employee management and payroll backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
