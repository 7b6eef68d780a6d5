// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/erp_backend/main.go -o cmd/docs
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
        "/companies": {
            "get": {"tags": ["companies"], "summary": "List companies", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["companies"], "summary": "Create a company", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/companies/{companyID}/vouchers": {
            "get": {"tags": ["vouchers"], "summary": "List vouchers", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["vouchers"], "summary": "Post a voucher", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}
        },
        "/companies/{companyID}/reports/trial-balance": {
            "get": {"tags": ["reports"], "summary": "Trial balance", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "ERP Ledger API",
	Description:      "Double-entry bookkeeping backend: companies, chart of accounts, ledgers, vouchers, inventory, GST and financial reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
