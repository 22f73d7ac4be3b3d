// Package docs holds the swagger document served under /swagger. Regenerate with swag init -g internal/api/http/internal/v1/handler.go --instanceName internal.
package docs

import "github.com/swaggo/swag"

const docTemplateinternal = `{
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
        "/form": {
            "get": {
                "security": [{"FormSession": []}],
                "description": "Current form state of the session. Starts a new session when none is sent.",
                "produces": ["application/json"],
                "tags": ["Form"],
                "summary": "Get Form",
                "operationId": "getForm",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Form"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        },
        "/form/fields/{field}": {
            "put": {
                "security": [{"FormSession": []}],
                "description": "Store a typed value. phone, cpf and zipcode are masked like the form inputs. Passwords are never echoed back.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Form"],
                "summary": "Set Field",
                "operationId": "setField",
                "parameters": [
                    {"type": "string", "description": "Field name", "name": "field", "in": "path", "required": true},
                    {"description": "Value", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FieldRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        },
        "/form/submit": {
            "post": {
                "security": [{"FormSession": []}],
                "description": "Validate every field and send the registration. The form resets on success.",
                "produces": ["application/json"],
                "tags": ["Form"],
                "summary": "Submit Form",
                "operationId": "submitForm",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/SubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ValidationErrorStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        },
        "/form/visibility/{field}": {
            "post": {
                "security": [{"FormSession": []}],
                "description": "Flip the masked/plaintext flag of password or password_confirmation",
                "produces": ["application/json"],
                "tags": ["Form"],
                "summary": "Toggle Password Visibility",
                "operationId": "toggleVisibility",
                "parameters": [
                    {"type": "string", "description": "password or password_confirmation", "name": "field", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        },
        "/form/zipcode/blur": {
            "post": {
                "security": [{"FormSession": []}],
                "description": "Look up the current zipcode and fill address and city",
                "produces": ["application/json"],
                "tags": ["Form"],
                "summary": "Zipcode Blur",
                "operationId": "blurZipcode",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Form"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        },
        "/postal/{zipcode}": {
            "get": {
                "description": "Resolve a zipcode to street and locality",
                "produces": ["application/json"],
                "tags": ["Postal"],
                "summary": "Lookup Zipcode",
                "operationId": "lookupZipcode",
                "parameters": [
                    {"type": "string", "description": "Zipcode", "name": "zipcode", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Address"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/ErrorStruct"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/ErrorStruct"}}
                }
            }
        }
    },
    "definitions": {
        "Address": {
            "type": "object",
            "properties": {
                "bairro": {"type": "string"},
                "cep": {"type": "string"},
                "complemento": {"type": "string"},
                "ddd": {"type": "string"},
                "ibge": {"type": "string"},
                "localidade": {"type": "string"},
                "logradouro": {"type": "string"},
                "uf": {"type": "string"}
            }
        },
        "ErrorStruct": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "error_message": {"type": "string"}
            }
        },
        "FieldRequest": {
            "type": "object",
            "properties": {
                "value": {"type": "string", "maxLength": 1024}
            }
        },
        "Form": {
            "type": "object",
            "properties": {
                "errors": {"type": "object", "additionalProperties": {"type": "string"}},
                "id": {"type": "string"},
                "notice": {"type": "string"},
                "show_password": {"type": "boolean"},
                "show_password_confirmation": {"type": "boolean"},
                "values": {"$ref": "#/definitions/RegistrationInput"}
            }
        },
        "RegistrationInput": {
            "type": "object",
            "required": ["address", "city", "cpf", "email", "name", "password", "password_confirmation", "phone", "terms", "zipcode"],
            "properties": {
                "address": {"type": "string", "maxLength": 255},
                "city": {"type": "string", "maxLength": 255},
                "cpf": {"type": "string", "maxLength": 14},
                "email": {"type": "string", "maxLength": 255},
                "name": {"type": "string", "maxLength": 255, "minLength": 2},
                "password": {"type": "string", "maxLength": 255, "minLength": 8},
                "password_confirmation": {"type": "string", "maxLength": 255, "minLength": 8},
                "phone": {"type": "string", "maxLength": 20},
                "terms": {"type": "boolean"},
                "zipcode": {"type": "string", "maxLength": 9}
            }
        },
        "SubmitResponse": {
            "type": "object",
            "properties": {
                "form": {"$ref": "#/definitions/Form"},
                "status": {"type": "string"}
            }
        },
        "ValidationError": {
            "type": "object",
            "properties": {
                "error_message": {"type": "string"},
                "field_key": {"type": "string"}
            }
        },
        "ValidationErrorStruct": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "error_message": {"type": "string"},
                "validation_errors": {"type": "array", "items": {"$ref": "#/definitions/ValidationError"}}
            }
        }
    },
    "securityDefinitions": {
        "FormSession": {
            "type": "apiKey",
            "name": "X-Form-Session",
            "in": "header"
        }
    }
}`

// SwaggerInfointernal holds exported Swagger Info so clients can modify it
var SwaggerInfointernal = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Cadastro API",
	Description:      "Registration form state, postal lookup and submission",
	InfoInstanceName: "internal",
	SwaggerTemplate:  docTemplateinternal,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfointernal.InstanceName(), SwaggerInfointernal)
}
