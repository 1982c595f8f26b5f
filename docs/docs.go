// Package docs registers the OpenAPI document served at /swagger/.
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
        "/activities": {
            "get": {
                "description": "Returns every activity keyed by name, with description, schedule, capacity and current participants.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "List all activities",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {"$ref": "#/definitions/domain.Activity"}
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}
                    }
                }
            }
        },
        "/activities/{activityName}/signup": {
            "post": {
                "description": "Appends the email to the activity's participant list. Capacity is informational and not enforced.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Sign a student up for an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true},
                    {"type": "string", "description": "Student email", "name": "email", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "400": {"description": "already signed up", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Activity not found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "invalid parameters", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/activities/{activityName}/unregister": {
            "post": {
                "description": "Removes the email from the activity's participant list.",
                "produces": ["application/json"],
                "tags": ["activities"],
                "summary": "Unregister a student from an activity",
                "parameters": [
                    {"type": "string", "description": "Activity name", "name": "activityName", "in": "path", "required": true},
                    {"type": "string", "description": "Student email", "name": "email", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "400": {"description": "not registered", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "404": {"description": "Activity not found", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "422": {"description": "invalid parameters", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Activity": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "schedule": {"type": "string"},
                "max_participants": {"type": "integer"},
                "participants": {"type": "array", "items": {"type": "string"}}
            }
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Mergington High School Activities API",
	Description:      "List extracurricular activities, sign students up and unregister them.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
