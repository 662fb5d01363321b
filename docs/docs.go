// Package docs holds the generated Swagger specification.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/api/v1/assistant/messages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Process a conversational turn",
                "description": "Parses one natural-language utterance (Portuguese) and executes or clarifies it.",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "429": {"description": "Too Many Requests"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/assistant/confirm": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Resolve the pending command",
                "description": "Confirms or cancels the user's last parsed command.",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/tasks/{id}/complete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Mark a task as completed",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/alarms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Alarms"],
                "summary": "List alarms",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/alarms/{id}/active": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Alarms"],
                "summary": "Enable or disable an alarm",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/alarms/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Alarms"],
                "summary": "Delete an alarm",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Jarvis Personal Assistant API",
	Description:      "Portuguese natural-language personal assistant for tasks and alarms, with Telegram and Google Calendar integrations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
