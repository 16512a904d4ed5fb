// Package docs provides Swagger documentation for the API.
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
        "/generate-thread": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["threads"],
                "summary": "Generate a Twitter thread from a YouTube video",
                "description": "Extracts the video's transcript and turns it into an ordered sequence of tweets",
                "parameters": [
                    {
                        "description": "Generate thread request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.GenerateThreadRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GenerateThreadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/generate-tweet": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Generate a single tweet about a topic",
                "parameters": [
                    {
                        "description": "Generate tweet request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.GenerateTweetRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GenerateTweetResponse"}}
                }
            }
        },
        "/api/v1/generate-bio": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generate"],
                "summary": "Generate a profile bio",
                "parameters": [
                    {
                        "description": "Generate bio request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.GenerateBioRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.GenerateBioResponse"}}
                }
            }
        },
        "/api/v1/auth/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange an API key for a short-lived bearer token",
                "parameters": [
                    {
                        "description": "Token request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.TokenRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TokenResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/threads": {
            "get": {
                "produces": ["application/json"],
                "tags": ["threads"],
                "summary": "List generated threads",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/threads/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["threads"],
                "summary": "Get a generated thread by ID",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        },
        "/api/v1/threads/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["threads"],
                "summary": "Export the thread history as an Excel file",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/api-keys": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["api-keys"],
                "summary": "Create a new API key",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {
                        "description": "Create API key request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/models.CreateAPIKeyRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CreateAPIKeyResponse"}}
                }
            },
            "get": {
                "produces": ["application/json"],
                "tags": ["api-keys"],
                "summary": "List API keys",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}
                }
            }
        },
        "/api/v1/api-keys/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["api-keys"],
                "summary": "Deactivate an API key",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"type": "object"}}
                }
            }
        }
    },
    "definitions": {
        "models.GenerateThreadRequest": {
            "type": "object",
            "required": ["video_url"],
            "properties": {
                "video_url": {"type": "string", "example": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
                "thread_length": {"type": "integer", "example": 5},
                "tone": {"type": "string", "example": "casual"},
                "writing_style": {"type": "string"}
            }
        },
        "models.GenerateThreadResponse": {
            "type": "object",
            "properties": {
                "thread": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.GenerateTweetRequest": {
            "type": "object",
            "required": ["topic"],
            "properties": {
                "topic": {"type": "string"},
                "tone": {"type": "string"},
                "writing_style": {"type": "string"}
            }
        },
        "models.GenerateTweetResponse": {
            "type": "object",
            "properties": {
                "tweet": {"type": "string"}
            }
        },
        "models.GenerateBioRequest": {
            "type": "object",
            "required": ["name", "expertise"],
            "properties": {
                "name": {"type": "string"},
                "expertise": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "tone": {"type": "string"}
            }
        },
        "models.GenerateBioResponse": {
            "type": "object",
            "properties": {
                "bio": {"type": "string"}
            }
        },
        "models.TokenRequest": {
            "type": "object",
            "required": ["api_key"],
            "properties": {
                "api_key": {"type": "string"}
            }
        },
        "models.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string", "example": "Bearer"},
                "expires_in": {"type": "integer", "example": 900}
            }
        },
        "models.CreateAPIKeyRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "example": "ci-pipeline"}
            }
        },
        "models.CreateAPIKeyResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "api_key": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Thread Generator API",
	Description:      "Generates Twitter threads, tweets and bios from YouTube videos and topics",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
