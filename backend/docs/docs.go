// Package docs holds the OpenAPI description served at /swagger.
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a new user", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}, "422": {"description": "Unprocessable Entity"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "User login", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/user/profile": {
            "get": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Get user profile", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"ApiKeyAuth": []}], "tags": ["users"], "summary": "Update user profile", "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}}
        },
        "/attempts": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["attempts"], "summary": "Record an attempt", "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity"}}}},
        "/dashboard/stats": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["dashboard"], "summary": "Get dashboard stats", "responses": {"200": {"description": "OK"}}}},
        "/dashboard/calendar": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["dashboard"], "summary": "Get activity calendar", "parameters": [{"type": "integer", "name": "year", "in": "query"}, {"type": "integer", "name": "month", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/dashboard/history": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["dashboard"], "summary": "Get attempt history", "parameters": [{"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "pageSize", "in": "query"}, {"type": "string", "name": "filter", "in": "query"}, {"type": "string", "name": "sort", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/dashboard/achievements": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["dashboard"], "summary": "Get achievements", "responses": {"200": {"description": "OK"}}}},
        "/leaderboard": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["leaderboard"], "summary": "Get leaderboard", "parameters": [{"type": "string", "name": "exam", "in": "query"}, {"type": "string", "name": "subject", "in": "query"}, {"type": "string", "name": "chapter", "in": "query"}, {"type": "string", "name": "timeframe", "in": "query"}, {"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "pageSize", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/leaderboard/filters": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["leaderboard"], "summary": "Get leaderboard filters", "responses": {"200": {"description": "OK"}}}},
        "/leaderboard/top-performers": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["leaderboard"], "summary": "Get top performers", "responses": {"200": {"description": "OK"}}}},
        "/daily-challenge": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["daily-challenge"], "summary": "Get today's challenge", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/daily-challenge/participate": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["daily-challenge"], "summary": "Join today's challenge", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/daily-challenge/complete": {"post": {"security": [{"ApiKeyAuth": []}], "tags": ["daily-challenge"], "summary": "Complete today's challenge", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}},
        "/progress": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["progress"], "summary": "Get user progress", "responses": {"200": {"description": "OK"}}}},
        "/progress/overview": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["progress"], "summary": "Get progress overview", "responses": {"200": {"description": "OK"}}}},
        "/overview/problems": {"get": {"security": [{"ApiKeyAuth": []}], "tags": ["overview"], "summary": "Search practice problems", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "PrepHub API",
	Description:      "Progress analytics, leaderboards and daily challenges for test preparation.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
