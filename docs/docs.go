// Package docs registers the swagger document served under /swagger.
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
        "/ai-quiz": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai-quiz"],
                "summary": "Generate multiple-choice questions from a summary",
                "parameters": [
                    {
                        "description": "summary to quiz on",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/aiquiz.GenerateRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/aiquiz.GeneratedQuiz"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/aiquiz.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/aiquiz.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/aiquiz.ErrorResponse"}}
                }
            }
        },
        "/ai-quiz/evaluate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ai-quiz"],
                "summary": "Score one selected answer against the quiz it belongs to",
                "parameters": [
                    {
                        "description": "quiz, question index and selected option",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/aiquiz.EvaluateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/aiquiz.AnswerEvaluation"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/aiquiz.ErrorResponse"}}
                }
            }
        },
        "/generations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["generations"],
                "summary": "List recent generation attempts",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "maximum number of records (default 20, max 100)",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/generation_log.GenerationRecordResponse"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "aiquiz.AnswerEvaluation": {
            "type": "object",
            "properties": {
                "correct": {"type": "string"},
                "is_correct": {"type": "boolean"},
                "question_index": {"type": "integer"},
                "selected": {"type": "string"}
            }
        },
        "aiquiz.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "aiquiz.EvaluateRequest": {
            "type": "object",
            "properties": {
                "question_index": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/aiquiz.Question"}},
                "selected": {"type": "string"}
            }
        },
        "aiquiz.GenerateRequest": {
            "type": "object",
            "properties": {
                "summary": {"type": "string"}
            }
        },
        "aiquiz.GeneratedQuiz": {
            "type": "object",
            "properties": {
                "generated_at": {"type": "string"},
                "id": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/aiquiz.Question"}}
            }
        },
        "aiquiz.Question": {
            "type": "object",
            "properties": {
                "correct_option": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "question": {"type": "string"}
            }
        },
        "generation_log.GenerationRecordResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "duration_ms": {"type": "integer"},
                "error_kind": {"type": "string"},
                "id": {"type": "string"},
                "model": {"type": "string"},
                "question_count": {"type": "integer"},
                "quiz_id": {"type": "string"},
                "status": {"type": "string"},
                "summary_chars": {"type": "integer"},
                "transport": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Overhoor API",
	Description:      "Generates multiple-choice questions from a summary with Gemini and scores answers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
