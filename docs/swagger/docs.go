// Package swagger registers the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/start.go -o docs/swagger
package swagger

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
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "paths": {
        "/backups": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backups"
                ],
                "summary": "List Backups",
                "responses": {
                    "200": {
                        "description": "Object names, oldest first",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "backups"
                ],
                "summary": "Export Backup",
                "responses": {
                    "201": {
                        "description": "Backup",
                        "schema": {
                            "$ref": "#/definitions/backup.Info"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators": {
            "get": {
                "description": "List tracked generators ordered by world and coordinate.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "generators"
                ],
                "summary": "List Generators",
                "parameters": [
                    {
                        "type": "string",
                        "description": "World filter",
                        "name": "world",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "description": "Maximum number of entries",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Generators",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/generator.Entry"
                            }
                        }
                    }
                }
            }
        },
        "/generators/types": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "generators"
                ],
                "summary": "List Generator Types",
                "responses": {
                    "200": {
                        "description": "Types",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/admin.TypeInfo"
                            }
                        }
                    }
                }
            }
        },
        "/generators/lookup": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "generators"
                ],
                "summary": "Lookup Generator",
                "parameters": [
                    {
                        "type": "string",
                        "description": "World",
                        "name": "world",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "X",
                        "name": "x",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Y",
                        "name": "y",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Z",
                        "name": "z",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Generator",
                        "schema": {
                            "$ref": "#/definitions/generator.Entry"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators/block": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "world"
                ],
                "summary": "Get Block",
                "parameters": [
                    {
                        "type": "string",
                        "description": "World",
                        "name": "world",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "X",
                        "name": "x",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Y",
                        "name": "y",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "description": "Z",
                        "name": "z",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Material",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators/place": {
            "post": {
                "description": "Place a block; marker items tagged with a known type become generators.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Place Block",
                "parameters": [
                    {
                        "description": "Placement",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.PlaceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Outcome",
                        "schema": {
                            "$ref": "#/definitions/generator.Outcome"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "World Not Loaded",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators/break": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "events"
                ],
                "summary": "Break Block",
                "parameters": [
                    {
                        "description": "Break",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.BreakRequest"
                        }
                    },
                    {
                        "type": "boolean",
                        "description": "Intent signal",
                        "name": "intent",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Outcome",
                        "schema": {
                            "$ref": "#/definitions/generator.Outcome"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "World Not Loaded",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators/reconcile": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "generators"
                ],
                "summary": "Reconcile",
                "responses": {
                    "200": {
                        "description": "Report",
                        "schema": {
                            "$ref": "#/definitions/generator.PassReport"
                        }
                    }
                }
            }
        },
        "/generators/worlds/{name}/load": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "world"
                ],
                "summary": "Load World",
                "parameters": [
                    {
                        "type": "string",
                        "description": "World name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report",
                        "schema": {
                            "$ref": "#/definitions/generator.RestoreReport"
                        }
                    }
                }
            }
        },
        "/generators/players": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Join Player",
                "parameters": [
                    {
                        "description": "Player name",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators/players/{name}/inventory": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "players"
                ],
                "summary": "Player Inventory",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Player name",
                        "name": "name",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Items",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/generator.Item"
                            }
                        }
                    }
                }
            }
        },
        "/generators/command": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "commands"
                ],
                "summary": "Run Command",
                "parameters": [
                    {
                        "description": "Arguments",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "array",
                                "items": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Result",
                        "schema": {
                            "$ref": "#/definitions/command.Result"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/generators/complete": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "commands"
                ],
                "summary": "Complete Command",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Arguments typed so far, space separated",
                        "name": "line",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Candidates",
                        "schema": {
                            "type": "array",
                            "items": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "world.Coord": {
            "type": "object",
            "properties": {
                "world": {
                    "type": "string"
                },
                "x": {
                    "type": "integer"
                },
                "y": {
                    "type": "integer"
                },
                "z": {
                    "type": "integer"
                }
            }
        },
        "generator.Entry": {
            "type": "object",
            "properties": {
                "coord": {
                    "$ref": "#/definitions/world.Coord"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "generator.Item": {
            "type": "object",
            "properties": {
                "material": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "lore": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "glint": {
                    "type": "boolean"
                }
            }
        },
        "generator.Message": {
            "type": "object",
            "properties": {
                "actor": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "generator.Outcome": {
            "type": "object",
            "properties": {
                "tracked": {
                    "type": "boolean"
                },
                "cancelled": {
                    "type": "boolean"
                },
                "suppress_drops": {
                    "type": "boolean"
                },
                "drops": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/generator.Item"
                    }
                },
                "messages": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/generator.Message"
                    }
                }
            }
        },
        "generator.PassReport": {
            "type": "object",
            "properties": {
                "checked": {
                    "type": "integer"
                },
                "skipped": {
                    "type": "integer"
                },
                "purged": {
                    "type": "integer"
                },
                "regenerated": {
                    "type": "integer"
                },
                "inert": {
                    "type": "integer"
                }
            }
        },
        "generator.RestoreReport": {
            "type": "object",
            "properties": {
                "rows": {
                    "type": "integer"
                },
                "loaded": {
                    "type": "integer"
                },
                "unknown_world": {
                    "type": "integer"
                },
                "unknown_type": {
                    "type": "integer"
                },
                "stale": {
                    "type": "integer"
                },
                "deferred": {
                    "type": "integer"
                },
                "unverified": {
                    "type": "integer"
                }
            }
        },
        "admin.TypeInfo": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "blocks": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "admin.PlaceRequest": {
            "type": "object",
            "properties": {
                "world": {
                    "type": "string"
                },
                "x": {
                    "type": "integer"
                },
                "y": {
                    "type": "integer"
                },
                "z": {
                    "type": "integer"
                },
                "actor": {
                    "type": "string"
                },
                "material": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "admin.BreakRequest": {
            "type": "object",
            "properties": {
                "world": {
                    "type": "string"
                },
                "x": {
                    "type": "integer"
                },
                "y": {
                    "type": "integer"
                },
                "z": {
                    "type": "integer"
                },
                "actor": {
                    "type": "string"
                },
                "intent": {
                    "type": "boolean"
                }
            }
        },
        "command.Reply": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                }
            }
        },
        "command.Result": {
            "type": "object",
            "properties": {
                "handled": {
                    "type": "boolean"
                },
                "replies": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/command.Reply"
                    }
                }
            }
        },
        "backup.Info": {
            "type": "object",
            "properties": {
                "object": {
                    "type": "string"
                },
                "rows": {
                    "type": "integer"
                },
                "bytes": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Blocks Generator API",
	Description:      "Infinite block generators: host event ingress, reconciliation and backups.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
