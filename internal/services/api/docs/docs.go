// Package docs registers the OpenAPI document served at /api/docs
package docs

import "github.com/swaggo/swag/v2"

// SwaggerInfo holds the exported document metadata
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Title:            "Cube Wars Analytics API",
	Description:      "Read only game analytics over the events warehouse",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "servers": [
        {
            "url": "/api"
        }
    ],
    "paths": {
        "/rewarded-ads": {
            "get": {
                "summary": "Rewarded ads per event type",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/RewardedReport"
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/level-analysis": {
            "get": {
                "summary": "Level completion analysis",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    },
                    {
                        "$ref": "#/components/parameters/levelCount"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/LevelRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/level-silver-coin-boost": {
            "get": {
                "summary": "Silver coin boost effect per level",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    },
                    {
                        "$ref": "#/components/parameters/levelCount"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/BoostRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/unit-loadout-analysis": {
            "get": {
                "summary": "Unit frequency and top loadouts",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    },
                    {
                        "$ref": "#/components/parameters/level"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/LoadoutReport"
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/unit-upgrade-analysis": {
            "get": {
                "summary": "Unit upgrades per unit",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/UpgradeRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/churn-analysis": {
            "get": {
                "summary": "Churn per level",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    },
                    {
                        "$ref": "#/components/parameters/levelCount"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/ChurnRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/booster-box-analysis": {
            "get": {
                "summary": "Booster box openings",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/BoosterRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/base-station-analysis": {
            "get": {
                "summary": "Base station upgrades per skill and level",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/BaseStationRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/overall-stats": {
            "get": {
                "summary": "Headline counters",
                "tags": [
                    "Reports"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/OverallStats"
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                },
                "description": "An empty object when the window has no events"
            }
        },
        "/available-countries": {
            "get": {
                "summary": "Countries for the filter picker",
                "tags": [
                    "Filters"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/CountryOption"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/available-versions": {
            "get": {
                "summary": "App versions for the filter picker",
                "tags": [
                    "Filters"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/VersionOption"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/rewarded-ads-cohort": {
            "get": {
                "summary": "Rewarded event by days since install",
                "tags": [
                    "Cohorts"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    },
                    {
                        "$ref": "#/components/parameters/eventName"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/DayBucketRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/ad-impressions-cohort": {
            "get": {
                "summary": "Ad impressions of one format by days since install",
                "tags": [
                    "Cohorts"
                ],
                "parameters": [
                    {
                        "$ref": "#/components/parameters/startDate"
                    },
                    {
                        "$ref": "#/components/parameters/endDate"
                    },
                    {
                        "$ref": "#/components/parameters/platform"
                    },
                    {
                        "$ref": "#/components/parameters/country"
                    },
                    {
                        "$ref": "#/components/parameters/version"
                    },
                    {
                        "$ref": "#/components/parameters/adFormat"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "array",
                                    "items": {
                                        "$ref": "#/components/schemas/DayBucketRow"
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "summary": "Sign in with a Google ID token",
                "tags": [
                    "Auth"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "object",
                                    "properties": {
                                        "user": {
                                            "$ref": "#/components/schemas/User"
                                        }
                                    }
                                }
                            }
                        }
                    },
                    "400": {
                        "$ref": "#/components/responses/BadRequest"
                    },
                    "401": {
                        "$ref": "#/components/responses/Unauthorized"
                    },
                    "403": {
                        "$ref": "#/components/responses/Forbidden"
                    },
                    "429": {
                        "$ref": "#/components/responses/TooManyRequests"
                    }
                },
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {
                                "$ref": "#/components/schemas/LoginInput"
                            }
                        }
                    }
                },
                "security": []
            }
        },
        "/auth/logout": {
            "post": {
                "summary": "Sign out",
                "tags": [
                    "Auth"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "object",
                                    "properties": {
                                        "message": {
                                            "type": "string",
                                            "example": "Logged out successfully"
                                        }
                                    }
                                }
                            }
                        }
                    }
                },
                "security": []
            }
        },
        "/auth/check": {
            "get": {
                "summary": "Report whether the session cookie is valid",
                "tags": [
                    "Auth"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/CheckResponse"
                                }
                            }
                        }
                    },
                    "401": {
                        "description": "no or invalid session",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/CheckResponse"
                                }
                            }
                        }
                    },
                    "403": {
                        "description": "access revoked",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "$ref": "#/components/schemas/CheckResponse"
                                }
                            }
                        }
                    }
                },
                "security": []
            }
        },
        "/health": {
            "get": {
                "summary": "Health check",
                "tags": [
                    "Meta"
                ],
                "responses": {
                    "200": {
                        "description": "ok",
                        "content": {
                            "application/json": {
                                "schema": {
                                    "type": "object",
                                    "properties": {
                                        "status": {
                                            "type": "string",
                                            "example": "OK"
                                        },
                                        "timestamp": {
                                            "type": "string",
                                            "example": "2025-03-01T12:00:00.000Z"
                                        }
                                    }
                                }
                            }
                        }
                    }
                },
                "security": []
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check with dependency pings",
                "tags": [
                    "Meta"
                ],
                "responses": {
                    "200": {
                        "description": "ok or degraded"
                    },
                    "503": {
                        "description": "warehouse unreachable"
                    }
                },
                "security": []
            }
        },
        "/version": {
            "get": {
                "summary": "Build and version info",
                "tags": [
                    "Meta"
                ],
                "responses": {
                    "200": {
                        "description": "ok"
                    }
                },
                "security": []
            }
        }
    },
    "components": {
        "parameters": {
            "startDate": {
                "name": "startDate",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "string",
                    "format": "date"
                },
                "description": "Install window start; with endDate restricts to that cohort"
            },
            "endDate": {
                "name": "endDate",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "string",
                    "format": "date"
                },
                "description": "Install window end"
            },
            "platform": {
                "name": "platform",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "string",
                    "enum": [
                        "all",
                        "ios",
                        "android"
                    ]
                },
                "description": "Case insensitive"
            },
            "country": {
                "name": "country",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "string"
                },
                "description": "Country name; all or blank for every country"
            },
            "version": {
                "name": "version",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "string"
                },
                "description": "App version; all or blank for every version"
            },
            "levelCount": {
                "name": "levelCount",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 500,
                    "default": 50
                },
                "description": "Number of levels"
            },
            "level": {
                "name": "level",
                "in": "query",
                "required": false,
                "schema": {
                    "type": "string"
                },
                "description": "Level number or all"
            },
            "eventName": {
                "name": "eventName",
                "in": "query",
                "required": true,
                "schema": {
                    "type": "string"
                },
                "description": "Event name; % makes it a LIKE pattern"
            },
            "adFormat": {
                "name": "adFormat",
                "in": "query",
                "required": true,
                "schema": {
                    "type": "string"
                },
                "description": "Ad format of ad_impression events"
            }
        },
        "schemas": {
            "RewardedRow": {
                "type": "object",
                "properties": {
                    "event_name": {
                        "type": "string"
                    },
                    "total_count": {
                        "type": "integer"
                    },
                    "unique_users": {
                        "type": "integer"
                    },
                    "avg_per_user": {
                        "type": "number"
                    },
                    "total_users": {
                        "type": "integer"
                    },
                    "avg_per_all_users": {
                        "type": "number",
                        "nullable": true
                    }
                }
            },
            "RewardedReport": {
                "type": "object",
                "properties": {
                    "rows": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/RewardedRow"
                        }
                    },
                    "totals": {
                        "allOf": [
                            {
                                "$ref": "#/components/schemas/RewardedRow"
                            }
                        ],
                        "nullable": true
                    }
                }
            },
            "LevelRow": {
                "type": "object",
                "properties": {
                    "level": {
                        "type": "integer"
                    },
                    "completions": {
                        "type": "integer"
                    },
                    "failures": {
                        "type": "integer"
                    },
                    "total_attempts": {
                        "type": "integer"
                    },
                    "unique_users": {
                        "type": "integer"
                    },
                    "completion_rate": {
                        "type": "number",
                        "nullable": true
                    },
                    "avg_duration_complete": {
                        "type": "number",
                        "nullable": true
                    },
                    "avg_duration_fail": {
                        "type": "number",
                        "nullable": true
                    },
                    "avg_attempts_to_complete": {
                        "type": "number",
                        "nullable": true
                    }
                }
            },
            "BoostRow": {
                "type": "object",
                "properties": {
                    "level": {
                        "type": "integer"
                    },
                    "total_attempts": {
                        "type": "integer"
                    },
                    "attempts_with_boost": {
                        "type": "integer"
                    },
                    "completions_with_boost": {
                        "type": "integer"
                    },
                    "completions_without_boost": {
                        "type": "integer"
                    },
                    "boost_usage_rate": {
                        "type": "number"
                    },
                    "completion_rate_with_boost": {
                        "type": "number",
                        "nullable": true
                    },
                    "completion_rate_without_boost": {
                        "type": "number",
                        "nullable": true
                    }
                }
            },
            "LoadoutRow": {
                "type": "object",
                "properties": {
                    "result_type": {
                        "type": "string"
                    },
                    "name": {
                        "type": "string"
                    },
                    "usage_count": {
                        "type": "integer"
                    },
                    "additional_info": {
                        "type": "integer",
                        "nullable": true
                    }
                }
            },
            "LoadoutReport": {
                "type": "object",
                "properties": {
                    "unitFrequency": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/LoadoutRow"
                        }
                    },
                    "topLoadouts": {
                        "type": "array",
                        "items": {
                            "$ref": "#/components/schemas/LoadoutRow"
                        }
                    }
                }
            },
            "UpgradeRow": {
                "type": "object",
                "properties": {
                    "unit_name": {
                        "type": "string"
                    },
                    "total_upgrades": {
                        "type": "integer"
                    },
                    "avg_upgrade_level": {
                        "type": "number"
                    },
                    "min_level": {
                        "type": "integer"
                    },
                    "max_level": {
                        "type": "integer"
                    }
                }
            },
            "ChurnRow": {
                "type": "object",
                "properties": {
                    "level": {
                        "type": "integer"
                    },
                    "users_reached_level": {
                        "type": "integer"
                    },
                    "users_churned_at_level": {
                        "type": "integer"
                    },
                    "churn_rate": {
                        "type": "number"
                    },
                    "failure_rate": {
                        "type": "number",
                        "nullable": true
                    },
                    "difficulty_score": {
                        "type": "number",
                        "nullable": true
                    }
                }
            },
            "BoosterRow": {
                "type": "object",
                "properties": {
                    "box_id": {
                        "type": "string"
                    },
                    "times_opened": {
                        "type": "integer"
                    },
                    "unique_users": {
                        "type": "integer"
                    },
                    "avg_per_user": {
                        "type": "number"
                    }
                }
            },
            "BaseStationRow": {
                "type": "object",
                "properties": {
                    "skill": {
                        "type": "string"
                    },
                    "upgrade_level": {
                        "type": "integer",
                        "nullable": true
                    },
                    "upgrade_count": {
                        "type": "integer"
                    },
                    "unique_users": {
                        "type": "integer"
                    }
                }
            },
            "OverallStats": {
                "type": "object",
                "properties": {
                    "total_users": {
                        "type": "integer"
                    },
                    "users_who_played": {
                        "type": "integer"
                    },
                    "total_rewarded_ads": {
                        "type": "integer"
                    },
                    "total_level_completions": {
                        "type": "integer"
                    },
                    "total_level_failures": {
                        "type": "integer"
                    },
                    "total_unit_upgrades": {
                        "type": "integer"
                    },
                    "total_booster_boxes_opened": {
                        "type": "integer"
                    }
                }
            },
            "CountryOption": {
                "type": "object",
                "properties": {
                    "country": {
                        "type": "string"
                    },
                    "user_count": {
                        "type": "integer"
                    }
                }
            },
            "VersionOption": {
                "type": "object",
                "properties": {
                    "version": {
                        "type": "string"
                    },
                    "user_count": {
                        "type": "integer"
                    }
                }
            },
            "DayBucketRow": {
                "type": "object",
                "properties": {
                    "install_date": {
                        "type": "string"
                    },
                    "cohort_size": {
                        "type": "integer"
                    },
                    "day_0_events": {
                        "type": "integer"
                    },
                    "day_0_users": {
                        "type": "integer"
                    },
                    "day_1_events": {
                        "type": "integer"
                    },
                    "day_1_users": {
                        "type": "integer"
                    },
                    "day_2_events": {
                        "type": "integer"
                    },
                    "day_2_users": {
                        "type": "integer"
                    },
                    "day_3_events": {
                        "type": "integer"
                    },
                    "day_3_users": {
                        "type": "integer"
                    },
                    "day_4_events": {
                        "type": "integer"
                    },
                    "day_4_users": {
                        "type": "integer"
                    },
                    "day_5_events": {
                        "type": "integer"
                    },
                    "day_5_users": {
                        "type": "integer"
                    },
                    "day_6_events": {
                        "type": "integer"
                    },
                    "day_6_users": {
                        "type": "integer"
                    },
                    "day_7_events": {
                        "type": "integer"
                    },
                    "day_7_users": {
                        "type": "integer"
                    },
                    "day_14_events": {
                        "type": "integer"
                    },
                    "day_14_users": {
                        "type": "integer"
                    },
                    "day_30_events": {
                        "type": "integer"
                    },
                    "day_30_users": {
                        "type": "integer"
                    },
                    "day_45_events": {
                        "type": "integer"
                    },
                    "day_45_users": {
                        "type": "integer"
                    },
                    "day_60_events": {
                        "type": "integer"
                    },
                    "day_60_users": {
                        "type": "integer"
                    },
                    "day_75_events": {
                        "type": "integer"
                    },
                    "day_75_users": {
                        "type": "integer"
                    },
                    "day_90_events": {
                        "type": "integer"
                    },
                    "day_90_users": {
                        "type": "integer"
                    }
                }
            },
            "User": {
                "type": "object",
                "properties": {
                    "email": {
                        "type": "string"
                    },
                    "name": {
                        "type": "string"
                    },
                    "picture": {
                        "type": "string"
                    }
                }
            },
            "LoginInput": {
                "type": "object",
                "properties": {
                    "credential": {
                        "type": "string"
                    }
                }
            },
            "CheckResponse": {
                "type": "object",
                "properties": {
                    "authenticated": {
                        "type": "boolean"
                    },
                    "user": {
                        "$ref": "#/components/schemas/User"
                    },
                    "error": {
                        "type": "string"
                    }
                }
            }
        },
        "responses": {
            "BadRequest": {
                "description": "Bad Request",
                "content": {
                    "application/json": {
                        "schema": {
                            "$ref": "#/components/schemas/ErrorResponse"
                        }
                    }
                }
            },
            "Unauthorized": {
                "description": "Unauthorized",
                "content": {
                    "application/json": {
                        "schema": {
                            "$ref": "#/components/schemas/ErrorResponse"
                        }
                    }
                }
            },
            "Forbidden": {
                "description": "Forbidden",
                "content": {
                    "application/json": {
                        "schema": {
                            "$ref": "#/components/schemas/ErrorResponse"
                        }
                    }
                }
            },
            "TooManyRequests": {
                "description": "Too Many Requests",
                "content": {
                    "application/json": {
                        "schema": {
                            "$ref": "#/components/schemas/ErrorResponse"
                        }
                    }
                }
            }
        },
        "securitySchemes": {
            "session": {
                "type": "apiKey",
                "in": "cookie",
                "name": "auth_token"
            }
        }
    },
    "security": [
        {
            "session": []
        }
    ]
}`
