package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Cosyll Web API",
        "description": "Filtered, paginated syllabus and collection listings backed by the Cosyll REST API",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Syllabi", "description": "Syllabus listings, details and edits"},
        {"name": "Collections", "description": "Curated groupings of syllabi"},
        {"name": "Users", "description": "Profiles and own account"},
        {"name": "Authentication", "description": "Session and account flows"},
        {"name": "Reference", "description": "Static lookup tables"}
    ],
    "parameters": {
        "AcademicLevel": {"name": "academic_level", "in": "query", "type": "string", "description": "0 other, 1 bachelor, 2 master, 3 doctoral"},
        "AcademicField": {"name": "academic_field", "in": "query", "type": "string", "description": "ISCED-F 2013 code"},
        "AcademicYear": {"name": "academic_year", "in": "query", "type": "string"},
        "Language": {"name": "language", "in": "query", "type": "string", "description": "Language code or name"},
        "Tags": {"name": "tags", "in": "query", "type": "string", "description": "Comma separated; any must match"},
        "ExcludeTags": {"name": "exclude_tags", "in": "query", "type": "string", "description": "Comma separated; none may match"},
        "Page": {"name": "page", "in": "query", "type": "integer"},
        "Limit": {"name": "limit", "in": "query", "type": "integer"},
        "Format": {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
        "ID": {"name": "id", "in": "path", "required": true, "type": "string"}
    },
    "paths": {
        "/syllabi": {
            "get": {
                "tags": ["Syllabi"],
                "summary": "List syllabi",
                "parameters": [
                    {"$ref": "#/parameters/AcademicLevel"},
                    {"$ref": "#/parameters/AcademicField"},
                    {"$ref": "#/parameters/AcademicYear"},
                    {"$ref": "#/parameters/Language"},
                    {"$ref": "#/parameters/Tags"},
                    {"$ref": "#/parameters/ExcludeTags"},
                    {"$ref": "#/parameters/Page"},
                    {"$ref": "#/parameters/Limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Syllabi"],
                "summary": "Create syllabus",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSyllabusRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Sign in required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/syllabi/export": {
            "get": {
                "tags": ["Syllabi"],
                "summary": "Export filtered syllabi",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"$ref": "#/parameters/Format"},
                    {"$ref": "#/parameters/Language"},
                    {"$ref": "#/parameters/Tags"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}}
                }
            }
        },
        "/syllabi/{id}": {
            "get": {
                "tags": ["Syllabi"],
                "summary": "Get syllabus",
                "parameters": [{"$ref": "#/parameters/ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Syllabi"],
                "summary": "Update syllabus",
                "parameters": [
                    {"$ref": "#/parameters/ID"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSyllabusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Syllabi"],
                "summary": "Delete syllabus",
                "parameters": [{"$ref": "#/parameters/ID"}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/syllabi/{id}/institutions": {
            "post": {
                "tags": ["Syllabi"],
                "summary": "Add institution",
                "parameters": [{"$ref": "#/parameters/ID"}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/syllabi/{id}/attachments": {
            "post": {
                "tags": ["Syllabi"],
                "summary": "Add attachment",
                "parameters": [{"$ref": "#/parameters/ID"}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/collections": {
            "get": {
                "tags": ["Collections"],
                "summary": "List collections",
                "parameters": [
                    {"$ref": "#/parameters/Tags"},
                    {"$ref": "#/parameters/ExcludeTags"},
                    {"$ref": "#/parameters/Page"},
                    {"$ref": "#/parameters/Limit"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Collections"],
                "summary": "Create collection",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/collections/{id}": {
            "get": {
                "tags": ["Collections"],
                "summary": "Get collection with a filtered page of its syllabi",
                "parameters": [
                    {"$ref": "#/parameters/ID"},
                    {"$ref": "#/parameters/Language"},
                    {"$ref": "#/parameters/Page"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Collections"],
                "summary": "Delete collection",
                "parameters": [{"$ref": "#/parameters/ID"}],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/collections/{id}/syllabi/{sid}": {
            "post": {
                "tags": ["Collections"],
                "summary": "Add syllabus to collection",
                "parameters": [
                    {"$ref": "#/parameters/ID"},
                    {"name": "sid", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"204": {"description": "No Content"}}
            },
            "delete": {
                "tags": ["Collections"],
                "summary": "Remove syllabus from collection",
                "parameters": [
                    {"$ref": "#/parameters/ID"},
                    {"name": "sid", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get profile",
                "parameters": [{"$ref": "#/parameters/ID"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/reference/fields": {
            "get": {
                "tags": ["Reference"],
                "summary": "Academic fields",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateSyllabusRequest": {
            "type": "object",
            "required": ["title", "status"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "status": {"type": "string", "enum": ["listed", "unlisted"]},
                "language": {"type": "string"},
                "academic_level": {"type": "integer"},
                "academic_fields": {"type": "array", "items": {"type": "integer"}},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"},
                "last_page": {"type": "integer"},
                "pages": {"type": "array", "items": {"type": "integer"}},
                "render": {"type": "boolean"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
