// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with `swag init` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register a user account", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in with email and password", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/auth/superadmin/login": {"post": {"tags": ["auth"], "summary": "Log in as the superadmin", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/google": {"post": {"tags": ["auth"], "summary": "Log in with a Google ID token", "responses": {"200": {"description": "OK"}}}},
        "/auth/logout": {"delete": {"tags": ["auth"], "security": [{"BearerAuth": []}], "summary": "Revoke the current token", "responses": {"200": {"description": "OK"}}}},
        "/auth/profile": {"get": {"tags": ["auth"], "security": [{"BearerAuth": []}], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/auth/create-staff": {"post": {"tags": ["staff"], "security": [{"BearerAuth": []}], "summary": "Create an hr or developer account", "responses": {"201": {"description": "Created"}}}},
        "/auth/staff": {"get": {"tags": ["staff"], "security": [{"BearerAuth": []}], "summary": "List hr and developer accounts", "responses": {"200": {"description": "OK"}}}},
        "/auth/staff/{id}": {
            "put": {"tags": ["staff"], "security": [{"BearerAuth": []}], "summary": "Update a staff account", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["staff"], "security": [{"BearerAuth": []}], "summary": "Delete a staff account", "responses": {"200": {"description": "OK"}}}
        },
        "/auth/staff/{id}/status": {"put": {"tags": ["staff"], "security": [{"BearerAuth": []}], "summary": "Set a staff account status", "responses": {"200": {"description": "OK"}}}},
        "/admin/users": {"get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "List user accounts", "responses": {"200": {"description": "OK"}}}},
        "/admin/users/{id}/approve": {"put": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Activate a user account", "responses": {"200": {"description": "OK"}}}},
        "/admin/users/{id}/suspend": {"put": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Suspend a user account", "responses": {"200": {"description": "OK"}}}},
        "/jobs": {
            "post": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Post a job", "responses": {"201": {"description": "Created"}}},
            "get": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Jobs posted by the caller", "responses": {"200": {"description": "OK"}}}
        },
        "/jobs/{id}": {
            "put": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Update an own job posting", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Delete an own job posting", "responses": {"200": {"description": "OK"}}}
        },
        "/jobs/all": {"get": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Browse active jobs", "responses": {"200": {"description": "OK"}}}},
        "/jobs/view/{id}": {"get": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Job details", "responses": {"200": {"description": "OK"}}}},
        "/jobs/suggest": {"get": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Closest job titles to a query", "responses": {"200": {"description": "OK"}}}},
        "/jobs/apply/{id}": {"post": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "consumes": ["multipart/form-data"], "summary": "Apply with a resume", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/jobs/applicants/{jobId}": {"get": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Applicants of a job", "responses": {"200": {"description": "OK"}}}},
        "/jobs/my-applications": {"get": {"tags": ["jobs"], "security": [{"BearerAuth": []}], "summary": "Jobs the caller applied to", "responses": {"200": {"description": "OK"}}}},
        "/attendance/check-in": {"post": {"tags": ["attendance"], "security": [{"BearerAuth": []}], "summary": "Developer check-in for today", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}}}},
        "/attendance/check-out": {"post": {"tags": ["attendance"], "security": [{"BearerAuth": []}], "summary": "Developer check-out for today", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/attendance/all": {"get": {"tags": ["attendance"], "security": [{"BearerAuth": []}], "summary": "Attendance of every developer", "responses": {"200": {"description": "OK"}}}},
        "/attendance/my": {"get": {"tags": ["attendance"], "security": [{"BearerAuth": []}], "summary": "Caller's attendance", "responses": {"200": {"description": "OK"}}}},
        "/attendance/working-hours": {"get": {"tags": ["attendance"], "security": [{"BearerAuth": []}], "summary": "Monthly working hours of a staff member", "responses": {"200": {"description": "OK"}}}},
        "/salary-slips": {"post": {"tags": ["salary"], "security": [{"BearerAuth": []}], "summary": "Generate a monthly salary slip", "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}}},
        "/salary-slips/status/{slipId}": {"put": {"tags": ["salary"], "security": [{"BearerAuth": []}], "summary": "Approve or reject a salary slip", "responses": {"200": {"description": "OK"}}}},
        "/salary-slips/my": {"get": {"tags": ["salary"], "security": [{"BearerAuth": []}], "summary": "Caller's salary slips", "responses": {"200": {"description": "OK"}}}},
        "/salary-slips/all": {"get": {"tags": ["salary"], "security": [{"BearerAuth": []}], "summary": "Every salary slip with its staff member", "responses": {"200": {"description": "OK"}}}},
        "/salary-slips/export": {"get": {"tags": ["salary"], "security": [{"BearerAuth": []}], "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "summary": "Salary slips as an Excel workbook", "responses": {"200": {"description": "OK"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "CRM API",
	Description:      "Staff, jobs, attendance and salary slips.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
