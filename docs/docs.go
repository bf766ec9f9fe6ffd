// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag/v2"

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
        "/assets": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Asset",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "APIResponse[assetapp.AssetResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "403": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "createAsset",
                "summary": "Register an asset",
                "tags": [
                    "assets"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Status filter",
                        "type": "string"
                    },
                    {
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "description": "Category filter",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Substring over name, assetId, serialNumber, category",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page (>=1)",
                        "type": "integer"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size (1-50)",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[[]assetapp.AssetResponse]"
                    }
                },
                "operationId": "listAssets",
                "summary": "List assets",
                "description": "Without page, limit or search every match is returned newest-first",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assets/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Asset UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[assetapp.AssetResponse]"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "getAsset",
                "summary": "Get an asset",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Asset UUID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[assetapp.AssetResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "updateAsset",
                "summary": "Update an asset",
                "tags": [
                    "assets"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Asset UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "SuccessResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "deleteAsset",
                "summary": "Delete an asset",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assets/{id}/maintenance": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Asset UUID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Maintenance record",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "APIResponse[assetapp.AssetResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "addAssetMaintenance",
                "summary": "Append a maintenance record",
                "tags": [
                    "assets"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assets/next-id": {
            "get": {
                "responses": {
                    "200": {
                        "description": "APIResponse[assetapp.NextIDResponse]"
                    }
                },
                "operationId": "nextAssetID",
                "summary": "Preview the next generated asset ID",
                "tags": [
                    "assets"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assignments": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Assignment",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "APIResponse[assignmentapp.AssignmentResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "createAssignment",
                "summary": "Assign an asset to an employee",
                "tags": [
                    "assignments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "employeeId",
                        "in": "query",
                        "required": false,
                        "description": "Employee UUID",
                        "type": "string"
                    },
                    {
                        "name": "assetId",
                        "in": "query",
                        "required": false,
                        "description": "Asset UUID",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Active or Returned",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[[]assignmentapp.AssignmentResponse]"
                    }
                },
                "operationId": "listAssignments",
                "summary": "List assignments",
                "tags": [
                    "assignments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assignments/{id}/return": {
            "post": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assignment UUID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Return details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[assignmentapp.AssignmentResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "returnAssignment",
                "summary": "Return an assigned asset",
                "description": "GOOD returns the asset to Available, DAMAGED sends it to In Repair",
                "tags": [
                    "assignments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assignments/return": {
            "patch": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Return details",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[assignmentapp.AssignmentResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "returnAssignmentLegacy",
                "summary": "Return an assigned asset (legacy shape)",
                "tags": [
                    "assignments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assignments/{id}": {
            "patch": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assignment UUID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[assignmentapp.AssignmentResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "updateAssignment",
                "summary": "Update an assignment",
                "tags": [
                    "assignments"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assignment UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[assignmentapp.AssignmentResponse]"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "getAssignment",
                "summary": "Get an assignment",
                "tags": [
                    "assignments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assignments/history": {
            "get": {
                "parameters": [
                    {
                        "name": "employeeId",
                        "in": "query",
                        "required": false,
                        "description": "Employee UUID",
                        "type": "string"
                    },
                    {
                        "name": "assetId",
                        "in": "query",
                        "required": false,
                        "description": "Asset UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[[]assignmentapp.AssignmentResponse]"
                    }
                },
                "operationId": "assignmentHistory",
                "summary": "Assignment history for an asset or employee",
                "tags": [
                    "assignments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/assignments/{id}/audit": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Assignment UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[[]eventapp.AuditEntryResponse]"
                    }
                },
                "operationId": "assignmentAudit",
                "summary": "Audit trail of an assignment",
                "tags": [
                    "assignments"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/login": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Credentials",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.TokenResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "401": {
                        "description": "ErrorResponse"
                    },
                    "403": {
                        "description": "ErrorResponse"
                    },
                    "429": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "login",
                "summary": "Log in",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/auth/refresh": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Refresh token",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.TokenResponse]"
                    },
                    "401": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "refreshToken",
                "summary": "Rotate the token pair",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/auth/logout": {
            "post": {
                "responses": {
                    "200": {
                        "description": "SuccessResponse"
                    },
                    "401": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "logout",
                "summary": "Log out",
                "description": "Forgets the refresh token and revokes the calling access token",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/change-password": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Passwords",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "SuccessResponse"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "401": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "changePassword",
                "summary": "Change the caller's password",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/auth/update-email": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "New email and password",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.UserResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "401": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "updateEmail",
                "summary": "Change the caller's login email",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/dashboard/stats": {
            "get": {
                "responses": {
                    "200": {
                        "description": "APIResponse[dashboardapp.Stats]"
                    }
                },
                "operationId": "dashboardStats",
                "summary": "Inventory statistics",
                "tags": [
                    "dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/notifications/pending-accessories": {
            "get": {
                "responses": {
                    "200": {
                        "description": "APIResponse[[]notificationapp.PendingAccessory]"
                    }
                },
                "operationId": "pendingAccessories",
                "summary": "Accessories still outstanding after a return",
                "tags": [
                    "notifications"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/employees": {
            "post": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Employee",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "APIResponse[employeeapp.EmployeeResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    },
                    "422": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "createEmployee",
                "summary": "Register an employee",
                "tags": [
                    "employees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "get": {
                "parameters": [
                    {
                        "name": "status",
                        "in": "query",
                        "required": false,
                        "description": "Status filter",
                        "type": "string"
                    },
                    {
                        "name": "department",
                        "in": "query",
                        "required": false,
                        "description": "Department filter",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "description": "Substring over employeeId, name, email, department",
                        "type": "string"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "required": false,
                        "description": "Page (>=1)",
                        "type": "integer"
                    },
                    {
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "description": "Page size (1-50)",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[[]employeeapp.EmployeeResponse]"
                    }
                },
                "operationId": "listEmployees",
                "summary": "List employees",
                "tags": [
                    "employees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/employees/{id}": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Employee UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[employeeapp.EmployeeResponse]"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "getEmployee",
                "summary": "Get an employee",
                "tags": [
                    "employees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "put": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Employee UUID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Fields to change",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[employeeapp.EmployeeResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    },
                    "422": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "updateEmployee",
                "summary": "Update an employee",
                "tags": [
                    "employees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/employees/{id}/status": {
            "patch": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Employee UUID",
                        "type": "string"
                    },
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "New status",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[employeeapp.EmployeeResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "updateEmployeeStatus",
                "summary": "Set an employee ACTIVE or INACTIVE",
                "tags": [
                    "employees"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/employees/{id}/deactivate": {
            "patch": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Employee UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[employeeapp.EmployeeResponse]"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    },
                    "409": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "deactivateEmployee",
                "summary": "Relieve an employee",
                "description": "Rejected while the employee still holds assets",
                "tags": [
                    "employees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/employees/{id}/active-assignments": {
            "get": {
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "description": "Employee UUID",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[employeeapp.ActiveAssignmentCountResponse]"
                    },
                    "404": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "employeeActiveAssignments",
                "summary": "Count the assets an employee currently holds",
                "tags": [
                    "employees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/employees/next-id": {
            "get": {
                "parameters": [
                    {
                        "name": "company",
                        "in": "query",
                        "required": false,
                        "description": "Company (V-Accel or Axess Technology); empty for the EMP- sequence",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[employeeapp.NextIDResponse]"
                    },
                    "422": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "nextEmployeeID",
                "summary": "Preview the next generated employee ID",
                "tags": [
                    "employees"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/health": {
            "get": {
                "responses": {
                    "200": {
                        "description": "HealthResponse"
                    },
                    "503": {
                        "description": "HealthResponse"
                    }
                },
                "operationId": "health",
                "summary": "Service health",
                "tags": [
                    "system"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/users/me": {
            "get": {
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.UserResponse]"
                    },
                    "401": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "getCurrentUser",
                "summary": "The authenticated user's profile",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users/profile": {
            "patch": {
                "parameters": [
                    {
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "description": "Name",
                        "schema": {
                            "type": "object"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.UserResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "updateProfile",
                "summary": "Update the caller's name",
                "tags": [
                    "users"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        },
        "/users/profile-image": {
            "post": {
                "parameters": [
                    {
                        "name": "image",
                        "in": "formData",
                        "required": true,
                        "description": "Profile image",
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.UserResponse]"
                    },
                    "400": {
                        "description": "ErrorResponse"
                    },
                    "413": {
                        "description": "ErrorResponse"
                    }
                },
                "operationId": "uploadProfileImage",
                "summary": "Upload or replace the caller's profile image",
                "description": "JPEG or PNG in the multipart field \"image\"",
                "tags": [
                    "users"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            },
            "delete": {
                "responses": {
                    "200": {
                        "description": "APIResponse[identityapp.UserResponse]"
                    }
                },
                "operationId": "deleteProfileImage",
                "summary": "Remove the caller's profile image",
                "tags": [
                    "users"
                ],
                "produces": [
                    "application/json"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer token authentication. Format: \"Bearer {token}\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Asset Tracker API",
	Description:      "Asset, employee and assignment lifecycle service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
