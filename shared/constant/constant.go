package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyOperator  contextKey = "operator"
	ContextKeySessionID contextKey = "session_id"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	DateFormat     = time.RFC3339
	StayDateLayout = "02/01/2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelConsoleScopeName    = "console"

	OtelEntityAttributeKey = "entity"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	Empty = ""
)
