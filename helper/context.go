package helper

// Keys under which middleware stores request state on the gin context.
const (
	UserIDKey    = "user_id"
	UserRoleKey  = "role"
	RequestIDKey = "request_id"
)
