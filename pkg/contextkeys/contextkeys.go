package contextkeys

// contextKey keeps our keys from colliding with other packages.
type contextKey string

// DBContextKey is where the request-scoped *gorm.DB lives.
const DBContextKey = contextKey("db")

// Keys set on the gin context by the auth guard.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
