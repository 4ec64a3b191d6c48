package contextkeys

// Custom type so context keys never collide with other packages.
type contextKey string

// DBContextKey is the key under which the request-scoped *gorm.DB
// (the shared pool, or a transaction in tests) is stored.
const DBContextKey = contextKey("db")
