package constant

type ContextKey string

// UserIDKey holds the authenticated subject (user hex id or AdminSubject)
// embedded into the request context by the auth middleware.
const UserIDKey ContextKey = "user_id"

// AdminSubject is the JWT subject issued for the panel login.
const AdminSubject = "admin"
