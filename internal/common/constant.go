package common

// Storage keys for the blobs persisted by the local backend. They mirror the
// keys the web front end used in browser localStorage, so a data file written
// by one iteration stays readable by the next.
const (
	ProductsStorageKey = "gestor.products"
	SessionStorageKey  = "gestor.session"
	TokenStorageKey    = "authToken"
	UserStorageKey     = "user"
)

// Fixed admin credential pair for the local (credential-check) variant.
// The pair is not looked up remotely; the session store hashes the password
// once at construction and only ever compares hashes afterwards.
const (
	AdminEmail    = "admin@neostore.com"
	AdminPassword = "neostore-2025"
)
