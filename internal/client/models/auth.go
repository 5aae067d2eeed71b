package models

// User is the profile returned by the auth backend alongside a token.
type User struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// AuthResponse is the body of a successful login or register call:
// an access token plus the user it belongs to.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// LocalSession is the credential-confirmed marker persisted by the local
// variant after a successful login against the fixed admin pair.
type LocalSession struct {
	Email    string `json:"email"`
	LoggedAt string `json:"loggedAt"`
}

// LoginResult is what a session store reports back to the UI. Message is
// only meaningful when Success is false.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ProductPayload is the write shape sent to the resource API on create and
// update. Optional text fields are pointers so absent values serialize as
// null, the way the backend expects them.
type ProductPayload struct {
	Name        string   `json:"name"`
	Keywords    []string `json:"keywords"`
	Stock       int      `json:"stock"`
	Price       float64  `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsActive    bool     `json:"is_active"`
}

// PayloadFrom builds the API write shape from a canonical product.
func PayloadFrom(p *Product) ProductPayload {
	return ProductPayload{
		Name:        p.Name,
		Keywords:    p.Tags,
		Stock:       p.Stock,
		Price:       p.Price,
		Description: optional(p.Description),
		Category:    optional(p.Category),
		ImageURL:    optional(p.Cover),
		IsActive:    p.IsActive,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
