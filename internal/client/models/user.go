// Package models defines the client-side representations of the backend's
// JSON resources. Field names follow the wire format exactly; the backend
// response is always the source of truth and records are never merged locally.
package models

// User is the authenticated account as returned by GET /users/me/.
// It is owned exclusively by the session once fetched and is replaced,
// never patched, after a successful profile update.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Bio            string `json:"bio"`
	CulinaryLevel  int    `json:"culinary_level"`
	ProfilePicture string `json:"profile_picture"`
}

// Author is the compact user embedded in recipe payloads.
type Author struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Profile is the extension returned by GET /profiles/me/.
type Profile struct {
	DietaryRestrictions []NamedItem    `json:"dietary_restrictions"`
	Allergies           []NamedItem    `json:"allergies"`
	FoodPreferences     map[string]any `json:"food_preferences"`
}

// NamedItem is a reference entity with a name (dietary restriction, allergy).
type NamedItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RegistrationForm is the payload for POST /auth/register/.
// Password2 is the confirmation field; the client validates the two
// passwords match before issuing the request.
type RegistrationForm struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Password2 string `json:"password2"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileUpdate carries the fields of the multipart PUT /users/update_me/
// request. PicturePath, when set, names a local file to attach as
// profile_picture.
type ProfileUpdate struct {
	FirstName     string
	LastName      string
	Bio           string
	CulinaryLevel int
	PicturePath   string
}
