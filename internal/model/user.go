package model

const DefaultProfileImageURL = "https://static-cdn.jtvnw.net/user-default-pictures-uv/75305d54-c7cc-40d1-bb9c-91fbe85943c7-profile_image-300x300.png"

type User struct {
	ID              string  `db:"id" json:"id"`
	Login           string  `db:"login" json:"login"`
	DisplayName     string  `db:"display_name" json:"displayName"`
	ProfileImageURL string  `db:"profile_image_url" json:"profileImageUrl"`
	IsLive          bool    `db:"is_live" json:"isLive"`
	Category        *string `db:"category" json:"category,omitempty"`
	Title           *string `db:"title" json:"title,omitempty"`
}

// UserRef carries the denormalized display fields attached to messages so
// clients can render them without a second fetch.
type UserRef struct {
	ID              string `json:"id"`
	DisplayName     string `json:"displayName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type UserProfileUpdate struct {
	UserID          string `json:"user_id"`
	DisplayName     string `json:"display_name"`
	ProfileImageURL string `json:"profile_image_url"`
}
