package model

type User struct {
	ID              string
	Login           string
	DisplayName     string
	ProfileImageURL string
}

type ChatColor struct {
	UserID string
	Color  string
}
