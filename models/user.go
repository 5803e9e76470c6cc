package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDocument is the stored shape of a user. HashedPassword never leaves the service layer.
type UserDocument struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Email          string             `bson:"email"`
	Name           string             `bson:"name,omitempty"`
	HashedPassword string             `bson:"hashedPassword"`
	AvatarURL      string             `bson:"avatarUrl,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

func (d UserDocument) ToUser() User {
	return User{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Name:      d.Name,
		AvatarURL: d.AvatarURL,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type AuthStatus struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}
