package models

import (
	"time"
)

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Username  string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"size:254;uniqueIndex;not null"`
	FirstName string    `json:"first_name" gorm:"size:150;not null"`
	LastName  string    `json:"last_name" gorm:"size:150;not null"`
	Password  string    `json:"-" gorm:"not null"`
	IsStaff   bool      `json:"is_staff" gorm:"default:false"`
	Recipes   []Recipe  `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Actor is the caller of an operation. The zero value is an anonymous caller.
type Actor struct {
	ID            uint
	Username      string
	IsStaff       bool
	Authenticated bool
}

func (a Actor) IsAnonymous() bool {
	return !a.Authenticated
}

func AnonymousActor() Actor {
	return Actor{}
}
