// Package policy holds the access rules evaluated before every service operation.
// All functions are pure.
package policy

import (
	"net/http"

	"foodgram-api/models"
)

// SafeMethod reports whether the http method does not mutate state.
func SafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

// OwnerOrReadOnly allows reads to everyone and writes to the author or an administrator.
func OwnerOrReadOnly(actor models.Actor, safe bool, authorID uint) bool {
	if safe {
		return true
	}
	if actor.IsStaff {
		return true
	}
	return actor.Authenticated && actor.ID == authorID
}

// AuthenticatedOrAdmin gates relation toggles, subscriptions and recipe creation.
func AuthenticatedOrAdmin(actor models.Actor) bool {
	return actor.Authenticated || actor.IsStaff
}
