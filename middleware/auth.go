package middleware

import (
	"strings"

	"foodgram-api/config"
	"foodgram-api/helper"
	"foodgram-api/models"
	"foodgram-api/policy"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

var HTTPHelper = &helper.HTTPHelper{}

const actorKey = "actor"

// Claims are the fields read from tokens issued by the identity provider.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsStaff  bool   `json:"is_staff"`
	jwt.RegisteredClaims
}

// Authenticate resolves the request actor from an optional bearer token.
// Requests without an Authorization header continue as anonymous.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Set(actorKey, models.AnonymousActor())
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			HTTPHelper.SendUnauthorizedError(c, "Bearer token required", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return config.JWTSecret, nil
		})

		if err != nil {
			HTTPHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid || claims.UserID == 0 {
			HTTPHelper.SendUnauthorizedError(c, "Token is not valid", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set(actorKey, models.Actor{
			ID:            claims.UserID,
			Username:      claims.Username,
			IsStaff:       claims.IsStaff,
			Authenticated: true,
		})

		c.Next()
	}
}

// ActorFromContext returns the actor set by Authenticate, anonymous when absent.
func ActorFromContext(c *gin.Context) models.Actor {
	if v, ok := c.Get(actorKey); ok {
		if actor, ok := v.(models.Actor); ok {
			return actor
		}
	}
	return models.AnonymousActor()
}

// RequireAuthenticated rejects anonymous callers with 401.
func RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.AuthenticatedOrAdmin(ActorFromContext(c)) {
			HTTPHelper.SendUnauthorizedError(c, "Authentication credentials were not provided", HTTPHelper.EmptyJsonMap())
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticatedOrReadOnly lets safe methods through and requires an actor for the rest.
func AuthenticatedOrReadOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if policy.SafeMethod(c.Request.Method) || policy.AuthenticatedOrAdmin(ActorFromContext(c)) {
			c.Next()
			return
		}
		HTTPHelper.SendUnauthorizedError(c, "Authentication credentials were not provided", HTTPHelper.EmptyJsonMap())
		c.Abort()
	}
}
