package v1

import (
	"net/http"
	"strings"

	"github.com/dannykhan02/Ticketing-system/internal/pkg/token"
	"github.com/gin-gonic/gin"
)

const claimsContextKey = "auth_claims"

// RequireAuth validates the bearer token and stores the claims in the
// request context.
func RequireAuth(issuer *token.Issuer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}

		claims, err := issuer.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "invalid or expired token"})
			return
		}

		ctx.Set(claimsContextKey, claims)
		ctx.Next()
	}
}

// RequireRoles rejects authenticated users whose role is not in the allow
// list. It must run after RequireAuth.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(ctx *gin.Context) {
		claims := CurrentClaims(ctx)
		if claims == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "missing bearer token"})
			return
		}
		if _, ok := allowed[claims.Role]; !ok {
			ctx.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "insufficient permissions"})
			return
		}
		ctx.Next()
	}
}

// CurrentClaims returns the authenticated claims stored by RequireAuth, or
// nil when the request is unauthenticated.
func CurrentClaims(ctx *gin.Context) *token.Claims {
	value, exists := ctx.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*token.Claims)
	if !ok {
		return nil
	}
	return claims
}
