package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/middleware"
)

// requireIdentity fetches the authenticated identity or writes a 401.
func requireIdentity(ctx *gin.Context) (appauth.Identity, bool) {
	ident, ok := middleware.IdentityFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return appauth.Identity{}, false
	}
	return ident, true
}
