package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
	"github.com/julioszeferino/api-faculdade/internal/model"
	"github.com/julioszeferino/api-faculdade/internal/repository"
)

// ContextKey is where the resolved user is stored on the echo context.
const ContextKey = "currentUser"

// SessionGuard builds the middleware gating protected routes. It extracts the
// bearer token from the Authorization header, validates it through the token
// service and resolves the subject to a persisted user. Any failure (missing
// header, bad signature, expiry, or a user deleted after issuance) collapses
// into a single 401 response.
func SessionGuard(tokens *TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKey,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			subjectID, err := tokens.Validate(auth)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByID(c.Request().Context(), subjectID)
			if err != nil {
				return nil, apperrors.ErrUnauthenticated
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			he := apperrors.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthenticated.Error(), "UNAUTHENTICATED")
			return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
		},
	})
}

// CurrentUser returns the user resolved by SessionGuard for this request.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextKey).(*model.User)
	return user, ok
}
