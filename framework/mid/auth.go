package mid

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"

	"github.com/ummah-orphan-care/donations/common"
	fb "github.com/ummah-orphan-care/donations/firebase"
	"github.com/ummah-orphan-care/donations/framework/web"
	"github.com/ummah-orphan-care/donations/logger"
)

const (
	dayDuration                  = 24 * time.Hour
	MaxValidRefreshTokenDuration = 2 * dayDuration

	// https://cloud.google.com/tasks/docs/creating-appengine-tasks#firewall_rules
	appEngineUserIPHeader = "X-Appengine-User-IP"
	appEngineCloudTasksIP = "0.1.0.2"
)

// Auth errors
var (
	ErrForbidden    = errors.New("forbidden operation")
	ErrUnauthorized = errors.New("unauthorized operation")
)

// GetAllowedCloudJobsEmails returns the service accounts allowed to invoke
// scheduled task endpoints.
func GetAllowedCloudJobsEmails() []string {
	return []string{
		fmt.Sprintf("gcp-jobs@%s.iam.gserviceaccount.com", common.ProjectID),
		fmt.Sprintf("%s@appspot.gserviceaccount.com", common.ProjectID),
	}
}

// AuthRequired middleware that auth requests coming from client app
func AuthRequired() web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			token, authTime, err := fb.VerifyIDToken(ctx)
			if err != nil {
				return web.NewRequestError(err, http.StatusUnauthorized)
			}

			claims := token.Claims

			ctx.Set("claims", claims)
			ctx.Set("uid", token.UID)

			// If it's been too long since the user last logged in, check if token is revoked
			if time.Since(*authTime) > MaxValidRefreshTokenDuration {
				if err := fb.VerifyIDTokenAndCheckRevoked(ctx); err != nil {
					return web.NewRequestError(err, http.StatusUnauthorized)
				}
			}

			// Set email in context
			email, ok := claims["email"]
			if !ok {
				return web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
			}

			emailStr := email.(string)
			ctx.Set("email", strings.ToLower(emailStr))

			return handler(ctx)
		}

		return h
	}

	return f
}

// AuthServiceAccount middleware that auth requests coming from cloud
// scheduler jobs using an OIDC token.
func AuthServiceAccount(validClaimEmails []string) web.Middleware {
	f := func(handler web.Handler) web.Handler {
		h := func(ctx *gin.Context) error {
			l := logger.FromContext(ctx)

			// Skip validation when running in localhost
			if common.IsLocalhost {
				return handler(ctx)
			}

			// Skip OIDC auth validation when running app engine jobs
			if ctx.Request.Header.Get(appEngineUserIPHeader) == appEngineCloudTasksIP {
				return handler(ctx)
			}

			payload, err := validateIDTokenPayload(ctx)
			if err != nil {
				return err
			}

			// Verify email claim matches the required service account
			if claimsEmail, prs := payload.Claims["email"]; !prs || !isClaimEmailValid(validClaimEmails, claimsEmail.(string)) {
				l.Println("invalid token: does not match any valid claims email", payload.Claims["email"], validClaimEmails)
				return web.NewRequestError(ErrForbidden, http.StatusForbidden)
			}

			return handler(ctx)
		}

		return h
	}

	return f
}

func validateIDTokenPayload(ctx *gin.Context) (*idtoken.Payload, error) {
	authHeader := ctx.Request.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, web.NewRequestError(ErrUnauthorized, http.StatusUnauthorized)
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")

	payload, err := idtoken.Validate(ctx, token, "")
	if err != nil {
		return nil, web.NewRequestError(err, http.StatusUnauthorized)
	}

	return payload, nil
}

func isClaimEmailValid(validClaimEmails []string, claimEmail string) bool {
	for _, email := range validClaimEmails {
		if strings.EqualFold(email, claimEmail) {
			return true
		}
	}

	return false
}
