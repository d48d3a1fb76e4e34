package mid

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/ummah-orphan-care/donations/framework/web"
	"github.com/ummah-orphan-care/donations/logger"
)

// Panics recovers from panics and converts the panic to an error so it is
// reported in the logs and handled by the errors middleware.
func Panics() web.Middleware {
	f := func(after web.Handler) web.Handler {
		h := func(ctx *gin.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("panic: %v", r)

					log := logger.FromContext(ctx)
					log.Errorf("%s\n%s", err, debug.Stack())
				}
			}()

			return after(ctx)
		}

		return h
	}

	return f
}
