package platform

import (
	"errors"
	"fmt"
	"net/http"

	platformErrors "bitbucket.org/crgw/ulez-hub/internal/platform/errors"
	"bitbucket.org/crgw/ulez-hub/internal/platform/factory"
	"bitbucket.org/crgw/ulez-hub/internal/platform/interfaces"
	platformMiddleware "bitbucket.org/crgw/ulez-hub/internal/platform/middleware"
	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"bitbucket.org/crgw/ulez-hub/internal/tools/middleware"
	"bitbucket.org/crgw/ulez-hub/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterRoutes(
	router *gin.Engine,
	factory *factory.Factory,
) {
	group := router.Group(
		"/:platform",
		platformMiddleware.PreparePlatform(factory),
		platformMiddleware.TapLogger,
	)

	group.POST("/check",
		platformMiddleware.PrepareParams(schema.CheckRequestParams{}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger)
			key := fmt.Sprintf("%s:check", ctx.Params.ByName("platform"))
			slowLog.Start(key)

			platformWithCheckRequest, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithCheckVrm)
			if !ok {
				middleware.HandleError(ctx, http.StatusBadRequest, "Check not implemented", platformErrors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.CheckRequestParams)
			if !ok {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			response, err := platformWithCheckRequest.CheckVrm(ctx.Request.Context(), *params, logger)
			if err != nil {
				var lookupError schema.LookupError
				if errors.As(err, &lookupError) {
					middleware.HandleError(ctx, statusForCode(lookupError.Code), lookupError.Message, err)
					return
				}

				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed checking VRM", nil)
				return
			}

			ctx.JSON(http.StatusOK, response)

			slowLog.Stop(key)
		},
	)
}

func statusForCode(code schema.LookupErrorCode) int {
	if code == schema.InvalidInput {
		return http.StatusBadRequest
	}

	return http.StatusBadGateway
}
