package web

import (
	"net/http"

	"bitbucket.org/crgw/ulez-hub/internal/tools/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator validates incoming requests against the served contract.
// Requests for paths the contract does not know pass through to gin.
func OpenapiValidator(openApiContent []byte) gin.HandlerFunc {
	passThrough := func(c *gin.Context) {
		c.Next()
	}

	if len(openApiContent) == 0 {
		return passThrough
	}

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openApiContent)
	if err != nil {
		return passThrough
	}

	if err := doc.Validate(loader.Context); err != nil {
		return passThrough
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return passThrough
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			middleware.HandleError(c, http.StatusBadRequest, "Request failed contract validation", err)
			return
		}

		c.Next()
	}
}
