package interfaces

import (
	"context"

	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"github.com/rs/zerolog"
)

type WithCheckVrm interface {
	CheckVrm(context.Context, schema.CheckRequestParams, *zerolog.Logger) (schema.CheckResponse, error)
}
