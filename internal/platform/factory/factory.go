package factory

import (
	"fmt"

	"bitbucket.org/crgw/ulez-hub/internal/platform/implementations/tfl"
	"bitbucket.org/crgw/ulez-hub/internal/tools/redisfactory"
)

type Factory struct {
	redisFactory *redisfactory.Factory
	platforms    map[string]any
}

func (f *Factory) GetPlatform(name string) (any, error) {
	_, ok := f.platforms[name]

	if !ok {
		switch name {

		// Register all platforms here
		case "tfl":
			f.platforms[name] = tfl.New(f.redisFactory.ResponsesCacheClient())
		default:
			return nil, fmt.Errorf("platform %s not found", name)
		}
	}

	return f.platforms[name], nil
}

func NewFactory(redisFactory *redisfactory.Factory) *Factory {
	return &Factory{
		redisFactory: redisFactory,
		platforms:    make(map[string]any),
	}
}
