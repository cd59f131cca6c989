package json

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type VrmLookupRQ struct {
	VrmLookupRequest VrmLookupRequest `json:"vrmLookupRequest"`
}

type VrmLookupRequest struct {
	Vrm     string        `json:"vRM"`
	Country string        `json:"country"`
	Date    VrmLookupDate `json:"date"`
}

// VrmLookupDate marshals as {} unless a lookup date is supplied.
type VrmLookupDate struct {
	Date *openapi_types.Date `json:"date,omitempty"`
}
