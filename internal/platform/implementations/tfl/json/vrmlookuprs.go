package json

import "bitbucket.org/crgw/ulez-hub/internal/schema"

type VrmLookupRS struct {
	VrmLookupResponse VrmLookupResponse `json:"vrmLookupResponse"`
}

type VrmLookupResponse struct {
	VehicleDetails schema.VehicleDetails `json:"vehicleDetails"`
}
