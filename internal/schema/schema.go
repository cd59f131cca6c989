package schema

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DefaultTimeout is used when a request does not override it, milliseconds.
const DefaultTimeout = 10000

type SupplierRequestName string

const (
	VrmLookup SupplierRequestName = "VRM_LOOKUP"
)

// TflConfiguration carries the per-request upstream settings. An empty
// LookupApiUrl falls back to the VRM_LOOKUP_URL environment variable and
// then to the production TfL endpoint.
type TflConfiguration struct {
	LookupApiUrl string `json:"lookupApiUrl,omitempty"`
}

type Timeouts struct {
	Default int  `json:"default"`
	Check   *int `json:"check,omitempty"`
}

type CheckRequestParams struct {
	Vrm           string              `json:"vrm" binding:"required"`
	Date          *openapi_types.Date `json:"date,omitempty"`
	Timeouts      Timeouts            `json:"timeouts"`
	CacheTtl      *int                `json:"cacheTtl,omitempty"`
	Configuration TflConfiguration    `json:"configuration"`
}

type CheckResponse struct {
	VehicleDetails   *VehicleDetails   `json:"vehicleDetails,omitempty"`
	Errors           *LookupErrors     `json:"errors,omitempty"`
	SupplierRequests *SupplierRequests `json:"supplierRequests,omitempty"`
}

// VehicleDetails is the parsed upstream lookup result. Built once per
// successful lookup and never mutated afterwards.
type VehicleDetails struct {
	Vrm                   string        `json:"vrm"`
	Make                  string        `json:"make"`
	Model                 string        `json:"model"`
	Colour                string        `json:"colour"`
	TaxCode               string        `json:"taxCode"`
	Chargeability         Chargeability `json:"chargeability"`
	InAutoPay             Verbatim      `json:"inAutoPay"`
	InAutoPayExceptions   Verbatim      `json:"inAutoPayExceptions"`
	IsCc100PcDiscounted   Verbatim      `json:"isCc100PcDiscounted"`
	IsUlez100PcDiscounted Verbatim      `json:"isUlez100PcDiscounted"`
	IsUlezExempt          BitBool       `json:"isULEZExempt"`
	UlezVehicleListType   string        `json:"uLEZVehicleListType"`
	IsUlezNonChargeable   BitBool       `json:"isULEZNonChargeable"`
}

type Chargeability struct {
	IsCcChargeable   BitBool `json:"isCcChargeable"`
	IsLezChargeable  BitBool `json:"isLezChargeable"`
	IsUlezChargeable BitBool `json:"isUlezChargeable"`
	IsEsChargeable   BitBool `json:"isEsChargeable"`
}

type SupplierRequests []SupplierRequest

type SupplierRequest struct {
	Name            *SupplierRequestName `json:"name,omitempty"`
	StartDateTime   *time.Time           `json:"startDateTime,omitempty"`
	Duration        *int                 `json:"duration,omitempty"`
	RequestContent  *RequestContent      `json:"requestContent,omitempty"`
	ResponseContent *ResponseContent     `json:"responseContent,omitempty"`
}

type RequestContent struct {
	Url     *string                 `json:"url,omitempty"`
	Method  *string                 `json:"method,omitempty"`
	Body    *string                 `json:"body,omitempty"`
	Headers *map[string]interface{} `json:"headers,omitempty"`
}

type ResponseContent struct {
	StatusCode *int                    `json:"statusCode,omitempty"`
	Headers    *map[string]interface{} `json:"headers,omitempty"`
	Body       *string                 `json:"body,omitempty"`
}
