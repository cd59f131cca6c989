package tfl

import (
	"bytes"
	"context"
	jsonEncoding "encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"bitbucket.org/crgw/ulez-hub/internal/platform/implementations/tfl/json"
	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"bitbucket.org/crgw/ulez-hub/internal/tools/caching"
	"bitbucket.org/crgw/ulez-hub/internal/tools/converting"
	"bitbucket.org/crgw/ulez-hub/internal/tools/requesting"
	"bitbucket.org/crgw/ulez-hub/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

const defaultLookupUrl = "https://mobileapim.tfl.gov.uk/Prod/unirucCapitaFacade/VRMLookup"

type checkRequest struct {
	params        schema.CheckRequestParams
	configuration schema.TflConfiguration
	logger        *zerolog.Logger
	slowLogger    slowlog.Logger
	cache         *caching.Cacher
}

func (c *checkRequest) Execute(ctx context.Context, httpTransport *http.Transport) (schema.CheckResponse, error) {
	check := schema.CheckResponse{}

	requestsBucket := schema.NewSupplierRequestsBucket()
	errorsBucket := schema.NewErrorsBucket()

	check.SupplierRequests = requestsBucket.SupplierRequests()
	check.Errors = errorsBucket.Errors()

	// normalize before validating, so "ab12 cde" and "AB12CDE" are the same
	vrm := normalizeVrm(c.params.Vrm)
	if !isAlphanumeric(vrm) {
		lookupError := schema.NewInvalidInputError(vrm)
		errorsBucket.AddError(lookupError)
		return check, lookupError
	}

	ttl := c.cacheTtl()
	if ttl > 0 {
		var cached schema.VehicleDetails
		if c.cache.Fetch(ctx, cacheKey(vrm), &cached) {
			check.VehicleDetails = &cached
			return check, nil
		}
	}

	timeout := c.params.Timeouts.Default
	if c.params.Timeouts.Check != nil {
		timeout = *c.params.Timeouts.Check
	}
	if timeout == 0 {
		timeout = schema.DefaultTimeout
	}

	// prepare client
	client := &http.Client{
		Timeout: time.Duration(timeout) * time.Millisecond,
		Transport: &requesting.InterceptorTransport{
			Transport: httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(c.logger),
				requesting.NewBucketTransportMiddleware(&requestsBucket),
			},
		},
	}

	c.slowLogger.Start("tfl:vrm-lookup")
	response, lookupErr := c.makeRequest(ctx, client, vrm)
	c.slowLogger.Stop("tfl:vrm-lookup")

	if lookupErr != nil {
		errorsBucket.AddError(*lookupErr)
		return check, *lookupErr
	}

	details := response.VrmLookupResponse.VehicleDetails

	// the upstream signals an unknown VRM with an empty make, not a status
	if details.Make == "" {
		lookupError := schema.NewInvalidInputError(vrm)
		errorsBucket.AddError(lookupError)
		return check, lookupError
	}

	// the API does not echo the VRM back in a usable form
	details.Vrm = vrm

	if ttl > 0 {
		err := c.cache.Store(ctx, cacheKey(vrm), details, time.Duration(ttl)*time.Millisecond)
		if err != nil {
			return check, err
		}
	}

	check.VehicleDetails = converting.PointerToValue(details)

	return check, nil
}

func (c *checkRequest) makeRequest(
	ctx context.Context,
	client *http.Client,
	vrm string,
) (json.VrmLookupRS, *schema.LookupError) {
	body := bytes.NewBuffer(c.requestBody(vrm))

	url := c.lookupUrl()
	rc := context.WithValue(ctx, schema.RequestingTypeKey, schema.VrmLookup)

	httpRequest, _ := http.NewRequestWithContext(rc, http.MethodPost, url, body)
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("Content-Type", "application/json")

	rs, lookupErr := requesting.RequestErrors(client.Do(httpRequest))
	if lookupErr != nil {
		return json.VrmLookupRS{}, lookupErr
	}
	defer rs.Body.Close()

	// bind the response body to the json
	bodyBytes, _ := io.ReadAll(rs.Body)
	rs.Body.Close()

	var jsonLookupResponse json.VrmLookupRS
	jsonEncodeErr := jsonEncoding.Unmarshal(bodyBytes, &jsonLookupResponse)
	if jsonEncodeErr != nil {
		e := schema.NewSupplierError("failed to decode lookup response: " + jsonEncodeErr.Error())
		return json.VrmLookupRS{}, &e
	}

	return jsonLookupResponse, nil
}

func (c *checkRequest) requestBody(vrm string) []byte {
	body, _ := jsonEncoding.Marshal(&json.VrmLookupRQ{
		VrmLookupRequest: json.VrmLookupRequest{
			Vrm:     vrm,
			Country: "UK",
			Date:    json.VrmLookupDate{Date: c.params.Date},
		},
	})

	return body
}

func (c *checkRequest) lookupUrl() string {
	if c.configuration.LookupApiUrl != "" {
		return c.configuration.LookupApiUrl
	}

	if fromEnv := os.Getenv("VRM_LOOKUP_URL"); fromEnv != "" {
		return fromEnv
	}

	return defaultLookupUrl
}

// Zero means no caching, which is the default. Each check then re-fetches
// from the upstream even for a VRM that was just looked up.
func (c *checkRequest) cacheTtl() int {
	if c.params.CacheTtl != nil {
		return *c.params.CacheTtl
	}

	if fromEnv := os.Getenv("RESPONSES_CACHE_TTL_MS"); fromEnv != "" {
		ttl, err := strconv.Atoi(fromEnv)
		if err == nil {
			return ttl
		}
	}

	return 0
}

func cacheKey(vrm string) string {
	return fmt.Sprintf("tfl-vrm-lookup:%s", vrm)
}

func normalizeVrm(vrm string) string {
	return strings.ToUpper(strings.ReplaceAll(vrm, " ", ""))
}

func isAlphanumeric(vrm string) bool {
	if vrm == "" {
		return false
	}

	for _, r := range vrm {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
