package web_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"bitbucket.org/crgw/ulez-hub/internal/tools/redisfactory"
	"bitbucket.org/crgw/ulez-hub/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zerolog.New(&bytes.Buffer{})

	return web.SetupRouter(&log, redisfactory.New())
}

func TestSetupRouter(t *testing.T) {
	t.Run("should report uptime on the status endpoint", func(t *testing.T) {
		router := setupRouter()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/status", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "uptime")
	})

	t.Run("should return not found for unknown platforms", func(t *testing.T) {
		router := setupRouter()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/dvla/check", strings.NewReader(`{"vrm": "AB12CDE"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("should check a VRM through the tfl platform", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"vrmLookupResponse": {
					"vehicleDetails": {
						"make": "Ford",
						"model": "Focus",
						"colour": "Blue",
						"taxCode": "49",
						"chargeability": {"isCcChargeable": 1, "isLezChargeable": 0, "isUlezChargeable": 1, "isEsChargeable": 0},
						"isULEZExempt": 0,
						"uLEZVehicleListType": "None",
						"isULEZNonChargeable": 0
					}
				}
			}`))
		}))
		defer upstream.Close()

		router := setupRouter()

		body, _ := json.Marshal(schema.CheckRequestParams{
			Vrm:           "ab12 cde",
			Configuration: schema.TflConfiguration{LookupApiUrl: upstream.URL},
		})

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/tfl/check", bytes.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)

		var response schema.CheckResponse
		require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.NotNil(t, response.VehicleDetails)
		assert.Equal(t, "AB12CDE", response.VehicleDetails.Vrm)
		assert.Equal(t, "Ford", response.VehicleDetails.Make)
		assert.True(t, bool(response.VehicleDetails.Chargeability.IsUlezChargeable))
	})

	t.Run("should validate requests against the contract when configured", func(t *testing.T) {
		t.Setenv("OPENAPI_LOCATION", "../../api/openapi.json")
		router := setupRouter()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/tfl/check", strings.NewReader(`{"vrm": "AB12CDE", "bogus": true}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "contract")
	})

	t.Run("should reject an invalid VRM with a bad request", func(t *testing.T) {
		router := setupRouter()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/tfl/check", strings.NewReader(`{"vrm": "12!!"}`))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VRM is invalid: 12!!")
	})
}
