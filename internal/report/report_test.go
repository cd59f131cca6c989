package report_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bitbucket.org/crgw/ulez-hub/internal/report"
	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detailsTemplate() schema.VehicleDetails {
	return schema.VehicleDetails{
		Vrm:     "AB12CDE",
		Make:    "Ford",
		Model:   "Focus",
		Colour:  "Blue",
		TaxCode: "49",
		Chargeability: schema.Chargeability{
			IsCcChargeable:   true,
			IsLezChargeable:  false,
			IsUlezChargeable: true,
			IsEsChargeable:   false,
		},
		InAutoPay:             "false",
		InAutoPayExceptions:   "false",
		IsCc100PcDiscounted:   "false",
		IsUlez100PcDiscounted: "false",
		IsUlezExempt:          false,
		UlezVehicleListType:   "None",
		IsUlezNonChargeable:   false,
	}
}

func TestFormat(t *testing.T) {
	t.Run("should render the fixed report layout", func(t *testing.T) {
		expected := "\n" +
			"-----------------------------------------\n" +
			"VRM: AB12CDE\n" +
			"Make: Ford\n" +
			"Model: Focus\n" +
			"Colour: Blue\n" +
			"Tax Code: 49\n" +
			"Chargeability:\n" +
			"    Congestion: true\n" +
			"    LEZ: false\n" +
			"    ULEZ: true\n" +
			"    ES: false\n" +
			"Auto Pay: false\n" +
			"Auto Pay Exceptions: false\n" +
			"Congestion Charge 100% Discounted: false\n" +
			"ULEZ 100% Discounted: false\n" +
			"ULEZ Exempt: false\n" +
			"ULEZ Vehicle Type List: None\n" +
			"ULEZ Non-Chargeable: false\n" +
			"-----------------------------------------\n" +
			"\n"

		assert.Equal(t, expected, report.Format(detailsTemplate()))
	})

	t.Run("should render chargeability flags as booleans", func(t *testing.T) {
		details := detailsTemplate()

		details.Chargeability.IsUlezChargeable = true
		assert.Contains(t, report.Format(details), "    ULEZ: true\n")

		details.Chargeability.IsUlezChargeable = false
		assert.Contains(t, report.Format(details), "    ULEZ: false\n")
	})
}

type fakeChecker struct {
	responses map[string]schema.CheckResponse
	errors    map[string]error
	calls     []string
}

func (f *fakeChecker) CheckVrm(ctx context.Context, params schema.CheckRequestParams, logger *zerolog.Logger) (schema.CheckResponse, error) {
	f.calls = append(f.calls, params.Vrm)

	if err, ok := f.errors[params.Vrm]; ok {
		return schema.CheckResponse{}, err
	}

	return f.responses[params.Vrm], nil
}

func TestLoop(t *testing.T) {
	log := zerolog.New(&bytes.Buffer{})

	t.Run("should keep prompting after failed checks", func(t *testing.T) {
		details := detailsTemplate()

		checker := &fakeChecker{
			responses: map[string]schema.CheckResponse{
				"ab12 cde": {VehicleDetails: &details},
			},
			errors: map[string]error{
				"12!!": schema.NewInvalidInputError("12!!"),
			},
		}

		in := strings.NewReader("ab12 cde\n12!!\n")
		out := &bytes.Buffer{}

		err := report.Loop(context.Background(), in, out, checker, &log)
		require.Nil(t, err)

		assert.Equal(t, []string{"ab12 cde", "12!!"}, checker.calls)
		assert.Contains(t, out.String(), "VRM: AB12CDE")
		assert.Contains(t, out.String(), "An error occurred - VRM is invalid: 12!!\n")
		assert.Equal(t, 3, strings.Count(out.String(), "Enter a vehicle registration mark to check: "))
	})

	t.Run("should report supplier failures and continue", func(t *testing.T) {
		details := detailsTemplate()

		checker := &fakeChecker{
			responses: map[string]schema.CheckResponse{
				"CD34EFG": {VehicleDetails: &details},
			},
			errors: map[string]error{
				"AB12CDE": schema.NewHttpError(500),
			},
		}

		in := strings.NewReader("AB12CDE\nCD34EFG\n")
		out := &bytes.Buffer{}

		err := report.Loop(context.Background(), in, out, checker, &log)
		require.Nil(t, err)

		assert.Contains(t, out.String(), "An error occurred - supplier returned status code 500\n")
		assert.Contains(t, out.String(), "Make: Ford")
	})

	t.Run("should stop when the input ends", func(t *testing.T) {
		checker := &fakeChecker{}
		out := &bytes.Buffer{}

		err := report.Loop(context.Background(), strings.NewReader(""), out, checker, &log)

		require.Nil(t, err)
		assert.Len(t, checker.calls, 0)
		assert.Equal(t, "Enter a vehicle registration mark to check: ", out.String())
	})
}
