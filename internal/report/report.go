package report

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"bitbucket.org/crgw/ulez-hub/internal/platform/interfaces"
	"bitbucket.org/crgw/ulez-hub/internal/schema"
	"github.com/rs/zerolog"
)

const (
	delimiter = "-----------------------------------------"
	prompt    = "Enter a vehicle registration mark to check: "
)

// Format renders a lookup result as the fixed text block the checker prints.
func Format(details schema.VehicleDetails) string {
	var b strings.Builder

	b.WriteString("\n" + delimiter + "\n")
	fmt.Fprintf(&b, "VRM: %s\n", details.Vrm)
	fmt.Fprintf(&b, "Make: %s\n", details.Make)
	fmt.Fprintf(&b, "Model: %s\n", details.Model)
	fmt.Fprintf(&b, "Colour: %s\n", details.Colour)
	fmt.Fprintf(&b, "Tax Code: %s\n", details.TaxCode)
	b.WriteString("Chargeability:\n")
	fmt.Fprintf(&b, "    Congestion: %t\n", bool(details.Chargeability.IsCcChargeable))
	fmt.Fprintf(&b, "    LEZ: %t\n", bool(details.Chargeability.IsLezChargeable))
	fmt.Fprintf(&b, "    ULEZ: %t\n", bool(details.Chargeability.IsUlezChargeable))
	fmt.Fprintf(&b, "    ES: %t\n", bool(details.Chargeability.IsEsChargeable))
	fmt.Fprintf(&b, "Auto Pay: %s\n", string(details.InAutoPay))
	fmt.Fprintf(&b, "Auto Pay Exceptions: %s\n", string(details.InAutoPayExceptions))
	fmt.Fprintf(&b, "Congestion Charge 100%% Discounted: %s\n", string(details.IsCc100PcDiscounted))
	fmt.Fprintf(&b, "ULEZ 100%% Discounted: %s\n", string(details.IsUlez100PcDiscounted))
	fmt.Fprintf(&b, "ULEZ Exempt: %t\n", bool(details.IsUlezExempt))
	fmt.Fprintf(&b, "ULEZ Vehicle Type List: %s\n", details.UlezVehicleListType)
	fmt.Fprintf(&b, "ULEZ Non-Chargeable: %t\n", bool(details.IsUlezNonChargeable))
	b.WriteString(delimiter + "\n\n")

	return b.String()
}

// Loop prompts for VRMs until the input ends. Failed checks are reported on
// a single line and the loop carries on.
func Loop(ctx context.Context, in io.Reader, out io.Writer, checker interfaces.WithCheckVrm, logger *zerolog.Logger) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)

		if !scanner.Scan() {
			break
		}

		response, err := checker.CheckVrm(ctx, schema.CheckRequestParams{Vrm: scanner.Text()}, logger)
		if err != nil {
			fmt.Fprintln(out, "An error occurred -", err)
			continue
		}

		fmt.Fprint(out, Format(*response.VehicleDetails))
	}

	return scanner.Err()
}
