package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/shtc/internal/rgb"
	"github.com/jmylchreest/shtc/internal/sht"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	// Convert command flags
	convertPrecision int
	convertFormat    string
	convertOutput    string
	convertPreview   bool
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <code>",
	Short: "Convert an SHT code or hex colour to the other representation",
	Long: `Convert a colour between its SHT code and hex RGB forms.

Input starting with '#' is treated as a hex colour and converted to the
nearest SHT code at the requested precision; anything else is parsed as
an SHT code and expanded to hex. Conversions in both directions share
the same quantization grid, so canonical codes round-trip exactly.

Examples:
  # Expand an SHT code to hex (default precision: 2 digits per channel)
  shtc convert rt

  # Expand at single-digit precision
  shtc convert -p 1 rt

  # Find the nearest SHT code for a hex colour
  shtc convert "#ff8080"

  # Show every representation as JSON
  shtc convert -f json bnns

  # Show a terminal swatch next to the result
  shtc convert --preview o`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	registerConvertFlags(convertCmd.Flags())
}

// registerConvertFlags defines the convert command's flag set.
func registerConvertFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&convertPrecision, "precision", "p", 2, "hex digits per channel (1-4)")
	flags.StringVarP(&convertFormat, "format", "f", "auto", "output format (auto, sht, hex, rgb, json)")
	flags.StringVarP(&convertOutput, "output", "o", "", "output file (default: stdout)")
	flags.BoolVar(&convertPreview, "preview", false, "show a colour swatch next to the result")
}

// conversion holds one colour in all three representations at a single
// precision.
type conversion struct {
	SHT     string
	Hex     string
	Triple  rgb.Triple
	fromHex bool
}

// conversionJSON is the JSON output shape for a conversion.
type conversionJSON struct {
	SHT string `json:"sht"`
	Hex string `json:"hex"`
	RGB struct {
		R string `json:"r"`
		G string `json:"g"`
		B string `json:"b"`
	} `json:"rgb"`
}

// convertInput converts a single input string in the direction implied
// by its syntax.
func convertInput(input string, p sht.Precision, logger hclog.Logger) (conversion, error) {
	if strings.HasPrefix(input, "#") {
		triple, digits, err := rgb.ParseHex(input)
		if err != nil {
			return conversion{}, fmt.Errorf("invalid hex colour: %w", err)
		}
		logger.Debug("parsed hex colour", "digits", digits, "value", triple.String())

		model, err := sht.FromRGB(triple, p)
		if err != nil {
			return conversion{}, fmt.Errorf("conversion failed: %w", err)
		}
		logger.Debug("nearest SHT code", "code", model.String(), "modifiers", model.TotalModifiers())

		// Re-expand the nearest code so all three representations agree.
		expanded := model.RGB(p)
		return conversion{
			SHT:     model.String(),
			Hex:     rgb.FormatHex(expanded, p.Digits()),
			Triple:  expanded,
			fromHex: true,
		}, nil
	}

	model, err := sht.Parse(input)
	if err != nil {
		return conversion{}, fmt.Errorf("invalid SHT code: %w", err)
	}
	logger.Debug("parsed SHT code", "canonical", model.String(), "anchor", model.Anchor().String())

	triple := model.RGB(p)
	return conversion{
		SHT:    model.String(),
		Hex:    rgb.FormatHex(triple, p.Digits()),
		Triple: triple,
	}, nil
}

// formatConversion renders a conversion in the requested format.
func formatConversion(c conversion, format string) (string, error) {
	switch format {
	case "auto":
		if c.fromHex {
			return c.SHT, nil
		}
		return c.Hex, nil
	case "sht":
		return c.SHT, nil
	case "hex":
		return c.Hex, nil
	case "rgb":
		return c.Triple.String(), nil
	case "json":
		var out conversionJSON
		out.SHT = c.SHT
		out.Hex = c.Hex
		r, g, b := c.Triple.Components()
		out.RGB.R = r.RatString()
		out.RGB.G = g.RatString()
		out.RGB.B = b.RatString()
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: auto, sht, hex, rgb, json)", format)
	}
}

// runConvert executes the convert command.
func runConvert(cmd *cobra.Command, args []string) error {
	precision, err := sht.NewPrecision(convertPrecision)
	if err != nil {
		return fmt.Errorf("invalid precision: %w", err)
	}

	logger := newLogger(cmd)
	result, err := convertInput(args[0], precision, logger)
	if err != nil {
		return err
	}

	output, err := formatConversion(result, convertFormat)
	if err != nil {
		return err
	}

	if convertOutput != "" {
		if err := os.WriteFile(convertOutput, []byte(output+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		quiet, _ := cmd.Flags().GetBool("quiet")
		if !quiet {
			color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %s\n", convertOutput)
		}
		return nil
	}

	if convertPreview && stdoutIsTerminal() && convertFormat != "json" {
		output = swatch(result.Triple, swatchWidth) + " " + output
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
