package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jmylchreest/shtc/internal/rgb"
	"github.com/jmylchreest/shtc/internal/sht"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

var (
	// Palette command flags
	palettePrecision int
	palettePreview   bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <file>",
	Short: "Expand a palette file of named SHT codes",
	Long: `Expand a YAML palette of named SHT codes into a hex colour table.

The palette file maps names to SHT codes:

  colours:
    - name: alert
      code: r
    - name: alert-muted
      code: rnn
    - name: surface
      code: asss

Examples:
  # Render a palette at the default precision
  shtc palette theme.yaml

  # Render with terminal swatches
  shtc palette --preview theme.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	registerPaletteFlags(paletteCmd.Flags())
}

// registerPaletteFlags defines the palette command's flag set.
func registerPaletteFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&palettePrecision, "precision", "p", 2, "hex digits per channel (1-4)")
	flags.BoolVar(&palettePreview, "preview", false, "show colour swatches in the table")
}

// paletteEntry is one named colour in a palette file.
type paletteEntry struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

// paletteFile is the on-disk palette format.
type paletteFile struct {
	Colours []paletteEntry `yaml:"colours"`
}

// loadPalette reads and decodes a palette file.
func loadPalette(path string) (paletteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return paletteFile{}, fmt.Errorf("failed to read palette file: %w", err)
	}
	var pf paletteFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return paletteFile{}, fmt.Errorf("failed to parse palette file: %w", err)
	}
	if len(pf.Colours) == 0 {
		return paletteFile{}, fmt.Errorf("palette file %s defines no colours", path)
	}
	return pf, nil
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	precision, err := sht.NewPrecision(palettePrecision)
	if err != nil {
		return fmt.Errorf("invalid precision: %w", err)
	}

	logger := newLogger(cmd)
	pf, err := loadPalette(args[0])
	if err != nil {
		return err
	}
	logger.Debug("loaded palette", "path", args[0], "colours", len(pf.Colours))

	showSwatch := palettePreview && stdoutIsTerminal()
	headers := []string{"NAME", "CODE", "HEX"}
	if showSwatch {
		headers = append(headers, "")
	}
	tbl := newTable(headers)

	for _, entry := range pf.Colours {
		model, err := sht.Parse(entry.Code)
		if err != nil {
			return fmt.Errorf("colour %q: %w", entry.Name, err)
		}
		triple := model.RGB(precision)
		row := []cell{
			plainCell(entry.Name),
			plainCell(model.String()),
			plainCell(rgb.FormatHex(triple, precision.Digits())),
		}
		if showSwatch {
			row = append(row, cell{text: swatch(triple, swatchWidth), displayWidth: swatchWidth})
		}
		tbl.addRow(row)
	}

	quiet, _ := cmd.Flags().GetBool("quiet")
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), color.New(color.Bold).Sprint(args[0]))
	}
	fmt.Fprint(cmd.OutOrStdout(), tbl.render())
	return nil
}
