package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/0xlemi/raagnote/internal/raag"
	"github.com/0xlemi/raagnote/internal/swara"
)

var (
	raagsJSON  bool
	raagsThaat string
)

var raagsCmd = &cobra.Command{
	Use:   "raags [name]",
	Short: "List raags or show one raag",
	Long: `Lists the raags of the catalog grouped by thaat, or shows the aroha,
avaroha, pakad, vadi and samvadi of a single raag. Names are matched
case-insensitively; close misspellings get suggestions.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRaags,
}

func init() {
	raagsCmd.Flags().BoolVar(&raagsJSON, "json", false, "output results as JSON")
	raagsCmd.Flags().StringVar(&raagsThaat, "thaat", "", "only list raags of this thaat")
	rootCmd.AddCommand(raagsCmd)
}

func runRaags(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	if catalog == nil {
		catalog = raag.Default()
	}
	script, err := resolveScript(cmd)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		def, err := catalog.Find(args[0])
		if err != nil {
			return err
		}
		if raagsJSON {
			return outputJSON(cmd, def)
		}
		return outputRaagDetail(cmd, def, script)
	}

	defs := catalog.All()
	if raagsThaat != "" {
		defs = catalog.InThaat(raagsThaat)
	}
	if raagsJSON {
		return outputJSON(cmd, defs)
	}
	return outputRaagList(cmd, defs)
}

func outputRaagList(cmd *cobra.Command, defs []raag.Definition) error {
	if len(defs) == 0 {
		cmd.Println("No raags found.")
		return nil
	}

	thaat := ""
	for _, d := range defs {
		if d.Thaat != thaat {
			if thaat != "" {
				cmd.Println()
			}
			thaat = d.Thaat
			cmd.Printf("%s thaat\n", thaat)
		}
		cmd.Printf("  %-18s %-10s %s\n", d.Name, d.Time, d.Mood)
	}
	return nil
}

func outputRaagDetail(cmd *cobra.Command, d raag.Definition, script swara.Script) error {
	render := func(ls []swara.Label) string {
		return strings.Join(swara.Sequence(ls).In(script).Strings(), " ")
	}

	cmd.Printf("%s (%s)\n", d.Name, d.NativeName)
	cmd.Printf("  Thaat:    %s\n", d.Thaat)
	cmd.Printf("  Time:     %s\n", d.Time)
	cmd.Printf("  Mood:     %s\n", d.Mood)
	cmd.Printf("  Aroha:    %s\n", render(d.Aroha))
	cmd.Printf("  Avaroha:  %s\n", render(d.Avaroha))
	cmd.Printf("  Pakad:    %s\n", render(d.Pakad))
	cmd.Printf("  Vadi:     %s\n", render([]swara.Label{d.Vadi}))
	cmd.Printf("  Samvadi:  %s\n", render([]swara.Label{d.Samvadi}))
	return nil
}
