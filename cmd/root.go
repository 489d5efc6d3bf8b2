package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/hmdscan/internal/hmd"
	"github.com/user/hmdscan/internal/tree"
	"github.com/user/hmdscan/internal/usb"
)

var (
	jsonOutput  bool
	verbose     bool
	serialsOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "hmdscan",
	Short: "Locate VR headsets and their wireless receivers on the USB bus",
	Long: `HMDScan walks the USB hub topology of the host, locates supported
head-mounted displays by their device signatures, and lists the wireless
receiver dongles attached near each headset's shared hub.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		enumerator := usb.NewEnumerator()
		defer enumerator.Close()

		records, err := enumerator.Devices()
		if err != nil {
			return fmt.Errorf("failed to get USB devices: %w", err)
		}

		findings := hmd.Scan(records)

		if serialsOnly {
			for _, finding := range findings {
				for _, serial := range finding.DongleSerials() {
					fmt.Println(serial)
				}
			}
			return nil
		}

		if jsonOutput {
			return outputJSON(findings)
		}

		printer := tree.NewPrinter(verbose)
		if len(findings) == 0 {
			printer.PrintNoFindings()
			return nil
		}
		for _, finding := range findings {
			printer.PrintFinding(finding.DisplayName(), finding.Device, finding.DongleSerials())
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output in JSON format")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the hub subtree under each headset")
	rootCmd.Flags().BoolVarP(&serialsOnly, "serials", "s", false, "Print only the receiver serial numbers")
}

func outputJSON(findings []*hmd.Finding) error {
	reports := make([]hmd.FindingReport, 0, len(findings))
	for _, finding := range findings {
		reports = append(reports, finding.Report())
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(reports)
}
