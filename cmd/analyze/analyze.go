// Package analyze handles the statement analysis command
package analyze

import (
	"fmt"

	"github.com/zxfpro/expenditure-analyse/cmd/root"
	"github.com/zxfpro/expenditure-analyse/internal/pipeline"

	"github.com/spf13/cobra"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a bank statement CSV file",
	Long: `Analyze a bank statement CSV file: classify each transaction into a
spending category, print the analysis report with advice, and optionally
export the classified transactions to CSV.`,
	RunE: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("no input file specified, use --input")
	}

	root.Log.Infof("Analyzing statement file: %s", root.SharedFlags.Input)

	p, err := root.BuildPipeline()
	if err != nil {
		return err
	}

	session := pipeline.NewSession()
	result, err := p.AnalyzeFile(cmd.Context(), root.SharedFlags.Input, session)
	if err != nil {
		return err
	}

	fmt.Println(result.Render())

	if root.SharedFlags.Output != "" {
		if err := p.ExportCSV(root.SharedFlags.Output, session); err != nil {
			return err
		}
		root.Log.Infof("Classified transactions written to: %s", root.SharedFlags.Output)
	}

	root.Log.Info("Statement analysis completed successfully!")
	return nil
}
