// Package query handles the natural-language query command
package query

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/zxfpro/expenditure-analyse/cmd/root"
	"github.com/zxfpro/expenditure-analyse/internal/pipeline"

	"github.com/spf13/cobra"
)

// Cmd represents the query command
var Cmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a natural-language question about a bank statement",
	Long: `Analyze a bank statement CSV file and answer a natural-language question
about it, such as '我的总支出是多少？' or '上周我花钱最多的地方是哪里？'.
Without a question argument an interactive prompt is started.`,
	RunE: queryFunc,
}

func queryFunc(cmd *cobra.Command, args []string) error {
	if root.SharedFlags.Input == "" {
		return fmt.Errorf("no input file specified, use --input")
	}

	p, err := root.BuildPipeline()
	if err != nil {
		return err
	}

	session := pipeline.NewSession()
	if _, err := p.AnalyzeFile(cmd.Context(), root.SharedFlags.Input, session); err != nil {
		return err
	}

	if len(args) > 0 {
		answer, err := p.Query(strings.Join(args, " "), session)
		if err != nil {
			return err
		}
		fmt.Println(answer)
		return nil
	}

	return runInteractive(p, session)
}

// runInteractive reads questions line by line until EOF or an exit word.
func runInteractive(p *pipeline.Pipeline, session *pipeline.Session) error {
	fmt.Println("请输入您的问题（输入 '退出' 或 'exit' 结束）：")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "退出" || line == "exit" || line == "quit" {
			break
		}
		answer, err := p.Query(line, session)
		if err != nil {
			return err
		}
		fmt.Println(answer)
	}
	return scanner.Err()
}
