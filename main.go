package main

import (
	"fmt"
	"os"

	"github.com/zxfpro/expenditure-analyse/cmd/analyze"
	"github.com/zxfpro/expenditure-analyse/cmd/query"
	"github.com/zxfpro/expenditure-analyse/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(analyze.Cmd)
	root.Cmd.AddCommand(query.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
