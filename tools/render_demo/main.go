// Command render_demo simulates the built-in example plan and writes every
// report format to a directory. Handy for eyeballing formatter changes
// without crafting a plan file first.
package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/mpgo/mortgage-planner/internal/calculation"
	"github.com/mpgo/mortgage-planner/internal/config"
	"github.com/mpgo/mortgage-planner/internal/output"
)

func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	parser := config.NewInputParser()
	plan := parser.CreateExamplePlan()
	plan.Funding.House.SellMonth = 24

	engine := calc.NewSimulationEngine()
	result, err := engine.RunPlan(context.Background(), plan)
	if err != nil {
		panic(err)
	}

	for _, format := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(result, format, dir)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-12s -> %s\n", format, path)
	}
}
