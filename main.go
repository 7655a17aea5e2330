package main

import (
	"fmt"
	"os"

	"github.com/qa-exercises/testing-technique-demos/framework"
	"github.com/qa-exercises/testing-technique-demos/techniquetests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if params.listOnly {
		for _, name := range techniquetests.AllTechniques {
			fmt.Println(name)
		}
		return
	}

	fmt.Println()
	framework.PrintFilterDescription(params.filters)

	fmt.Println("Running test suite")

	testLogger := ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := techniquetests.RunTestSuite(params.filters.AsFilter, &testLogger)

	fmt.Println()
	framework.PrintResults(os.Stdout, results)
	if !results.OK() {
		fmt.Println()
		fmt.Printf("To rerun only the failed tests:\n  %s\n", rerunCommand(os.Args[0], results.Failures))
		os.Exit(1)
	}
}
