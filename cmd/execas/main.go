package main

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/execas/execascmd"

	"github.com/jessevdk/go-flags"
)

func main() {
	cmd := &execascmd.ExecasCommand{}

	// PassAfterNonOption stops option parsing at the user-spec, so flags
	// belonging to the target command pass through untouched.
	parser := flags.NewParser(cmd, flags.Default|flags.PassAfterNonOption)
	parser.NamespaceDelimiter = "-"

	args, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if len(args) < 2 {
		execascmd.PrintUsage(os.Stdout, parser.Name)
		os.Exit(0)
	}

	must(cmd.Run(args[0], args[1:]))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
