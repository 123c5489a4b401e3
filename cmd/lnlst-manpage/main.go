package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/lnlst/cmd/lnlst"
	"github.com/arthur-debert/lnlst/internal/version"
)

func main() {
	rootCmd := lnlst.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LNLST",
		Section: "1",
		Source:  version.String(),
		Manual:  "lnlst manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
