package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/lnlst/cmd/lnlst"
	"github.com/arthur-debert/lnlst/pkg/ui/output/styles"
)

func main() {
	rootCmd := lnlst.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Link runs print their own errors
		if !lnlst.IsReported(err) {
			errorStyle := styles.GetStyle("Error")
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}
		os.Exit(1)
	}
}
