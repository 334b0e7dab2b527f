package main

import (
	"context"
	"fmt"
	"os"

	"github.com/walteh/pyfuture/cmd/pyfuture/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		// The run report lives on stdout, so fatal errors go there too.
		fmt.Fprintf(os.Stdout, "❌ %v\n", err)
		os.Exit(1)
	}
}
