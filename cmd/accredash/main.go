// Command accredash is a terminal dashboard for student organization
// accreditation: organization search, roster management and accomplishment
// analytics against the accreditation API.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
