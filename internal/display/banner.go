package display

import (
	"fmt"
	"os"

	"batchbrake/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, logging.Magenta)
	}
	fmt.Fprint(os.Stdout, ` ____        _       _     ____            _
| __ )  __ _| |_ ___| |__ | __ ) _ __ __ _| | _____
|  _ \ / _`+"`"+` | __/ __| '_ \|  _ \| '__/ _`+"`"+` | |/ / _ \
| |_) | (_| | || (__| | | | |_) | | | (_| |   <  __/
|____/ \__,_|\__\___|_| |_|____/|_|  \__,_|_|\_\___|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
