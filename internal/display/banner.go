package display

import (
	"fmt"
	"os"

	"github.com/backmassage/ies2hdr/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Cyan if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Cyan)
	}
	fmt.Fprint(os.Stdout, ` ___ _____ ____ ____  _   _ ____  ____
|_ _| ____/ ___|___ \| | | |  _ \|  _ \
 | ||  _| \___ \ __) | |_| | | | | |_) |
 | || |___ ___) / __/|  _  | |_| |  _ <
|___|_____|____/_____|_| |_|____/|_| \_\
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
