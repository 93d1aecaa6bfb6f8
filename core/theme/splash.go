package theme

import (
	"fmt"
	"io"
	"strings"
)

// Version is shown in the splash banner and by sysinfo.
const Version = "DaffaShell v2.0"

var logo = []string{
	`  ____   __  ______ ______ __     _____ _    _ ______ _      _      `,
	` |  _ \ / _\|  ____|  ____/ _\   / ____| |  | |  ____| |    | |     `,
	` | | | | |  | |__  | |__ | |    | (___ | |__| | |__  | |    | |     `,
	` | | | | |  |  __| |  __|| |     \___ \|  __  |  __| | |    | |     `,
	` | |_| | |  | |    | |   | |     ____) | |  | | |____| |____| |____ `,
	` |____/|_|  |_|    |_|   |_|    |_____/|_|  |_|______|______|______|`,
}

// Splash writes the startup banner.
func (t *Theme) Splash(w io.Writer) {
	for i, line := range logo {
		style := Accent
		if i%2 == 1 {
			style = Info
		}
		t.Println(w, style, line)
	}

	rule := strings.Repeat("─", 70)
	fmt.Fprintln(w)
	t.Println(w, Accent, rule)
	t.Println(w, Info, "  "+Version+" - Advanced Command Line Interface")
	t.Println(w, Muted, "  Type 'help' for commands | 'exit' to quit")
	t.Println(w, Accent, rule)
	fmt.Fprintln(w)
}
