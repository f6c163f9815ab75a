package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for interactive sessions.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Warm gradient, amber to red.
	lines := []struct {
		text  string
		color string
	}{
		{`   __           _                 _   _     `, "#fbbf24"},
		{`  / _| ___  _ _| | ___ __   __ _| |_| |__  `, "#f59e0b"},
		{` | |_ / _ \| '__| |/ / '_ \ / _' | __| '_ \ `, "#f97316"},
		{` |  _| (_) | |  |   <| |_) | (_| | |_| | | |`, "#ef4444"},
		{` |_|  \___/|_|  |_|\_\ .__/ \__,_|\__|_| |_|`, "#dc2626"},
		{`                     |_|                    `, "#b91c1c"},
	}

	fmt.Println()
	for _, l := range lines {
		fmt.Println(termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Printf("  v%s\n\n", version)
}
