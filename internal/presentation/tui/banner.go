package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Warm gradient, photo-editing palette
	s1 := termenv.String("   __       _                  _   ___ ").Foreground(p.Color("#fbbf24"))
	s2 := termenv.String("  / _| ___ | |_ ___         /\\| |/ (_)").Foreground(p.Color("#fb923c"))
	s3 := termenv.String(" | |_ / _ \\| __/ _ \\ _____ /  \\ | || |").Foreground(p.Color("#f87171"))
	s4 := termenv.String(" |  _| (_) | || (_) |_____/ /\\ \\| || |").Foreground(p.Color("#f472b6"))
	s5 := termenv.String(" |_|  \\___/ \\__\\___/     /_/  \\_\\_||_|").Foreground(p.Color("#e879f9"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("  v%s\n", strings.TrimSpace(version))
	fmt.Println()
}
