// Package ui provides colorized console output for the gateway.
package ui

import (
	"fmt"

	"github.com/fatih/color"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASCII ART BANNER
// ══════════════════════════════════════════════════════════════════════════════

// Version is printed in the banner.
const Version = "v1.0.0"

var bannerLines = []string{
	"██████╗ ██╗███████╗███████╗██████╗ ███████╗ █████╗ ██╗  ██╗",
	"██╔══██╗██║╚══███╔╝██╔════╝██╔══██╗██╔════╝██╔══██╗██║ ██╔╝",
	"██████╔╝██║  ███╔╝ ███████╗██████╔╝█████╗  ███████║█████╔╝ ",
	"██╔══██╗██║ ███╔╝  ╚════██║██╔═══╝ ██╔══╝  ██╔══██║██╔═██╗ ",
	"██████╔╝██║███████╗███████║██║     ███████╗██║  ██║██║  ██╗",
	"╚═════╝ ╚═╝╚══════╝╚══════╝╚═╝     ╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝",
}

// PrintBanner displays the ASCII art startup banner.
func PrintBanner() {
	fmt.Println()

	cyan := color.New(color.FgCyan, color.Bold)
	hiCyan := color.New(color.FgHiCyan)
	hiMagenta := color.New(color.FgHiMagenta)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite)
	dim := color.New(color.FgHiBlack)

	cyan.Println("╔═════════════════════════════════════════════════════════════════╗")

	for i, line := range bannerLines {
		cyan.Print("║  ")
		if i < len(bannerLines)/2 {
			hiCyan.Print(line)
		} else {
			hiMagenta.Print(line)
		}
		cyan.Println("    ║")
	}

	cyan.Println("╠═════════════════════════════════════════════════════════════════╣")

	cyan.Print("║  ")
	yellow.Print("TECH → BUSINESS GATEWAY")
	dim.Print("  │  ")
	hiMagenta.Print("AWS BEDROCK")
	dim.Print("  │  ")
	white.Print(Version)
	dim.Print("           ")
	cyan.Println("║")

	cyan.Println("╚═════════════════════════════════════════════════════════════════╝")

	fmt.Println()
}
