// Package ui provides colorized console output for the gateway.
// It renders status badges, request lines and the startup summary.
package ui

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR DEFINITIONS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// Badge colors
	successBadge = color.New(color.BgGreen, color.FgBlack, color.Bold)
	warningBadge = color.New(color.FgYellow, color.Bold)
	errorBadge   = color.New(color.BgRed, color.FgWhite, color.Bold)
	infoBadge    = color.New(color.FgCyan, color.Bold)
	debugBadge   = color.New(color.FgMagenta)

	// Text colors
	successText = color.New(color.FgGreen, color.Bold)
	warningText = color.New(color.FgYellow)
	errorText   = color.New(color.FgRed)
	infoText    = color.New(color.FgCyan)
	mutedText   = color.New(color.FgHiBlack)
	accentText  = color.New(color.FgMagenta, color.Bold)
	neonBlue    = color.New(color.FgHiCyan, color.Bold)

	// Method colors
	methodPOST    = color.New(color.BgHiMagenta, color.FgBlack, color.Bold)
	methodGET     = color.New(color.BgHiCyan, color.FgBlack, color.Bold)
	methodOPTIONS = color.New(color.BgHiYellow, color.FgBlack, color.Bold)
)

// ══════════════════════════════════════════════════════════════════════════════
// STATUS BADGES
// ══════════════════════════════════════════════════════════════════════════════

// PrintProviderError logs a provider rejection.
// Format: ⚠️ [PROVIDER] code → status
func PrintProviderError(code string, status int) {
	fmt.Print("⚠️  ")
	warningBadge.Print("[PROVIDER]")
	fmt.Print(" ")
	warningText.Print(code)
	mutedText.Print(" → ")
	printStatusBadge(status)
	fmt.Println()
}

// PrintClientUnavailable logs that the model client could not be built.
func PrintClientUnavailable(reason string) {
	fmt.Print("💀 ")
	errorBadge.Print(" CLIENT DOWN ")
	fmt.Print(" ")
	errorText.Println(reason)
	mutedText.Println("   /translate will answer 500 until the process is restarted with a working configuration")
}

// PrintGatewayInfo logs general gateway information.
// Format: [GATEWAY] message
func PrintGatewayInfo(msg string) {
	infoBadge.Print("[GATEWAY]")
	fmt.Print(" ")
	infoText.Println(msg)
}

// PrintTokens logs the estimated token usage of a translation.
// Format: 🔤 ~N tokens in → ~M tokens out
func PrintTokens(input, output int) {
	fmt.Print("🔤 ")
	mutedText.Print("~")
	accentText.Printf("%d", input)
	mutedText.Print(" tokens in → ~")
	accentText.Printf("%d", output)
	mutedText.Println(" tokens out")
}

// ══════════════════════════════════════════════════════════════════════════════
// REQUEST LOGGING
// ══════════════════════════════════════════════════════════════════════════════

// PrintRequest logs a request with styled output.
// Color-codes status, method, and latency for quick visual parsing.
func PrintRequest(method, path string, status int, latency time.Duration, requestID string) {
	mutedText.Printf("%s ", time.Now().Format("15:04:05"))

	printMethodBadge(method)
	fmt.Print(" ")

	fmt.Printf("%-20s ", truncatePath(path, 20))

	printStatusBadge(status)
	fmt.Print(" ")

	printLatency(latency)
	fmt.Print(" ")

	if requestID != "" {
		mutedText.Printf("req:%s", shortID(requestID))
	}

	fmt.Println()
}

// printMethodBadge prints the HTTP method with appropriate color.
func printMethodBadge(method string) {
	switch method {
	case "POST":
		methodPOST.Printf(" %s ", method)
	case "GET":
		methodGET.Printf(" %s ", method)
	case "OPTIONS":
		methodOPTIONS.Printf(" %s ", method)
	default:
		debugBadge.Printf(" %s ", method)
	}
}

// printStatusBadge prints the status code with appropriate color.
func printStatusBadge(status int) {
	switch {
	case status >= 200 && status < 300:
		successBadge.Printf(" %d ", status)
	case status >= 300 && status < 400:
		infoBadge.Printf(" %d ", status)
	case status >= 400 && status < 500:
		warningBadge.Printf(" %d ", status)
	default:
		errorBadge.Printf(" %d ", status)
	}
}

// printLatency prints latency with color gradient.
// Model calls are slow, so the thresholds are in seconds.
// Green: < 2s, Yellow: < 10s, Red: >= 10s
func printLatency(latency time.Duration) {
	ms := latency.Milliseconds()
	latencyStr := fmt.Sprintf("%6dms", ms)

	switch {
	case latency < 2*time.Second:
		successText.Print(latencyStr)
	case latency < 10*time.Second:
		warningText.Print(latencyStr)
	default:
		errorText.Print(latencyStr)
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// UTILITY FUNCTIONS
// ══════════════════════════════════════════════════════════════════════════════

// shortID returns the first segment of a request id.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// truncatePath truncates a path to maxLen characters.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return path[:maxLen-3] + "..."
}

// ══════════════════════════════════════════════════════════════════════════════
// STARTUP MESSAGES
// ══════════════════════════════════════════════════════════════════════════════

// StartupInfo is the summary printed when the server starts.
type StartupInfo struct {
	Address       string
	Region        string
	ModelID       string
	AllowedOrigin string
	ClientReady   bool
	MetricsPath   string
}

// PrintStartupInfo prints styled server startup information.
func PrintStartupInfo(info StartupInfo) {
	fmt.Println()
	infoBadge.Print("[GATEWAY]")
	fmt.Print(" Server starting on ")
	neonBlue.Printf("http://%s\n", info.Address)

	infoBadge.Print("[GATEWAY]")
	fmt.Print(" Model: ")
	accentText.Print(info.ModelID)
	fmt.Print(" | Region: ")
	accentText.Print(info.Region)
	fmt.Print(" | Client: ")
	if info.ClientReady {
		successText.Println("ready")
	} else {
		errorText.Println("unavailable")
	}

	infoBadge.Print("[GATEWAY]")
	fmt.Print(" CORS origin: ")
	accentText.Println(info.AllowedOrigin)

	fmt.Println()
	printEndpoints(info.MetricsPath)
}

// printEndpoints prints the available API endpoints.
func printEndpoints(metricsPath string) {
	mutedText.Println("  ┌───────────────────────────────────────────────────┐")
	mutedText.Print("  │ ")
	methodGET.Print(" GET  ")
	fmt.Print(" /                ")
	mutedText.Print("  Liveness probe          ")
	mutedText.Println(" │")

	mutedText.Print("  │ ")
	methodPOST.Print(" POST ")
	fmt.Print(" /translate       ")
	mutedText.Print("  Tech → business text    ")
	mutedText.Println(" │")

	if metricsPath != "" {
		mutedText.Print("  │ ")
		methodGET.Print(" GET  ")
		fmt.Printf(" %-16s ", truncatePath(metricsPath, 16))
		mutedText.Print("  Prometheus metrics      ")
		mutedText.Println(" │")
	}

	mutedText.Println("  └───────────────────────────────────────────────────┘")
	fmt.Println()
}

// PrintShutdown prints a styled shutdown message.
func PrintShutdown() {
	fmt.Println()
	warningBadge.Print("[SHUTDOWN]")
	warningText.Println(" Graceful shutdown initiated...")
}

// PrintGoodbye prints a styled goodbye message.
func PrintGoodbye() {
	successBadge.Print(" OK ")
	fmt.Print(" ")
	successText.Println("Server stopped. Goodbye! 👋")
}
