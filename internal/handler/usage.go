// Package handler provides HTTP handlers for the translation gateway.
package handler

import "unicode"

// TokensPerWord is the approximation ratio (1 word ≈ 1.3 tokens).
const TokensPerWord = 1.3

// EstimateTokens estimates the number of tokens in a text string.
// Uses a lightweight approximation: 1 word ≈ 1.3 tokens.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}

	wordCount := 0
	inWord := false

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			if !inWord {
				wordCount++
				inWord = true
			}
		} else {
			inWord = false
		}
	}

	tokens := int(float64(wordCount) * TokensPerWord)
	if tokens == 0 && wordCount > 0 {
		tokens = 1 // Minimum 1 token if there's any text
	}

	return tokens
}

// Usage holds the estimated token counts of one translation.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// EstimateUsage estimates token counts for an input/output pair.
func EstimateUsage(input, output string) Usage {
	return Usage{
		InputTokens:  EstimateTokens(input),
		OutputTokens: EstimateTokens(output),
	}
}
