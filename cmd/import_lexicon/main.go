// Command import_lexicon extracts a babble vocabulary from a PDF sourcebook.
// It pulls every plausible word out of the document, buckets the pool into
// the four babble word lists, and writes the result as JSON ready to paste
// into a skin definition.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"neuralrecon/internal/theme"
)

var wordPattern = regexp.MustCompile(`[A-Za-z]{4,}`)

func main() {
	output := flag.String("o", "", "write JSON to this file instead of stdout")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: import_lexicon [-o out.json] <sourcebook.pdf>")
		os.Exit(2)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read sourcebook: %v\n", err)
		os.Exit(1)
	}

	text, err := extractTextFromPDF(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "extract text: %v\n", err)
		os.Exit(1)
	}

	vocabulary := bucketWords(extractWords(text))
	encoded, err := json.MarshalIndent(vocabulary, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode vocabulary: %v\n", err)
		os.Exit(1)
	}
	encoded = append(encoded, '\n')

	if *output == "" {
		os.Stdout.Write(encoded)
		return
	}
	if err := os.WriteFile(*output, encoded, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		os.Exit(1)
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// extractWords pulls every distinct word of four or more letters out of the
// text, lowercased and sorted.
func extractWords(text string) []string {
	seen := make(map[string]bool)
	for _, match := range wordPattern.FindAllString(text, -1) {
		seen[strings.ToLower(match)] = true
	}
	words := make([]string, 0, len(seen))
	for word := range seen {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

// bucketWords deals the pool round-robin into the four babble lists,
// matching the casing each slot expects: prefixes and middles are shouted,
// suffixes stay lowercase, and extras become short sentences.
func bucketWords(words []string) theme.Vocabulary {
	var vocabulary theme.Vocabulary
	for i, word := range words {
		switch i % 4 {
		case 0:
			vocabulary.Prefixes = append(vocabulary.Prefixes, strings.ToUpper(word))
		case 1:
			vocabulary.Middles = append(vocabulary.Middles, strings.ToUpper(word))
		case 2:
			vocabulary.Suffixes = append(vocabulary.Suffixes, word)
		case 3:
			vocabulary.Extras = append(vocabulary.Extras, sentenceCase(word)+".")
		}
	}
	return vocabulary
}

func sentenceCase(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
