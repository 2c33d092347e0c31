package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SelectOption presents a numbered list of options and returns the index the
// user picked. Empty input selects defaultIndex; an out-of-range default
// falls back to the first option.
func SelectOption(message string, options []string, defaultIndex int, input io.Reader, output io.Writer) (int, error) {
	scanner := bufio.NewScanner(input)
	return selectScan(scanner, message, options, defaultIndex, output)
}

// selectScan runs the selection loop over an existing scanner so that a
// caller issuing several prompts against one reader keeps buffered lines.
func selectScan(scanner *bufio.Scanner, message string, options []string, defaultIndex int, output io.Writer) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to select from")
	}

	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	if _, err := fmt.Fprintln(output, message); err != nil {
		return -1, err
	}
	for i, option := range options {
		if _, err := fmt.Fprintf(output, "  %d) %s\n", i+1, option); err != nil {
			return -1, err
		}
	}

	for {
		if _, err := fmt.Fprintf(output, "Enter choice [%d]: ", defaultIndex+1); err != nil {
			return -1, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return -1, err
			}
			return -1, io.EOF
		}

		response := strings.TrimSpace(scanner.Text())
		if response == "" {
			return defaultIndex, nil
		}

		choice, err := strconv.Atoi(response)
		if err != nil || choice < 1 || choice > len(options) {
			if _, err := fmt.Fprintf(output, "Please enter a number between 1 and %d\n", len(options)); err != nil {
				return -1, err
			}
			continue
		}

		return choice - 1, nil
	}
}
