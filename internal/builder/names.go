package builder

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// NameProvider asks for a new field or column name. It returns ok=false
// when the request was cancelled.
type NameProvider func(prompt string) (name string, ok bool)

// NoNames is a NameProvider that always cancels.
func NoNames(string) (string, bool) {
	return "", false
}

// FixedNames returns a NameProvider that answers with the given names in
// order and cancels once they are exhausted.
//
// Safe for concurrent use.
func FixedNames(names ...string) NameProvider {
	var (
		mu  sync.Mutex
		idx int
	)
	return func(string) (string, bool) {
		mu.Lock()
		defer mu.Unlock()
		if idx >= len(names) {
			return "", false
		}
		name := names[idx]
		idx++
		return name, true
	}
}

// PromptFrom returns a NameProvider that writes the prompt to w and reads
// one line from r. End of input cancels.
func PromptFrom(r io.Reader, w io.Writer) NameProvider {
	scanner := bufio.NewScanner(r)
	return func(prompt string) (string, bool) {
		fmt.Fprintf(w, "%s: ", prompt)
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}
}
