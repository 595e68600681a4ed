package normalize

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadStopWords reads a plain-text stop-word file: whitespace-separated
// tokens, one or many per line. The whole file is loaded into the returned
// set.
func LoadStopWords(path string) (StopWords, error) {
	f, err := os.Open(path)
	if err != nil {
		return StopWords{}, fmt.Errorf("open stop words %s: %w", path, err)
	}
	defer f.Close()

	set := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		for _, w := range strings.Fields(scanner.Text()) {
			set[strings.ToLower(w)] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return StopWords{}, fmt.Errorf("read stop words %s: %w", path, err)
	}
	return StopWords{set: set}, nil
}
