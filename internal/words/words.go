// internal/words/words.go
//
// Word list management for the room engine.
//
// Responsibilities:
//   - Load the word list from a configured file or fall back to the
//     embedded default.
//   - Maintain a set for O(1) guess validation.
//   - Supply RandomAnswer for new rooms.
//
// One combined list serves both purposes: every loadable word is a valid
// guess and a possible answer.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase.
//   • Initialization runs once (sync.Once); an empty resulting list is a
//     fatal configuration error surfaced to the caller.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"os"
	"strings"
	"sync"
)

//go:embed default_words.txt
var embeddedWords string

var (
	initOnce   sync.Once
	list       []string
	set        map[string]struct{}
	initialErr error
)

const wordLength = 5

// Init loads the word list exactly once. path selects a file with one
// word per line; an empty path uses the embedded default list.
// Returns an error if the resulting list is empty.
func Init(path string) error {
	initOnce.Do(func() {
		var ws []string
		if path != "" {
			var err error
			ws, err = readWordFile(path)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			ws = normalizeLines(embeddedWords)
		}
		if len(ws) == 0 {
			initialErr = errors.New("words: word list is empty")
			return
		}
		list = ws
		set = toSet(ws)
	})
	return initialErr
}

// readWordFile loads one word per line from a file, lowercases, trims,
// and keeps only valid 5-letter alphabetic words.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// normalizeLines processes an embedded multiline string the same way.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalizeWord(line); ok {
			out = append(out, w)
		}
	}
	return out
}

func normalizeWord(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) != wordLength || !isAlpha(w) {
		return "", false
	}
	return w, true
}

func toSet(ws []string) map[string]struct{} {
	m := make(map[string]struct{}, len(ws))
	for _, w := range ws {
		m[w] = struct{}{}
	}
	return m
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomAnswer returns a cryptographically random word from the list.
// Falls back to "crane" if the list was never loaded.
func RandomAnswer() string {
	if len(list) == 0 {
		return "crane"
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[n.Int64()]
}

// IsAllowed reports whether w is in the loaded word list.
func IsAllowed(w string) bool {
	_, ok := set[strings.ToLower(w)]
	return ok
}

// Count returns the number of loaded words.
func Count() int { return len(list) }
