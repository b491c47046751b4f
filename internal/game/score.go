// internal/game/score.go
//
// Guess scoring for the room engine.
// Implements the classic two‑pass Wordle algorithm with exact
// duplicate‑letter accounting:
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Tally the remaining (non‑hit) answer letters.
//
// Pass 2:
//   - For each non‑hit guess letter: if tally remains for that letter,
//     mark Present and decrement; otherwise mark Miss.
//
// The bounded tally is what makes repeated letters behave: a guess that
// repeats a letter more times than the answer contains it gets Present
// only up to the answer's count, never beyond.
//
// Inputs are assumed pre‑validated (exactly 5 lowercase a–z letters);
// Score performs no validation and has no side effects.

package game

// WordLength is the fixed word size for every room.
const WordLength = 5

// Score maps (answer, guess) to one Mark per position.
func Score(answer, guess string) []Mark {
	res := make([]Mark, WordLength)

	// Letter tally for the non-hit answer positions (a–z).
	var counts [26]int

	for i := 0; i < WordLength; i++ {
		if guess[i] == answer[i] {
			res[i] = MarkHit
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLength; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res
}

// allHit returns true if every mark is MarkHit.
func allHit(marks []Mark) bool {
	for _, m := range marks {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// IsValidWord reports whether s is exactly WordLength lowercase ASCII
// letters — the precondition Score relies on.
func IsValidWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
