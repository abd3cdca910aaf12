// Package naming derives the display label of a waiting match from its id.
package naming

import (
	"strings"

	"github.com/mcoot/machgame/internal/model"
)

const alphabetSize = 26

// NameFor returns a letter repeated one or more times: ids 1-26 map to A-Z,
// 27-52 to AA-ZZ, 53-78 to AAA-ZZZ and so on. This is not spreadsheet
// column naming. Clients type these names to join, so the formula must not change.
func NameFor(id model.MatchID) string {
	if id == 0 {
		return ""
	}
	n := uint64(id) - 1
	letter := string(rune('A' + n%alphabetSize))
	return strings.Repeat(letter, int(n/alphabetSize)+1)
}
