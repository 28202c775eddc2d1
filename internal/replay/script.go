package replay

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
)

type Kind string

const (
	KindMove  Kind = "move"
	KindJump  Kind = "jump"
	KindReset Kind = "reset"
)

// Intent is one parsed script token. Value is the cell for moves and the step for jumps.
type Intent struct {
	Kind  Kind   `json:"kind"`
	Value int    `json:"value"`
	Token string `json:"token"`
}

// Parse - turns script tokens into intents. Tokens may also be separated by commas.
// Indexes are not range checked here, out-of-range ones are rejected when applied.
func Parse(args []string) ([]Intent, error) {
	var intents []Intent

	for _, arg := range args {
		tokens := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		for _, token := range tokens {
			intent, err := parseToken(token)
			if err != nil {
				return nil, err
			}

			intents = append(intents, intent)
		}
	}

	return intents, nil
}

func parseToken(token string) (Intent, error) {
	switch strings.ToLower(token) {
	case "reset", "new":
		return Intent{Kind: KindReset, Token: token}, nil
	}

	if step, found := strings.CutPrefix(token, "@"); found {
		value, err := strconv.Atoi(step)
		if err != nil {
			return Intent{}, fmt.Errorf("%w: bad jump %q", apperror.ErrInvalidScript, token)
		}

		return Intent{Kind: KindJump, Value: value, Token: token}, nil
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return Intent{}, fmt.Errorf("%w: unknown token %q", apperror.ErrInvalidScript, token)
	}

	return Intent{Kind: KindMove, Value: value, Token: token}, nil
}
