package archive

import (
	"fmt"
	"math/rand/v2"

	terrors "github.com/nisaba-tools/tablet/internal/errors"
)

// Pick draws one proverb uniformly at random and returns it with its index.
// The collection is not mutated and calls are independent; callers wanting
// no repeats across a session must track seen indices themselves.
func Pick(proverbs []Proverb) (int, Proverb, error) {
	if len(proverbs) == 0 {
		return 0, Proverb{}, fmt.Errorf("%w: nothing to pick from", terrors.ErrEmptyCollection)
	}
	i := rand.IntN(len(proverbs))
	return i, proverbs[i], nil
}
