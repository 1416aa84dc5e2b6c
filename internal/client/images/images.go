// Package images resolves placeholder artwork for recipes the server
// returned without an image. The pool holds 15 fixed assets; deterministic
// resolution keeps a recipe's artwork stable across sessions.
package images

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/plateful/plateful/internal/logging"
)

const poolSize = 15

// DefaultImage is the first entry of the placeholder pool.
var DefaultImage = imagePath(1)

func imagePath(n int) string {
	return fmt.Sprintf("/assets/recipe-images/recipe%d.png", n)
}

// Resolver picks placeholder images from the fixed pool.
type Resolver struct {
	logger logging.Logger
}

func NewResolver(logger logging.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// ForID returns the same pool image for the same recipe id on every call.
// Ids that cannot identify a recipe (<= 0) fall back to a random pick and
// log a warning instead of failing.
func (r *Resolver) ForID(ctx context.Context, id int64) string {
	if id <= 0 {
		r.logger.Warn(ctx, "no recipe id for image resolution, using random image")
		return r.Random()
	}
	return imagePath(int(id%poolSize) + 1)
}

// Random returns a uniformly chosen pool image. Not stable across calls;
// used where determinism does not matter (trending, favorites).
func (r *Resolver) Random() string {
	return imagePath(rand.Intn(poolSize) + 1)
}
