package images

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/plateful/plateful/internal/logging"
	"github.com/stretchr/testify/require"
)

func newResolver() *Resolver {
	return NewResolver(logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestForID_Deterministic(t *testing.T) {
	r := newResolver()
	ctx := context.Background()

	first := r.ForID(ctx, 42)
	second := r.ForID(ctx, 42)
	require.Equal(t, first, second)
}

func TestForID_MapsIntoPool(t *testing.T) {
	r := newResolver()
	ctx := context.Background()

	// (id % 15) + 1 maps onto recipe1..recipe15.
	require.Equal(t, "/assets/recipe-images/recipe2.png", r.ForID(ctx, 1))
	require.Equal(t, "/assets/recipe-images/recipe1.png", r.ForID(ctx, 15))
	require.Equal(t, "/assets/recipe-images/recipe2.png", r.ForID(ctx, 16))
}

func TestForID_FalsyIDFallsBackWithoutFailing(t *testing.T) {
	r := newResolver()

	got := r.ForID(context.Background(), 0)
	require.True(t, strings.HasPrefix(got, "/assets/recipe-images/recipe"))
	require.True(t, strings.HasSuffix(got, ".png"))
}

func TestRandom_StaysInPool(t *testing.T) {
	r := newResolver()

	seen := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		seen[r.Random()] = struct{}{}
	}
	require.LessOrEqual(t, len(seen), 15)
	for img := range seen {
		require.True(t, strings.HasPrefix(img, "/assets/recipe-images/recipe"))
	}
}
