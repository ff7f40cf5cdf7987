package clipboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	var buf string
	a := &Adapter{
		read:  func() (string, error) { return buf, nil },
		write: func(s string) error { buf = s; return nil },
	}

	require.NoError(t, a.WriteText(ctx, "hello"))
	assert.Equal(t, "hello", buf)

	text, err := a.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestAdapter_Unavailable(t *testing.T) {
	a := &Adapter{
		read:  func() (string, error) { return "", ErrUnavailable },
		write: func(string) error { return ErrUnavailable },
	}
	_, err := a.ReadText(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, a.WriteText(context.Background(), "x"), ErrUnavailable)
}
