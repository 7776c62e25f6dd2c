package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniconsole/internal/commands"
)

func invoke(t *testing.T, s *commands.Snapshot, name string, tokens ...string) (any, error) {
	t.Helper()
	res, err := s.Resolve(name, len(tokens))
	require.NoError(t, err)
	args, err := commands.Coerce(tokens, res.Primary().Params())
	require.NoError(t, err)
	return res.Primary().Invoke(context.Background(), args)
}

func TestSource(t *testing.T) {
	engine := &Engine{}
	s := commands.NewRegistry(Source(engine)).Snapshot()

	out, err := invoke(t, s, "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", out)

	out, err = invoke(t, s, "add", "2", "40")
	require.NoError(t, err)
	assert.Equal(t, 42, out)

	out, err = invoke(t, s, "divide", "1", "4")
	require.NoError(t, err)
	assert.Equal(t, 0.25, out)

	_, err = invoke(t, s, "Math.divide", "1", "0")
	assert.ErrorIs(t, err, ErrDivideByZero)

	out, err = invoke(t, s, "flag", "TRUE")
	require.NoError(t, err)
	assert.Equal(t, "flag is true", out)

	out, err = invoke(t, s, "setMode", "slow")
	require.NoError(t, err)
	assert.Equal(t, "Mode set to Slow", out)
	assert.Equal(t, "Slow", engine.Mode())

	out, err = invoke(t, s, "Video.reset")
	require.NoError(t, err)
	assert.Equal(t, "video reset", out)

	_, err = s.Resolve("reset", 0)
	var amb *commands.AmbiguousCommandError
	assert.ErrorAs(t, err, &amb)
}

func TestSleepReturnsPending(t *testing.T) {
	s := commands.NewRegistry(Source(nil)).Snapshot()

	out, err := invoke(t, s, "sleep", "0")
	require.NoError(t, err)
	pending, ok := out.(*commands.Pending)
	require.True(t, ok)

	v, err := pending.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "slept 0s", v)

	for _, token := range []string{"-1", "60001", "9223372036854775807"} {
		_, err = invoke(t, s, "sleep", token)
		assert.Error(t, err, token)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err = invoke(t, s, "sleep", "1000")
	require.NoError(t, err)
	_, err = out.(*commands.Pending).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
