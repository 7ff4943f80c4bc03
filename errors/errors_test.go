package errors

import (
	stdlib "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nilError struct{}

func (*nilError) Error() string { return "never printed" }

func TestErrorIs(t *testing.T) {
	foreign := stdlib.New("disk on fire")
	deposit := Wrap(Wrap(ErrAmount, "negative"), "deposit fees")

	cases := map[string]struct {
		kind *Error
		err  error
		want bool
	}{
		"same kind":              {kind: ErrAmount, err: ErrAmount, want: true},
		"other kind":             {kind: ErrAmount, err: ErrOverflow},
		"wrapped twice":          {kind: ErrAmount, err: deposit, want: true},
		"wrapped by pkg/errors":  {kind: ErrAmount, err: errors.Wrap(deposit, "tx"), want: true},
		"formatted":              {kind: ErrOverflow, err: ErrOverflow.Newf("%d bits", 130), want: true},
		"foreign":                {kind: ErrDatabase, err: foreign},
		"wrapped foreign":        {kind: ErrDatabase, err: Wrap(foreign, "save")},
		"kind against nil":       {kind: ErrAmount, err: nil},
		"nil against nil":        {kind: nil, err: nil, want: true},
		"nil against typed nil":  {kind: nil, err: (*nilError)(nil), want: true},
		"nil against any error":  {kind: nil, err: deposit},
		"nil against bare error": {kind: nil, err: ErrAmount},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Is(tc.err))
		})
	}
}

func TestCode(t *testing.T) {
	assert.EqualValues(t, 0, Code(nil))
	assert.EqualValues(t, 1, Code(stdlib.New("foreign")))
	assert.EqualValues(t, 1, Code(Wrap(stdlib.New("foreign"), "context")))
	assert.EqualValues(t, 2, Code(ErrUnauthorized))
	assert.EqualValues(t, 12, Code(Wrapf(ErrInsufficientAmount, "balance %d", 3)))
	assert.EqualValues(t, 111222, Code(ErrPanic.New("boom")))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "nothing to wrap"))
	assert.Nil(t, Wrapf(nil, "nothing to wrap %d", 1))

	foreign := stdlib.New("disk on fire")
	err := Wrap(Wrap(foreign, "save pool"), "deposit fees")
	assert.Equal(t, "deposit fees: save pool: disk on fire", err.Error())
	assert.Equal(t, foreign, errors.Cause(err))
	assert.Equal(t, ErrEmpty, errors.Cause(ErrEmpty.New("recipients")))
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ErrEmpty.New("recipients"), "distribute")
	assert.Equal(t, "distribute: recipients: value is empty", fmt.Sprintf("%v", err))
	assert.Equal(t, "distribute: recipients: value is empty", fmt.Sprintf("%s", err))

	full := fmt.Sprintf("%+v", err)
	assert.True(t, strings.HasPrefix(full, "distribute: recipients: value is empty"), full)
	assert.Contains(t, full, "errors_test.go")
	// only the innermost wrap records a trace
	assert.Equal(t, 1, strings.Count(full, "TestStackTrace"))
}

func TestRegister(t *testing.T) {
	assert.Panics(t, func() { Register(ErrNotFound.Code(), "not found again") })
	assert.Panics(t, func() { Register(1, "foreign") })

	kind := Register(4242, "test kind")
	assert.True(t, kind.Is(kind.New("x")))
	assert.EqualValues(t, 4242, Code(kind.New("x")))
}

func TestRecover(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err)
		panic("pool index out of range")
	}
	err := run()
	require.True(t, ErrPanic.Is(err))
	assert.Contains(t, err.Error(), "pool index out of range")
	assert.Equal(t, ErrPanic, Redact(err))

	other := ErrAmount.New("negative")
	assert.Equal(t, other, Redact(other))
}
