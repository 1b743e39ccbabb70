package pkg

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

var errSample = errors.New("sample failure")

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOutput, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOutput)
		log.SetFlags(prevFlags)
	})
	return buf
}

func TestWrappedError(t *testing.T) {
	t.Run("EmptyUntilSpecified", func(t *testing.T) {
		wErr := NewWrappedError("Sample()")
		check.Equal(t, "", wErr.Error())
		check.True(t, wErr.Unwrap() == nil)
		check.Equal(t, "Sample()", wErr.FunctionName())
	})

	t.Run("SpecifyWrapsError", func(t *testing.T) {
		wErr := NewWrappedError("Sample()").Specify(errSample, "doing things")
		check.Equal(t, "'doing things' in function 'Sample()' invoked 'sample failure'", wErr.Error())
		check.True(t, errors.Is(wErr, errSample))

		var target *WrappedError
		assert.True(t, errors.As(error(wErr), &target))
		check.Equal(t, "Sample()", target.FunctionName())
	})

	t.Run("SpecifyNilKeepsPrevious", func(t *testing.T) {
		wErr := NewWrappedError("Sample()").Specify(errSample, "first")
		wErr.Specify(nil, "second")
		check.True(t, strings.Contains(wErr.Error(), "first"))
		check.True(t, errors.Is(wErr, errSample))
	})
}

func TestWrappedErrorLogging(t *testing.T) {
	t.Run("LogErrorWithoutError", func(t *testing.T) {
		buf := captureLog(t)
		NewWrappedError("Sample()").LogError()
		check.Equal(t, 0, buf.Len())
	})

	t.Run("LogErrorTagsOutput", func(t *testing.T) {
		buf := captureLog(t)
		out := &bytes.Buffer{}
		NewWrappedError("Sample()").WithOutput(out).Specify(errSample, "doing things").LogError()

		check.True(t, strings.Contains(buf.String(), errorTag))
		check.True(t, strings.Contains(buf.String(), "sample failure"))
		check.Equal(t, buf.String(), out.String())
	})

	t.Run("LogMsg", func(t *testing.T) {
		buf := captureLog(t)
		out := &bytes.Buffer{}
		NewWrappedError("Sample()").WithOutput(out).LogMsg("hello")

		check.True(t, strings.Contains(buf.String(), messageTag))
		check.True(t, strings.Contains(buf.String(), "'hello' from function 'Sample()'"))
		check.True(t, strings.Contains(out.String(), "'hello' from function 'Sample()'"))
	})
}
