package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/oddrange/internal/console"
)

func runCLI(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	streams := Streams{In: strings.NewReader(input), Out: out, Err: errOut}

	err := Run(context.Background(), append([]string{"oddrange"}, args...), streams)
	return out.String(), errOut.String(), err
}

func TestRun_Defaults(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "10\n1\n")

	require.NoError(t, err)
	require.Equal(t,
		"Введите число A (A > B): Введите число B: Нечетные числа от 10 до 1 в порядке убывания:\n9\n7\n5\n3\n1\n",
		out,
	)
}

func TestRun_OrderingViolationIsNotAnError(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "2\n5\n", "--lang", "en")

	require.NoError(t, err)
	require.Equal(t, "Enter number A (A > B): Enter number B: Error: A must be greater than B.\n", out)
}

func TestRun_ParseErrorPropagates(t *testing.T) {
	t.Parallel()

	_, _, err := runCLI(t, "abc\n1\n")

	var parseErr *console.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "A", parseErr.Input)
}

func TestRun_DebugLogsGoToErrWriter(t *testing.T) {
	t.Parallel()

	out, logs, err := runCLI(t, "3\n2\n", "--log-level", "debug", "--log-format", "json")

	require.NoError(t, err)
	require.NotContains(t, out, "Inputs parsed.")
	require.Contains(t, logs, `"msg":"Inputs parsed."`)
}

func TestRun_MessagesFlag(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "messages.hcl")
	err := os.WriteFile(path, []byte("messages {\n  ordering = \"bad order\"\n}\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	// --- Act ---
	out, _, err := runCLI(t, "1\n1\n", "-m", path)

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out, "bad order\n"), "unexpected output %q", out)
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	out, _, err := runCLI(t, "", "-h")

	require.NoError(t, err)
	require.Contains(t, out, "USAGE:")
	require.Contains(t, out, "--log-level")
}

func TestRun_InvalidUsage(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		errContains string
	}{
		{
			name:        "unknown flag",
			args:        []string{"--this-is-not-a-valid-flag"},
			errContains: "flag provided but not defined: -this-is-not-a-valid-flag",
		},
		{
			name:        "invalid log format",
			args:        []string{"--log-format", "xml"},
			errContains: "invalid log-format",
		},
		{
			name:        "invalid log level",
			args:        []string{"--log-level", "loud"},
			errContains: "invalid log-level",
		},
		{
			name:        "positional argument",
			args:        []string{"10"},
			errContains: "unexpected arguments",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := runCLI(t, "10\n1\n", tc.args...)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.errContains)
			require.NotContains(t, out, "Введите", "no prompt may be printed on a usage error")
		})
	}
}
