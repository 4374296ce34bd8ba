package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/walletbox/walletbox/internal/commands"
	"github.com/walletbox/walletbox/internal/document"
	"github.com/walletbox/walletbox/internal/model"
	"github.com/walletbox/walletbox/internal/moneyfmt"
	"github.com/walletbox/walletbox/internal/wallet"
)

var overrideVars = []string{
	"APP_NAME", "STORE_BACKEND", "STORE_PATH", "STORE_KEY",
	"IDS_SCHEME", "CURRENCY", "LOG_LEVEL", "LOG_FORMAT",
}

// sandbox is a throwaway walletbox home.
type sandbox struct {
	home string
}

func newSandbox(t *testing.T) *sandbox {
	t.Helper()
	home := t.TempDir()
	t.Setenv("WALLETBOX_HOME", home)
	for _, v := range overrideVars {
		t.Setenv("WALLETBOX_"+v, "")
	}
	return &sandbox{home: home}
}

type result struct {
	out, err string
}

// run executes the command line in-process. Thousand separators are
// rendered as plain spaces in the captured output.
func (s *sandbox) run(t *testing.T, stdin string, args ...string) (result, error) {
	t.Helper()
	cmd := commands.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--env-file="}, args...))

	err := cmd.Execute()
	return result{
		out: strings.ReplaceAll(out.String(), moneyfmt.Thousand, " "),
		err: errOut.String(),
	}, err
}

func (s *sandbox) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	res, err := s.run(t, "", args...)
	require.NoError(t, err, "walletbox %s\nstderr: %s", strings.Join(args, " "), res.err)
	return res.out
}

func (s *sandbox) documentPath() string {
	return filepath.Join(s.home, "data", wallet.DefaultKey+".json")
}

func (s *sandbox) raw(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(s.documentPath())
	require.NoError(t, err)
	return data
}

func (s *sandbox) state(t *testing.T) *model.State {
	t.Helper()
	st, err := document.Decode(s.raw(t))
	require.NoError(t, err)
	return st
}

func (s *sandbox) account(t *testing.T, name string) model.Account {
	t.Helper()
	for _, a := range s.state(t).Accounts {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("no account named %q", name)
	return model.Account{}
}
