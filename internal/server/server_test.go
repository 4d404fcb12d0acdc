package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gossh "golang.org/x/crypto/ssh"

	"github.com/renato0307/chinook/internal/domain"
	"github.com/renato0307/chinook/internal/theme"
	"github.com/renato0307/chinook/internal/ui"
)

type builtinSource struct {
	registry *theme.Registry
}

func (s builtinSource) Names() []string {
	return s.registry.Names()
}

func (s builtinSource) Resolve(name string) (domain.ThemeConfig, domain.ResolvedTheme) {
	config := s.registry.Lookup(name)
	return config, theme.Resolve(config)
}

func newPublicKey(t *testing.T) gossh.PublicKey {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	key, err := gossh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func writeAuthorizedKeys(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "authorized_keys")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))
	return path
}

func authorizedLine(key gossh.PublicKey, comment string) string {
	return strings.TrimSpace(string(gossh.MarshalAuthorizedKey(key))) + " " + comment
}

func TestIsKeyAuthorized(t *testing.T) {
	allowed := newPublicKey(t)
	other := newPublicKey(t)

	path := writeAuthorizedKeys(t,
		"# chinook operators",
		"",
		"not a key",
		authorizedLine(allowed, "ops@example"),
	)

	assert.True(t, isKeyAuthorized(allowed, path))
	assert.False(t, isKeyAuthorized(other, path))
}

func TestIsKeyAuthorized_MissingFile(t *testing.T) {
	key := newPublicKey(t)

	assert.False(t, isKeyAuthorized(key, filepath.Join(t.TempDir(), "missing")))
}

func TestGetKeyFingerprint(t *testing.T) {
	key := newPublicKey(t)

	fingerprint := getKeyFingerprint(key)
	assert.True(t, strings.HasPrefix(fingerprint, "MD5:"))
	assert.Len(t, strings.Split(strings.TrimPrefix(fingerprint, "MD5:"), ":"), 16)
	assert.Equal(t, fingerprint, getKeyFingerprint(key))
	assert.NotEqual(t, fingerprint, getKeyFingerprint(newPublicKey(t)))
}

func TestNewServer(t *testing.T) {
	sshDir := filepath.Join(t.TempDir(), "ssh")
	source := builtinSource{registry: theme.NewBuiltinRegistry()}

	s, err := NewServer(source, Options{
		AuthorizedKeysPath: writeAuthorizedKeys(t),
		Current:            "dark",
		Host:               "127.0.0.1",
		Port:               23234,
		SSHDir:             sshDir,
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:23234", s.Address())
	assert.DirExists(t, sshDir)
}

func TestSessionModel_LogsCompletion(t *testing.T) {
	source := builtinSource{registry: theme.NewBuiltinRegistry()}
	model := newSessionModel(ui.NewPicker(source, "music", "themes"), "alice@127.0.0.1:5000")

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	sm, ok := updated.(*sessionModel)
	require.True(t, ok)
	assert.True(t, sm.Picker.Completed)
	assert.Equal(t, "music", sm.Picker.Result.Name)
	assert.NotNil(t, cmd)
}
