package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtmw "stock_chart/internal/platform/jwt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTokenCmd(t *testing.T) {
	t.Setenv(jwtmw.EnvKeyJWTSecret, "cli-secret")

	out, err := execute(t, "token", "--sub", "deploy", "--ttl", "10m")
	require.NoError(t, err)

	tok, err := jwt.Parse(strings.TrimSpace(out), func(*jwt.Token) (interface{}, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, "deploy", claims[jwtmw.ClaimSubject])
	assert.Equal(t, jwtmw.RoleAdmin, claims[jwtmw.ClaimRole])
}

func TestTokenCmd_NoSecret(t *testing.T) {
	t.Setenv(jwtmw.EnvKeyJWTSecret, "")

	_, err := execute(t, "token")
	assert.EqualError(t, err, "JWT_SECRET is not set")
}

func TestSeedCmd_SQLiteFile(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "seed.db"))
	t.Setenv("REDIS_HOST", "")

	out, err := execute(t, "seed")
	require.NoError(t, err)
	assert.Equal(t, "seed ok\n", out)

	out, err = execute(t, "seed", "--symbol", "DEMO")
	require.NoError(t, err)
	assert.Equal(t, "seed ok: DEMO (372 samples)\n", out)

	_, err = execute(t, "seed", "--symbol", "NOPE")
	assert.Error(t, err)
}
