package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/tapbook/internal/catalog"
	"github.com/MrSnakeDoc/tapbook/internal/domain"
	"github.com/MrSnakeDoc/tapbook/internal/intake"
	"github.com/MrSnakeDoc/tapbook/internal/logger"
	"github.com/MrSnakeDoc/tapbook/internal/store/memory"
	"github.com/MrSnakeDoc/tapbook/internal/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	original, originalCommit := version.Version, version.Commit
	t.Cleanup(func() { version.Version, version.Commit = original, originalCommit })

	version.Version = "1.2.3"
	version.Commit = "abcdef1"

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "TapBook 1.2.3")
	require.Contains(t, out, "abcdef1")
}

func TestMigrateCommandPrintsSchema(t *testing.T) {
	out, err := execute(t, "migrate")
	require.NoError(t, err)
	require.Contains(t, out, "CREATE TABLE IF NOT EXISTS businesses")
	require.Contains(t, out, "manual execution")
}

func TestSeedRequiresFile(t *testing.T) {
	_, err := execute(t, "seed")
	require.Error(t, err)
	require.Contains(t, err.Error(), "file")
}

func TestRunSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
businesses:
  - name: Tony's Barbershop
    whatsapp: "5551234567"
    type: barber
  - name: Nobody
    whatsapp: "12"
    services:
      - name: Thing
        price: $1
`), 0o600))

	reg := catalog.NewRegistry()
	reg.Replace([]catalog.Starter{{
		Type:     "barber",
		Preset:   "midnight",
		Services: []domain.Service{{Name: "Classic Haircut", Price: "$35"}},
	}})
	st := memory.New()

	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)

	err := runSeed(context.Background(), cmd, path, intake.NewService(st, logger.NewNop()), reg, "https://tap.example.com")
	require.Error(t, err)
	require.Contains(t, err.Error(), "1 of 2")

	out := buf.String()
	require.Contains(t, out, "✅ Tony's Barbershop")
	require.Contains(t, out, "https://tap.example.com/tony-s-barbershop")
	require.Contains(t, out, "❌ Nobody")

	_, err = st.Get(context.Background(), "tony-s-barbershop")
	require.NoError(t, err)
}
