package appcontext_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/exactodds/internal/appcontext"
	"github.com/lox/exactodds/internal/card"
	"github.com/lox/exactodds/internal/combin"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exactodds.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestNewThreadsConfigBlockSizeIntoDevices(t *testing.T) {
	path := writeConfig(t, `
compute {
  block_size  = 100
  cpu_workers = 1
}
`)

	ac, err := appcontext.New(appcontext.Options{ConfigPath: path, UseCPU: true})
	require.NoError(t, err)
	require.Len(t, ac.Devices, 1)

	var free [combin.Universe]card.Cards
	for i := range free {
		free[i] = card.Cards(1) << uint(i)
	}
	subsets := combin.BuildFiveSubsets()[:250]

	blocks := ac.Devices[0].CompareBlocks(0, 0, free, subsets)
	assert.Len(t, blocks, 3, "250 subsets at block_size=100 should produce 3 blocks")
}

func TestNewFoldsConfigUseGPUIntoKindSelection(t *testing.T) {
	path := writeConfig(t, `
compute {
  use_gpu = true
}
`)

	_, err := appcontext.New(appcontext.Options{ConfigPath: path})
	require.Error(t, err, "use_gpu in the tuning file should select GPU-only discovery, which yields no devices")
}
