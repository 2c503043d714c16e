package fmtx_test

import (
	"os"
	"testing"

	"github.com/bjaus/fmtx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type goldenFile struct {
	Cases []goldenCase `yaml:"cases"`
}

type goldenCase struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Args   []any  `yaml:"args"`
	Want   string `yaml:"want"`
}

func TestGoldenCases(t *testing.T) {
	t.Parallel()

	raw, err := os.ReadFile("testdata/cases.yaml")
	require.NoError(t, err)

	var file goldenFile
	require.NoError(t, yaml.Unmarshal(raw, &file))
	require.NotEmpty(t, file.Cases)

	for _, tc := range file.Cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.Want, fmtx.Sprintf(tc.Format, tc.Args...))
		})
	}
}
