package sqlite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/tessera-db/tessera/schema/coltype"
)

// renderCase is one fixture row from testdata/render.yaml.
type renderCase struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Size     int      `yaml:"size"`
	Decimals *int     `yaml:"decimals"`
	Unsigned bool     `yaml:"unsigned"`
	Zerofill bool     `yaml:"zerofill"`
	Binary   bool     `yaml:"binary"`
	Values   []string `yaml:"values"`
	SQL      string   `yaml:"sql"`
	Warns    bool     `yaml:"warns"`
}

func typeFromKey(t *testing.T, key string) coltype.Type {
	t.Helper()
	for _, typ := range coltype.Types() {
		if typ.String() == key {
			return typ
		}
	}
	t.Fatalf("unknown type key %q", key)
	return coltype.TypeInvalid
}

func TestRenderFixtures(t *testing.T) {
	buf, err := os.ReadFile(filepath.Join("testdata", "render.yaml"))
	require.NoError(t, err)

	var cases []renderCase
	require.NoError(t, yaml.Unmarshal(buf, &cases))
	require.NotEmpty(t, cases)

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			r, rec := newRegistry()
			desc := &coltype.Descriptor{
				Type:     typeFromKey(t, tt.Type),
				Size:     tt.Size,
				Decimals: tt.Decimals,
				Unsigned: tt.Unsigned,
				Zerofill: tt.Zerofill,
				Binary:   tt.Binary,
				Values:   tt.Values,
			}
			col, err := r.Column(desc)
			require.NoError(t, err)
			assert.Equal(t, tt.SQL, col.SQL())
			if tt.Warns {
				assert.Len(t, rec.msgs, 1)
			} else {
				assert.Empty(t, rec.msgs)
			}
		})
	}
}
