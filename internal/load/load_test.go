package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/goatx/protoc-gen-objc/internal/test"
)

const setText = `
file {
	name: "base.proto"
	package: "demo"
	message_type { name: "Base" }
}
file {
	name: "user.proto"
	package: "demo"
	dependency: "base.proto"
	message_type {
		name: "User"
		field { name: "base" number: 1 label: LABEL_OPTIONAL type: TYPE_MESSAGE type_name: ".demo.Base" }
	}
}
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	binary, err := proto.Marshal(test.DescriptorSet(t, setText))
	require.NoError(t, err)

	tests := []struct {
		name string
		file string
		data []byte
	}{
		{name: "text", file: "set.textproto", data: []byte(setText)},
		{name: "text short extension", file: "set.txtpb", data: []byte(setText)},
		{name: "binary", file: "set.pb", data: binary},
		{name: "protoset", file: "set.protoset", data: binary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			set, err := Load(writeFile(t, tt.file, tt.data))
			require.NoError(t, err)
			assert.Equal(t, []string{"base.proto", "user.proto"}, set.Paths)

			files, err := set.Lookup("user.proto")
			require.NoError(t, err)
			require.Len(t, files, 1)
			assert.Equal(t, "demo.User", string(files[0].Messages().Get(0).FullName()))
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	t.Run("unsupported extension", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, "set.json", []byte("{}")))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedFormat))
		assert.NotEmpty(t, errors.GetAllHints(err))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.pb"))
		require.Error(t, err)
	})

	t.Run("malformed text", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, "set.textproto", []byte("file {")))
		require.Error(t, err)
	})

	t.Run("unresolved import", func(t *testing.T) {
		t.Parallel()

		_, err := Load(writeFile(t, "set.textproto", []byte(`file { name: "a.proto" dependency: "missing.proto" }`)))
		require.Error(t, err)
	})
}

func TestDescriptorSet_Lookup(t *testing.T) {
	t.Parallel()

	set, err := FromSet(test.DescriptorSet(t, setText))
	require.NoError(t, err)

	all, err := set.Lookup()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "base.proto", all[0].Path())
	assert.Equal(t, "user.proto", all[1].Path())

	_, err = set.Lookup("base.proto", "other.proto")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFile))
	assert.Contains(t, err.Error(), "other.proto")
}
