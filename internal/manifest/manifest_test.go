package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     Record
		wantErr  error
		wantText string
	}{
		{
			name: "simple record",
			text: "DY_2018,/Dataset/Path/MINIAOD",
			want: Record{Line: 1, Name: "DY_2018", Path: "/Dataset/Path/MINIAOD"},
		},
		{
			name: "whitespace around fields",
			text: "  DY_2018 ,   /Dataset/Path/MINIAOD  \r",
			want: Record{Line: 1, Name: "DY_2018", Path: "/Dataset/Path/MINIAOD"},
		},
		{
			name: "split on first comma only",
			text: "TT_2017,/TT/a,b/MINIAODSIM",
			want: Record{Line: 1, Name: "TT_2017", Path: "/TT/a,b/MINIAODSIM"},
		},
		{
			name: "empty path accepted",
			text: "Orphan,",
			want: Record{Line: 1, Name: "Orphan", Path: ""},
		},
		{
			name: "empty name accepted",
			text: ",/Only/Path",
			want: Record{Line: 1, Name: "", Path: "/Only/Path"},
		},
		{
			name:    "blank line",
			text:    "",
			wantErr: ErrEmptyLine,
		},
		{
			name:    "whitespace only",
			text:    "   \t ",
			wantErr: ErrEmptyLine,
		},
		{
			name:     "no comma",
			text:     " noCommaHere ",
			wantErr:  ErrInvalidFormat,
			wantText: "noCommaHere",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ParseLine(Line{Number: 1, Text: tt.text})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				var lineErr *MalformedLineError
				require.True(t, errors.As(err, &lineErr))
				assert.Equal(t, 1, lineErr.Line)
				assert.Equal(t, tt.wantText, lineErr.Text)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec)
		})
	}
}

func TestReadLines(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []Line
	}{
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
		{
			name:    "trailing newline",
			content: "a,b\nc,d\n",
			want:    []Line{{1, "a,b"}, {2, "c,d"}},
		},
		{
			name:    "no trailing newline",
			content: "a,b\nc,d",
			want:    []Line{{1, "a,b"}, {2, "c,d"}},
		},
		{
			name:    "blank line kept",
			content: "a,b\n\nc,d\n",
			want:    []Line{{1, "a,b"}, {2, ""}, {3, "c,d"}},
		},
		{
			name:    "only newline",
			content: "\n",
			want:    []Line{{1, ""}},
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "manifest"+string(rune('a'+i))+".txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			lines, err := ReadLines(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestOpen_NotFound(t *testing.T) {
	for _, name := range []string{"missing.txt", "missing.yaml"} {
		t.Run(name, func(t *testing.T) {
			entries, err := Open(filepath.Join(t.TempDir(), name))
			assert.ErrorIs(t, err, ErrManifestNotFound)
			assert.Nil(t, entries)
		})
	}
}

func TestOpen_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.txt")
	content := "DY_2018, /Dataset/Path/MINIAOD\n   \nnoCommaHere\nSingleMuon_Run2017B,/SingleMuon/Run2017B/MINIAOD\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := Open(path)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.NoError(t, entries[0].Err)
	assert.Equal(t, Record{Line: 1, Name: "DY_2018", Path: "/Dataset/Path/MINIAOD"}, entries[0].Record)

	assert.ErrorIs(t, entries[1].Err, ErrEmptyLine)
	assert.Equal(t, 2, entries[1].Line)

	assert.ErrorIs(t, entries[2].Err, ErrInvalidFormat)
	assert.Equal(t, 3, entries[2].Line)

	assert.NoError(t, entries[3].Err)
	assert.Equal(t, "SingleMuon_Run2017B", entries[3].Record.Name)
}

func TestOpen_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.yaml")
	content := `
- name: DY_2018
  path: /Dataset/Path/MINIAOD
- name: ""
  path: ""
- name: " TT,2017 "
  path: /TT/a,b/MINIAODSIM
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	entries, err := Open(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Record{Line: 1, Name: "DY_2018", Path: "/Dataset/Path/MINIAOD"}, entries[0].Record)
	assert.ErrorIs(t, entries[1].Err, ErrEmptyLine)
	assert.Equal(t, Record{Line: 3, Name: "TT,2017", Path: "/TT/a,b/MINIAODSIM"}, entries[2].Record)
}

func TestOpen_YAMLInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasets.yml")
	require.NoError(t, os.WriteFile(path, []byte("name: not-a-list\n"), 0644))

	_, err := Open(path)
	assert.ErrorContains(t, err, "failed to parse YAML manifest")
	assert.NotErrorIs(t, err, ErrManifestNotFound)
}

func TestMalformedLineError(t *testing.T) {
	err := &MalformedLineError{Line: 7, Text: "oops", Reason: ErrInvalidFormat}
	assert.Equal(t, `line 7: invalid format, expected name,path: "oops"`, err.Error())

	empty := &MalformedLineError{Line: 2, Reason: ErrEmptyLine}
	assert.Equal(t, "line 2: empty or malformed line", empty.Error())
}
