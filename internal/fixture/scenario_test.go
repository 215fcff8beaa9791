package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratedNames(t *testing.T) {
	s := Scenario{Name: "below-threshold", Kind: KindFolders, Folders: 9, FolderPattern: "item%02d"}
	names := s.FolderNames()
	require.Len(t, names, 9)
	assert.Equal(t, "item01", names[0])
	assert.Equal(t, "item09", names[8])

	f := Scenario{Kind: KindFiles, Files: 12}
	assert.Equal(t, "file12.txt", f.FileNames()[11])

	n := Scenario{Kind: KindNested, Depth: 3}
	assert.Equal(t, []string{"level1", "level2", "level3"}, n.LevelNames())
	assert.Equal(t, "dummy.txt", n.LeafName())
}

func TestEntries(t *testing.T) {
	cases := []struct {
		s    Scenario
		want int
	}{
		{Scenario{Kind: KindFolders, Folders: 15}, 15},
		{Scenario{Kind: KindFiles, Files: 15}, 15},
		{Scenario{Kind: KindMixed, Folders: 10, Files: 10}, 20},
		{Scenario{Kind: KindNested, Depth: 2}, 1},
		{Scenario{Kind: KindStatic, Static: []StaticFile{{Name: "a"}, {Name: "b"}}}, 2},
		{Scenario{Kind: "other", Files: 3}, 0},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, c.s.Entries(), "kind %s", c.s.Kind)
	}
}

func TestNodesNested(t *testing.T) {
	s := Scenario{Name: "nested-structure", Kind: KindNested, Depth: 2, Leaf: "deep-file.txt", Content: "deep"}
	assert.Equal(t, []Node{
		{Path: "nested-structure", IsDir: true},
		{Path: "nested-structure/level1", IsDir: true},
		{Path: "nested-structure/level1/level2", IsDir: true},
		{Path: "nested-structure/level1/level2/deep-file.txt", Content: "deep"},
	}, s.Nodes())

	s.Content = ""
	nodes := s.Nodes()
	assert.Equal(t, "Content of deep-file.txt", nodes[len(nodes)-1].Content)
}

func TestNodesMixedFoldersFirst(t *testing.T) {
	s := Scenario{Name: "m", Kind: KindMixed, Folders: 1, Files: 1}
	assert.Equal(t, []Node{
		{Path: "m", IsDir: true},
		{Path: "m/folder01", IsDir: true},
		{Path: "m/folder01/dummy.txt", Content: "Content of folder01"},
		{Path: "m/file01.txt", Content: "Content of file01.txt"},
	}, s.Nodes())
}

func TestValidate(t *testing.T) {
	good, err := Preset(PresetComprehensive)
	require.NoError(t, err)
	require.NoError(t, Validate(good))

	bad := map[string][]Scenario{
		"unknown kind":     {{Name: "a", Kind: "tree"}},
		"duplicate names":  {{Name: "a", Kind: KindFiles, Files: 1}, {Name: "a", Kind: KindFiles, Files: 2}},
		"zero folders":     {{Name: "a", Kind: KindFolders}},
		"zero files":       {{Name: "a", Kind: KindFiles}},
		"empty mixed":      {{Name: "a", Kind: KindMixed}},
		"zero depth":       {{Name: "a", Kind: KindNested}},
		"empty static":     {{Name: "a", Kind: KindStatic}},
		"negative count":   {{Name: "a", Kind: KindMixed, Folders: -1, Files: 2}},
		"traversal":        {{Name: "..", Kind: KindFiles, Files: 1}},
		"nested name":      {{Name: "a/b", Kind: KindFiles, Files: 1}},
		"unnamed files":    {{Kind: KindFiles, Files: 1}},
		"pattern no verb":  {{Name: "a", Kind: KindFolders, Folders: 2, FolderPattern: "folder"}},
		"pattern collides": {{Name: "a", Kind: KindMixed, Folders: 2, Files: 2, FolderPattern: "n%02d", FilePattern: "n%02d"}},
		"bad leaf":         {{Name: "a", Kind: KindFolders, Folders: 1, Leaf: "../up.txt"}},
		"root collision": {
			{Name: "README.md", Kind: KindFiles, Files: 1},
			{Kind: KindStatic, Static: []StaticFile{{Name: "README.md", Content: "x"}}},
		},
	}
	for name, scenarios := range bad {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, Validate(scenarios), ErrInvalidScenario)
		})
	}
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{PresetBasic, PresetComprehensive}, PresetNames())

	_, err := Preset("nope")
	require.Error(t, err)

	a, err := Preset(PresetComprehensive)
	require.NoError(t, err)
	a[0].Folders = 1
	b, _ := Preset(PresetComprehensive)
	assert.Equal(t, 15, b[0].Folders, "presets must not share state")

	basic, _ := Preset(PresetBasic)
	names := make([]string, 0, len(basic))
	for _, s := range basic {
		names = append(names, s.Name)
	}
	assert.NotContains(t, names, "open-file-scenarios")
	assert.Equal(t, Totals{Dirs: 41, Files: 60, Bytes: Expect(basic).Bytes}, Expect(basic))
}
