package fixture

import (
	"fmt"
	"sort"
)

const (
	PresetComprehensive = "comprehensive"
	PresetBasic         = "basic"
)

// DefaultRoot is where the integration tests expect the fixture project.
const DefaultRoot = "src/integrationTest/testData/comprehensive-test-project"

const buildGradle = `
plugins {
    kotlin("jvm") version "1.9.0"
}

repositories {
    mavenCentral()
}

dependencies {
    testImplementation(kotlin("test"))
}
`

const settingsGradle = `rootProject.name = "comprehensive-test-project"`

const readme = "# Comprehensive Test Project\n" +
	"\n" +
	"This project is used for integration testing of the Collapse Files Plugin.\n" +
	"\n" +
	"## Structure\n" +
	"\n" +
	"- `many-folders/` - 15 folders for testing folder collapsing\n" +
	"- `many-files/` - 15 files for testing file collapsing  \n" +
	"- `mixed-scenario/` - Mixed files and folders\n" +
	"- `below-threshold/` - 9 items (below default threshold)\n" +
	"- `open-file-scenarios/` - Files that will be opened during tests\n" +
	"- `nested-structure/` - Complex nesting for path preservation tests\n" +
	"\n" +
	"This structure is designed to test all scenarios outlined in the integration test plan.\n"

func basicScenarios() []Scenario {
	return []Scenario{
		{Name: "many-folders", Kind: KindFolders, Folders: 15},
		{Name: "many-files", Kind: KindFiles, Files: 15},
		{Name: "mixed-scenario", Kind: KindMixed, Folders: 10, Files: 10},
		{Name: "below-threshold", Kind: KindFolders, Folders: 9, FolderPattern: "item%02d"},
		{Name: "nested-structure", Kind: KindNested, Depth: 2, Leaf: "deep-file.txt", Content: "This is a deeply nested file"},
	}
}

func comprehensiveScenarios() []Scenario {
	s := basicScenarios()
	nested := s[len(s)-1]
	s = append(s[:len(s)-1],
		Scenario{Name: "open-file-scenarios", Kind: KindStatic, Static: []StaticFile{
			{Name: "will-open1.txt", Content: "This file will be opened in Test 5"},
			{Name: "will-open2.txt", Content: "This file will also be opened in Test 5"},
		}},
		nested,
		Scenario{Kind: KindStatic, Static: []StaticFile{
			{Name: "build.gradle.kts", Content: buildGradle},
			{Name: "settings.gradle.kts", Content: settingsGradle},
			{Name: "README.md", Content: readme},
		}},
	)
	return s
}

var presets = map[string]func() []Scenario{
	PresetComprehensive: comprehensiveScenarios,
	PresetBasic:         basicScenarios,
}

// Preset returns a fresh copy of a built-in manifest.
func Preset(name string) ([]Scenario, error) {
	fn, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	return fn(), nil
}

// PresetNames lists built-in manifests in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
