// Package ztest runs formulaic golden tests ("ztests") that check the
// exact rendering of a descriptor/value pair.  A ztest is defined in a
// YAML file naming a value registered by the calling test and the text
// it must render to:
//
//	value: option-some
//
//	output: |
//	  Some (5)
//
// Ztest YAML files for a package reside in a subdirectory named
// testdata/ztest, one test per file, and each runs as a subtest named
// for the file that defines it, so name YAML files descriptively.
// The calling test supplies a Lookup resolving value names:
//
//	func TestZTest(t *testing.T) { ztest.Run(t, "testdata/ztest", lookup) }
//
// A test can be skipped by setting the skip field to a non-empty string;
// a message containing the string is written to the test log.
package ztest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brimdata/shape"
	"github.com/brimdata/shape/show"
	"github.com/goccy/go-yaml"
	yamlparser "github.com/goccy/go-yaml/parser"
	"github.com/pmezard/go-difflib/difflib"
)

// A Lookup resolves a ztest's value name to the descriptor/value pair it
// denotes.  The bool result reports whether the name is known.
type Lookup func(name string) (shape.Type, any, bool)

// ZTest defines a ztest.
type ZTest struct {
	Skip   string `yaml:"skip,omitempty"`
	Value  string `yaml:"value"`
	Output string `yaml:"output"`
}

func (z *ZTest) check() error {
	if z.Value == "" {
		return errors.New("a value field must be present")
	}
	return nil
}

// FromYAMLFile loads a ZTest from the YAML file named filename.
func FromYAMLFile(filename string) (*ZTest, error) {
	f, err := yamlparser.ParseFile(filename, 0)
	if err != nil {
		return nil, err
	}
	if len(f.Docs) != 1 {
		return nil, errors.New("file must contain one YAML document")
	}
	var z ZTest
	if err := yaml.NodeToValue(f.Docs[0].Body, &z, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	return &z, nil
}

type Bundle struct {
	TestName string
	FileName string
	Test     *ZTest
	Error    error
}

func Load(dirname string) ([]Bundle, error) {
	var bundles []Bundle
	fileinfos, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	for _, fi := range fileinfos {
		filename := fi.Name()
		const dotyaml = ".yaml"
		if !strings.HasSuffix(filename, dotyaml) {
			continue
		}
		testname := strings.TrimSuffix(filename, dotyaml)
		filename = filepath.Join(dirname, filename)
		zt, err := FromYAMLFile(filename)
		bundles = append(bundles, Bundle{testname, filename, zt, err})
	}
	return bundles, nil
}

// Run runs the ztests in the directory named dirname.  For each file
// f.yaml in the directory, Run calls FromYAMLFile to load a ztest and
// then runs it in a subtest named f, resolving its value through lookup.
func Run(t *testing.T, dirname string, lookup Lookup) {
	bundles, err := Load(dirname)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range bundles {
		b := b
		t.Run(b.TestName, func(t *testing.T) {
			t.Parallel()
			if b.Error != nil {
				t.Fatalf("%s: %s", b.FileName, b.Error)
			}
			b.Test.Run(t, lookup, b.FileName)
		})
	}
}

func (z *ZTest) Run(t *testing.T, lookup Lookup, filename string) {
	if z.Skip != "" {
		t.Skip("skipping test:", z.Skip)
	}
	if err := z.run(lookup); err != nil {
		t.Fatalf("%s: %s", filename, err)
	}
}

func (z *ZTest) run(lookup Lookup) error {
	if err := z.check(); err != nil {
		return fmt.Errorf("bad yaml format: %w", err)
	}
	typ, val, ok := lookup(z.Value)
	if !ok {
		return fmt.Errorf("unknown value %q", z.Value)
	}
	actual, err := show.Format(typ, val)
	if err != nil {
		return err
	}
	// The yaml block scalar carries a trailing newline that the
	// rendering does not.
	if expected := strings.TrimSuffix(z.Output, "\n"); expected != actual {
		return diffErr("output", expected, actual)
	}
	return nil
}

func diffErr(name, expected, actual string) error {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		FromFile: "expected",
		B:        difflib.SplitLines(actual),
		ToFile:   "actual",
		Context:  5,
	})
	if err != nil {
		panic("ztest: " + err.Error())
	}
	return fmt.Errorf("expected and actual %s differ:\n%s", name, diff)
}
