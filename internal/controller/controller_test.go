package controller

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/termsui/suicfg/internal/engine"
	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

func TestNewDocumentSeedsDefaults(t *testing.T) {
	for _, f := range []model.Format{model.FormatPrimaryJSON, model.FormatPrimaryTOML} {
		doc, err := New().NewDocument(f)
		if err != nil {
			t.Fatalf("NewDocument(%v) failed: %v", f, err)
		}
		if doc.Path != "" {
			t.Errorf("%v: fresh document should have no path, got %q", f, doc.Path)
		}

		group, err := doc.FindGroup(DefaultGroup)
		if err != nil {
			t.Fatalf("%v: default group missing: %v", f, err)
		}
		if !group.Active {
			t.Errorf("%v: default group not active", f)
		}
		profile, err := group.FindProfile(DefaultProfile)
		if err != nil {
			t.Fatalf("%v: default profile missing: %v", f, err)
		}
		if !profile.Active || profile.RPCURL != DefaultRPCURL {
			t.Errorf("%v: default profile wrong: %+v", f, profile)
		}
		identity, err := group.FindIdentity(DefaultAlias)
		if err != nil {
			t.Fatalf("%v: default identity missing: %v", f, err)
		}
		if !identity.Active || identity.PublicKey == "" || identity.Address == "" {
			t.Errorf("%v: default identity missing key material: %+v", f, identity)
		}
		if identity.Curve != model.CurveEd25519 {
			t.Errorf("%v: expected ed25519 default identity, got %q", f, identity.Curve)
		}
	}
}

func TestNewClientDocumentSeedsDefaults(t *testing.T) {
	doc, err := New().NewDocument(model.FormatClientYAML)
	if err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	if len(doc.Client.Envs) != 1 || len(doc.Client.Keys) != 1 {
		t.Fatalf("Expected 1 env and 1 key, got %d and %d", len(doc.Client.Envs), len(doc.Client.Keys))
	}
	if !doc.Client.Envs[0].Active || !doc.Client.Keys[0].Active {
		t.Error("Seeded members should be active")
	}
}

func TestSaveWithoutPathRejected(t *testing.T) {
	c := New()
	if _, err := c.NewDocument(model.FormatPrimaryJSON); err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	if err := c.Save(); !errors.Is(err, serrors.ErrNoPathSet) {
		t.Fatalf("Expected ErrNoPathSet, got %v", err)
	}
}

func TestSaveAsThenLoadRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		format model.Format
		file   string
	}{
		{model.FormatPrimaryJSON, "PysuiConfig.json"},
		{model.FormatPrimaryTOML, "PysuiConfig.toml"},
		{model.FormatClientYAML, "client.yaml"},
	} {
		c := New()
		if _, err := c.NewDocument(tc.format); err != nil {
			t.Fatalf("%v: NewDocument failed: %v", tc.format, err)
		}

		path := filepath.Join(t.TempDir(), tc.file)
		if err := c.SaveAs(path); err != nil {
			t.Fatalf("%v: SaveAs failed: %v", tc.format, err)
		}
		if c.Document().Path != path {
			t.Errorf("%v: tracked path not updated: %q", tc.format, c.Document().Path)
		}

		loaded, err := New().Load(path)
		if err != nil {
			t.Fatalf("%v: Load failed: %v", tc.format, err)
		}
		if loaded.Format != tc.format {
			t.Errorf("%v: loaded format %v", tc.format, loaded.Format)
		}

		saved := c.Document()
		saved.Path = loaded.Path
		if !reflect.DeepEqual(saved, loaded) {
			t.Errorf("%v: loaded document differs from saved one\nsaved:  %+v\nloaded: %+v", tc.format, saved, loaded)
		}
	}
}

func TestSaveAsLeavesOriginalUntouched(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	c := New()
	if _, err := c.NewDocument(model.FormatPrimaryJSON); err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	if err := c.SaveAs(first); err != nil {
		t.Fatalf("first SaveAs failed: %v", err)
	}
	before, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("reading first file: %v", err)
	}

	if _, err := engine.Apply(c.Document(), engine.AddGroup{Name: "experimental"}); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := c.SaveAs(second); err != nil {
		t.Fatalf("second SaveAs failed: %v", err)
	}

	after, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("re-reading first file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("SaveAs modified the original file")
	}
	if c.Document().Path != second {
		t.Errorf("Tracked path should be the new location, got %q", c.Document().Path)
	}
}

func TestSaveAsFailureKeepsTrackedPath(t *testing.T) {
	c := New()
	if _, err := c.NewDocument(model.FormatPrimaryJSON); err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "keep.json")
	if err := c.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	if err := c.SaveAs(filepath.Join(t.TempDir(), "no-such-dir", "sub", "x.json")); err == nil {
		t.Fatal("Expected SaveAs into a missing directory to fail")
	}
	if c.Document().Path != path {
		t.Errorf("Failed SaveAs moved the tracked path to %q", c.Document().Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := New().Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("Expected an error loading a missing file")
	}
}

func TestLoadRereadsFromDisk(t *testing.T) {
	c := New()
	if _, err := c.NewDocument(model.FormatPrimaryJSON); err != nil {
		t.Fatalf("NewDocument failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "shared.json")
	if err := c.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	// Another tool edits the file behind our back.
	other := New()
	if _, err := other.Load(path); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := engine.Apply(other.Document(), engine.AddGroup{Name: "external"}); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if err := other.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := c.Load(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if _, err := reloaded.FindGroup("external"); err != nil {
		t.Errorf("Load did not pick up on-disk changes: %v", err)
	}
}
