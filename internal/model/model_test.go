package model

import (
	"errors"
	"strings"
	"testing"

	serrors "github.com/termsui/suicfg/internal/errors"
)

func twoGroupDoc() *Document {
	return &Document{
		Format: FormatPrimaryJSON,
		Primary: &PrimaryConfig{
			Groups: []*Group{
				{
					Name:   "user",
					Active: true,
					Profiles: []*Profile{
						{Name: "production", RPCURL: "https://a.example.com", Active: true},
						{Name: "staging", RPCURL: "https://b.example.com"},
					},
					Identities: []*Identity{
						{Alias: "primary", PublicKey: "AJ2cBQ==", Curve: CurveEd25519, Address: "0xaa", Active: true},
					},
				},
				{
					Name:       "ops",
					Profiles:   []*Profile{{Name: "devnet", RPCURL: "https://c.example.com", Active: true}},
					Identities: []*Identity{{Alias: "deployer", PublicKey: "AZ2cBQ==", Curve: CurveSecp256k1, Address: "0xbb", Active: true}},
				},
			},
		},
	}
}

func TestQueriesFindEntries(t *testing.T) {
	doc := twoGroupDoc()

	group, err := doc.FindGroup("ops")
	if err != nil {
		t.Fatalf("FindGroup failed: %v", err)
	}
	if _, err := group.FindProfile("devnet"); err != nil {
		t.Errorf("FindProfile failed: %v", err)
	}
	if _, err := group.FindIdentity("deployer"); err != nil {
		t.Errorf("FindIdentity failed: %v", err)
	}
}

func TestQueriesReportNotFound(t *testing.T) {
	doc := twoGroupDoc()

	if _, err := doc.FindGroup("ghost"); !errors.Is(err, serrors.ErrNotFound) {
		t.Errorf("FindGroup: expected ErrNotFound, got %v", err)
	}
	group, _ := doc.FindGroup("user")
	if _, err := group.FindProfile("ghost"); !errors.Is(err, serrors.ErrNotFound) {
		t.Errorf("FindProfile: expected ErrNotFound, got %v", err)
	}
	if _, err := group.FindIdentity("ghost"); !errors.Is(err, serrors.ErrNotFound) {
		t.Errorf("FindIdentity: expected ErrNotFound, got %v", err)
	}

	client := &Document{Format: FormatClientYAML, Client: &ClientConfig{}}
	if _, err := client.FindGroup("user"); !errors.Is(err, serrors.ErrNotFound) {
		t.Errorf("FindGroup on client document: expected ErrNotFound, got %v", err)
	}
}

func TestActiveAccessors(t *testing.T) {
	doc := twoGroupDoc()

	if got := doc.ActiveGroup(); got == nil || got.Name != "user" {
		t.Errorf("ActiveGroup = %v, want user", got)
	}
	group, _ := doc.FindGroup("user")
	if got := group.ActiveProfile(); got == nil || got.Name != "production" {
		t.Errorf("ActiveProfile = %v, want production", got)
	}
	if got := group.ActiveIdentity(); got == nil || got.Alias != "primary" {
		t.Errorf("ActiveIdentity = %v, want primary", got)
	}
}

func TestGroupNamesPreserveOrder(t *testing.T) {
	doc := twoGroupDoc()
	names := doc.GroupNames()
	if len(names) != 2 || names[0] != "user" || names[1] != "ops" {
		t.Errorf("GroupNames = %v, want [user ops]", names)
	}
}

func TestValidateDetectsDuplicates(t *testing.T) {
	doc := twoGroupDoc()
	doc.Primary.Groups[1].Name = "user"

	err := doc.Validate()
	if !errors.Is(err, serrors.ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}
}

func TestValidateDetectsMultipleActive(t *testing.T) {
	doc := twoGroupDoc()
	doc.Primary.Groups[1].Active = true

	if err := doc.Validate(); err == nil {
		t.Fatal("Expected a validation error for two active groups")
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	doc := twoGroupDoc()
	doc.Primary.Groups[1].Name = "user"
	group := doc.Primary.Groups[0]
	group.Profiles[1].Name = "production"

	err := doc.Validate()
	if err == nil {
		t.Fatal("Expected validation errors")
	}
	// Both the group and the profile duplicate must be reported at once.
	msg := err.Error()
	if !strings.Contains(msg, `group "user"`) || !strings.Contains(msg, `profile "production"`) {
		t.Errorf("Expected both violations reported, got: %v", err)
	}
}

func TestNormalizePromotesFirstMember(t *testing.T) {
	doc := twoGroupDoc()
	doc.Primary.Groups[0].Active = false
	doc.Primary.Groups[0].Profiles[0].Active = false

	doc.Normalize()

	if !doc.Primary.Groups[0].Active {
		t.Error("First group should be promoted when none is active")
	}
	if !doc.Primary.Groups[0].Profiles[0].Active {
		t.Error("First profile should be promoted when none is active")
	}
}

func TestNormalizeKeepsFirstOfManyActive(t *testing.T) {
	doc := twoGroupDoc()
	doc.Primary.Groups[1].Active = true

	doc.Normalize()

	if !doc.Primary.Groups[0].Active || doc.Primary.Groups[1].Active {
		t.Error("Normalize should keep the first marked member and clear the rest")
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("Document still invalid after Normalize: %v", err)
	}
}

func TestNormalizeClientCollections(t *testing.T) {
	doc := &Document{
		Format: FormatClientYAML,
		Client: &ClientConfig{
			Envs: []*Environment{
				{Alias: "devnet", RPC: "https://a.example.com"},
				{Alias: "testnet", RPC: "https://b.example.com"},
			},
			Keys: []*Key{
				{Alias: "primary", PublicKey: "AJ2cBQ==", Active: true},
				{Alias: "backup", PublicKey: "AZ2cBQ==", Active: true},
			},
		},
	}

	doc.Normalize()

	if !doc.Client.Envs[0].Active || doc.Client.Envs[1].Active {
		t.Error("First env should be promoted")
	}
	if !doc.Client.Keys[0].Active || doc.Client.Keys[1].Active {
		t.Error("First marked key should win, second cleared")
	}
}
