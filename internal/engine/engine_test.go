package engine

import (
	"errors"
	"reflect"
	"testing"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/keygen"
	"github.com/termsui/suicfg/internal/model"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

// primaryDoc builds a two-group primary document with the shape the
// interactive editor typically sees: an active user group with two
// profiles and two identities, and a second group with one of each.
func primaryDoc() *model.Document {
	return &model.Document{
		Format: model.FormatPrimaryJSON,
		Primary: &model.PrimaryConfig{
			Groups: []*model.Group{
				{
					Name:   "user",
					Active: true,
					Profiles: []*model.Profile{
						{Name: "production", RPCURL: "https://fullnode.mainnet.sui.io:443", Active: true},
						{Name: "staging", RPCURL: "https://fullnode.testnet.sui.io:443"},
					},
					Identities: []*model.Identity{
						{Alias: "primary", PublicKey: "AJ2cBQ==", Curve: model.CurveEd25519, Address: "0xaa", Active: true},
						{Alias: "backup", PublicKey: "AZ2cBQ==", Curve: model.CurveSecp256k1, Address: "0xbb"},
					},
				},
				{
					Name: "ops",
					Profiles: []*model.Profile{
						{Name: "devnet", RPCURL: "https://fullnode.devnet.sui.io:443", Active: true},
					},
					Identities: []*model.Identity{
						{Alias: "deployer", PublicKey: "AtJhBQ==", Curve: model.CurveSecp256r1, Address: "0xcc", Active: true},
					},
				},
			},
		},
	}
}

func clientDoc() *model.Document {
	return &model.Document{
		Format: model.FormatClientYAML,
		Client: &model.ClientConfig{
			Envs: []*model.Environment{
				{Alias: "devnet", RPC: "https://fullnode.devnet.sui.io:443", Active: true},
			},
			Keys: []*model.Key{
				{Alias: "primary", PublicKey: "AJ2cBQ==", Active: true},
				{Alias: "backup", PublicKey: "AZ2cBQ=="},
			},
		},
	}
}

// checkSingleActive asserts every sibling collection of doc has exactly one
// active member unless it is empty.
func checkSingleActive(t *testing.T, doc *model.Document) {
	t.Helper()
	count := func(what string, n int, active func(int) bool) {
		t.Helper()
		if n == 0 {
			return
		}
		got := 0
		for i := 0; i < n; i++ {
			if active(i) {
				got++
			}
		}
		if got != 1 {
			t.Errorf("%s: expected exactly 1 active member, got %d", what, got)
		}
	}
	if doc.Primary != nil {
		groups := doc.Primary.Groups
		count("groups", len(groups), func(i int) bool { return groups[i].Active })
		for _, g := range groups {
			g := g
			count("profiles of "+g.Name, len(g.Profiles), func(i int) bool { return g.Profiles[i].Active })
			count("identities of "+g.Name, len(g.Identities), func(i int) bool { return g.Identities[i].Active })
		}
	}
	if doc.Client != nil {
		envs, keys := doc.Client.Envs, doc.Client.Keys
		count("envs", len(envs), func(i int) bool { return envs[i].Active })
		count("keystore", len(keys), func(i int) bool { return keys[i].Active })
	}
}

func TestSetProfileActiveClearsPrevious(t *testing.T) {
	doc := primaryDoc()

	change, err := Apply(doc, SetProfileActive{Group: "user", Name: "staging"})
	if err != nil {
		t.Fatalf("SetProfileActive failed: %v", err)
	}
	if change.Demoted != "production" {
		t.Errorf("Expected production demoted, got %q", change.Demoted)
	}

	group, _ := doc.FindGroup("user")
	production, _ := group.FindProfile("production")
	staging, _ := group.FindProfile("staging")
	if production.Active {
		t.Error("production is still active after staging was made active")
	}
	if !staging.Active {
		t.Error("staging was not made active")
	}
	checkSingleActive(t, doc)
}

func TestDeleteGroupCascades(t *testing.T) {
	doc := primaryDoc()

	change, err := Apply(doc, DeleteGroup{Name: "user"})
	if err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}
	if change.Promoted != "ops" {
		t.Errorf("Expected ops promoted to active, got %q", change.Promoted)
	}

	if _, err := doc.FindGroup("user"); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("Deleted group still reachable: %v", err)
	}
	if len(doc.Primary.Groups) != 1 {
		t.Fatalf("Expected 1 remaining group, got %d", len(doc.Primary.Groups))
	}
	if !doc.Primary.Groups[0].Active {
		t.Error("Remaining group was not promoted to active")
	}
	checkSingleActive(t, doc)
}

func TestDeleteOnlyGroupRejected(t *testing.T) {
	doc := primaryDoc()
	if _, err := Apply(doc, DeleteGroup{Name: "user"}); err != nil {
		t.Fatalf("setup delete failed: %v", err)
	}

	_, err := Apply(doc, DeleteGroup{Name: "ops"})
	if !errors.Is(err, serrors.ErrWouldEmptyRequiredCollection) {
		t.Fatalf("Expected ErrWouldEmptyRequiredCollection, got %v", err)
	}
	if len(doc.Primary.Groups) != 1 {
		t.Errorf("Group count changed by rejected delete: %d", len(doc.Primary.Groups))
	}
}

func TestRenameGroupRoundTrip(t *testing.T) {
	doc := primaryDoc()
	want := primaryDoc()

	if _, err := Apply(doc, RenameGroup{Old: "user", New: "renamed"}); err != nil {
		t.Fatalf("first rename failed: %v", err)
	}
	if _, err := Apply(doc, RenameGroup{Old: "renamed", New: "user"}); err != nil {
		t.Fatalf("second rename failed: %v", err)
	}

	if !reflect.DeepEqual(doc, want) {
		t.Error("Rename A->B->A did not restore an identical document")
	}
}

func TestRenameActiveGroupStaysActive(t *testing.T) {
	doc := primaryDoc()

	if _, err := Apply(doc, RenameGroup{Old: "user", New: "renamed"}); err != nil {
		t.Fatalf("RenameGroup failed: %v", err)
	}
	group, err := doc.FindGroup("renamed")
	if err != nil {
		t.Fatalf("renamed group not found: %v", err)
	}
	if !group.Active {
		t.Error("Renaming the active group dropped its active flag")
	}
	checkSingleActive(t, doc)
}

func TestRenameGroupDuplicateRejected(t *testing.T) {
	doc := primaryDoc()
	want := primaryDoc()

	_, err := Apply(doc, RenameGroup{Old: "user", New: "ops"})
	if !errors.Is(err, serrors.ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}
	if !reflect.DeepEqual(doc, want) {
		t.Error("Rejected rename modified the document")
	}
}

func TestAddGroupMakeActiveDemotesPrevious(t *testing.T) {
	doc := primaryDoc()

	change, err := Apply(doc, AddGroup{Name: "experimental", MakeActive: true})
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if change.Demoted != "user" {
		t.Errorf("Expected user demoted, got %q", change.Demoted)
	}
	checkSingleActive(t, doc)
}

func TestAddGroupInvalidName(t *testing.T) {
	doc := primaryDoc()
	for _, name := range []string{"ab", "has space", "digits123", ""} {
		if _, err := Apply(doc, AddGroup{Name: name}); !errors.Is(err, serrors.ErrInvalidAlias) {
			t.Errorf("AddGroup(%q): expected ErrInvalidAlias, got %v", name, err)
		}
	}
	if len(doc.Primary.Groups) != 2 {
		t.Errorf("Rejected adds changed group count: %d", len(doc.Primary.Groups))
	}
}

func TestDeleteOnlyProfileRejected(t *testing.T) {
	doc := primaryDoc()
	group, _ := doc.FindGroup("ops")
	before := len(group.Profiles)

	_, err := Apply(doc, DeleteProfile{Group: "ops", Name: "devnet"})
	if !errors.Is(err, serrors.ErrWouldEmptyRequiredCollection) {
		t.Fatalf("Expected ErrWouldEmptyRequiredCollection, got %v", err)
	}
	if len(group.Profiles) != before {
		t.Errorf("Profile count changed: %d != %d", len(group.Profiles), before)
	}
}

func TestDeleteActiveProfilePromotesFirstRemaining(t *testing.T) {
	doc := primaryDoc()

	change, err := Apply(doc, DeleteProfile{Group: "user", Name: "production"})
	if err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}
	if change.Promoted != "staging" {
		t.Errorf("Expected staging promoted, got %q", change.Promoted)
	}

	group, _ := doc.FindGroup("user")
	if got := group.ActiveProfile(); got == nil || got.Name != "staging" {
		t.Errorf("Expected staging active after delete, got %v", got)
	}
	checkSingleActive(t, doc)
}

func TestAddProfileInvalidURLRejected(t *testing.T) {
	doc := primaryDoc()
	want := primaryDoc()

	for _, raw := range []string{"", "not a url", "ftp://example.com", "https://"} {
		if _, err := Apply(doc, AddProfile{Group: "user", Name: "newnet", RPCURL: raw}); !errors.Is(err, serrors.ErrInvalidURL) {
			t.Errorf("AddProfile(url=%q): expected ErrInvalidURL, got %v", raw, err)
		}
	}
	if !reflect.DeepEqual(doc, want) {
		t.Error("Rejected adds modified the document")
	}
}

func TestEditProfileFields(t *testing.T) {
	doc := primaryDoc()

	if _, err := Apply(doc, EditProfileField{Group: "user", Name: "staging", Field: "graphql_url", Value: "https://sui-testnet.mystenlabs.com/graphql"}); err != nil {
		t.Fatalf("edit graphql_url failed: %v", err)
	}
	if _, err := Apply(doc, EditProfileField{Group: "user", Name: "staging", Field: "name", Value: "testnet"}); err != nil {
		t.Fatalf("edit name failed: %v", err)
	}

	group, _ := doc.FindGroup("user")
	profile, err := group.FindProfile("testnet")
	if err != nil {
		t.Fatalf("renamed profile not found: %v", err)
	}
	if profile.GraphQLURL != "https://sui-testnet.mystenlabs.com/graphql" {
		t.Errorf("graphql_url not updated: %q", profile.GraphQLURL)
	}

	_, err = Apply(doc, EditProfileField{Group: "user", Name: "testnet", Field: "bogus", Value: "x"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown field, got %v", err)
	}
}

func TestAddIdentityDuplicateAlias(t *testing.T) {
	doc := primaryDoc()
	group, _ := doc.FindGroup("user")
	before := len(group.Identities)

	_, err := Apply(doc, AddIdentity{Scope: "user", Alias: "backup", Curve: model.CurveEd25519})
	if !errors.Is(err, serrors.ErrDuplicateName) {
		t.Fatalf("Expected ErrDuplicateName, got %v", err)
	}
	if len(group.Identities) != before {
		t.Errorf("Identity count changed: %d != %d", len(group.Identities), before)
	}
}

func TestAddIdentityGeneratesKeyMaterial(t *testing.T) {
	doc := primaryDoc()

	if _, err := Apply(doc, AddIdentity{Scope: "ops", Alias: "release", Curve: model.CurveEd25519, MakeActive: true}); err != nil {
		t.Fatalf("AddIdentity failed: %v", err)
	}

	group, _ := doc.FindGroup("ops")
	identity, err := group.FindIdentity("release")
	if err != nil {
		t.Fatalf("new identity not found: %v", err)
	}
	if identity.PublicKey == "" || identity.Address == "" {
		t.Errorf("Identity missing key material: %+v", identity)
	}
	if identity.Curve != model.CurveEd25519 {
		t.Errorf("Expected ed25519 curve tag, got %q", identity.Curve)
	}
	if !identity.Active {
		t.Error("MakeActive did not activate the new identity")
	}
	checkSingleActive(t, doc)
}

func TestAddIdentityGenerationFailureInsertsNothing(t *testing.T) {
	doc := primaryDoc()
	group, _ := doc.FindGroup("user")
	before := len(group.Identities)

	_, err := Apply(doc, AddIdentity{
		Scope:     "user",
		Alias:     "doomed",
		Curve:     model.CurveEd25519,
		Generator: keygen.New(failingReader{}),
	})
	if !errors.Is(err, serrors.ErrEntropyUnavailable) {
		t.Fatalf("Expected ErrEntropyUnavailable, got %v", err)
	}
	if len(group.Identities) != before {
		t.Errorf("Failed generation still inserted an identity")
	}
}

func TestDeleteOnlyIdentityRejected(t *testing.T) {
	doc := primaryDoc()

	_, err := Apply(doc, DeleteIdentity{Scope: "ops", Alias: "deployer"})
	if !errors.Is(err, serrors.ErrWouldEmptyRequiredCollection) {
		t.Fatalf("Expected ErrWouldEmptyRequiredCollection, got %v", err)
	}
}

func TestMutationSequenceKeepsActiveInvariant(t *testing.T) {
	doc := primaryDoc()

	commands := []Command{
		AddGroup{Name: "experimental", MakeActive: true},
		AddProfile{Group: "experimental", Name: "localnet", RPCURL: "http://localhost:9000", MakeActive: true},
		AddIdentity{Scope: "experimental", Alias: "scratch", Curve: model.CurveSecp256k1, MakeActive: true},
		SetGroupActive{Name: "user"},
		SetIdentityActive{Scope: "user", Alias: "backup"},
		DeleteIdentity{Scope: "user", Alias: "backup"},
		SetProfileActive{Group: "user", Name: "staging"},
		DeleteGroup{Name: "experimental"},
		RenameGroup{Old: "ops", New: "operations"},
	}
	for i, cmd := range commands {
		if _, err := Apply(doc, cmd); err != nil {
			t.Fatalf("command %d (%T) failed: %v", i, cmd, err)
		}
		checkSingleActive(t, doc)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("document invalid after sequence: %v", err)
	}
}

func TestClientScopeOperations(t *testing.T) {
	doc := clientDoc()

	if _, err := Apply(doc, AddProfile{Name: "testnet", RPCURL: "https://fullnode.testnet.sui.io:443", MakeActive: true}); err != nil {
		t.Fatalf("add environment failed: %v", err)
	}
	env, err := doc.Client.FindEnv("testnet")
	if err != nil {
		t.Fatalf("new environment not found: %v", err)
	}
	if !env.Active {
		t.Error("new environment not active")
	}

	if _, err := Apply(doc, SetIdentityActive{Alias: "backup"}); err != nil {
		t.Fatalf("set key active failed: %v", err)
	}
	if _, err := Apply(doc, DeleteIdentity{Alias: "primary"}); err != nil {
		t.Fatalf("delete key failed: %v", err)
	}
	// The client keystore may be emptied, unlike a group's identities.
	if _, err := Apply(doc, DeleteIdentity{Alias: "backup"}); err != nil {
		t.Fatalf("deleting last key should be allowed for client documents: %v", err)
	}
	if len(doc.Client.Keys) != 0 {
		t.Errorf("Expected empty keystore, got %d entries", len(doc.Client.Keys))
	}
	checkSingleActive(t, doc)

	// Group-scoped commands have no meaning for a client document.
	if _, err := Apply(doc, AddGroup{Name: "user"}); !errors.Is(err, serrors.ErrNotFound) {
		t.Errorf("Expected ErrNotFound adding a group to a client document, got %v", err)
	}
}

func TestEditIdentityAliasRoundTrip(t *testing.T) {
	doc := primaryDoc()
	want := primaryDoc()

	if _, err := Apply(doc, EditIdentityAlias{Scope: "user", Old: "backup", New: "secondary"}); err != nil {
		t.Fatalf("first rename failed: %v", err)
	}
	if _, err := Apply(doc, EditIdentityAlias{Scope: "user", Old: "secondary", New: "backup"}); err != nil {
		t.Fatalf("second rename failed: %v", err)
	}
	if !reflect.DeepEqual(doc, want) {
		t.Error("Alias rename round trip did not restore the document")
	}
}
