package model

// Format identifies the on-disk encoding a document was loaded from and
// will be saved back to.
type Format string

const (
	// FormatPrimaryJSON is the PysuiConfig.json encoding of the primary schema.
	FormatPrimaryJSON Format = "primary-json"

	// FormatPrimaryTOML is the PysuiConfig.toml encoding of the primary schema.
	FormatPrimaryTOML Format = "primary-toml"

	// FormatClientYAML is the sui client.yaml schema.
	FormatClientYAML Format = "client-yaml"
)

// IsPrimary reports whether the format uses the Groups/Profiles/Identities schema.
func (f Format) IsPrimary() bool {
	return f == FormatPrimaryJSON || f == FormatPrimaryTOML
}

// Curve identifies the signature scheme of an identity's key material.
type Curve string

const (
	CurveEd25519   Curve = "ed25519"
	CurveSecp256k1 Curve = "secp256k1"
	CurveSecp256r1 Curve = "secp256r1"
)

// Document is the currently open configuration. Exactly one of Primary or
// Client is non-nil, matching Format.
type Document struct {
	Format Format
	// Path is the file the document was loaded from or last saved to.
	// Empty until the first save.
	Path string

	Primary *PrimaryConfig
	Client  *ClientConfig
}

// PrimaryConfig is the primary schema: an ordered collection of groups.
type PrimaryConfig struct {
	// Version is the schema-version marker, empty when the file carries none.
	Version string
	Groups  []*Group
	// Extra holds unknown top-level keys so they survive a load/save cycle.
	Extra map[string]interface{}
}

// Group owns its profiles and identities. Deleting a group removes them with it.
type Group struct {
	Name       string
	Active     bool
	Profiles   []*Profile
	Identities []*Identity
}

// Profile is a named set of network endpoints within a group.
type Profile struct {
	Name       string
	RPCURL     string
	GraphQLURL string
	GRPCURL    string
	Active     bool
}

// Identity is named public key material within a group. The private key is
// never part of the document.
type Identity struct {
	Alias string
	// PublicKey is base64(flag byte || public key bytes), the keystring
	// format the Sui tooling uses.
	PublicKey string
	Curve     Curve
	Address   string
	Active    bool
}

// ClientConfig is the client schema: flat environments and keys, no group nesting.
type ClientConfig struct {
	Envs []*Environment
	Keys []*Key
	// Extra holds unknown top-level keys so they survive a load/save cycle.
	Extra map[string]interface{}
}

// Environment is a named endpoint in a client document.
type Environment struct {
	Alias  string
	RPC    string
	Active bool
}

// Key is named public key material in a client document's keystore.
type Key struct {
	Alias     string
	PublicKey string
	Active    bool
}
