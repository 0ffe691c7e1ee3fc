package keygen

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/blake2b"

	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// Signature scheme flag bytes, as assigned by Sui.
const (
	flagEd25519   byte = 0x00
	flagSecp256k1 byte = 0x01
	flagSecp256r1 byte = 0x02
)

// KeyMaterial is everything the configuration formats store about a newly
// generated keypair.
type KeyMaterial struct {
	Curve model.Curve
	// PublicKey is the flag byte followed by the public key bytes.
	PublicKey []byte
	// Address is the derived Sui address, 0x-prefixed lowercase hex.
	Address string
}

// Keystring returns the base64 keystring form of the public key, the
// representation stored in both on-disk formats.
func (k *KeyMaterial) Keystring() string {
	return base64.StdEncoding.EncodeToString(k.PublicKey)
}

// Generator creates keypairs from an entropy source.
type Generator struct {
	rand io.Reader
}

// New returns a Generator reading entropy from r. Passing nil selects
// crypto/rand, which is what every non-test caller should do.
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate creates a keypair for the given curve and derives its address.
// The private key is discarded before returning.
func (g *Generator) Generate(curve model.Curve) (*KeyMaterial, error) {
	var flag byte
	var pub []byte

	switch curve {
	case model.CurveEd25519:
		p, _, err := ed25519.GenerateKey(g.rand)
		if err != nil {
			return nil, fmt.Errorf("generating ed25519 key: %v: %w", err, serrors.ErrEntropyUnavailable)
		}
		flag, pub = flagEd25519, p
	case model.CurveSecp256k1:
		priv, err := secp256k1.GeneratePrivateKeyFromRand(g.rand)
		if err != nil {
			return nil, fmt.Errorf("generating secp256k1 key: %v: %w", err, serrors.ErrEntropyUnavailable)
		}
		flag, pub = flagSecp256k1, priv.PubKey().SerializeCompressed()
	case model.CurveSecp256r1:
		priv, err := ecdsa.GenerateKey(elliptic.P256(), g.rand)
		if err != nil {
			return nil, fmt.Errorf("generating secp256r1 key: %v: %w", err, serrors.ErrEntropyUnavailable)
		}
		flag, pub = flagSecp256r1, elliptic.MarshalCompressed(elliptic.P256(), priv.X, priv.Y)
	default:
		return nil, fmt.Errorf("curve %q: %w", curve, serrors.ErrUnsupportedCurve)
	}

	flagged := make([]byte, 0, 1+len(pub))
	flagged = append(flagged, flag)
	flagged = append(flagged, pub...)

	return &KeyMaterial{
		Curve:     curve,
		PublicKey: flagged,
		Address:   deriveAddress(flagged),
	}, nil
}

// deriveAddress hashes the flagged public key with blake2b-256 and encodes
// the full digest as 0x-prefixed hex. This must match the sui client
// bit-for-bit; operators cross-check addresses against other tools.
func deriveAddress(flagged []byte) string {
	digest := blake2b.Sum256(flagged)
	return "0x" + hex.EncodeToString(digest[:])
}
