// Package keygen produces key material for new identities.
//
// Keys follow the Sui keystore conventions so addresses generated here can
// be cross-checked against the sui client and other wallets:
//
//   - the keystring is base64(flag || public key bytes), where flag is 0x00
//     for ed25519, 0x01 for secp256k1 and 0x02 for secp256r1, and the
//     public key is 32 raw bytes (ed25519) or 33 compressed bytes (both
//     ECDSA curves);
//   - the address is "0x" + hex(blake2b-256(flag || public key bytes)).
//
// Private keys are generated from a cryptographically secure random source
// and are not retained: only the public key and derived address are
// returned, which is all the configuration formats store.
package keygen
