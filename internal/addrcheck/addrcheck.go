// Package addrcheck validates destination addresses against a network family.
// It is a pure function library: no I/O, no state.
//
// EVM addresses must be well-formed hex and, when mixed case is present,
// satisfy the EIP-55 checksum. Solana addresses must decode as 32-byte Base58
// public keys and are case-sensitive. SUI addresses are exactly "0x" plus 64
// hex characters.
package addrcheck

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/crosslane/bridgewatch/internal/networks"
)

var (
	// ErrAddressRequired is returned for empty or whitespace-only input.
	ErrAddressRequired = errors.New("address is required")

	// ErrInvalidAddress is the root of every format violation; the wrapped
	// message names the specific rule that failed.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnsupportedFamily is returned for families with no validation rules.
	ErrUnsupportedFamily = errors.New("unsupported network family")
)

var (
	evmAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	suiAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// solanaPublicKeyLength is the decoded byte length of an Ed25519 public key.
const solanaPublicKeyLength = 32

// Validate checks the address against the rules of the given network family.
// It returns nil when the address is acceptable, ErrAddressRequired for blank
// input, and an error wrapping ErrInvalidAddress naming the violated rule
// otherwise.
func Validate(address string, family networks.Family) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressRequired
	}

	switch family {
	case networks.FamilyEVM:
		return validateEVM(address)
	case networks.FamilySolana:
		return validateSolana(address)
	case networks.FamilySUI:
		return validateSUI(address)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFamily, family)
	}
}

// validateEVM accepts a syntactically correct hex address when it is either
// fully lowercase (case carries no information, so no checksum is enforced)
// or a valid EIP-55 mixed-case encoding. An all-uppercase string is not a
// legitimate EIP-55 encoding and fails the checksum comparison.
func validateEVM(address string) error {
	if !evmAddressRe.MatchString(address) {
		return fmt.Errorf("%w: must be a valid EVM address (0x followed by 40 hex characters)", ErrInvalidAddress)
	}

	hexPart := address[2:]
	if hexPart == strings.ToLower(hexPart) {
		return nil
	}

	if checksumAddress(hexPart) != hexPart {
		return fmt.Errorf("%w: EVM address failed EIP-55 checksum verification", ErrInvalidAddress)
	}

	return nil
}

// checksumAddress returns the EIP-55 encoding of the 40-character hex part:
// each hex letter is uppercased when the corresponding nibble of
// keccak256(lowercase hex) is >= 8.
func checksumAddress(hexPart string) string {
	lower := strings.ToLower(hexPart)

	hash := sha3.NewLegacyKeccak256()
	hash.Write([]byte(lower))
	digest := hash.Sum(nil)

	encoded := []byte(lower)
	for i, c := range encoded {
		if c < 'a' || c > 'f' {
			continue
		}

		nibble := digest[i/2] >> 4
		if i%2 == 1 {
			nibble = digest[i/2] & 0x0f
		}

		if nibble >= 8 {
			encoded[i] = c - ('a' - 'A')
		}
	}

	return string(encoded)
}

// validateSolana accepts well-formed Base58 public keys of the correct byte
// length. The Base58 alphabet excludes '0', 'O', 'I' and 'l', so addresses
// containing them are rejected outright, and comparison stays case-sensitive:
// lowercasing a valid address produces an invalid one.
func validateSolana(address string) error {
	decoded, err := base58.Decode(address)
	if err != nil {
		return fmt.Errorf("%w: must be a valid Base58-encoded Solana address", ErrInvalidAddress)
	}

	if len(decoded) != solanaPublicKeyLength {
		return fmt.Errorf("%w: Solana address must decode to %d bytes", ErrInvalidAddress, solanaPublicKeyLength)
	}

	return nil
}

// validateSUI accepts exactly "0x" followed by 64 hex characters.
func validateSUI(address string) error {
	if !suiAddressRe.MatchString(address) {
		return fmt.Errorf("%w: SUI address must be 0x followed by 64 hex characters", ErrInvalidAddress)
	}

	return nil
}

// FormatDescription returns a short human hint describing the expected
// address format for a family. It is display copy only.
func FormatDescription(family networks.Family) string {
	switch family {
	case networks.FamilyEVM:
		return "EVM address (0x...)"
	case networks.FamilySolana:
		return "Solana address (base58)"
	case networks.FamilySUI:
		return "SUI address (0x...)"
	default:
		return "Address"
	}
}
