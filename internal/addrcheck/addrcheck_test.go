package addrcheck

import (
	"strings"
	"testing"

	"github.com/crosslane/bridgewatch/internal/networks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checksummedAddress is a known-good EIP-55 mixed-case fixture.
const checksummedAddress = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

func TestValidate_Common(t *testing.T) {
	t.Run("empty address is rejected", func(t *testing.T) {
		err := Validate("", networks.FamilyEVM)
		assert.ErrorIs(t, err, ErrAddressRequired)
	})

	t.Run("whitespace-only address is rejected", func(t *testing.T) {
		err := Validate("   ", networks.FamilySolana)
		assert.ErrorIs(t, err, ErrAddressRequired)
	})

	t.Run("unknown family is rejected", func(t *testing.T) {
		err := Validate("whatever", networks.Family("cosmos"))
		assert.ErrorIs(t, err, ErrUnsupportedFamily)
	})
}

func TestValidate_EVM(t *testing.T) {
	t.Run("valid EIP-55 mixed-case address is accepted", func(t *testing.T) {
		assert.NoError(t, Validate(checksummedAddress, networks.FamilyEVM))
	})

	t.Run("all-lowercase address is accepted without checksum enforcement", func(t *testing.T) {
		assert.NoError(t, Validate(strings.ToLower(checksummedAddress), networks.FamilyEVM))
	})

	t.Run("fully uppercased hex is not a legitimate checksum encoding", func(t *testing.T) {
		upper := "0x" + strings.ToUpper(checksummedAddress[2:])
		err := Validate(upper, networks.FamilyEVM)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("a single flipped case character breaks the checksum", func(t *testing.T) {
		broken := strings.Replace(checksummedAddress, "aA", "aa", 1)
		require.NotEqual(t, checksummedAddress, broken)

		err := Validate(broken, networks.FamilyEVM)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("missing 0x prefix is rejected", func(t *testing.T) {
		err := Validate(checksummedAddress[2:], networks.FamilyEVM)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("wrong length is rejected", func(t *testing.T) {
		err := Validate(checksummedAddress+"ab", networks.FamilyEVM)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("non-hex characters are rejected", func(t *testing.T) {
		err := Validate("0xZZaeb6053f3e94c9b9a09f33669435e7ef1beaed", networks.FamilyEVM)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestValidate_Solana(t *testing.T) {
	// A realistic mixed-case Base58 public key.
	const solanaAddress = "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"

	t.Run("valid Base58 address is accepted", func(t *testing.T) {
		assert.NoError(t, Validate(solanaAddress, networks.FamilySolana))
	})

	t.Run("lowercasing a valid address makes it invalid", func(t *testing.T) {
		err := Validate(strings.ToLower(solanaAddress), networks.FamilySolana)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("characters outside the Base58 alphabet are rejected", func(t *testing.T) {
		for _, forbidden := range []string{"0", "O", "I", "l"} {
			err := Validate(solanaAddress[:len(solanaAddress)-1]+forbidden, networks.FamilySolana)
			assert.ErrorIs(t, err, ErrInvalidAddress, "expected %q to be rejected", forbidden)
		}
	})

	t.Run("too-short key is rejected", func(t *testing.T) {
		err := Validate("abc", networks.FamilySolana)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestValidate_SUI(t *testing.T) {
	validSUI := "0x" + strings.Repeat("ab12", 16)

	t.Run("exactly 0x plus 64 hex characters is accepted", func(t *testing.T) {
		require.Len(t, validSUI, 66)
		assert.NoError(t, Validate(validSUI, networks.FamilySUI))
	})

	t.Run("hex case is ignored", func(t *testing.T) {
		assert.NoError(t, Validate("0x"+strings.ToUpper(strings.Repeat("ab12", 16)), networks.FamilySUI))
	})

	t.Run("63 characters is rejected", func(t *testing.T) {
		err := Validate(validSUI[:len(validSUI)-1], networks.FamilySUI)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("65 characters is rejected", func(t *testing.T) {
		err := Validate(validSUI+"a", networks.FamilySUI)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})

	t.Run("missing prefix is rejected", func(t *testing.T) {
		err := Validate(validSUI[2:], networks.FamilySUI)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestFormatDescription(t *testing.T) {
	assert.Equal(t, "EVM address (0x...)", FormatDescription(networks.FamilyEVM))
	assert.Equal(t, "Solana address (base58)", FormatDescription(networks.FamilySolana))
	assert.Equal(t, "SUI address (0x...)", FormatDescription(networks.FamilySUI))
	assert.Equal(t, "Address", FormatDescription(networks.Family("other")))
}
