package xreserve

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// wordSize is the width of one ABI slot.
const wordSize = 32

// keccak256 hashes data with the legacy Keccak-256 used by Ethereum.
func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// methodID derives the 4-byte function selector from a canonical signature.
func methodID(signature string) []byte {
	return keccak256([]byte(signature))[:4]
}

var (
	approveSelector         = methodID("approve(address,uint256)")
	depositToRemoteSelector = methodID("depositToRemote(uint256,uint32,bytes32,address,uint256,bytes)")
)

// EncodeRecipient turns a Canton recipient string into the on-chain pair: the
// remoteRecipient slot carries the Keccak-256 of the UTF-8 bytes, and hookData
// carries the raw bytes so the off-chain watcher can correlate the two.
func EncodeRecipient(cantonRecipient string) (remoteRecipient [wordSize]byte, hookData []byte) {
	raw := []byte(cantonRecipient)
	copy(remoteRecipient[:], keccak256(raw))
	return remoteRecipient, raw
}

// HookDataHex renders hook data the way it appears in calldata inspection
// tools, 0x-prefixed.
func HookDataHex(hookData []byte) string {
	return "0x" + hex.EncodeToString(hookData)
}

// encodeUint256 left-pads the big-endian value into one slot.
func encodeUint256(v *big.Int) ([wordSize]byte, error) {
	var word [wordSize]byte

	if v.Sign() < 0 {
		return word, fmt.Errorf("negative value %s cannot encode as uint256", v)
	}
	if v.BitLen() > 256 {
		return word, fmt.Errorf("value %s overflows uint256", v)
	}

	v.FillBytes(word[:])
	return word, nil
}

// encodeAddress right-aligns the 20 address bytes into one slot.
func encodeAddress(address string) ([wordSize]byte, error) {
	var word [wordSize]byte

	hexPart := strings.TrimPrefix(address, "0x")
	if len(hexPart) != 40 {
		return word, fmt.Errorf("address %q must be 20 bytes of hex", address)
	}

	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return word, fmt.Errorf("address %q is not valid hex: %w", address, err)
	}

	copy(word[wordSize-len(raw):], raw)
	return word, nil
}

// encodeApproveCall builds ERC-20 approve(spender, value) calldata.
func encodeApproveCall(spender string, value *big.Int) ([]byte, error) {
	spenderWord, err := encodeAddress(spender)
	if err != nil {
		return nil, err
	}

	valueWord, err := encodeUint256(value)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, 4+2*wordSize)
	data = append(data, approveSelector...)
	data = append(data, spenderWord[:]...)
	data = append(data, valueWord[:]...)
	return data, nil
}

// encodeDepositToRemoteCall builds calldata for
// depositToRemote(value, remoteDomain, remoteRecipient, localToken, maxFee, hookData).
// hookData is the single dynamic argument; its head slot points at the tail.
func encodeDepositToRemoteCall(
	value *big.Int,
	remoteDomain uint32,
	remoteRecipient [wordSize]byte,
	localToken string,
	maxFee *big.Int,
	hookData []byte,
) ([]byte, error) {
	const headSlots = 6

	valueWord, err := encodeUint256(value)
	if err != nil {
		return nil, err
	}

	domainWord, err := encodeUint256(new(big.Int).SetUint64(uint64(remoteDomain)))
	if err != nil {
		return nil, err
	}

	tokenWord, err := encodeAddress(localToken)
	if err != nil {
		return nil, err
	}

	maxFeeWord, err := encodeUint256(maxFee)
	if err != nil {
		return nil, err
	}

	offsetWord, err := encodeUint256(big.NewInt(int64(headSlots * wordSize)))
	if err != nil {
		return nil, err
	}

	lengthWord, err := encodeUint256(big.NewInt(int64(len(hookData))))
	if err != nil {
		return nil, err
	}

	paddedLen := (len(hookData) + wordSize - 1) / wordSize * wordSize

	data := make([]byte, 0, 4+(headSlots+1)*wordSize+paddedLen)
	data = append(data, depositToRemoteSelector...)
	data = append(data, valueWord[:]...)
	data = append(data, domainWord[:]...)
	data = append(data, remoteRecipient[:]...)
	data = append(data, tokenWord[:]...)
	data = append(data, maxFeeWord[:]...)
	data = append(data, offsetWord[:]...)
	data = append(data, lengthWord[:]...)
	data = append(data, hookData...)
	data = append(data, make([]byte, paddedLen-len(hookData))...)
	return data, nil
}
