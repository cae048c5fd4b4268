package wallet

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/sha256"
	"encoding/hex"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

const (
	// tronPrefix is the mainnet address version byte.
	tronPrefix    = 0x41
	addressLength = 21
	checksumLen   = 4
)

var ErrInvalidAddress = errors.New("invalid TRON address")

// Wallet структура с приватным ключом и адресом
type Wallet struct {
	PrivateKey string
	Address    string
}

// GenerateTRONWallet генерирует новый TRON-кошелек
func GenerateTRONWallet() (*Wallet, error) {
	privateKey, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "generate key")
	}

	return &Wallet{
		PrivateKey: hex.EncodeToString(crypto.FromECDSA(privateKey)),
		Address:    addressFromPublicKey(&privateKey.PublicKey),
	}, nil
}

// AddressFromPrivateKey восстанавливает base58-адрес из hex приватного ключа
func AddressFromPrivateKey(privKeyHex string) (string, error) {
	privBytes, err := hex.DecodeString(privKeyHex)
	if err != nil {
		return "", errors.Wrap(err, "decode private key hex")
	}
	privKey, err := crypto.ToECDSA(privBytes)
	if err != nil {
		return "", errors.Wrap(err, "convert to ECDSA")
	}
	return addressFromPublicKey(&privKey.PublicKey), nil
}

// ValidateAddress проверяет префикс и чексумму base58check-адреса
func ValidateAddress(address string) error {
	decoded, err := base58.Decode(address)
	if err != nil {
		return errors.Wrap(ErrInvalidAddress, err.Error())
	}
	if len(decoded) != addressLength+checksumLen || decoded[0] != tronPrefix {
		return ErrInvalidAddress
	}

	payload, sum := decoded[:addressLength], decoded[addressLength:]
	if !bytes.Equal(checksum(payload), sum) {
		return errors.Wrap(ErrInvalidAddress, "checksum mismatch")
	}
	return nil
}

func addressFromPublicKey(pub *ecdsa.PublicKey) string {
	hash := crypto.Keccak256(crypto.FromECDSAPub(pub)[1:])
	payload := append([]byte{tronPrefix}, hash[12:]...)
	return base58.Encode(append(payload, checksum(payload)...))
}

// checksum по стандарту TRON (double SHA256)
func checksum(payload []byte) []byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	return second[:checksumLen]
}
