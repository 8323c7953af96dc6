package commons

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

const (
	PURPOSE_INDEX   = 44
	COIN_TYPE_INDEX = 60
)

var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// GetPrivateKeyFromMnemonic derives the key at m/44'/60'/0'/0/index.
func GetPrivateKeyFromMnemonic(mnemonic string, index uint32) (*ecdsa.PrivateKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(mnemonic, "")

	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("fail to generate master key: %w", err)
	}

	path := []uint32{
		hdkeychain.HardenedKeyStart + PURPOSE_INDEX,
		hdkeychain.HardenedKeyStart + COIN_TYPE_INDEX,
		hdkeychain.HardenedKeyStart + 0,
		0,
		index,
	}
	childKey := masterKey
	for _, i := range path {
		childKey, err = childKey.Derive(i)
		if err != nil {
			return nil, fmt.Errorf("fail to derive key: %w", err)
		}
	}

	privKey, err := childKey.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("fail to obtain private key: %w", err)
	}

	privateKey, err := crypto.ToECDSA(privKey.Serialize())
	if err != nil {
		return nil, fmt.Errorf("fail to convert to ECDSA key: %w", err)
	}
	return privateKey, nil
}
