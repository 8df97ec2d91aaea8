package main

import (
	"encoding/json"
	"io/ioutil"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/shaiss/mpc/keypair"
	"github.com/shaiss/mpc/keyutils"
)

// SecretsConfig is the secrets file of a node. JSON files are read as well,
// json being a subset of yaml.
type SecretsConfig struct {
	P2PPrivateKey *keyutils.Key  `yaml:"p2p_private_key" json:"p2p_private_key"`
	SigningKeys   keyutils.Keys `yaml:"signing_keys" json:"signing_keys"`
}

func newSecretsConfigFromBytes(b []byte) (SecretsConfig, error) {
	var sc SecretsConfig
	if err := yaml.Unmarshal(b, &sc); err != nil {
		return SecretsConfig{}, err
	}

	if err := sc.IsValid(); err != nil {
		return SecretsConfig{}, err
	}

	return sc, nil
}

func loadSecretsConfig(f string) (SecretsConfig, error) {
	b, err := ioutil.ReadFile(f)
	if err != nil {
		return SecretsConfig{}, err
	}

	return newSecretsConfigFromBytes(b)
}

func (sc SecretsConfig) IsValid() error {
	if sc.P2PPrivateKey == nil {
		return xerrors.Errorf("empty p2p_private_key")
	}

	return nil
}

func (sc SecretsConfig) String() string {
	var p2p string
	if sc.P2PPrivateKey != nil {
		p2p = sc.P2PPrivateKey.String()
	}

	b, _ := json.Marshal(map[string]interface{}{
		"p2p_private_key": p2p,
		"signing_keys":    len(sc.SigningKeys),
	})

	return string(b)
}

// PublicKeys returns the public keys of the p2p key and the signing keys,
// in the order of the file.
func (sc SecretsConfig) PublicKeys() ([]keypair.PublicKey, error) {
	keys := []keypair.SigningKey{sc.P2PPrivateKey.SigningKey()}
	keys = append(keys, sc.SigningKeys...)

	pks := make([]keypair.PublicKey, len(keys))
	for i := range keys {
		pk, err := keys[i].PublicKey()
		if err != nil {
			return nil, err
		}

		pks[i] = pk
	}

	return pks, nil
}
