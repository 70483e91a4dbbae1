package givechain

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/GiveProtocol/givechain/x/attestation"
	"github.com/GiveProtocol/givechain/x/donation"
	"github.com/GiveProtocol/givechain/x/portfolio"
	"github.com/GiveProtocol/givechain/x/schedule"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/validators"
	abci "github.com/tendermint/tendermint/abci/types"
)

// GenInitOptions will produce some basic options for one rich account, to
// use for dev mode. The account doubles as the owner, the admin and the
// treasury of every charity module.
//
// You can set the ticker as the first argument and the address as the
// second one.
func GenInitOptions(args []string) (json.RawMessage, error) {
	code := "GIVE"
	if len(args) > 0 {
		code = args[0]
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the private key
		bz, privKey, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		addr = bz.String()
		fmt.Println(privKey)
	}

	type (
		dict  map[string]interface{}
		array []interface{}
	)
	collectorAddr, err := hex.DecodeString("3b11c732b8fc1f09beb34031302fe2ab347c5c14")
	if err != nil {
		return nil, errors.Wrap(err, "cannot hex decode collector address")
	}
	meta := dict{"schema": 1}
	return json.Marshal(dict{
		"cash": array{
			dict{
				"address": addr,
				"coins": array{
					dict{
						"whole":  123456789,
						"ticker": code,
					},
				},
			},
		},
		"conf": dict{
			"cash": cash.Configuration{
				CollectorAddress: collectorAddr,
				MinimalFee:       coin.Coin{Whole: 0}, // no fee
			},
			"migration": dict{
				"admin": addr,
			},
			"donation": dict{
				"metadata": meta,
				"owner":    addr,
				"treasury": addr,
				"fee_bps":  250,
			},
			"schedule": dict{
				"metadata": meta,
				"owner":    addr,
				"treasury": addr,
				"fee_bps":  250,
			},
			"portfolio": dict{
				"metadata": meta,
				"owner":    addr,
				"admin":    addr,
				"treasury": addr,
				"fee_bps":  250,
			},
			"attestation": dict{
				"metadata": meta,
				"owner":    addr,
			},
		},
		"donation_charities":    array{},
		"schedule_charities":    array{},
		"portfolio_charities":   array{},
		"attestation_charities": array{},
		"initialize_schema": []dict{
			{"pkg": "cash", "ver": 1},
			{"pkg": "sigs", "ver": 1},
			{"pkg": "multisig", "ver": 1},
			{"pkg": "validators", "ver": 1},
			{"pkg": "utils", "ver": 1},
			{"pkg": "donation", "ver": 1},
			{"pkg": "schedule", "ver": 1},
			{"pkg": "portfolio", "ver": 1},
			{"pkg": "attestation", "ver": 1},
		},
	})
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}

	stack := Stack(options.MinFee)
	application, err := Application("givechain", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&validators.Initializer{},
		&donation.Initializer{},
		&schedule.Initializer{},
		&portfolio.Initializer{},
		&attestation.Initializer{},
	))

	// set the logger and return
	application.WithLogger(options.Logger)
	return application, nil
}

// GenerateCoinKey returns the address of a freshly generated key, along
// with the hex serialization of the private key that controls it. You can
// give coins to this address and hand the serialized key to the user to
// access them.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	bz, err := privKey.Marshal()
	if err != nil {
		return nil, "", err
	}
	addr := privKey.PublicKey().Address()
	return addr, hex.EncodeToString(bz), nil
}
