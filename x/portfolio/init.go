package portfolio

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
)

// Initializer fulfils the Initializer interface to load data from the
// genesis file.
type Initializer struct{}

var _ weave.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial portfolio configuration and the initial
// set of verified charities from the genesis and save it in the database.
func (*Initializer) FromGenesis(opts weave.Options, params weave.GenesisParams, kv weave.KVStore) error {
	if err := gconf.InitConfig(kv, opts, "portfolio", &Configuration{}); err != nil {
		return errors.Wrap(err, "init config")
	}

	var charities []struct {
		Address weave.Address `json:"address"`
	}
	if err := opts.ReadOptions("portfolio_charities", &charities); err != nil {
		return errors.Wrap(err, "cannot load charities")
	}
	bucket := NewCharityBucket()
	for i, c := range charities {
		charity := Charity{
			Metadata: &weave.Metadata{Schema: 1},
			Address:  c.Address,
		}
		if _, err := bucket.Put(kv, c.Address, &charity); err != nil {
			return errors.Wrapf(err, "cannot store #%d charity", i)
		}
	}
	return nil
}
