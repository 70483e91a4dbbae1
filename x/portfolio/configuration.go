package portfolio

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x"
)

func init() {
	migration.MustRegister(1, &Configuration{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

const (
	// maxFeeBps caps the platform fee rate at 5%.
	maxFeeBps = 500

	// feeDenominator is the basis point denominator, 10000 = 100%.
	feeDenominator = 10000
)

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	errs = errors.AppendField(errs, "Treasury", c.Treasury.Validate())
	if len(c.Governance) != 0 {
		errs = errors.AppendField(errs, "Governance", c.Governance.Validate())
	}
	if c.GovernanceActive && len(c.Governance) == 0 {
		errs = errors.Append(errs, errors.Field("Governance", errors.ErrState, "required when governance is active"))
	}
	if c.FeeBps > maxFeeBps {
		errs = errors.Append(errs, errors.Field("FeeBps", errors.ErrState, "fee rate above %d basis points", maxFeeBps))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "portfolio", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// NewConfigHandler returns a handler for the portfolio configuration patch
// message.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("portfolio", &conf, auth, migration.CurrentAdmin)
}
