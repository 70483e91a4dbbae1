package donation

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
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
	errs = errors.AppendField(errs, "Treasury", c.Treasury.Validate())
	if c.FeeBps > maxFeeBps {
		errs = errors.Append(errs, errors.Field("FeeBps", errors.ErrState, "fee rate above %d basis points", maxFeeBps))
	}
	if !c.MinimumDonation.IsZero() {
		// The minimum is unit only, the ticker is taken from the
		// donated coin when comparing.
		if !c.MinimumDonation.IsPositive() {
			errs = errors.Append(errs, errors.Field("MinimumDonation", errors.ErrState, "must not be negative"))
		}
	}
	return errs
}

func loadConf(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, "donation", &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}

// minimumFor returns the configured minimum donation denominated in the
// given ticker.
func (c *Configuration) minimumFor(ticker string) coin.Coin {
	return coin.Coin{
		Whole:      c.MinimumDonation.Whole,
		Fractional: c.MinimumDonation.Fractional,
		Ticker:     ticker,
	}
}

// NewConfigHandler returns a handler for the donation configuration patch
// message.
func NewConfigHandler(auth x.Authenticator) weave.Handler {
	var conf Configuration
	return gconf.NewUpdateConfigurationHandler("donation", &conf, auth, migration.CurrentAdmin)
}
