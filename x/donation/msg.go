package donation

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterCharityMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateCharityMsg{}, migration.NoModification)
	migration.MustRegister(1, &ProcessDonationMsg{}, migration.NoModification)
	migration.MustRegister(1, &ProcessPercentageTipDonationMsg{}, migration.NoModification)
	migration.MustRegister(1, &ProcessSuggestedTipDonationMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetPausedMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RegisterCharityMsg)(nil)

func (msg *RegisterCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	if msg.Name == "" {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrMsg, "required"))
	}
	if len(msg.Name) > maxCharityNameLen {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrMsg, "too long"))
	}
	return errs
}

func (RegisterCharityMsg) Path() string {
	return "donation/register_charity"
}

var _ weave.Msg = (*UpdateCharityMsg)(nil)

func (msg *UpdateCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

func (UpdateCharityMsg) Path() string {
	return "donation/update_charity"
}

// validateDonation checks the fields shared by all donation messages.
func validateDonation(charity weave.Address, amount *coin.Coin) error {
	var errs error
	errs = errors.AppendField(errs, "Charity", charity.Validate())
	if coin.IsEmpty(amount) {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "required"))
	} else {
		errs = errors.AppendField(errs, "Amount", amount.Validate())
		if !amount.IsPositive() {
			errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

var _ weave.Msg = (*ProcessDonationMsg)(nil)

func (msg *ProcessDonationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.Append(errs, validateDonation(msg.Charity, msg.Amount))
	if msg.Tip != nil {
		errs = errors.AppendField(errs, "Tip", msg.Tip.Validate())
		if !msg.Tip.IsNonNegative() {
			errs = errors.Append(errs, errors.Field("Tip", errors.ErrAmount, "must not be negative"))
		}
		if msg.Amount != nil && !msg.Tip.SameType(*msg.Amount) {
			errs = errors.Append(errs, errors.Field("Tip", errors.ErrCurrency, "tip and amount ticker mismatch"))
		}
	}
	return errs
}

func (ProcessDonationMsg) Path() string {
	return "donation/process_donation"
}

var _ weave.Msg = (*ProcessPercentageTipDonationMsg)(nil)

func (msg *ProcessPercentageTipDonationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.Append(errs, validateDonation(msg.Charity, msg.Amount))
	if msg.TipBps > feeDenominator {
		errs = errors.Append(errs, errors.Field("TipBps", errors.ErrMsg, "tip rate above %d basis points", feeDenominator))
	}
	return errs
}

func (ProcessPercentageTipDonationMsg) Path() string {
	return "donation/process_percentage_tip_donation"
}

var _ weave.Msg = (*ProcessSuggestedTipDonationMsg)(nil)

// Suggested tip rates in basis points. The message carries an index into
// this list.
var suggestedTipBps = []uint32{500, 1000, 2000}

func (msg *ProcessSuggestedTipDonationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.Append(errs, validateDonation(msg.Charity, msg.Amount))
	if int(msg.TipOption) >= len(suggestedTipBps) {
		errs = errors.AppendField(errs, "TipOption", ErrInvalidTipOption)
	}
	return errs
}

func (ProcessSuggestedTipDonationMsg) Path() string {
	return "donation/process_suggested_tip_donation"
}

var _ weave.Msg = (*SetPausedMsg)(nil)

func (msg *SetPausedMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	return errs
}

func (SetPausedMsg) Path() string {
	return "donation/set_paused"
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Validate will skip any zero fields and validate the set ones.
func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		return errors.Append(errs, errors.Field("Patch", errors.ErrMsg, "required"))
	}
	c := msg.Patch
	if len(c.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	}
	if len(c.Treasury) != 0 {
		errs = errors.AppendField(errs, "Treasury", c.Treasury.Validate())
	}
	if c.FeeBps > maxFeeBps {
		errs = errors.Append(errs, errors.Field("FeeBps", errors.ErrMsg, "fee rate above %d basis points", maxFeeBps))
	}
	return errs
}

func (*UpdateConfigurationMsg) Path() string {
	return "donation/update_configuration"
}
