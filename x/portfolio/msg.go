package portfolio

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateFundMsg{}, migration.NoModification)
	migration.MustRegister(1, &DonateMsg{}, migration.NoModification)
	migration.MustRegister(1, &ClaimMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateRatiosMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetFundActiveMsg{}, migration.NoModification)
	migration.MustRegister(1, &ActivateGovernanceMsg{}, migration.NoModification)
	migration.MustRegister(1, &SetPausedMsg{}, migration.NoModification)
	migration.MustRegister(1, &VerifyCharityMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeCharityMsg{}, migration.NoModification)
}

var _ weave.Msg = (*CreateFundMsg)(nil)

func (msg *CreateFundMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Name == "" {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrMsg, "required"))
	}
	if len(msg.Name) > maxFundNameLen {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrMsg, "too long"))
	}
	if len(msg.Description) > maxFundDescriptionLen {
		errs = errors.Append(errs, errors.Field("Description", errors.ErrMsg, "too long"))
	}
	if len(msg.Charities) == 0 {
		errs = errors.Append(errs, errors.Field("Charities", errors.ErrMsg, "required"))
	}
	if len(msg.Charities) > maxFundCharities {
		errs = errors.Append(errs, errors.Field("Charities", errors.ErrMsg, "too many charities"))
	}
	seen := make(map[string]struct{}, len(msg.Charities))
	for _, c := range msg.Charities {
		errs = errors.AppendField(errs, "Charities", c.Validate())
		if _, ok := seen[string(c)]; ok {
			errs = errors.Append(errs, errors.Field("Charities", errors.ErrDuplicate, "charity %s listed twice", c))
		}
		seen[string(c)] = struct{}{}
	}
	return errs
}

func (CreateFundMsg) Path() string {
	return "portfolio/create_fund"
}

var _ weave.Msg = (*DonateMsg)(nil)

func (msg *DonateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.FundId) == 0 {
		errs = errors.Append(errs, errors.Field("FundId", errors.ErrEmpty, "required"))
	}
	if coin.IsEmpty(msg.Amount) {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "required"))
	} else {
		errs = errors.AppendField(errs, "Amount", msg.Amount.Validate())
		if !msg.Amount.IsPositive() {
			errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
		}
	}
	return errs
}

func (DonateMsg) Path() string {
	return "portfolio/donate"
}

var _ weave.Msg = (*ClaimMsg)(nil)

// Validate accepts an empty ticker list. An empty list means claiming every
// ticker with a positive balance.
func (msg *ClaimMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.FundId) == 0 {
		errs = errors.Append(errs, errors.Field("FundId", errors.ErrEmpty, "required"))
	}
	for _, t := range msg.Tickers {
		if !coin.IsCC(t) {
			errs = errors.Append(errs, errors.Field("Tickers", errors.ErrCurrency, "invalid ticker %q", t))
		}
	}
	return errs
}

func (ClaimMsg) Path() string {
	return "portfolio/claim"
}

var _ weave.Msg = (*UpdateRatiosMsg)(nil)

func (msg *UpdateRatiosMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.FundId) == 0 {
		errs = errors.Append(errs, errors.Field("FundId", errors.ErrEmpty, "required"))
	}
	if len(msg.RatioBps) == 0 {
		errs = errors.Append(errs, errors.Field("RatioBps", errors.ErrEmpty, "required"))
	}
	var sum uint64
	for _, r := range msg.RatioBps {
		if r == 0 {
			errs = errors.Append(errs, errors.Field("RatioBps", errors.ErrMsg, "ratios must be positive"))
			break
		}
		sum += uint64(r)
	}
	if len(msg.RatioBps) != 0 && sum != feeDenominator {
		errs = errors.Append(errs, errors.Field("RatioBps", errors.ErrMsg, "ratios must sum to %d", feeDenominator))
	}
	return errs
}

func (UpdateRatiosMsg) Path() string {
	return "portfolio/update_ratios"
}

var _ weave.Msg = (*SetFundActiveMsg)(nil)

func (msg *SetFundActiveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.FundId) == 0 {
		errs = errors.Append(errs, errors.Field("FundId", errors.ErrEmpty, "required"))
	}
	return errs
}

func (SetFundActiveMsg) Path() string {
	return "portfolio/set_fund_active"
}

var _ weave.Msg = (*ActivateGovernanceMsg)(nil)

func (msg *ActivateGovernanceMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	return errs
}

func (ActivateGovernanceMsg) Path() string {
	return "portfolio/activate_governance"
}

var _ weave.Msg = (*SetPausedMsg)(nil)

func (msg *SetPausedMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	return errs
}

func (SetPausedMsg) Path() string {
	return "portfolio/set_paused"
}

var _ weave.Msg = (*VerifyCharityMsg)(nil)

func (msg *VerifyCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

func (VerifyCharityMsg) Path() string {
	return "portfolio/verify_charity"
}

var _ weave.Msg = (*RevokeCharityMsg)(nil)

func (msg *RevokeCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

func (RevokeCharityMsg) Path() string {
	return "portfolio/revoke_charity"
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
	if len(c.Admin) != 0 {
		errs = errors.AppendField(errs, "Admin", c.Admin.Validate())
	}
	if len(c.Governance) != 0 {
		errs = errors.AppendField(errs, "Governance", c.Governance.Validate())
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
	return "portfolio/update_configuration"
}
