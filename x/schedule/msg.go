package schedule

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &CreateScheduleMsg{}, migration.NoModification)
	migration.MustRegister(1, &ExecuteDistributionsMsg{}, migration.NoModification)
	migration.MustRegister(1, &CancelScheduleMsg{}, migration.NoModification)
	migration.MustRegister(1, &VerifyCharityMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeCharityMsg{}, migration.NoModification)
}

const (
	// minScheduleMonths and maxScheduleMonths bound the schedule length.
	minScheduleMonths = 1
	maxScheduleMonths = 60
)

var _ weave.Msg = (*CreateScheduleMsg)(nil)

func (msg *CreateScheduleMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Charity", msg.Charity.Validate())
	if coin.IsEmpty(msg.Amount) {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "required"))
	} else {
		errs = errors.AppendField(errs, "Amount", msg.Amount.Validate())
		if !msg.Amount.IsPositive() {
			errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
		}
	}
	if msg.Months < minScheduleMonths || msg.Months > maxScheduleMonths {
		errs = errors.Append(errs, errors.Field("Months", errors.ErrMsg, "must be between %d and %d", minScheduleMonths, maxScheduleMonths))
	}
	if msg.TokenPriceUsd <= 0 {
		errs = errors.Append(errs, errors.Field("TokenPriceUsd", errors.ErrMsg, "must be positive"))
	}
	if len(msg.Memo) > maxMemoLen {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrMsg, "too long"))
	}
	return errs
}

func (CreateScheduleMsg) Path() string {
	return "schedule/create_schedule"
}

var _ weave.Msg = (*ExecuteDistributionsMsg)(nil)

// Validate accepts an empty schedule id list. An empty list means executing
// everything that is due.
func (msg *ExecuteDistributionsMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	for _, id := range msg.ScheduleIds {
		if len(id) == 0 {
			errs = errors.Append(errs, errors.Field("ScheduleIds", errors.ErrEmpty, "schedule id must not be empty"))
			break
		}
	}
	return errs
}

func (ExecuteDistributionsMsg) Path() string {
	return "schedule/execute_distributions"
}

var _ weave.Msg = (*CancelScheduleMsg)(nil)

func (msg *CancelScheduleMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if len(msg.ScheduleId) == 0 {
		errs = errors.Append(errs, errors.Field("ScheduleId", errors.ErrEmpty, "required"))
	}
	return errs
}

func (CancelScheduleMsg) Path() string {
	return "schedule/cancel_schedule"
}

var _ weave.Msg = (*VerifyCharityMsg)(nil)

func (msg *VerifyCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

func (VerifyCharityMsg) Path() string {
	return "schedule/verify_charity"
}

var _ weave.Msg = (*RevokeCharityMsg)(nil)

func (msg *RevokeCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

func (RevokeCharityMsg) Path() string {
	return "schedule/revoke_charity"
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
	return "schedule/update_configuration"
}
