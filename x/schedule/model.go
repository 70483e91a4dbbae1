package schedule

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Schedule{}, migration.NoModification)
	migration.MustRegister(1, &Charity{}, migration.NoModification)
}

const maxMemoLen = 128

var _ orm.CloneableData = (*Schedule)(nil)

func (s *Schedule) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", s.Metadata.Validate())
	errs = errors.AppendField(errs, "Donor", s.Donor.Validate())
	errs = errors.AppendField(errs, "Charity", s.Charity.Validate())
	if coin.IsEmpty(s.Amount) || !s.Amount.IsPositive() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrModel, "must be positive"))
	}
	if coin.IsEmpty(s.AmountPerMonth) || !s.AmountPerMonth.IsPositive() {
		errs = errors.Append(errs, errors.Field("AmountPerMonth", errors.ErrModel, "must be positive"))
	}
	if s.MonthsRemaining < 0 {
		errs = errors.Append(errs, errors.Field("MonthsRemaining", errors.ErrModel, "must not be negative"))
	}
	if s.Active && s.NextDistribution == 0 {
		errs = errors.Append(errs, errors.Field("NextDistribution", errors.ErrModel, "required for an active schedule"))
	}
	if len(s.Memo) > maxMemoLen {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrModel, "too long"))
	}
	return errs
}

func (s *Schedule) Copy() orm.CloneableData {
	return &Schedule{
		Metadata:         s.Metadata.Copy(),
		Donor:            s.Donor.Clone(),
		Charity:          s.Charity.Clone(),
		Amount:           s.Amount.Clone(),
		AmountPerMonth:   s.AmountPerMonth.Clone(),
		MonthsRemaining:  s.MonthsRemaining,
		NextDistribution: s.NextDistribution,
		Active:           s.Active,
		Memo:             s.Memo,
	}
}

var scheduleSeq = orm.NewSequence("schedule", "id")

// NewScheduleBucket returns a bucket for keeping donation schedules. The
// schedules are keyed by a sequence counter and indexed by the donor.
func NewScheduleBucket() orm.ModelBucket {
	b := orm.NewModelBucket("schedule", &Schedule{},
		orm.WithIDSequence(scheduleSeq),
		orm.WithIndex("donor", idxScheduleDonor, false),
	)
	return migration.NewModelBucket("schedule", b)
}

func idxScheduleDonor(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	sched, ok := obj.Value().(*Schedule)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Schedule")
	}
	return sched.Donor, nil
}

// ScheduleCondition returns the condition controlling the escrow account of
// a schedule.
func ScheduleCondition(id []byte) weave.Condition {
	return weave.NewCondition("schedule", "seq", id)
}

var _ orm.CloneableData = (*Charity)(nil)

func (c *Charity) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", c.Address.Validate())
	return errs
}

func (c *Charity) Copy() orm.CloneableData {
	return &Charity{
		Metadata: c.Metadata.Copy(),
		Address:  c.Address.Clone(),
	}
}

// NewCharityBucket returns a bucket with the charities that are verified to
// receive scheduled distributions. Presence in the bucket means verified.
func NewCharityBucket() orm.ModelBucket {
	b := orm.NewModelBucket("verified", &Charity{})
	return migration.NewModelBucket("schedule", b)
}

// RegisterQuery registers schedule buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewScheduleBucket().Register("schedules", qr)
	NewCharityBucket().Register("beneficiaries", qr)
}
