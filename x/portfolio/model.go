package portfolio

import (
	"crypto/sha256"
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Fund{}, migration.NoModification)
	migration.MustRegister(1, &Allocation{}, migration.NoModification)
	migration.MustRegister(1, &Charity{}, migration.NoModification)
}

const (
	maxFundNameLen        = 128
	maxFundDescriptionLen = 512
	maxFundCharities      = 10
)

var _ orm.CloneableData = (*Fund)(nil)

func (f *Fund) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", f.Metadata.Validate())
	if f.Name == "" {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrModel, "required"))
	}
	if len(f.Name) > maxFundNameLen {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrModel, "too long"))
	}
	if len(f.Description) > maxFundDescriptionLen {
		errs = errors.Append(errs, errors.Field("Description", errors.ErrModel, "too long"))
	}
	if f.CreatedAt == 0 {
		errs = errors.Append(errs, errors.Field("CreatedAt", errors.ErrModel, "required"))
	}
	if len(f.Charities) == 0 {
		errs = errors.Append(errs, errors.Field("Charities", errors.ErrModel, "required"))
	}
	if len(f.Charities) > maxFundCharities {
		errs = errors.Append(errs, errors.Field("Charities", errors.ErrModel, "too many charities"))
	}
	for _, c := range f.Charities {
		errs = errors.AppendField(errs, "Charities", c.Validate())
	}
	if err := validRatios(f.RatioBps, len(f.Charities)); err != nil {
		errs = errors.AppendField(errs, "RatioBps", err)
	}
	if err := f.TotalRaised.Validate(); err != nil {
		errs = errors.AppendField(errs, "TotalRaised", err)
	}
	if err := f.TotalDistributed.Validate(); err != nil {
		errs = errors.AppendField(errs, "TotalDistributed", err)
	}
	return errs
}

// validRatios ensures one ratio per charity, summing up to the whole.
func validRatios(ratios []uint32, charities int) error {
	if len(ratios) != charities {
		return errors.Wrap(errors.ErrModel, "one ratio per charity required")
	}
	var sum uint64
	for _, r := range ratios {
		if r == 0 {
			return errors.Wrap(errors.ErrModel, "ratios must be positive")
		}
		sum += uint64(r)
	}
	if sum != feeDenominator {
		return errors.Wrapf(errors.ErrModel, "ratios must sum to %d", feeDenominator)
	}
	return nil
}

func (f *Fund) Copy() orm.CloneableData {
	charities := make([]weave.Address, len(f.Charities))
	for i, c := range f.Charities {
		charities[i] = c.Clone()
	}
	ratios := make([]uint32, len(f.RatioBps))
	copy(ratios, f.RatioBps)
	return &Fund{
		Metadata:         f.Metadata.Copy(),
		Name:             f.Name,
		Description:      f.Description,
		Active:           f.Active,
		CreatedAt:        f.CreatedAt,
		Charities:        charities,
		RatioBps:         ratios,
		TotalRaised:      f.TotalRaised.Clone(),
		TotalDistributed: f.TotalDistributed.Clone(),
	}
}

// NewFundBucket returns a bucket for keeping the funds, keyed by the fund
// id, see fundKey.
func NewFundBucket() orm.ModelBucket {
	b := orm.NewModelBucket("fund", &Fund{})
	return migration.NewModelBucket("portfolio", b)
}

// fundKey derives the fund identifier from the fund name and the creation
// block time.
func fundKey(name string, createdAt weave.UnixTime) []byte {
	h := sha256.New()
	_, _ = h.Write([]byte(name))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(createdAt))
	_, _ = h.Write(ts[:])
	return h.Sum(nil)
}

// FundCondition returns the condition controlling the collection account of
// a fund.
func FundCondition(id []byte) weave.Condition {
	return weave.NewCondition("portfolio", "fund", id)
}

var _ orm.CloneableData = (*Allocation)(nil)

func (a *Allocation) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	if len(a.Fund) == 0 {
		errs = errors.Append(errs, errors.Field("Fund", errors.ErrModel, "required"))
	}
	errs = errors.AppendField(errs, "Charity", a.Charity.Validate())
	if err := a.Claimable.Validate(); err != nil {
		errs = errors.AppendField(errs, "Claimable", err)
	}
	if !a.Claimable.IsNonNegative() {
		errs = errors.Append(errs, errors.Field("Claimable", errors.ErrModel, "must not be negative"))
	}
	if err := a.Claimed.Validate(); err != nil {
		errs = errors.AppendField(errs, "Claimed", err)
	}
	if !a.Claimed.IsNonNegative() {
		errs = errors.Append(errs, errors.Field("Claimed", errors.ErrModel, "must not be negative"))
	}
	return errs
}

func (a *Allocation) Copy() orm.CloneableData {
	return &Allocation{
		Metadata:  a.Metadata.Copy(),
		Fund:      append([]byte(nil), a.Fund...),
		Charity:   a.Charity.Clone(),
		Claimable: a.Claimable.Clone(),
		Claimed:   a.Claimed.Clone(),
	}
}

// NewAllocationBucket returns a bucket with the per fund, per charity claim
// balances, indexed by the charity address.
func NewAllocationBucket() orm.ModelBucket {
	b := orm.NewModelBucket("allocation", &Allocation{},
		orm.WithIndex("charity", idxAllocationCharity, false),
	)
	return migration.NewModelBucket("portfolio", b)
}

func idxAllocationCharity(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	alloc, ok := obj.Value().(*Allocation)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Allocation")
	}
	return alloc.Charity, nil
}

// allocationKey builds the primary key of a fund/charity allocation.
func allocationKey(fundID []byte, charity weave.Address) []byte {
	key := make([]byte, 0, len(fundID)+len(charity))
	key = append(key, fundID...)
	return append(key, charity...)
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

// NewCharityBucket returns a bucket with the charities verified for fund
// membership. Presence in the bucket means verified.
func NewCharityBucket() orm.ModelBucket {
	b := orm.NewModelBucket("verified", &Charity{})
	return migration.NewModelBucket("portfolio", b)
}

// RegisterQuery registers portfolio buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewFundBucket().Register("funds", qr)
	NewAllocationBucket().Register("allocations", qr)
	NewCharityBucket().Register("fundcharities", qr)
}
