package donation

import (
	"crypto/sha256"
	"encoding/binary"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Charity{}, migration.NoModification)
	migration.MustRegister(1, &LedgerEntry{}, migration.NoModification)
	migration.MustRegister(1, &TaxReceipt{}, migration.NoModification)
}

const (
	// ReceiptTypeSingle marks a receipt where only the charity received
	// funds.
	ReceiptTypeSingle = "SINGLE_BENEFICIARY"
	// ReceiptTypeDual marks a receipt where the treasury received a
	// nonzero fee and/or tip in addition to the charity payout.
	ReceiptTypeDual = "DUAL_BENEFICIARY"

	maxCharityNameLen = 128
)

var _ orm.CloneableData = (*Charity)(nil)

func (c *Charity) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", c.Address.Validate())
	if c.Name == "" {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrModel, "required"))
	}
	if len(c.Name) > maxCharityNameLen {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrModel, "too long"))
	}
	if err := c.TotalReceived.Validate(); err != nil {
		errs = errors.AppendField(errs, "TotalReceived", err)
	}
	return errs
}

func (c *Charity) Copy() orm.CloneableData {
	return &Charity{
		Metadata:      c.Metadata.Copy(),
		Address:       c.Address.Clone(),
		Name:          c.Name,
		TotalReceived: c.TotalReceived.Clone(),
		Active:        c.Active,
	}
}

// NewCharityBucket returns a bucket for keeping track of registered
// charities, indexed by the charity wallet address.
func NewCharityBucket() orm.ModelBucket {
	b := orm.NewModelBucket("charity", &Charity{})
	return migration.NewModelBucket("donation", b)
}

var _ orm.CloneableData = (*LedgerEntry)(nil)

func (l *LedgerEntry) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", l.Metadata.Validate())
	errs = errors.AppendField(errs, "Donor", l.Donor.Validate())
	errs = errors.AppendField(errs, "Charity", l.Charity.Validate())
	if err := l.Donated.Validate(); err != nil {
		errs = errors.AppendField(errs, "Donated", err)
	}
	if !l.Donated.IsNonNegative() {
		errs = errors.Append(errs, errors.Field("Donated", errors.ErrModel, "must not be negative"))
	}
	return errs
}

func (l *LedgerEntry) Copy() orm.CloneableData {
	return &LedgerEntry{
		Metadata: l.Metadata.Copy(),
		Donor:    l.Donor.Clone(),
		Charity:  l.Charity.Clone(),
		Donated:  l.Donated.Clone(),
	}
}

// NewLedgerBucket returns a bucket with the cumulative amount every donor
// has given to every charity. Entries only ever grow.
func NewLedgerBucket() orm.ModelBucket {
	b := orm.NewModelBucket("ledger", &LedgerEntry{})
	return migration.NewModelBucket("donation", b)
}

// ledgerKey builds the primary key of a donor/charity ledger entry.
func ledgerKey(donor, charity weave.Address) []byte {
	key := make([]byte, 0, len(donor)+len(charity))
	key = append(key, donor...)
	return append(key, charity...)
}

var _ orm.CloneableData = (*TaxReceipt)(nil)

func (r *TaxReceipt) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", r.Metadata.Validate())
	errs = errors.AppendField(errs, "Donor", r.Donor.Validate())
	errs = errors.AppendField(errs, "Charity", r.Charity.Validate())
	if coin.IsEmpty(r.CharityAmount) || !r.CharityAmount.IsPositive() {
		errs = errors.Append(errs, errors.Field("CharityAmount", errors.ErrModel, "must be positive"))
	}
	if r.TreasuryAmount != nil && !r.TreasuryAmount.IsNonNegative() {
		errs = errors.Append(errs, errors.Field("TreasuryAmount", errors.ErrModel, "must not be negative"))
	}
	if coin.IsEmpty(r.TotalDeductible) || !r.TotalDeductible.IsPositive() {
		errs = errors.Append(errs, errors.Field("TotalDeductible", errors.ErrModel, "must be positive"))
	}
	if r.ReceiptType != ReceiptTypeSingle && r.ReceiptType != ReceiptTypeDual {
		errs = errors.Append(errs, errors.Field("ReceiptType", errors.ErrModel, "unknown receipt type"))
	}
	if r.CreatedAt == 0 {
		errs = errors.Append(errs, errors.Field("CreatedAt", errors.ErrModel, "required"))
	}
	return errs
}

func (r *TaxReceipt) Copy() orm.CloneableData {
	return &TaxReceipt{
		Metadata:        r.Metadata.Copy(),
		Donor:           r.Donor.Clone(),
		Charity:         r.Charity.Clone(),
		CharityAmount:   r.CharityAmount.Clone(),
		TreasuryAmount:  r.TreasuryAmount.Clone(),
		TotalDeductible: r.TotalDeductible.Clone(),
		ReceiptType:     r.ReceiptType,
		CreatedAt:       r.CreatedAt,
	}
}

// NewReceiptBucket returns a bucket for the immutable tax receipts. The
// primary key is the receipt hash, see receiptKey.
func NewReceiptBucket() orm.ModelBucket {
	b := orm.NewModelBucket("receipt", &TaxReceipt{},
		orm.WithIndex("donor", idxReceiptDonor, false),
	)
	return migration.NewModelBucket("donation", b)
}

func idxReceiptDonor(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	rec, ok := obj.Value().(*TaxReceipt)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of TaxReceipt")
	}
	return rec.Donor, nil
}

// receiptKey derives the receipt identifier from the donor, the charity, the
// donated amount and the block time. A donor repeating the exact same
// donation within a single block produces the same key and is rejected as a
// duplicate.
func receiptKey(donor, charity weave.Address, amount coin.Coin, createdAt weave.UnixTime) []byte {
	h := sha256.New()
	_, _ = h.Write(donor)
	_, _ = h.Write(charity)
	_, _ = h.Write([]byte(amount.String()))
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(createdAt))
	_, _ = h.Write(ts[:])
	return h.Sum(nil)
}

// RegisterQuery registers donation buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewCharityBucket().Register("charities", qr)
	NewLedgerBucket().Register("donations", qr)
	NewReceiptBucket().Register("receipts", qr)
}
