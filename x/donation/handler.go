package donation

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	registerCharityCost = 0
	updateCharityCost   = 0
	processDonationCost = 100
	setPausedCost       = 0
)

// CashController allows moving donor funds without direct access to the
// cash bucket. Implemented by the x/cash controller.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterRoutes registers handlers for donation message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("donation", r)

	charities := NewCharityBucket()

	r.Handle(&RegisterCharityMsg{}, &registerCharityHandler{
		auth:      auth,
		charities: charities,
	})
	r.Handle(&UpdateCharityMsg{}, &updateCharityHandler{
		auth:      auth,
		charities: charities,
	})

	core := donator{
		auth:      auth,
		charities: charities,
		ledger:    NewLedgerBucket(),
		receipts:  NewReceiptBucket(),
		ctrl:      ctrl,
	}
	r.Handle(&ProcessDonationMsg{}, &processDonationHandler{donator: core})
	r.Handle(&ProcessPercentageTipDonationMsg{}, &percentageTipHandler{donator: core})
	r.Handle(&ProcessSuggestedTipDonationMsg{}, &suggestedTipHandler{donator: core})

	r.Handle(&SetPausedMsg{}, &setPausedHandler{auth: auth})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

type registerCharityHandler struct {
	auth      x.Authenticator
	charities orm.ModelBucket
}

func (h *registerCharityHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: registerCharityCost}, nil
}

func (h *registerCharityHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	charity := Charity{
		Metadata: &weave.Metadata{},
		Address:  msg.Address,
		Name:     msg.Name,
		Active:   true,
	}
	if _, err := h.charities.Put(db, msg.Address, &charity); err != nil {
		return nil, errors.Wrap(err, "cannot store charity")
	}
	return &weave.DeliverResult{Data: msg.Address}, nil
}

func (h *registerCharityHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RegisterCharityMsg, error) {
	var msg RegisterCharityMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	switch err := h.charities.Has(db, msg.Address); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "charity already registered")
	case errors.ErrNotFound.Is(err):
		// All good, not registered yet.
	default:
		return nil, errors.Wrap(err, "cannot check charity existence")
	}
	return &msg, nil
}

type updateCharityHandler struct {
	auth      x.Authenticator
	charities orm.ModelBucket
}

func (h *updateCharityHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: updateCharityCost}, nil
}

func (h *updateCharityHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, charity, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	charity.Active = msg.Active
	if _, err := h.charities.Put(db, msg.Address, charity); err != nil {
		return nil, errors.Wrap(err, "cannot store charity")
	}
	return &weave.DeliverResult{Data: msg.Address}, nil
}

func (h *updateCharityHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateCharityMsg, *Charity, error) {
	var msg UpdateCharityMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	var charity Charity
	if err := h.charities.One(db, msg.Address, &charity); err != nil {
		return nil, nil, errors.Wrap(err, "charity not registered")
	}
	return &msg, &charity, nil
}

// donator implements the donation flow shared by all donation entry points.
type donator struct {
	auth      x.Authenticator
	charities orm.ModelBucket
	ledger    orm.ModelBucket
	receipts  orm.ModelBucket
	ctrl      CashController
}

// donate moves the funds, updates the running totals and writes the tax
// receipt. The amount must already be validated, the tip may be zero.
func (d donator) donate(ctx weave.Context, db weave.KVStore, charityAddr weave.Address, amount coin.Coin, tip coin.Coin) (*weave.DeliverResult, error) {
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if conf.Paused {
		return nil, errors.Wrap(ErrPaused, "cannot donate")
	}

	var charity Charity
	if err := d.charities.One(db, charityAddr, &charity); err != nil {
		return nil, errors.Wrap(err, "charity not registered")
	}
	if !charity.Active {
		return nil, ErrInactiveCharity
	}

	if !amount.IsGTE(conf.minimumFor(amount.Ticker)) {
		return nil, errors.Wrapf(ErrInsufficientDonation, "minimum is %s", conf.minimumFor(amount.Ticker))
	}

	fee, err := basisPointsOf(amount, conf.FeeBps)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute fee")
	}
	net, err := amount.Subtract(fee)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute net amount")
	}
	toTreasury, err := fee.Add(tip)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute treasury amount")
	}

	donor := x.AnySigner(ctx, d.auth).Address()
	if err := d.ctrl.MoveCoins(db, donor, charity.Address, net); err != nil {
		return nil, errors.Wrap(err, "cannot pay charity")
	}
	if toTreasury.IsPositive() {
		if err := d.ctrl.MoveCoins(db, donor, conf.Treasury, toTreasury); err != nil {
			return nil, errors.Wrap(err, "cannot pay treasury")
		}
	}

	if charity.TotalReceived, err = charity.TotalReceived.Add(net); err != nil {
		return nil, errors.Wrap(err, "cannot update charity total")
	}
	if _, err := d.charities.Put(db, charity.Address, &charity); err != nil {
		return nil, errors.Wrap(err, "cannot store charity")
	}

	lkey := ledgerKey(donor, charity.Address)
	var entry LedgerEntry
	switch err := d.ledger.One(db, lkey, &entry); {
	case err == nil:
		// Accumulate on top of the existing entry.
	case errors.ErrNotFound.Is(err):
		entry = LedgerEntry{
			Metadata: &weave.Metadata{},
			Donor:    donor,
			Charity:  charity.Address,
		}
	default:
		return nil, errors.Wrap(err, "cannot load ledger entry")
	}
	if entry.Donated, err = entry.Donated.Add(net); err != nil {
		return nil, errors.Wrap(err, "cannot update ledger")
	}
	if _, err := d.ledger.Put(db, lkey, &entry); err != nil {
		return nil, errors.Wrap(err, "cannot store ledger entry")
	}

	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "no block time")
	}
	now := weave.AsUnixTime(blockTime)

	// The total tax deductible amount is everything the donor paid out:
	// the net charity payout plus the fee and the tip.
	deductible, err := amount.Add(tip)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute deductible amount")
	}
	receiptType := ReceiptTypeSingle
	if toTreasury.IsPositive() {
		receiptType = ReceiptTypeDual
	}
	rkey := receiptKey(donor, charity.Address, amount, now)
	switch err := d.receipts.Has(db, rkey); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "receipt already exists")
	case errors.ErrNotFound.Is(err):
		// All good, the receipt is new.
	default:
		return nil, errors.Wrap(err, "cannot check receipt existence")
	}
	receipt := TaxReceipt{
		Metadata:        &weave.Metadata{},
		Donor:           donor,
		Charity:         charity.Address,
		CharityAmount:   &net,
		TreasuryAmount:  &toTreasury,
		TotalDeductible: &deductible,
		ReceiptType:     receiptType,
		CreatedAt:       now,
	}
	if _, err := d.receipts.Put(db, rkey, &receipt); err != nil {
		return nil, errors.Wrap(err, "cannot store receipt")
	}

	return &weave.DeliverResult{Data: rkey}, nil
}

// basisPointsOf returns amount*bps/10000, rounded down to the smallest coin
// unit.
func basisPointsOf(amount coin.Coin, bps uint32) (coin.Coin, error) {
	total, err := amount.Multiply(int64(bps))
	if err != nil {
		return coin.Coin{}, err
	}
	share, _, err := total.Divide(feeDenominator)
	return share, err
}

type processDonationHandler struct {
	donator
}

func (h *processDonationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg ProcessDonationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: processDonationCost}, nil
}

func (h *processDonationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg ProcessDonationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	tip := coin.Coin{Ticker: msg.Amount.Ticker}
	if msg.Tip != nil {
		tip = *msg.Tip
	}
	return h.donate(ctx, db, msg.Charity, *msg.Amount, tip)
}

type percentageTipHandler struct {
	donator
}

func (h *percentageTipHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg ProcessPercentageTipDonationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: processDonationCost}, nil
}

func (h *percentageTipHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg ProcessPercentageTipDonationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	tip, err := basisPointsOf(*msg.Amount, msg.TipBps)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute tip")
	}
	return h.donate(ctx, db, msg.Charity, *msg.Amount, tip)
}

type suggestedTipHandler struct {
	donator
}

func (h *suggestedTipHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg ProcessSuggestedTipDonationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: processDonationCost}, nil
}

func (h *suggestedTipHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg ProcessSuggestedTipDonationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	tip, err := basisPointsOf(*msg.Amount, suggestedTipBps[msg.TipOption])
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute tip")
	}
	return h.donate(ctx, db, msg.Charity, *msg.Amount, tip)
}

type setPausedHandler struct {
	auth x.Authenticator
}

func (h *setPausedHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: setPausedCost}, nil
}

func (h *setPausedHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Paused = msg.Paused
	if err := gconf.Save(db, "donation", conf); err != nil {
		return nil, errors.Wrap(err, "cannot save configuration")
	}
	return &weave.DeliverResult{}, nil
}

func (h *setPausedHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetPausedMsg, *Configuration, error) {
	var msg SetPausedMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, &conf, nil
}
