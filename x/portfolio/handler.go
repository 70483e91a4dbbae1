package portfolio

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
	createFundCost = 200
	donateCost     = 100
	claimCost      = 100
	adminCost      = 0
)

// CashController allows moving donor funds without direct access to the
// cash bucket. Implemented by the x/cash controller.
type CashController interface {
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterRoutes registers handlers for portfolio message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("portfolio", r)

	funds := NewFundBucket()
	allocations := NewAllocationBucket()
	charities := NewCharityBucket()

	r.Handle(&CreateFundMsg{}, &createFundHandler{
		auth:      auth,
		funds:     funds,
		charities: charities,
	})
	r.Handle(&DonateMsg{}, &donateHandler{
		auth:        auth,
		funds:       funds,
		allocations: allocations,
		ctrl:        ctrl,
	})
	r.Handle(&ClaimMsg{}, &claimHandler{
		auth:        auth,
		funds:       funds,
		allocations: allocations,
		ctrl:        ctrl,
	})
	r.Handle(&UpdateRatiosMsg{}, &updateRatiosHandler{
		auth:  auth,
		funds: funds,
	})
	r.Handle(&SetFundActiveMsg{}, &setFundActiveHandler{
		auth:  auth,
		funds: funds,
	})
	r.Handle(&ActivateGovernanceMsg{}, &activateGovernanceHandler{auth: auth})
	r.Handle(&SetPausedMsg{}, &setPausedHandler{auth: auth})
	r.Handle(&VerifyCharityMsg{}, &verifyCharityHandler{
		auth:      auth,
		charities: charities,
	})
	r.Handle(&RevokeCharityMsg{}, &revokeCharityHandler{
		auth:      auth,
		charities: charities,
	})
	r.Handle(&UpdateConfigurationMsg{}, NewConfigHandler(auth))
}

type createFundHandler struct {
	auth      x.Authenticator
	funds     orm.ModelBucket
	charities orm.ModelBucket
}

func (h *createFundHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createFundCost}, nil
}

func (h *createFundHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "no block time")
	}
	createdAt := weave.AsUnixTime(blockTime)
	id := fundKey(msg.Name, createdAt)
	switch err := h.funds.Has(db, id); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "fund already exists")
	case errors.ErrNotFound.Is(err):
		// All good, the fund is new.
	default:
		return nil, errors.Wrap(err, "cannot check fund existence")
	}

	fund := Fund{
		Metadata:    &weave.Metadata{},
		Name:        msg.Name,
		Description: msg.Description,
		Active:      true,
		CreatedAt:   createdAt,
		Charities:   msg.Charities,
		RatioBps:    equalSplitBps(len(msg.Charities)),
	}
	if _, err := h.funds.Put(db, id, &fund); err != nil {
		return nil, errors.Wrap(err, "cannot store fund")
	}
	return &weave.DeliverResult{Data: id}, nil
}

func (h *createFundHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateFundMsg, error) {
	var msg CreateFundMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	for _, c := range msg.Charities {
		switch err := h.charities.Has(db, c); {
		case err == nil:
			// All good, the charity is verified.
		case errors.ErrNotFound.Is(err):
			return nil, errors.Wrapf(ErrUnverifiedCharity, "%s", c)
		default:
			return nil, errors.Wrap(err, "cannot check charity")
		}
	}
	return &msg, nil
}

// equalSplitBps returns an equal ratio split summing to the whole. With the
// denominator not divisible by n, the first denominator%n charities get one
// extra basis point.
func equalSplitBps(n int) []uint32 {
	share := uint32(feeDenominator / n)
	extra := feeDenominator % n
	out := make([]uint32, n)
	for i := range out {
		out[i] = share
		if i < extra {
			out[i]++
		}
	}
	return out
}

type donateHandler struct {
	auth        x.Authenticator
	funds       orm.ModelBucket
	allocations orm.ModelBucket
	ctrl        CashController
}

func (h *donateHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: donateCost}, nil
}

func (h *donateHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}

	amount := *msg.Amount
	fee, err := basisPointsOf(amount, conf.FeeBps)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute fee")
	}
	net, err := amount.Subtract(fee)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compute net amount")
	}

	donor := x.AnySigner(ctx, h.auth).Address()
	collection := FundCondition(msg.FundId).Address()
	if err := h.ctrl.MoveCoins(db, donor, collection, net); err != nil {
		return nil, errors.Wrap(err, "cannot pay fund")
	}
	if fee.IsPositive() {
		if err := h.ctrl.MoveCoins(db, donor, conf.Treasury, fee); err != nil {
			return nil, errors.Wrap(err, "cannot pay treasury")
		}
	}

	shares, err := splitByRatio(net, fund.RatioBps)
	if err != nil {
		return nil, errors.Wrap(err, "cannot split donation")
	}
	for i, charity := range fund.Charities {
		if shares[i].IsZero() {
			continue
		}
		if err := h.credit(db, msg.FundId, charity, shares[i]); err != nil {
			return nil, errors.Wrapf(err, "cannot credit %s", charity)
		}
	}

	if fund.TotalRaised, err = fund.TotalRaised.Add(net); err != nil {
		return nil, errors.Wrap(err, "cannot update fund total")
	}
	if _, err := h.funds.Put(db, msg.FundId, fund); err != nil {
		return nil, errors.Wrap(err, "cannot store fund")
	}
	return &weave.DeliverResult{Data: msg.FundId}, nil
}

// credit adds the given amount to the claimable balance of the charity in
// the fund, creating the allocation entry if needed.
func (h *donateHandler) credit(db weave.KVStore, fundID []byte, charity weave.Address, amount coin.Coin) error {
	akey := allocationKey(fundID, charity)
	var alloc Allocation
	switch err := h.allocations.One(db, akey, &alloc); {
	case err == nil:
		// Accumulate on top of the existing allocation.
	case errors.ErrNotFound.Is(err):
		alloc = Allocation{
			Metadata: &weave.Metadata{},
			Fund:     fundID,
			Charity:  charity,
		}
	default:
		return errors.Wrap(err, "cannot load allocation")
	}
	var err error
	if alloc.Claimable, err = alloc.Claimable.Add(amount); err != nil {
		return errors.Wrap(err, "cannot update claimable")
	}
	if _, err := h.allocations.Put(db, akey, &alloc); err != nil {
		return errors.Wrap(err, "cannot store allocation")
	}
	return nil
}

func (h *donateHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*DonateMsg, *Fund, error) {
	var msg DonateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if conf.Paused {
		return nil, nil, errors.Wrap(ErrPaused, "cannot donate")
	}
	var fund Fund
	if err := h.funds.One(db, msg.FundId, &fund); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load fund")
	}
	if !fund.Active {
		return nil, nil, ErrInactiveFund
	}
	return &msg, &fund, nil
}

// splitByRatio splits the amount proportionally to the given basis point
// ratios. Every slice is rounded down and the remainder goes to the last
// charity, so that the slices always sum up to the full amount.
func splitByRatio(amount coin.Coin, ratios []uint32) ([]coin.Coin, error) {
	out := make([]coin.Coin, len(ratios))
	rest := amount
	for i, r := range ratios {
		if i == len(ratios)-1 {
			out[i] = rest
			break
		}
		share, err := basisPointsOf(amount, r)
		if err != nil {
			return nil, err
		}
		out[i] = share
		if rest, err = rest.Subtract(share); err != nil {
			return nil, err
		}
	}
	return out, nil
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

type claimHandler struct {
	auth        x.Authenticator
	funds       orm.ModelBucket
	allocations orm.ModelBucket
	ctrl        CashController
}

func (h *claimHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: claimCost}, nil
}

// Deliver pays out the claimable balance of the signing charity. Claims are
// processed even when donations are paused.
func (h *claimHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, alloc, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	wanted := func(ticker string) bool {
		if len(msg.Tickers) == 0 {
			return true
		}
		for _, t := range msg.Tickers {
			if t == ticker {
				return true
			}
		}
		return false
	}

	collection := FundCondition(msg.FundId).Address()
	var claimed coin.Coins
	for _, c := range alloc.Claimable {
		if !c.IsPositive() || !wanted(c.Ticker) {
			continue
		}
		if err := h.ctrl.MoveCoins(db, collection, alloc.Charity, *c); err != nil {
			return nil, errors.Wrap(err, "cannot pay charity")
		}
		if claimed, err = claimed.Add(*c); err != nil {
			return nil, errors.Wrap(err, "cannot sum claim")
		}
	}
	if len(claimed) == 0 {
		return nil, ErrNothingToClaim
	}

	for _, c := range claimed {
		if alloc.Claimable, err = alloc.Claimable.Add(c.Negative()); err != nil {
			return nil, errors.Wrap(err, "cannot update claimable")
		}
		if alloc.Claimed, err = alloc.Claimed.Add(*c); err != nil {
			return nil, errors.Wrap(err, "cannot update claimed")
		}
	}
	akey := allocationKey(msg.FundId, alloc.Charity)
	if _, err := h.allocations.Put(db, akey, alloc); err != nil {
		return nil, errors.Wrap(err, "cannot store allocation")
	}

	for _, c := range claimed {
		if fund.TotalDistributed, err = fund.TotalDistributed.Add(*c); err != nil {
			return nil, errors.Wrap(err, "cannot update fund total")
		}
	}
	if _, err := h.funds.Put(db, msg.FundId, fund); err != nil {
		return nil, errors.Wrap(err, "cannot store fund")
	}
	return &weave.DeliverResult{Data: msg.FundId}, nil
}

func (h *claimHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ClaimMsg, *Fund, *Allocation, error) {
	var msg ClaimMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	var fund Fund
	if err := h.funds.One(db, msg.FundId, &fund); err != nil {
		return nil, nil, nil, errors.Wrap(err, "cannot load fund")
	}
	if !fund.Active {
		return nil, nil, nil, ErrInactiveFund
	}
	claimer := x.AnySigner(ctx, h.auth).Address()
	var alloc Allocation
	switch err := h.allocations.One(db, allocationKey(msg.FundId, claimer), &alloc); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return nil, nil, nil, errors.Wrap(ErrNothingToClaim, "no allocation")
	default:
		return nil, nil, nil, errors.Wrap(err, "cannot load allocation")
	}
	return &msg, &fund, &alloc, nil
}

type updateRatiosHandler struct {
	auth  x.Authenticator
	funds orm.ModelBucket
}

func (h *updateRatiosHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminCost}, nil
}

func (h *updateRatiosHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	fund.RatioBps = msg.RatioBps
	if _, err := h.funds.Put(db, msg.FundId, fund); err != nil {
		return nil, errors.Wrap(err, "cannot store fund")
	}
	return &weave.DeliverResult{Data: msg.FundId}, nil
}

func (h *updateRatiosHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*UpdateRatiosMsg, *Fund, error) {
	var msg UpdateRatiosMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	// Ratios are frozen at their equal split until governance takes over.
	if !conf.GovernanceActive {
		return nil, nil, errors.Wrap(errors.ErrState, "governance not active")
	}
	if !h.auth.HasAddress(ctx, conf.Governance) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "governance signature required")
	}
	var fund Fund
	if err := h.funds.One(db, msg.FundId, &fund); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load fund")
	}
	if len(msg.RatioBps) != len(fund.Charities) {
		return nil, nil, errors.Wrap(errors.ErrMsg, "one ratio per charity required")
	}
	return &msg, &fund, nil
}

type setFundActiveHandler struct {
	auth  x.Authenticator
	funds orm.ModelBucket
}

func (h *setFundActiveHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminCost}, nil
}

func (h *setFundActiveHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, fund, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	fund.Active = msg.Active
	if _, err := h.funds.Put(db, msg.FundId, fund); err != nil {
		return nil, errors.Wrap(err, "cannot store fund")
	}
	return &weave.DeliverResult{Data: msg.FundId}, nil
}

func (h *setFundActiveHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SetFundActiveMsg, *Fund, error) {
	var msg SetFundActiveMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	var fund Fund
	if err := h.funds.One(db, msg.FundId, &fund); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load fund")
	}
	return &msg, &fund, nil
}

type activateGovernanceHandler struct {
	auth x.Authenticator
}

func (h *activateGovernanceHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminCost}, nil
}

// Deliver enables governance control over fund ratios. This switch cannot
// be reverted.
func (h *activateGovernanceHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.GovernanceActive = true
	if err := gconf.Save(db, "portfolio", conf); err != nil {
		return nil, errors.Wrap(err, "cannot save configuration")
	}
	return &weave.DeliverResult{}, nil
}

func (h *activateGovernanceHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*Configuration, error) {
	var msg ActivateGovernanceMsg
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
	if conf.GovernanceActive {
		return nil, errors.Wrap(errors.ErrState, "governance already active")
	}
	if len(conf.Governance) == 0 {
		return nil, errors.Wrap(errors.ErrState, "no governance address configured")
	}
	return &conf, nil
}

type setPausedHandler struct {
	auth x.Authenticator
}

func (h *setPausedHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminCost}, nil
}

func (h *setPausedHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf.Paused = msg.Paused
	if err := gconf.Save(db, "portfolio", conf); err != nil {
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

type verifyCharityHandler struct {
	auth      x.Authenticator
	charities orm.ModelBucket
}

func (h *verifyCharityHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminCost}, nil
}

func (h *verifyCharityHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	charity := Charity{
		Metadata: &weave.Metadata{},
		Address:  msg.Address,
	}
	if _, err := h.charities.Put(db, msg.Address, &charity); err != nil {
		return nil, errors.Wrap(err, "cannot store charity")
	}
	return &weave.DeliverResult{Data: msg.Address}, nil
}

func (h *verifyCharityHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*VerifyCharityMsg, error) {
	var msg VerifyCharityMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	switch err := h.charities.Has(db, msg.Address); {
	case err == nil:
		return nil, errors.Wrap(errors.ErrDuplicate, "charity already verified")
	case errors.ErrNotFound.Is(err):
		// All good, not verified yet.
	default:
		return nil, errors.Wrap(err, "cannot check charity existence")
	}
	return &msg, nil
}

type revokeCharityHandler struct {
	auth      x.Authenticator
	charities orm.ModelBucket
}

func (h *revokeCharityHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: adminCost}, nil
}

func (h *revokeCharityHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.charities.Delete(db, msg.Address); err != nil {
		return nil, errors.Wrap(err, "cannot delete charity")
	}
	return &weave.DeliverResult{Data: msg.Address}, nil
}

func (h *revokeCharityHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeCharityMsg, error) {
	var msg RevokeCharityMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Admin) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "admin signature required")
	}
	return &msg, nil
}
