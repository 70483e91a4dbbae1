package schedule

import (
	"fmt"
	"time"

	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	createScheduleCost = 200
	executeCost        = 100
	cancelScheduleCost = 100
	verifyCharityCost  = 0
)

// distributionInterval is the time between two distributions of a schedule.
const distributionInterval = 30 * 24 * time.Hour

// minUsdValue is the lowest allowed USD value of the total escrowed
// amount, $10 in 8 decimal places representation.
const minUsdValue = 10 * 100000000

// CashController allows moving and inspecting funds without direct access
// to the cash bucket. Implemented by the x/cash controller.
type CashController interface {
	Balance(weave.KVStore, weave.Address) (coin.Coins, error)
	MoveCoins(weave.KVStore, weave.Address, weave.Address, coin.Coin) error
}

// RegisterRoutes registers handlers for schedule message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl CashController) {
	r = migration.SchemaMigratingRegistry("schedule", r)

	schedules := NewScheduleBucket()
	charities := NewCharityBucket()

	r.Handle(&CreateScheduleMsg{}, &createScheduleHandler{
		auth:      auth,
		schedules: schedules,
		charities: charities,
		ctrl:      ctrl,
	})
	r.Handle(&ExecuteDistributionsMsg{}, &executeDistributionsHandler{
		distributor: distributor{schedules: schedules, ctrl: ctrl},
	})
	r.Handle(&CancelScheduleMsg{}, &cancelScheduleHandler{
		auth:      auth,
		schedules: schedules,
		ctrl:      ctrl,
	})
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

type createScheduleHandler struct {
	auth      x.Authenticator
	schedules orm.ModelBucket
	charities orm.ModelBucket
	ctrl      CashController
}

func (h *createScheduleHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createScheduleCost}, nil
}

func (h *createScheduleHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, monthly, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "no block time")
	}
	nextAt := weave.AsUnixTime(blockTime).Add(distributionInterval)

	donor := x.AnySigner(ctx, h.auth).Address()
	sched := Schedule{
		Metadata:         &weave.Metadata{},
		Donor:            donor,
		Charity:          msg.Charity,
		Amount:           msg.Amount,
		AmountPerMonth:   &monthly,
		MonthsRemaining:  msg.Months,
		NextDistribution: nextAt,
		Active:           true,
		Memo:             msg.Memo,
	}
	id, err := h.schedules.Put(db, nil, &sched)
	if err != nil {
		return nil, errors.Wrap(err, "cannot store schedule")
	}

	// The whole amount is escrowed upfront on an account controlled by
	// this schedule.
	escrow := ScheduleCondition(id).Address()
	if err := h.ctrl.MoveCoins(db, donor, escrow, *msg.Amount); err != nil {
		return nil, errors.Wrap(err, "cannot escrow funds")
	}
	if err := enqueue(db, nextAt, id); err != nil {
		return nil, errors.Wrap(err, "cannot queue distribution")
	}
	return &weave.DeliverResult{Data: id}, nil
}

func (h *createScheduleHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CreateScheduleMsg, coin.Coin, error) {
	var msg CreateScheduleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, coin.Coin{}, errors.Wrap(err, "load msg")
	}
	switch err := h.charities.Has(db, msg.Charity); {
	case err == nil:
		// All good, the charity is verified.
	case errors.ErrNotFound.Is(err):
		return nil, coin.Coin{}, errors.Wrapf(ErrUnverifiedCharity, "%s", msg.Charity)
	default:
		return nil, coin.Coin{}, errors.Wrap(err, "cannot check charity")
	}
	value, err := usdValueOf(*msg.Amount, msg.TokenPriceUsd)
	if err != nil {
		return nil, coin.Coin{}, errors.Wrap(err, "cannot compute usd value")
	}
	if value < minUsdValue {
		return nil, coin.Coin{}, errors.Wrapf(ErrUsdValueTooLow, "usd value is %d", value)
	}
	monthly, _, err := msg.Amount.Divide(int64(msg.Months))
	if err != nil {
		return nil, coin.Coin{}, errors.Wrap(err, "cannot compute monthly amount")
	}
	return &msg, monthly, nil
}

// usdValueOf returns the USD value of the coin in 8 decimal places
// representation, given the token price in the same representation.
func usdValueOf(c coin.Coin, priceUsd int64) (int64, error) {
	whole, err := mulInt64(c.Whole, priceUsd)
	if err != nil {
		return 0, err
	}
	frac, err := mulInt64(c.Fractional, priceUsd)
	if err != nil {
		return 0, err
	}
	return addInt64(whole, frac/coin.FracUnit)
}

func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/b != a {
		return 0, errors.Wrap(errors.ErrOverflow, "multiplication")
	}
	return c, nil
}

func addInt64(a, b int64) (int64, error) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, errors.Wrap(errors.ErrOverflow, "addition")
	}
	return c, nil
}

// distributor implements a single schedule distribution, shared by the
// execute message handler and the Executor ticker.
type distributor struct {
	schedules orm.ModelBucket
	ctrl      CashController
}

// distribute pays out a single monthly slice of the schedule. Schedules
// that are missing, inactive or not yet due are skipped without an error.
// The returned boolean says whether a payout happened.
func (d distributor) distribute(ctx weave.Context, db weave.KVStore, id []byte) (bool, error) {
	var sched Schedule
	switch err := d.schedules.One(db, id, &sched); {
	case err == nil:
		// All good.
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot load schedule")
	}
	if !sched.Active || sched.MonthsRemaining == 0 {
		return false, nil
	}
	if !weave.IsExpired(ctx, sched.NextDistribution) {
		return false, nil
	}

	conf, err := loadConf(db)
	if err != nil {
		return false, err
	}
	escrow := ScheduleCondition(id).Address()

	gross := *sched.AmountPerMonth
	if sched.MonthsRemaining == 1 {
		// The last distribution flushes the escrow account, including
		// any division remainder left over from the monthly split.
		balance, err := d.ctrl.Balance(db, escrow)
		if err != nil {
			return false, errors.Wrap(err, "cannot get escrow balance")
		}
		for _, c := range balance {
			if c.Ticker == gross.Ticker {
				gross = *c
				break
			}
		}
	}

	fee, err := basisPointsOf(gross, conf.FeeBps)
	if err != nil {
		return false, errors.Wrap(err, "cannot compute fee")
	}
	net, err := gross.Subtract(fee)
	if err != nil {
		return false, errors.Wrap(err, "cannot compute net amount")
	}
	if err := d.ctrl.MoveCoins(db, escrow, sched.Charity, net); err != nil {
		return false, errors.Wrap(err, "cannot pay charity")
	}
	if fee.IsPositive() {
		if err := d.ctrl.MoveCoins(db, escrow, conf.Treasury, fee); err != nil {
			return false, errors.Wrap(err, "cannot pay treasury")
		}
	}

	if err := dequeue(db, sched.NextDistribution, id); err != nil {
		return false, errors.Wrap(err, "cannot dequeue distribution")
	}
	sched.MonthsRemaining--
	sched.NextDistribution = sched.NextDistribution.Add(distributionInterval)
	if sched.MonthsRemaining == 0 {
		sched.Active = false
	} else if err := enqueue(db, sched.NextDistribution, id); err != nil {
		return false, errors.Wrap(err, "cannot queue next distribution")
	}
	if _, err := d.schedules.Put(db, id, &sched); err != nil {
		return false, errors.Wrap(err, "cannot store schedule")
	}
	return true, nil
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

type executeDistributionsHandler struct {
	distributor
}

func (h *executeDistributionsHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	var msg ExecuteDistributionsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	return &weave.CheckResult{GasAllocated: executeCost}, nil
}

// Deliver executes the requested distributions. Anyone can submit this
// message. With no explicit schedule ids everything that is due is
// executed.
func (h *executeDistributionsHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	var msg ExecuteDistributionsMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	ids := msg.ScheduleIds
	if len(ids) == 0 {
		blockTime, err := weave.BlockTime(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "no block time")
		}
		if ids, err = dueScheduleIDs(db, weave.AsUnixTime(blockTime)); err != nil {
			return nil, errors.Wrap(err, "cannot list due schedules")
		}
	}
	var executed int
	for _, id := range ids {
		done, err := h.distribute(ctx, db, id)
		if err != nil {
			return nil, errors.Wrapf(err, "schedule %x", id)
		}
		if done {
			executed++
		}
	}
	return &weave.DeliverResult{Log: fmt.Sprintf("%d distributions executed", executed)}, nil
}

type cancelScheduleHandler struct {
	auth      x.Authenticator
	schedules orm.ModelBucket
	ctrl      CashController
}

func (h *cancelScheduleHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: cancelScheduleCost}, nil
}

func (h *cancelScheduleHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, sched, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Anything not yet distributed is returned to the donor.
	escrow := ScheduleCondition(msg.ScheduleId).Address()
	balance, err := h.ctrl.Balance(db, escrow)
	if err != nil {
		return nil, errors.Wrap(err, "cannot get escrow balance")
	}
	for _, c := range balance {
		if !c.IsPositive() {
			continue
		}
		if err := h.ctrl.MoveCoins(db, escrow, sched.Donor, *c); err != nil {
			return nil, errors.Wrap(err, "cannot refund donor")
		}
	}

	if err := dequeue(db, sched.NextDistribution, msg.ScheduleId); err != nil {
		return nil, errors.Wrap(err, "cannot dequeue distribution")
	}
	sched.Active = false
	sched.MonthsRemaining = 0
	if _, err := h.schedules.Put(db, msg.ScheduleId, sched); err != nil {
		return nil, errors.Wrap(err, "cannot store schedule")
	}
	return &weave.DeliverResult{Data: msg.ScheduleId}, nil
}

func (h *cancelScheduleHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*CancelScheduleMsg, *Schedule, error) {
	var msg CancelScheduleMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	var sched Schedule
	if err := h.schedules.One(db, msg.ScheduleId, &sched); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load schedule")
	}
	if !h.auth.HasAddress(ctx, sched.Donor) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "donor signature required")
	}
	if !sched.Active {
		return nil, nil, errors.Wrap(ErrInactiveSchedule, "cannot cancel")
	}
	return &msg, &sched, nil
}

type verifyCharityHandler struct {
	auth      x.Authenticator
	charities orm.ModelBucket
}

func (h *verifyCharityHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: verifyCharityCost}, nil
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
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
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
	return &weave.CheckResult{GasAllocated: verifyCharityCost}, nil
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
	if !h.auth.HasAddress(ctx, conf.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "owner signature required")
	}
	return &msg, nil
}
