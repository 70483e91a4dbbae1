package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

// genesis is the block time used when an action does not declare one.
var genesis = time.Unix(1600000000, 0)

func TestHandlers(t *testing.T) {
	var (
		owner    = weavetest.NewCondition()
		donor    = weavetest.NewCondition()
		stranger = weavetest.NewCondition()
		charity  = weavetest.NewCondition().Address()
		treasury = weavetest.NewCondition().Address()
	)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	escrow := ScheduleCondition(weavetest.SequenceID(1)).Address()

	verify := action{
		conditions: []weave.Condition{owner},
		msg: &VerifyCharityMsg{
			Metadata: &weave.Metadata{Schema: 1},
			Address:  charity,
		},
	}
	// A one year schedule paying out 100 GIVE per month, worth $100 at the
	// declared token price.
	create := action{
		conditions: []weave.Condition{donor},
		msg: &CreateScheduleMsg{
			Metadata:      &weave.Metadata{Schema: 1},
			Charity:       charity,
			Amount:        coin.NewCoinp(1200, 0, "GIVE"),
			Months:        12,
			TokenPriceUsd: 100000000,
			Memo:          "monthly support",
		},
	}
	executeAll := func(at time.Time) action {
		return action{
			conditions: []weave.Condition{stranger},
			msg: &ExecuteDistributionsMsg{
				Metadata: &weave.Metadata{Schema: 1},
			},
			blockTime: at,
		}
	}

	cases := map[string]struct {
		prepareAccounts []account
		actions         []action
		wantAccounts    []account
	}{
		"charity verification requires the owner signature": {
			actions: []action{
				{
					conditions: []weave.Condition{stranger},
					msg: &VerifyCharityMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Address:  charity,
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				verify,
				{
					conditions: []weave.Condition{owner},
					msg: &VerifyCharityMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Address:  charity,
					},
					wantCheckErr:   errors.ErrDuplicate,
					wantDeliverErr: errors.ErrDuplicate,
				},
			},
		},
		"schedule for an unverified charity is rejected": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
			actions: []action{
				func() action {
					a := create
					a.wantCheckErr = ErrUnverifiedCharity
					a.wantDeliverErr = ErrUnverifiedCharity
					return a
				}(),
			},
		},
		"revoked charity cannot receive new schedules": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
			actions: []action{
				verify,
				{
					conditions: []weave.Condition{owner},
					msg: &RevokeCharityMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Address:  charity,
					},
				},
				func() action {
					a := create
					a.wantCheckErr = ErrUnverifiedCharity
					a.wantDeliverErr = ErrUnverifiedCharity
					return a
				}(),
			},
		},
		"total value below ten dollars is rejected": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(12, 0, "GIVE")}},
			},
			actions: []action{
				verify,
				{
					conditions: []weave.Condition{donor},
					msg: &CreateScheduleMsg{
						Metadata:      &weave.Metadata{Schema: 1},
						Charity:       charity,
						Amount:        coin.NewCoinp(9, 0, "GIVE"),
						Months:        9,
						TokenPriceUsd: 100000000,
					},
					wantCheckErr:   ErrUsdValueTooLow,
					wantDeliverErr: ErrUsdValueTooLow,
				},
				// The floor applies to the total escrowed amount, not to
				// the monthly slice.
				{
					conditions: []weave.Condition{donor},
					msg: &CreateScheduleMsg{
						Metadata:      &weave.Metadata{Schema: 1},
						Charity:       charity,
						Amount:        coin.NewCoinp(12, 0, "GIVE"),
						Months:        12,
						TokenPriceUsd: 100000000,
					},
				},
			},
			wantAccounts: []account{
				{address: donor.Address()},
				{address: escrow, coins: coin.Coins{coin.NewCoinp(12, 0, "GIVE")}},
			},
		},
		"creating a schedule escrows the full amount": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
			actions: []action{verify, create},
			wantAccounts: []account{
				{address: donor.Address()},
				{address: escrow, coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
		},
		"execution before the interval does nothing": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
			actions: []action{
				verify,
				create,
				executeAll(genesis.Add(24 * time.Hour)),
			},
			wantAccounts: []account{
				{address: escrow, coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
				{address: charity},
				{address: treasury},
			},
		},
		"due distribution pays the charity and the treasury": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
			actions: []action{
				verify,
				create,
				executeAll(genesis.Add(31 * 24 * time.Hour)),
				// The next distribution is a month away.
				executeAll(genesis.Add(31 * 24 * time.Hour)),
			},
			wantAccounts: []account{
				{address: escrow, coins: coin.Coins{coin.NewCoinp(1100, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(1, 0, "GIVE")}},
			},
		},
		"last distribution flushes the division remainder": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(100, 0, "GIVE")}},
			},
			actions: []action{
				verify,
				{
					conditions: []weave.Condition{donor},
					msg: &CreateScheduleMsg{
						Metadata:      &weave.Metadata{Schema: 1},
						Charity:       charity,
						Amount:        coin.NewCoinp(100, 0, "GIVE"),
						Months:        3,
						TokenPriceUsd: 100000000,
					},
				},
				executeAll(genesis.Add(31 * 24 * time.Hour)),
				executeAll(genesis.Add(61 * 24 * time.Hour)),
				executeAll(genesis.Add(91 * 24 * time.Hour)),
			},
			wantAccounts: []account{
				// Nothing is left behind on the escrow account.
				{address: escrow},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 1, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(0, 999999999, "GIVE")}},
			},
		},
		"cancellation refunds the remaining escrow": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1200, 0, "GIVE")}},
			},
			actions: []action{
				verify,
				create,
				executeAll(genesis.Add(31 * 24 * time.Hour)),
				{
					conditions: []weave.Condition{stranger},
					msg: &CancelScheduleMsg{
						Metadata:   &weave.Metadata{Schema: 1},
						ScheduleId: weavetest.SequenceID(1),
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{donor},
					msg: &CancelScheduleMsg{
						Metadata:   &weave.Metadata{Schema: 1},
						ScheduleId: weavetest.SequenceID(1),
					},
				},
				{
					conditions: []weave.Condition{donor},
					msg: &CancelScheduleMsg{
						Metadata:   &weave.Metadata{Schema: 1},
						ScheduleId: weavetest.SequenceID(1),
					},
					wantCheckErr:   ErrInactiveSchedule,
					wantDeliverErr: ErrInactiveSchedule,
				},
				// A cancelled schedule is never paid out again.
				executeAll(genesis.Add(61 * 24 * time.Hour)),
			},
			wantAccounts: []account{
				{address: escrow},
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1100, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(1, 0, "GIVE")}},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "schedule")

			conf := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner.Address(),
				Treasury: treasury,
				FeeBps:   100,
			}
			if err := gconf.Save(db, "schedule", &conf); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}

			for _, a := range tc.prepareAccounts {
				for _, c := range a.coins {
					if err := ctrl.CoinMint(db, a.address, *c); err != nil {
						t.Fatalf("cannot issue %q to %s: %s", c, a.address, err)
					}
				}
			}

			for i, a := range tc.actions {
				cache := db.CacheWrap()
				if _, err := rt.Check(a.ctx(), cache, a.tx()); !a.wantCheckErr.Is(err) {
					t.Logf("want: %+v", a.wantCheckErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d check (%T)", i, a.msg)
				}
				cache.Discard()
				if a.wantCheckErr != nil {
					continue
				}

				if _, err := rt.Deliver(a.ctx(), db, a.tx()); !a.wantDeliverErr.Is(err) {
					t.Logf("want: %+v", a.wantDeliverErr)
					t.Logf(" got: %+v", err)
					t.Fatalf("action %d delivery (%T)", i, a.msg)
				}
			}

			for i, a := range tc.wantAccounts {
				coins, err := ctrl.Balance(db, a.address)
				// A wallet that was never funded does not exist, which is
				// the same as an empty balance.
				if err != nil && !errors.ErrNotFound.Is(err) {
					t.Fatalf("cannot get %+v balance: %s", a, err)
				}
				if !coins.Equals(a.coins) {
					t.Logf("want: %+v", a.coins)
					t.Logf("got: %+v", coins)
					t.Errorf("unexpected coins for account #%d (%s)", i, a.address)
				}
			}
		})
	}
}

func TestUsdValueOf(t *testing.T) {
	cases := map[string]struct {
		amount coin.Coin
		price  int64
		want   int64
	}{
		"whole tokens at one dollar": {
			amount: coin.NewCoin(100, 0, "GIVE"),
			price:  100000000,
			want:   10000000000,
		},
		"fractional tokens": {
			amount: coin.NewCoin(0, 500000000, "GIVE"),
			price:  100000000,
			want:   50000000,
		},
		"high price": {
			amount: coin.NewCoin(2, 0, "GIVE"),
			price:  350000000000,
			want:   700000000000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := usdValueOf(tc.amount, tc.price)
			if err != nil {
				t.Fatalf("cannot compute value: %s", err)
			}
			if got != tc.want {
				t.Fatalf("want %d, got %d", tc.want, got)
			}
		})
	}
}

func TestUsdValueOfOverflow(t *testing.T) {
	amount := coin.NewCoin(coin.MaxInt, 0, "GIVE")
	if _, err := usdValueOf(amount, 350000000000); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
}

// account represents a single account state - the coins/funds it holds.
type account struct {
	address weave.Address
	coins   coin.Coins
}

// action represents a single request call that is handled by a handler.
type action struct {
	conditions     []weave.Condition
	msg            weave.Msg
	blockTime      time.Time
	wantCheckErr   *errors.Error
	wantDeliverErr *errors.Error
}

func (a *action) tx() weave.Tx {
	return &weavetest.Tx{Msg: a.msg}
}

func (a *action) ctx() weave.Context {
	now := a.blockTime
	if now.IsZero() {
		now = genesis
	}
	ctx := weave.WithBlockTime(context.Background(), now)
	ctx = weave.WithChainID(ctx, "testchain-123")
	auth := &weavetest.CtxAuth{Key: "auth"}
	return auth.SetConditions(ctx, a.conditions...)
}
