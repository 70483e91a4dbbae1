package portfolio

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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genesis is the block time used for every action in the tests. Fund ids
// are derived from it.
var genesis = time.Unix(1600000000, 0)

func TestHandlers(t *testing.T) {
	var (
		owner      = weavetest.NewCondition()
		admin      = weavetest.NewCondition()
		governance = weavetest.NewCondition()
		donor      = weavetest.NewCondition()
		stranger   = weavetest.NewCondition()
		charity1   = weavetest.NewCondition()
		charity2   = weavetest.NewCondition()
		charity3   = weavetest.NewCondition()
		treasury   = weavetest.NewCondition().Address()
	)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

	fundID := fundKey("emergency relief", weave.AsUnixTime(genesis))
	collection := FundCondition(fundID).Address()

	verify := func(addr weave.Address) action {
		return action{
			conditions: []weave.Condition{admin},
			msg: &VerifyCharityMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Address:  addr,
			},
		}
	}
	createFund := func(charities ...weave.Address) action {
		return action{
			conditions: []weave.Condition{admin},
			msg: &CreateFundMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Name:        "emergency relief",
				Description: "disaster response funding",
				Charities:   charities,
			},
		}
	}
	donate := func(amount coin.Coin) action {
		return action{
			conditions: []weave.Condition{donor},
			msg: &DonateMsg{
				Metadata: &weave.Metadata{Schema: 1},
				FundId:   fundID,
				Amount:   &amount,
			},
		}
	}
	claim := func(who weave.Condition, tickers ...string) action {
		return action{
			conditions: []weave.Condition{who},
			msg: &ClaimMsg{
				Metadata: &weave.Metadata{Schema: 1},
				FundId:   fundID,
				Tickers:  tickers,
			},
		}
	}

	cases := map[string]struct {
		prepareAccounts []account
		actions         []action
		wantAccounts    []account
	}{
		"fund creation requires the admin and verified charities": {
			actions: []action{
				{
					conditions: []weave.Condition{stranger},
					msg: &CreateFundMsg{
						Metadata:  &weave.Metadata{Schema: 1},
						Name:      "emergency relief",
						Charities: []weave.Address{charity1.Address()},
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				verify(charity1.Address()),
				func() action {
					a := createFund(charity1.Address(), charity2.Address())
					a.wantCheckErr = ErrUnverifiedCharity
					a.wantDeliverErr = ErrUnverifiedCharity
					return a
				}(),
				verify(charity2.Address()),
				createFund(charity1.Address(), charity2.Address()),
				func() action {
					a := createFund(charity1.Address(), charity2.Address())
					a.wantDeliverErr = errors.ErrDuplicate
					return a
				}(),
			},
		},
		"donation is split between the charities": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: []action{
				verify(charity1.Address()),
				verify(charity2.Address()),
				verify(charity3.Address()),
				createFund(charity1.Address(), charity2.Address(), charity3.Address()),
				donate(coin.NewCoin(100, 0, "GIVE")),
				// The first charity claims its equal share of the net
				// amount, the rest stays in the collection account.
				claim(charity1),
				func() action {
					a := claim(charity1)
					a.wantDeliverErr = ErrNothingToClaim
					return a
				}(),
				func() action {
					a := claim(stranger)
					a.wantCheckErr = ErrNothingToClaim
					a.wantDeliverErr = ErrNothingToClaim
					return a
				}(),
			},
			wantAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(900, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(1, 0, "GIVE")}},
				// 3334 basis points of the 99 net amount.
				{address: charity1.Address(), coins: coin.Coins{coin.NewCoinp(33, 6600000, "GIVE")}},
				{address: collection, coins: coin.Coins{coin.NewCoinp(65, 993400000, "GIVE")}},
			},
		},
		"claims can be limited to selected tickers": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{
					coin.NewCoinp(100, 0, "BTC"),
					coin.NewCoinp(1000, 0, "GIVE"),
				}},
			},
			actions: []action{
				verify(charity1.Address()),
				createFund(charity1.Address()),
				donate(coin.NewCoin(100, 0, "GIVE")),
				donate(coin.NewCoin(50, 0, "BTC")),
				claim(charity1, "BTC"),
			},
			wantAccounts: []account{
				{address: charity1.Address(), coins: coin.Coins{coin.NewCoinp(49, 500000000, "BTC")}},
				{address: collection, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{
					coin.NewCoinp(0, 500000000, "BTC"),
					coin.NewCoinp(1, 0, "GIVE"),
				}},
				{address: donor.Address(), coins: coin.Coins{
					coin.NewCoinp(50, 0, "BTC"),
					coin.NewCoinp(900, 0, "GIVE"),
				}},
			},
		},
		"inactive fund accepts neither donations nor claims": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: []action{
				verify(charity1.Address()),
				createFund(charity1.Address()),
				donate(coin.NewCoin(100, 0, "GIVE")),
				{
					conditions: []weave.Condition{stranger},
					msg: &SetFundActiveMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						Active:   false,
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &SetFundActiveMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						Active:   false,
					},
				},
				func() action {
					a := donate(coin.NewCoin(100, 0, "GIVE"))
					a.wantCheckErr = ErrInactiveFund
					a.wantDeliverErr = ErrInactiveFund
					return a
				}(),
				// Allocated funds stay locked until the fund is
				// reactivated.
				func() action {
					a := claim(charity1)
					a.wantCheckErr = ErrInactiveFund
					a.wantDeliverErr = ErrInactiveFund
					return a
				}(),
				{
					conditions: []weave.Condition{admin},
					msg: &SetFundActiveMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						Active:   true,
					},
				},
				claim(charity1),
			},
			wantAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(900, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(1, 0, "GIVE")}},
				{address: charity1.Address(), coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: collection},
			},
		},
		"pause blocks donations but not claims": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: []action{
				verify(charity1.Address()),
				createFund(charity1.Address()),
				donate(coin.NewCoin(100, 0, "GIVE")),
				{
					conditions: []weave.Condition{owner},
					msg: &SetPausedMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Paused:   true,
					},
				},
				func() action {
					a := donate(coin.NewCoin(100, 0, "GIVE"))
					a.wantCheckErr = ErrPaused
					a.wantDeliverErr = ErrPaused
					return a
				}(),
				claim(charity1),
			},
			wantAccounts: []account{
				{address: charity1.Address(), coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: collection},
			},
		},
		"ratio control moves to governance after activation": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: []action{
				verify(charity1.Address()),
				verify(charity2.Address()),
				createFund(charity1.Address(), charity2.Address()),
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateRatiosMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						RatioBps: []uint32{6000, 4000},
					},
					wantCheckErr:   errors.ErrState,
					wantDeliverErr: errors.ErrState,
				},
				{
					conditions: []weave.Condition{stranger},
					msg: &ActivateGovernanceMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{owner},
					msg: &ActivateGovernanceMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
				},
				{
					conditions: []weave.Condition{owner},
					msg: &ActivateGovernanceMsg{
						Metadata: &weave.Metadata{Schema: 1},
					},
					wantCheckErr:   errors.ErrState,
					wantDeliverErr: errors.ErrState,
				},
				{
					conditions: []weave.Condition{admin},
					msg: &UpdateRatiosMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						RatioBps: []uint32{5000, 5000},
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				{
					conditions: []weave.Condition{governance},
					msg: &UpdateRatiosMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						RatioBps: []uint32{5000, 3000, 2000},
					},
					wantCheckErr:   errors.ErrMsg,
					wantDeliverErr: errors.ErrMsg,
				},
				{
					conditions: []weave.Condition{governance},
					msg: &UpdateRatiosMsg{
						Metadata: &weave.Metadata{Schema: 1},
						FundId:   fundID,
						RatioBps: []uint32{7000, 3000},
					},
				},
				donate(coin.NewCoin(100, 0, "GIVE")),
				claim(charity1),
				claim(charity2),
			},
			wantAccounts: []account{
				{address: charity1.Address(), coins: coin.Coins{coin.NewCoinp(69, 300000000, "GIVE")}},
				{address: charity2.Address(), coins: coin.Coins{coin.NewCoinp(29, 700000000, "GIVE")}},
				{address: collection},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(1, 0, "GIVE")}},
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "portfolio")

			conf := Configuration{
				Metadata:   &weave.Metadata{Schema: 1},
				Owner:      owner.Address(),
				Admin:      admin.Address(),
				Governance: governance.Address(),
				Treasury:   treasury,
				FeeBps:     100,
			}
			if err := gconf.Save(db, "portfolio", &conf); err != nil {
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

func TestEqualSplitBps(t *testing.T) {
	cases := map[string]struct {
		n    int
		want []uint32
	}{
		"single charity": {
			n:    1,
			want: []uint32{10000},
		},
		"even split": {
			n:    4,
			want: []uint32{2500, 2500, 2500, 2500},
		},
		"remainder goes to the first charities": {
			n:    3,
			want: []uint32{3334, 3333, 3333},
		},
		"large fund": {
			n:    7,
			want: []uint32{1429, 1429, 1429, 1429, 1428, 1428, 1428},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got := equalSplitBps(tc.n)
			assert.Equal(t, tc.want, got)
			var sum uint32
			for _, r := range got {
				sum += r
			}
			assert.Equal(t, uint32(feeDenominator), sum)
		})
	}
}

func TestSplitByRatio(t *testing.T) {
	cases := map[string]struct {
		amount coin.Coin
		ratios []uint32
		want   []coin.Coin
	}{
		"whole split": {
			amount: coin.NewCoin(100, 0, "GIVE"),
			ratios: []uint32{5000, 5000},
			want: []coin.Coin{
				coin.NewCoin(50, 0, "GIVE"),
				coin.NewCoin(50, 0, "GIVE"),
			},
		},
		"remainder goes to the last charity": {
			amount: coin.NewCoin(99, 0, "GIVE"),
			ratios: []uint32{3334, 3333, 3333},
			want: []coin.Coin{
				coin.NewCoin(33, 6600000, "GIVE"),
				coin.NewCoin(32, 996700000, "GIVE"),
				coin.NewCoin(32, 996700000, "GIVE"),
			},
		},
		"everything to one": {
			amount: coin.NewCoin(7, 500000000, "GIVE"),
			ratios: []uint32{10000},
			want:   []coin.Coin{coin.NewCoin(7, 500000000, "GIVE")},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := splitByRatio(tc.amount, tc.ratios)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			sum := coin.NewCoin(0, 0, tc.amount.Ticker)
			for _, c := range got {
				sum, err = sum.Add(c)
				require.NoError(t, err)
			}
			assert.Equal(t, tc.amount, sum)
		})
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
	wantCheckErr   *errors.Error
	wantDeliverErr *errors.Error
}

func (a *action) tx() weave.Tx {
	return &weavetest.Tx{Msg: a.msg}
}

func (a *action) ctx() weave.Context {
	ctx := weave.WithBlockTime(context.Background(), genesis)
	ctx = weave.WithChainID(ctx, "testchain-123")
	auth := &weavetest.CtxAuth{Key: "auth"}
	return auth.SetConditions(ctx, a.conditions...)
}
