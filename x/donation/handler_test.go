package donation

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

	register := func(active bool) []action {
		acts := []action{
			{
				conditions: []weave.Condition{owner},
				msg: &RegisterCharityMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Address:  charity,
					Name:     "Save The Gophers",
				},
			},
		}
		if !active {
			acts = append(acts, action{
				conditions: []weave.Condition{owner},
				msg: &UpdateCharityMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Address:  charity,
					Active:   false,
				},
			})
		}
		return acts
	}

	cases := map[string]struct {
		prepareAccounts []account
		actions         []action
		wantAccounts    []account
	}{
		"charity registration requires the owner signature": {
			actions: []action{
				{
					conditions: []weave.Condition{stranger},
					msg: &RegisterCharityMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Address:  charity,
						Name:     "Save The Gophers",
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
			},
		},
		"charity cannot be registered twice": {
			actions: append(register(true), action{
				conditions: []weave.Condition{owner},
				msg: &RegisterCharityMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Address:  charity,
					Name:     "Save The Gophers Again",
				},
				wantCheckErr:   errors.ErrDuplicate,
				wantDeliverErr: errors.ErrDuplicate,
			}),
		},
		"donation pays the charity, the platform fee and the tip": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(true), action{
				conditions: []weave.Condition{donor},
				msg: &ProcessDonationMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Charity:  charity,
					Amount:   coin.NewCoinp(100, 0, "GIVE"),
					Tip:      coin.NewCoinp(5, 0, "GIVE"),
				},
			}),
			wantAccounts: []account{
				// 1% fee on 100 goes to the treasury together with the tip.
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(895, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(6, 0, "GIVE")}},
			},
		},
		"donation without a tip pays only the fee": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(true), action{
				conditions: []weave.Condition{donor},
				msg: &ProcessDonationMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Charity:  charity,
					Amount:   coin.NewCoinp(100, 0, "GIVE"),
				},
			}),
			wantAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(900, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(1, 0, "GIVE")}},
			},
		},
		"percentage tip is computed from the amount": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(true), action{
				conditions: []weave.Condition{donor},
				msg: &ProcessPercentageTipDonationMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Charity:  charity,
					Amount:   coin.NewCoinp(100, 0, "GIVE"),
					TipBps:   1000,
				},
			}),
			wantAccounts: []account{
				// 10% tip on top of the 1% fee.
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(890, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(11, 0, "GIVE")}},
			},
		},
		"suggested tip option selects a preset rate": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(true), action{
				conditions: []weave.Condition{donor},
				msg: &ProcessSuggestedTipDonationMsg{
					Metadata:  &weave.Metadata{Schema: 1},
					Charity:   charity,
					Amount:    coin.NewCoinp(100, 0, "GIVE"),
					TipOption: 2,
				},
			}),
			wantAccounts: []account{
				// The third option is a 20% tip.
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(880, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(99, 0, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(21, 0, "GIVE")}},
			},
		},
		"donation of exactly the minimum succeeds, one unit below fails": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(true),
				action{
					conditions: []weave.Condition{donor},
					msg: &ProcessDonationMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Charity:  charity,
						Amount:   coin.NewCoinp(4, 999999999, "GIVE"),
					},
					wantDeliverErr: ErrInsufficientDonation,
				},
				action{
					conditions: []weave.Condition{donor},
					msg: &ProcessDonationMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Charity:  charity,
						Amount:   coin.NewCoinp(5, 0, "GIVE"),
					},
				},
			),
			wantAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(995, 0, "GIVE")}},
				{address: charity, coins: coin.Coins{coin.NewCoinp(4, 950000000, "GIVE")}},
				{address: treasury, coins: coin.Coins{coin.NewCoinp(0, 50000000, "GIVE")}},
			},
		},
		"donation to an unregistered charity is rejected": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: []action{
				{
					conditions: []weave.Condition{donor},
					msg: &ProcessDonationMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Charity:  charity,
						Amount:   coin.NewCoinp(100, 0, "GIVE"),
					},
					wantDeliverErr: errors.ErrNotFound,
				},
			},
		},
		"donation to an inactive charity is rejected": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(false), action{
				conditions: []weave.Condition{donor},
				msg: &ProcessDonationMsg{
					Metadata: &weave.Metadata{Schema: 1},
					Charity:  charity,
					Amount:   coin.NewCoinp(100, 0, "GIVE"),
				},
				wantDeliverErr: ErrInactiveCharity,
			}),
		},
		"paused platform does not accept donations": {
			prepareAccounts: []account{
				{address: donor.Address(), coins: coin.Coins{coin.NewCoinp(1000, 0, "GIVE")}},
			},
			actions: append(register(true),
				action{
					conditions: []weave.Condition{stranger},
					msg: &SetPausedMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Paused:   true,
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				action{
					conditions: []weave.Condition{owner},
					msg: &SetPausedMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Paused:   true,
					},
				},
				action{
					conditions: []weave.Condition{donor},
					msg: &ProcessDonationMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Charity:  charity,
						Amount:   coin.NewCoinp(100, 0, "GIVE"),
					},
					wantDeliverErr: ErrPaused,
				},
			),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "donation")

			conf := Configuration{
				Metadata:        &weave.Metadata{Schema: 1},
				Owner:           owner.Address(),
				Treasury:        treasury,
				FeeBps:          100,
				MinimumDonation: coin.Coin{Whole: 5},
			}
			if err := gconf.Save(db, "donation", &conf); err != nil {
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

func TestDonationWritesReceipt(t *testing.T) {
	var (
		owner   = weavetest.NewCondition()
		donor   = weavetest.NewCondition()
		charity = weavetest.NewCondition().Address()
	)

	cases := map[string]struct {
		feeBps         uint32
		tip            *coin.Coin
		wantType       string
		wantCharity    coin.Coin
		wantTreasury   coin.Coin
		wantDeductible coin.Coin
	}{
		"no fee and no tip is a single beneficiary receipt": {
			feeBps:         0,
			wantType:       ReceiptTypeSingle,
			wantCharity:    coin.NewCoin(100, 0, "GIVE"),
			wantTreasury:   coin.NewCoin(0, 0, "GIVE"),
			wantDeductible: coin.NewCoin(100, 0, "GIVE"),
		},
		"fee and tip make a dual beneficiary receipt": {
			feeBps:         100,
			tip:            coin.NewCoinp(5, 0, "GIVE"),
			wantType:       ReceiptTypeDual,
			wantCharity:    coin.NewCoin(99, 0, "GIVE"),
			wantTreasury:   coin.NewCoin(6, 0, "GIVE"),
			wantDeductible: coin.NewCoin(105, 0, "GIVE"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, ctrl)

			db := store.MemStore()
			migration.MustInitPkg(db, "cash", "donation")

			conf := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner.Address(),
				Treasury: weavetest.NewCondition().Address(),
				FeeBps:   tc.feeBps,
			}
			if err := gconf.Save(db, "donation", &conf); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
			}
			if err := ctrl.CoinMint(db, donor.Address(), coin.NewCoin(1000, 0, "GIVE")); err != nil {
				t.Fatalf("cannot fund donor: %s", err)
			}

			now := time.Unix(1600000000, 0)
			ctx := weave.WithBlockTime(context.Background(), now)
			ctx = auth.SetConditions(ctx, owner)
			regTx := &weavetest.Tx{Msg: &RegisterCharityMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Address:  charity,
				Name:     "Save The Gophers",
			}}
			if _, err := rt.Deliver(ctx, db, regTx); err != nil {
				t.Fatalf("cannot register charity: %s", err)
			}

			ctx = weave.WithBlockTime(context.Background(), now)
			ctx = auth.SetConditions(ctx, donor)
			tx := &weavetest.Tx{Msg: &ProcessDonationMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Charity:  charity,
				Amount:   coin.NewCoinp(100, 0, "GIVE"),
				Tip:      tc.tip,
			}}
			res, err := rt.Deliver(ctx, db, tx)
			if err != nil {
				t.Fatalf("cannot donate: %s", err)
			}

			var receipt TaxReceipt
			if err := NewReceiptBucket().One(db, res.Data, &receipt); err != nil {
				t.Fatalf("cannot load receipt: %s", err)
			}
			assert.Equal(t, tc.wantType, receipt.ReceiptType)
			assert.Equal(t, &tc.wantCharity, receipt.CharityAmount)
			assert.Equal(t, &tc.wantTreasury, receipt.TreasuryAmount)
			assert.Equal(t, &tc.wantDeductible, receipt.TotalDeductible)
			assert.Equal(t, weave.AsUnixTime(now), receipt.CreatedAt)

			var entry LedgerEntry
			if err := NewLedgerBucket().One(db, ledgerKey(donor.Address(), charity), &entry); err != nil {
				t.Fatalf("cannot load ledger entry: %s", err)
			}
			assert.Equal(t, coin.Coins{&tc.wantCharity}, entry.Donated)
		})
	}
}

func TestBasisPointsOf(t *testing.T) {
	cases := map[string]struct {
		amount coin.Coin
		bps    uint32
		want   coin.Coin
	}{
		"one percent": {
			amount: coin.NewCoin(100, 0, "GIVE"),
			bps:    100,
			want:   coin.NewCoin(1, 0, "GIVE"),
		},
		"fractional result": {
			amount: coin.NewCoin(100, 0, "GIVE"),
			bps:    250,
			want:   coin.NewCoin(2, 500000000, "GIVE"),
		},
		"zero rate": {
			amount: coin.NewCoin(100, 0, "GIVE"),
			bps:    0,
			want:   coin.NewCoin(0, 0, "GIVE"),
		},
		"whole amount": {
			amount: coin.NewCoin(3, 140000000, "GIVE"),
			bps:    10000,
			want:   coin.NewCoin(3, 140000000, "GIVE"),
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := basisPointsOf(tc.amount, tc.bps)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
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
	ctx := weave.WithBlockTime(context.Background(), time.Unix(1600000000, 0))
	ctx = weave.WithChainID(ctx, "testchain-123")
	auth := &weavetest.CtxAuth{Key: "auth"}
	return auth.SetConditions(ctx, a.conditions...)
}
