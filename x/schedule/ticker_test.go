package schedule

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/x/cash"
)

func TestTickerExecutesDueDistributions(t *testing.T) {
	var (
		owner    = weavetest.NewCondition()
		donor    = weavetest.NewCondition()
		charity  = weavetest.NewCondition().Address()
		treasury = weavetest.NewCondition().Address()
	)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	ctrl := cash.NewController(cash.NewBucket())
	RegisterRoutes(rt, auth, ctrl)

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
	if err := ctrl.CoinMint(db, donor.Address(), coin.NewCoin(1200, 0, "GIVE")); err != nil {
		t.Fatalf("cannot fund donor: %s", err)
	}

	createdAt := time.Unix(1600000000, 0)
	ctx := weave.WithBlockTime(context.Background(), createdAt)
	ctx = auth.SetConditions(ctx, owner)
	verifyTx := &weavetest.Tx{Msg: &VerifyCharityMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  charity,
	}}
	if _, err := rt.Deliver(ctx, db, verifyTx); err != nil {
		t.Fatalf("cannot verify charity: %s", err)
	}
	ctx = weave.WithBlockTime(context.Background(), createdAt)
	ctx = auth.SetConditions(ctx, donor)
	createTx := &weavetest.Tx{Msg: &CreateScheduleMsg{
		Metadata:      &weave.Metadata{Schema: 1},
		Charity:       charity,
		Amount:        coin.NewCoinp(1200, 0, "GIVE"),
		Months:        12,
		TokenPriceUsd: 100000000,
	}}
	if _, err := rt.Deliver(ctx, db, createTx); err != nil {
		t.Fatalf("cannot create schedule: %s", err)
	}

	ticker := NewExecutor(ctrl)

	// Nothing is due yet.
	early := weave.WithBlockTime(context.Background(), createdAt.Add(24*time.Hour))
	if res := ticker.Tick(early, db); len(res.Tags) != 0 {
		t.Fatalf("no distribution expected, got %d tags", len(res.Tags))
	}

	due := weave.WithBlockTime(context.Background(), createdAt.Add(31*24*time.Hour))
	res := ticker.Tick(due, db)
	if len(res.Tags) != 1 {
		t.Fatalf("one distribution expected, got %d tags", len(res.Tags))
	}
	if !bytes.Equal(res.Tags[0].Key, []byte("distribution")) {
		t.Fatalf("unexpected tag key %q", res.Tags[0].Key)
	}
	if !bytes.Equal(res.Tags[0].Value, weavetest.SequenceID(1)) {
		t.Fatalf("unexpected tag value %x", res.Tags[0].Value)
	}

	assertBalance := func(addr weave.Address, want coin.Coin) {
		t.Helper()
		coins, err := ctrl.Balance(db, addr)
		if err != nil {
			t.Fatalf("cannot get balance: %s", err)
		}
		if !coins.Equals(coin.Coins{&want}) {
			t.Fatalf("want %q, got %q", want, coins)
		}
	}
	assertBalance(charity, coin.NewCoin(99, 0, "GIVE"))
	assertBalance(treasury, coin.NewCoin(1, 0, "GIVE"))
	assertBalance(ScheduleCondition(weavetest.SequenceID(1)).Address(), coin.NewCoin(1100, 0, "GIVE"))

	// The same block must not pay the schedule twice.
	if res := ticker.Tick(due, db); len(res.Tags) != 0 {
		t.Fatalf("no distribution expected, got %d tags", len(res.Tags))
	}
}
