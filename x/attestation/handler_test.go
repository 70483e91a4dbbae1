package attestation

import (
	"context"
	"crypto/sha256"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/stretchr/testify/assert"
)

var genesis = time.Unix(1600000000, 0)

func recordHash(s string) []byte {
	h := sha256.Sum256([]byte(s))
	return h[:]
}

func TestHandlers(t *testing.T) {
	var (
		owner     = weavetest.NewCondition()
		charity   = weavetest.NewCondition()
		revoked   = weavetest.NewCondition()
		stranger  = weavetest.NewCondition()
		applicant = weavetest.NewCondition().Address()
		volunteer = weavetest.NewCondition().Address()
	)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth)

	register := func(addr weave.Address, name string) action {
		return action{
			conditions: []weave.Condition{owner},
			msg: &RegisterCharityMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Address:  addr,
				Name:     name,
			},
		}
	}
	deactivate := func(addr weave.Address) action {
		return action{
			conditions: []weave.Condition{owner},
			msg: &UpdateCharityMsg{
				Metadata: &weave.Metadata{Schema: 1},
				Address:  addr,
				Active:   false,
			},
		}
	}
	verifyApplication := func(who weave.Condition, hash []byte) action {
		return action{
			conditions: []weave.Condition{who},
			msg: &VerifyApplicationMsg{
				Metadata:  &weave.Metadata{Schema: 1},
				Hash:      hash,
				Applicant: applicant,
			},
		}
	}
	verifyHours := func(who weave.Condition, hash []byte, worked uint32) action {
		return action{
			conditions: []weave.Condition{who},
			msg: &VerifyHoursMsg{
				Metadata:    &weave.Metadata{Schema: 1},
				Hash:        hash,
				Volunteer:   volunteer,
				HoursWorked: worked,
			},
		}
	}

	cases := map[string]struct {
		actions []action
	}{
		"charity registration requires the owner signature": {
			actions: []action{
				{
					conditions: []weave.Condition{stranger},
					msg: &RegisterCharityMsg{
						Metadata: &weave.Metadata{Schema: 1},
						Address:  charity.Address(),
						Name:     "Save The Gophers",
					},
					wantCheckErr:   errors.ErrUnauthorized,
					wantDeliverErr: errors.ErrUnauthorized,
				},
				register(charity.Address(), "Save The Gophers"),
				func() action {
					a := register(charity.Address(), "Save The Gophers Again")
					a.wantCheckErr = errors.ErrDuplicate
					a.wantDeliverErr = errors.ErrDuplicate
					return a
				}(),
			},
		},
		"application verification is written once": {
			actions: []action{
				register(charity.Address(), "Save The Gophers"),
				verifyApplication(charity, recordHash("application-1")),
				func() action {
					a := verifyApplication(charity, recordHash("application-1"))
					a.wantCheckErr = ErrAlreadyVerified
					a.wantDeliverErr = ErrAlreadyVerified
					return a
				}(),
				verifyApplication(charity, recordHash("application-2")),
			},
		},
		"hours verification is written once": {
			actions: []action{
				register(charity.Address(), "Save The Gophers"),
				verifyHours(charity, recordHash("hours-1"), 16),
				func() action {
					a := verifyHours(charity, recordHash("hours-1"), 16)
					a.wantCheckErr = ErrAlreadyVerified
					a.wantDeliverErr = ErrAlreadyVerified
					return a
				}(),
			},
		},
		"only a registered charity can attest": {
			actions: []action{
				func() action {
					a := verifyApplication(stranger, recordHash("application-1"))
					a.wantCheckErr = errors.ErrNotFound
					a.wantDeliverErr = errors.ErrNotFound
					return a
				}(),
			},
		},
		"deactivated charity cannot attest": {
			actions: []action{
				register(revoked.Address(), "Shady Charity"),
				deactivate(revoked.Address()),
				func() action {
					a := verifyHours(revoked, recordHash("hours-1"), 8)
					a.wantCheckErr = ErrInactiveVerifier
					a.wantDeliverErr = ErrInactiveVerifier
					return a
				}(),
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "attestation")

			conf := Configuration{
				Metadata: &weave.Metadata{Schema: 1},
				Owner:    owner.Address(),
			}
			if err := gconf.Save(db, "attestation", &conf); err != nil {
				t.Fatalf("cannot save configuration: %s", err)
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
		})
	}
}

func TestVerificationRecords(t *testing.T) {
	var (
		owner     = weavetest.NewCondition()
		charity   = weavetest.NewCondition()
		applicant = weavetest.NewCondition().Address()
		volunteer = weavetest.NewCondition().Address()
	)

	rt := app.NewRouter()
	auth := &weavetest.CtxAuth{Key: "auth"}
	RegisterRoutes(rt, auth)

	db := store.MemStore()
	migration.MustInitPkg(db, "attestation")

	conf := Configuration{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    owner.Address(),
	}
	if err := gconf.Save(db, "attestation", &conf); err != nil {
		t.Fatalf("cannot save configuration: %s", err)
	}

	ctx := weave.WithBlockTime(context.Background(), genesis)
	ctx = auth.SetConditions(ctx, owner)
	regTx := &weavetest.Tx{Msg: &RegisterCharityMsg{
		Metadata: &weave.Metadata{Schema: 1},
		Address:  charity.Address(),
		Name:     "Save The Gophers",
	}}
	if _, err := rt.Deliver(ctx, db, regTx); err != nil {
		t.Fatalf("cannot register charity: %s", err)
	}

	ctx = weave.WithBlockTime(context.Background(), genesis)
	ctx = auth.SetConditions(ctx, charity)

	appHash := recordHash("application-1")
	appTx := &weavetest.Tx{Msg: &VerifyApplicationMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Hash:      appHash,
		Applicant: applicant,
	}}
	if _, err := rt.Deliver(ctx, db, appTx); err != nil {
		t.Fatalf("cannot verify application: %s", err)
	}
	var application Application
	if err := NewApplicationBucket().One(db, appHash, &application); err != nil {
		t.Fatalf("cannot load application: %s", err)
	}
	assert.Equal(t, applicant, application.Applicant)
	assert.Equal(t, charity.Address(), application.Charity)
	assert.Equal(t, weave.AsUnixTime(genesis), application.VerifiedAt)

	hoursHash := recordHash("hours-1")
	hoursTx := &weavetest.Tx{Msg: &VerifyHoursMsg{
		Metadata:    &weave.Metadata{Schema: 1},
		Hash:        hoursHash,
		Volunteer:   volunteer,
		HoursWorked: 16,
	}}
	if _, err := rt.Deliver(ctx, db, hoursTx); err != nil {
		t.Fatalf("cannot verify hours: %s", err)
	}
	var hours Hours
	if err := NewHoursBucket().One(db, hoursHash, &hours); err != nil {
		t.Fatalf("cannot load hours: %s", err)
	}
	assert.Equal(t, volunteer, hours.Volunteer)
	assert.Equal(t, charity.Address(), hours.Charity)
	assert.Equal(t, uint32(16), hours.HoursWorked)
	assert.Equal(t, weave.AsUnixTime(genesis), hours.VerifiedAt)
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
