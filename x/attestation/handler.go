package attestation

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

const (
	registerCharityCost = 0
	verifyRecordCost    = 100
)

// RegisterRoutes registers handlers for attestation message processing.
func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("attestation", r)

	charities := NewCharityBucket()

	r.Handle(&RegisterCharityMsg{}, &registerCharityHandler{
		auth:      auth,
		charities: charities,
	})
	r.Handle(&UpdateCharityMsg{}, &updateCharityHandler{
		auth:      auth,
		charities: charities,
	})
	r.Handle(&VerifyApplicationMsg{}, &verifyApplicationHandler{
		verifier:     verifier{auth: auth, charities: charities},
		applications: NewApplicationBucket(),
	})
	r.Handle(&VerifyHoursMsg{}, &verifyHoursHandler{
		verifier: verifier{auth: auth, charities: charities},
		hours:    NewHoursBucket(),
	})
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
	return &weave.CheckResult{GasAllocated: registerCharityCost}, nil
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

// verifier implements the checks shared by all attestation writes. The
// attesting charity is the main transaction signer.
type verifier struct {
	auth      x.Authenticator
	charities orm.ModelBucket
}

// attester returns the address of the signing charity. Only a registered
// and active charity may attest.
func (v verifier) attester(ctx weave.Context, db weave.KVStore) (weave.Address, error) {
	addr := x.AnySigner(ctx, v.auth).Address()
	var charity Charity
	if err := v.charities.One(db, addr, &charity); err != nil {
		return nil, errors.Wrap(err, "signer is not a registered charity")
	}
	if !charity.Active {
		return nil, ErrInactiveVerifier
	}
	return addr, nil
}

// ensureNew fails with ErrAlreadyVerified when the record hash is already
// present in the bucket.
func ensureNew(db weave.KVStore, bucket orm.ModelBucket, hash []byte) error {
	switch err := bucket.Has(db, hash); {
	case err == nil:
		return ErrAlreadyVerified
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, "cannot check record existence")
	}
}

type verifyApplicationHandler struct {
	verifier
	applications orm.ModelBucket
}

func (h *verifyApplicationHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: verifyRecordCost}, nil
}

func (h *verifyApplicationHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, charity, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "no block time")
	}
	application := Application{
		Metadata:   &weave.Metadata{},
		Applicant:  msg.Applicant,
		Charity:    charity,
		VerifiedAt: weave.AsUnixTime(blockTime),
	}
	if _, err := h.applications.Put(db, msg.Hash, &application); err != nil {
		return nil, errors.Wrap(err, "cannot store application")
	}
	return &weave.DeliverResult{Data: msg.Hash}, nil
}

func (h *verifyApplicationHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*VerifyApplicationMsg, weave.Address, error) {
	var msg VerifyApplicationMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	charity, err := h.attester(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureNew(db, h.applications, msg.Hash); err != nil {
		return nil, nil, err
	}
	return &msg, charity, nil
}

type verifyHoursHandler struct {
	verifier
	hours orm.ModelBucket
}

func (h *verifyHoursHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: verifyRecordCost}, nil
}

func (h *verifyHoursHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, charity, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	blockTime, err := weave.BlockTime(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "no block time")
	}
	hours := Hours{
		Metadata:    &weave.Metadata{},
		Volunteer:   msg.Volunteer,
		Charity:     charity,
		HoursWorked: msg.HoursWorked,
		VerifiedAt:  weave.AsUnixTime(blockTime),
	}
	if _, err := h.hours.Put(db, msg.Hash, &hours); err != nil {
		return nil, errors.Wrap(err, "cannot store hours")
	}
	return &weave.DeliverResult{Data: msg.Hash}, nil
}

func (h *verifyHoursHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*VerifyHoursMsg, weave.Address, error) {
	var msg VerifyHoursMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	charity, err := h.attester(ctx, db)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureNew(db, h.hours, msg.Hash); err != nil {
		return nil, nil, err
	}
	return &msg, charity, nil
}
