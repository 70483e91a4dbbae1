package attestation

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
)

func init() {
	migration.MustRegister(1, &Charity{}, migration.NoModification)
	migration.MustRegister(1, &Application{}, migration.NoModification)
	migration.MustRegister(1, &Hours{}, migration.NoModification)
}

const (
	maxCharityNameLen = 128

	// recordHashLen is the length of the document hash that keys every
	// attestation, sha256.
	recordHashLen = 32
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
	return errs
}

func (c *Charity) Copy() orm.CloneableData {
	return &Charity{
		Metadata: c.Metadata.Copy(),
		Address:  c.Address.Clone(),
		Name:     c.Name,
		Active:   c.Active,
	}
}

// NewCharityBucket returns a bucket for keeping the charities that may
// attest volunteer records, keyed by the charity address.
func NewCharityBucket() orm.ModelBucket {
	b := orm.NewModelBucket("verifier", &Charity{})
	return migration.NewModelBucket("attestation", b)
}

var _ orm.CloneableData = (*Application)(nil)

func (a *Application) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	errs = errors.AppendField(errs, "Applicant", a.Applicant.Validate())
	errs = errors.AppendField(errs, "Charity", a.Charity.Validate())
	if a.VerifiedAt == 0 {
		errs = errors.Append(errs, errors.Field("VerifiedAt", errors.ErrModel, "required"))
	}
	return errs
}

func (a *Application) Copy() orm.CloneableData {
	return &Application{
		Metadata:   a.Metadata.Copy(),
		Applicant:  a.Applicant.Clone(),
		Charity:    a.Charity.Clone(),
		VerifiedAt: a.VerifiedAt,
	}
}

// NewApplicationBucket returns a bucket with the verified volunteer
// applications, keyed by the application document hash. Entries are write
// once.
func NewApplicationBucket() orm.ModelBucket {
	b := orm.NewModelBucket("appl", &Application{},
		orm.WithIndex("applicant", idxApplicant, false),
	)
	return migration.NewModelBucket("attestation", b)
}

func idxApplicant(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	app, ok := obj.Value().(*Application)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Application")
	}
	return app.Applicant, nil
}

var _ orm.CloneableData = (*Hours)(nil)

func (h *Hours) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", h.Metadata.Validate())
	errs = errors.AppendField(errs, "Volunteer", h.Volunteer.Validate())
	errs = errors.AppendField(errs, "Charity", h.Charity.Validate())
	if h.HoursWorked == 0 {
		errs = errors.Append(errs, errors.Field("HoursWorked", errors.ErrModel, "must be positive"))
	}
	if h.VerifiedAt == 0 {
		errs = errors.Append(errs, errors.Field("VerifiedAt", errors.ErrModel, "required"))
	}
	return errs
}

func (h *Hours) Copy() orm.CloneableData {
	return &Hours{
		Metadata:    h.Metadata.Copy(),
		Volunteer:   h.Volunteer.Clone(),
		Charity:     h.Charity.Clone(),
		HoursWorked: h.HoursWorked,
		VerifiedAt:  h.VerifiedAt,
	}
}

// NewHoursBucket returns a bucket with the verified volunteer hours, keyed
// by the hours document hash. Entries are write once.
func NewHoursBucket() orm.ModelBucket {
	b := orm.NewModelBucket("hours", &Hours{},
		orm.WithIndex("volunteer", idxVolunteer, false),
	)
	return migration.NewModelBucket("attestation", b)
}

func idxVolunteer(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	hrs, ok := obj.Value().(*Hours)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Hours")
	}
	return hrs.Volunteer, nil
}

// RegisterQuery registers attestation buckets for querying.
func RegisterQuery(qr weave.QueryRouter) {
	NewCharityBucket().Register("verifiers", qr)
	NewApplicationBucket().Register("applications", qr)
	NewHoursBucket().Register("volunteerhours", qr)
}
