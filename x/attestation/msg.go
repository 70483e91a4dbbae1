package attestation

import (
	weave "github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &RegisterCharityMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateCharityMsg{}, migration.NoModification)
	migration.MustRegister(1, &VerifyApplicationMsg{}, migration.NoModification)
	migration.MustRegister(1, &VerifyHoursMsg{}, migration.NoModification)
}

var _ weave.Msg = (*RegisterCharityMsg)(nil)

func (msg *RegisterCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	if msg.Name == "" {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrMsg, "required"))
	}
	if len(msg.Name) > maxCharityNameLen {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrMsg, "too long"))
	}
	return errs
}

func (RegisterCharityMsg) Path() string {
	return "attestation/register_charity"
}

var _ weave.Msg = (*UpdateCharityMsg)(nil)

func (msg *UpdateCharityMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.AppendField(errs, "Address", msg.Address.Validate())
	return errs
}

func (UpdateCharityMsg) Path() string {
	return "attestation/update_charity"
}

func validateRecordHash(hash []byte) error {
	if len(hash) != recordHashLen {
		return errors.Field("Hash", errors.ErrInput, "must be %d bytes", recordHashLen)
	}
	return nil
}

var _ weave.Msg = (*VerifyApplicationMsg)(nil)

func (msg *VerifyApplicationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.Append(errs, validateRecordHash(msg.Hash))
	errs = errors.AppendField(errs, "Applicant", msg.Applicant.Validate())
	return errs
}

func (VerifyApplicationMsg) Path() string {
	return "attestation/verify_application"
}

var _ weave.Msg = (*VerifyHoursMsg)(nil)

func (msg *VerifyHoursMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	errs = errors.Append(errs, validateRecordHash(msg.Hash))
	errs = errors.AppendField(errs, "Volunteer", msg.Volunteer.Validate())
	if msg.HoursWorked == 0 {
		errs = errors.Append(errs, errors.Field("HoursWorked", errors.ErrMsg, "must be positive"))
	}
	return errs
}

func (VerifyHoursMsg) Path() string {
	return "attestation/verify_hours"
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

// Validate will skip any zero fields and validate the set ones.
func (msg *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", msg.Metadata.Validate())
	if msg.Patch == nil {
		return errors.Append(errs, errors.Field("Patch", errors.ErrMsg, "required"))
	}
	if len(msg.Patch.Owner) != 0 {
		errs = errors.AppendField(errs, "Owner", msg.Patch.Owner.Validate())
	}
	return errs
}

func (*UpdateConfigurationMsg) Path() string {
	return "attestation/update_configuration"
}
