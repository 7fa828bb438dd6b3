package entities

type ValidatedRegistration struct {
	*Registration
}

func NewValidatedRegistration(registration *Registration) (*ValidatedRegistration, error) {
	if err := registration.validate(); err != nil {
		return nil, err
	}

	return &ValidatedRegistration{Registration: registration}, nil
}

func (vr *ValidatedRegistration) GetRegistration() *Registration {
	return vr.Registration
}
