package domain

type Visitor struct {
	ID          ID     `json:"id,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (v Visitor) EntityID() ID { return v.ID }

// WithEntityID returns a copy carrying id.
func (v Visitor) WithEntityID(id ID) Visitor {
	v.ID = id
	return v
}

func (v Visitor) Input() VisitorInput {
	return VisitorInput{
		Name:        v.Name,
		Email:       v.Email,
		PhoneNumber: v.PhoneNumber,
	}
}

type VisitorInput struct {
	Name        string `validate:"required"`
	Email       string `validate:"required"`
	PhoneNumber string `validate:"required"`
}

func (in VisitorInput) Record(id ID) Visitor {
	return Visitor{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
	}
}
