package models

import (
	"fmt"

	"github.com/chris/regnet/pkg/ledger"
)

// Validate reports whether r holds what RequestNewUser writes.
func (r *UserRequest) Validate() error {
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("missing createdAt")
	}
	return nil
}

// Validate reports whether r holds what PropertyRegistrationRequest writes.
func (r *PropertyRequest) Validate() error {
	return validateProperty(r.Price, r.Status, r.Owner, r.CreatedAt.IsZero())
}

// Validate reports whether u is a well-formed approved user.
func (u *User) Validate() error {
	if u.UpgradCoins < 0 {
		return fmt.Errorf("negative upgradCoins %d", u.UpgradCoins)
	}
	if u.CreatedAt.IsZero() {
		return fmt.Errorf("missing createdAt")
	}
	return nil
}

// Validate reports whether p is a well-formed approved property.
func (p *Property) Validate() error {
	return validateProperty(p.Price, p.Status, p.Owner, p.CreatedAt.IsZero())
}

func validateProperty(price int64, status PropertyStatus, owner ledger.Key, noCreatedAt bool) error {
	if price < 0 {
		return fmt.Errorf("negative price %d", price)
	}
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}
	ns, attrs, err := ledger.SplitCompositeKey(owner)
	if err != nil || ns != ledger.NamespaceUser || len(attrs) != 2 {
		return fmt.Errorf("owner %q is not a user key", owner)
	}
	if noCreatedAt {
		return fmt.Errorf("missing createdAt")
	}
	return nil
}
