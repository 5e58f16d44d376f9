package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
)

// rechargeCodes maps the accepted bank transaction IDs to the balance they
// set.
var rechargeCodes = map[string]int64{
	"upg100":  100,
	"upg500":  500,
	"upg1000": 1000,
}

// Market holds the user-facing operations: recharges, property requests,
// status updates and purchases.
type Market struct {
	reader
}

// NewMarket creates a Market over l.
func NewMarket(l ledger.Ledger, logger *slog.Logger) *Market {
	return &Market{reader{Ledger: l, Logger: logger}}
}

// RechargeAccount sets the user's balance to the amount bound to bankTxID.
// The balance is overwritten, not incremented.
func (m *Market) RechargeAccount(ctx context.Context, name, ssn, bankTxID string) (*models.User, error) {
	amount, ok := rechargeCodes[bankTxID]
	if !ok {
		m.log().Warn("transaction rejected",
			slog.String("op", "rechargeAccount"),
			slog.String("bankTxId", bankTxID),
		)
		return nil, fmt.Errorf("%w: invalid bank transaction ID %q", ErrInvalidTransaction, bankTxID)
	}
	key, err := userKey(name, ssn)
	if err != nil {
		return nil, err
	}

	var user *models.User
	err = m.submit(ctx, "rechargeAccount", func(tx ledger.Tx) error {
		user, err = loadUser(ctx, tx, key, "no matching user found")
		if err != nil {
			return err
		}

		user.UpgradCoins = amount
		if err := store(ctx, tx, key, user); err != nil {
			return err
		}
		return emit(tx, EventAccountRecharged, key, user)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// PropertyRegistrationRequest records a request to register propID to an
// existing user. A pending request for the same propID is overwritten.
func (m *Market) PropertyRegistrationRequest(ctx context.Context, propID string, price int64, ownerName, ownerSSN string) (*models.PropertyRequest, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative, got %d", ErrInvalidTransaction, price)
	}
	key, err := propertyRequestKey(propID)
	if err != nil {
		return nil, err
	}
	owner, err := userKey(ownerName, ownerSSN)
	if err != nil {
		return nil, err
	}

	var request *models.PropertyRequest
	err = m.submit(ctx, "propertyRegistrationRequest", func(tx ledger.Tx) error {
		if _, err := loadUser(ctx, tx, owner, "invalid owner details: no matching user found"); err != nil {
			return err
		}

		request = &models.PropertyRequest{
			DocType:     models.DocTypeRequest,
			RequestType: models.RequestTypeProperty,
			PropID:      propID,
			Owner:       owner,
			Price:       price,
			Status:      models.StatusRegistered,
			CreatedAt:   tx.Timestamp(),
		}
		if err := store(ctx, tx, key, request); err != nil {
			return err
		}
		return emit(tx, EventPropertyRequested, key, request)
	})
	if err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateProperty sets the status of propID. Only the current owner may do
// so.
func (m *Market) UpdateProperty(ctx context.Context, propID string, status models.PropertyStatus, ownerName, ownerSSN string) (*models.Property, error) {
	key, err := propertyKey(propID)
	if err != nil {
		return nil, err
	}
	claimed, err := userKey(ownerName, ownerSSN)
	if err != nil {
		return nil, err
	}

	var property *models.Property
	err = m.submit(ctx, "updateProperty", func(tx ledger.Tx) error {
		property, err = loadProperty(ctx, tx, key)
		if err != nil {
			return err
		}
		if property.Owner != claimed {
			return fmt.Errorf("%w: %s is not the owner of property %s", ErrUnauthorized, claimed, propID)
		}
		if !status.Valid() {
			return fmt.Errorf("%w: unknown property status %q", ErrInvalidTransaction, status)
		}

		property.Status = status
		if err := store(ctx, tx, key, property); err != nil {
			return err
		}
		return emit(tx, EventPropertyUpdated, key, property)
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}

// PurchaseProperty transfers propID to the buyer. The seller is always the
// property's recorded owner. Buyer, seller and property are written
// together or not at all.
func (m *Market) PurchaseProperty(ctx context.Context, propID, buyerName, buyerSSN string) (*models.Property, error) {
	key, err := propertyKey(propID)
	if err != nil {
		return nil, err
	}
	buyerKey, err := userKey(buyerName, buyerSSN)
	if err != nil {
		return nil, err
	}

	var property *models.Property
	err = m.submit(ctx, "purchaseProperty", func(tx ledger.Tx) error {
		property, err = loadProperty(ctx, tx, key)
		if err != nil {
			return err
		}
		buyer, err := loadUser(ctx, tx, buyerKey, "no matching buyer found")
		if err != nil {
			return err
		}
		if buyerKey == property.Owner {
			return fmt.Errorf("%w: %s already owns property %s", ErrInvalidTransaction, buyerKey, propID)
		}
		sellerKey := property.Owner
		seller, err := loadUser(ctx, tx, sellerKey, "no matching seller found")
		if err != nil {
			return err
		}

		if property.Status != models.StatusOnSale {
			return fmt.Errorf("%w: property %s is not for sale", ErrInvalidTransaction, propID)
		}
		if buyer.UpgradCoins < property.Price {
			return fmt.Errorf("%w: insufficient balance: have %d, need %d", ErrInvalidTransaction, buyer.UpgradCoins, property.Price)
		}

		buyer.UpgradCoins -= property.Price
		seller.UpgradCoins += property.Price
		property.Owner = buyerKey
		property.Status = models.StatusRegistered

		if err := store(ctx, tx, buyerKey, buyer); err != nil {
			return err
		}
		if err := store(ctx, tx, sellerKey, seller); err != nil {
			return err
		}
		if err := store(ctx, tx, key, property); err != nil {
			return err
		}
		return emit(tx, EventPropertyPurchased, key, models.Purchase{
			PropID: propID,
			Price:  property.Price,
			Seller: sellerKey,
			Buyer:  buyerKey,
		})
	})
	if err != nil {
		return nil, err
	}
	return property, nil
}
