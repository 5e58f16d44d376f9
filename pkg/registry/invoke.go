package registry

import (
	"context"
	"fmt"
	"strconv"

	"github.com/chris/regnet/pkg/models"
)

// Functions lists the entry points accepted by Invoke, with the arguments
// each one expects.
var Functions = map[string][]string{
	"requestNewUser":              {"name", "email", "phone", "ssn"},
	"approveNewUser":              {"name", "ssn"},
	"viewUser":                    {"name", "ssn"},
	"rechargeAccount":             {"name", "ssn", "bankTxId"},
	"propertyRegistrationRequest": {"propId", "price", "ownerName", "ownerSsn"},
	"approvePropertyRegistration": {"propId"},
	"viewProperty":                {"propId"},
	"updateProperty":              {"propId", "status", "ownerName", "ownerSsn"},
	"purchaseProperty":            {"propId", "buyerName", "buyerSsn"},
}

// Invoke runs the entry point named fn with positional string arguments and
// returns the resulting record.
func Invoke(ctx context.Context, r Registry, fn string, args []string) (interface{}, error) {
	params, ok := Functions[fn]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, fn)
	}
	if len(args) != len(params) {
		return nil, fmt.Errorf("%w: %s expects %d arguments, got %d", ErrInvalidTransaction, fn, len(params), len(args))
	}

	switch fn {
	case "requestNewUser":
		return r.RequestNewUser(ctx, args[0], args[1], args[2], args[3])
	case "approveNewUser":
		return r.ApproveNewUser(ctx, args[0], args[1])
	case "viewUser":
		return r.ViewUser(ctx, args[0], args[1])
	case "rechargeAccount":
		return r.RechargeAccount(ctx, args[0], args[1], args[2])
	case "propertyRegistrationRequest":
		price, err := ParsePrice(args[1])
		if err != nil {
			return nil, err
		}
		return r.PropertyRegistrationRequest(ctx, args[0], price, args[2], args[3])
	case "approvePropertyRegistration":
		return r.ApprovePropertyRegistration(ctx, args[0])
	case "viewProperty":
		return r.ViewProperty(ctx, args[0])
	case "updateProperty":
		return r.UpdateProperty(ctx, args[0], models.PropertyStatus(args[1]), args[2], args[3])
	default: // purchaseProperty
		return r.PurchaseProperty(ctx, args[0], args[1], args[2])
	}
}

// ParsePrice parses a decimal price argument.
func ParsePrice(s string) (int64, error) {
	price, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not an integer", ErrInvalidTransaction, s)
	}
	return price, nil
}
