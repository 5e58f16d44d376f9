package mapping

import (
	"fmt"
	"time"

	"github.com/chris/regnet/pkg/api"
	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
)

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid createdAt %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ownerParts decodes the name and ssn from a user key. Keys that are not
// user keys yield empty strings.
func ownerParts(owner ledger.Key) (string, string) {
	ns, attrs, err := ledger.SplitCompositeKey(owner)
	if err != nil || ns != ledger.NamespaceUser || len(attrs) != 2 {
		return "", ""
	}
	return attrs[0], attrs[1]
}

// ToApiUserRequest converts a domain UserRequest to an API UserRequest.
func ToApiUserRequest(req *models.UserRequest) *api.UserRequest {
	return &api.UserRequest{
		DocType:     req.DocType,
		RequestType: string(req.RequestType),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Ssn:         req.SSN,
		CreatedAt:   formatTime(req.CreatedAt),
	}
}

// ToApiUser converts a domain User to an API User.
func ToApiUser(user *models.User) *api.User {
	return &api.User{
		DocType:     user.DocType,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		Ssn:         user.SSN,
		UpgradCoins: user.UpgradCoins,
		CreatedAt:   formatTime(user.CreatedAt),
	}
}

// ToApiPropertyRequest converts a domain PropertyRequest to an API PropertyRequest.
func ToApiPropertyRequest(req *models.PropertyRequest) *api.PropertyRequest {
	name, ssn := ownerParts(req.Owner)
	return &api.PropertyRequest{
		DocType:     req.DocType,
		RequestType: string(req.RequestType),
		PropId:      req.PropID,
		Price:       req.Price,
		Status:      string(req.Status),
		Owner:       string(req.Owner),
		OwnerName:   name,
		OwnerSsn:    ssn,
		CreatedAt:   formatTime(req.CreatedAt),
	}
}

// ToApiProperty converts a domain Property to an API Property.
func ToApiProperty(p *models.Property) *api.Property {
	name, ssn := ownerParts(p.Owner)
	return &api.Property{
		DocType:   p.DocType,
		PropId:    p.PropID,
		Price:     p.Price,
		Status:    string(p.Status),
		Owner:     string(p.Owner),
		OwnerName: name,
		OwnerSsn:  ssn,
		CreatedAt: formatTime(p.CreatedAt),
	}
}

// ToDomainStatus converts an API status to a domain status.
func ToDomainStatus(s string) models.PropertyStatus {
	return models.PropertyStatus(s)
}

// ToDomainUserRequest converts an API UserRequest back to the domain model.
func ToDomainUserRequest(req *api.UserRequest) (*models.UserRequest, error) {
	createdAt, err := parseTime(req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &models.UserRequest{
		DocType:     req.DocType,
		RequestType: models.RequestType(req.RequestType),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		SSN:         req.Ssn,
		CreatedAt:   createdAt,
	}, nil
}

// ToDomainUser converts an API User back to the domain model.
func ToDomainUser(user *api.User) (*models.User, error) {
	createdAt, err := parseTime(user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &models.User{
		DocType:     user.DocType,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		SSN:         user.Ssn,
		UpgradCoins: user.UpgradCoins,
		CreatedAt:   createdAt,
	}, nil
}

// ToDomainPropertyRequest converts an API PropertyRequest back to the domain model.
func ToDomainPropertyRequest(req *api.PropertyRequest) (*models.PropertyRequest, error) {
	createdAt, err := parseTime(req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &models.PropertyRequest{
		DocType:     req.DocType,
		RequestType: models.RequestType(req.RequestType),
		PropID:      req.PropId,
		Owner:       ledger.Key(req.Owner),
		Price:       req.Price,
		Status:      ToDomainStatus(req.Status),
		CreatedAt:   createdAt,
	}, nil
}

// ToDomainProperty converts an API Property back to the domain model.
func ToDomainProperty(p *api.Property) (*models.Property, error) {
	createdAt, err := parseTime(p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &models.Property{
		DocType:   p.DocType,
		PropID:    p.PropId,
		Price:     p.Price,
		Status:    ToDomainStatus(p.Status),
		Owner:     ledger.Key(p.Owner),
		CreatedAt: createdAt,
	}, nil
}
