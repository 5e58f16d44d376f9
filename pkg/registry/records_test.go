package registry

import (
	"testing"

	"github.com/chris/regnet/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var u models.User
		err := decode("k", []byte(`{"docType":"user","name":"Alice","upgradCoins":5,"createdAt":"2024-03-01T12:00:00.123456789Z"}`),
			models.DocTypeUser, "", &u)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), u.UpgradCoins)
		assert.Equal(t, 123456789, u.CreatedAt.Nanosecond())
	})

	cases := map[string]struct {
		raw         string
		docType     string
		requestType models.RequestType
	}{
		"Syntax Error":      {`{"docType":`, models.DocTypeUser, ""},
		"Wrong DocType":     {`{"docType":"property"}`, models.DocTypeUser, ""},
		"Missing DocType":   {`{"name":"Alice"}`, models.DocTypeUser, ""},
		"Wrong RequestType": {`{"docType":"request","requestType":"property"}`, models.DocTypeRequest, models.RequestTypeUser},
		"Type Mismatch":     {`{"docType":"user","upgradCoins":"lots"}`, models.DocTypeUser, ""},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var dst models.User
			err := decode("k", []byte(tc.raw), tc.docType, tc.requestType, &dst)
			assert.ErrorIs(t, err, ErrDataCorruption)
		})
	}
}

func TestDecode_RecordInvariants(t *testing.T) {
	const owner = `"\u0000regnet.user\u0000Alice\u0000111\u0000"`
	const ts = `"2024-03-01T12:00:00Z"`

	t.Run("Valid Property", func(t *testing.T) {
		var p models.Property
		err := decode("k", []byte(`{"docType":"property","propId":"P1","price":0,"status":"onSale","owner":`+owner+`,"createdAt":`+ts+`}`),
			models.DocTypeProperty, "", &p)
		assert.NoError(t, err)
	})

	properties := map[string]string{
		"Empty Property":   `{"docType":"property"}`,
		"Negative Price":   `{"docType":"property","price":-1,"status":"onSale","owner":` + owner + `,"createdAt":` + ts + `}`,
		"Unknown Status":   `{"docType":"property","price":1,"status":"sold","owner":` + owner + `,"createdAt":` + ts + `}`,
		"Owner Not A User": `{"docType":"property","price":1,"status":"registered","owner":"\u0000regnet.property\u0000P2\u0000","createdAt":` + ts + `}`,
		"Missing Owner":    `{"docType":"property","price":1,"status":"registered","createdAt":` + ts + `}`,
		"Missing Created":  `{"docType":"property","price":1,"status":"registered","owner":` + owner + `}`,
	}
	for name, raw := range properties {
		t.Run(name, func(t *testing.T) {
			var p models.Property
			err := decode("k", []byte(raw), models.DocTypeProperty, "", &p)
			assert.ErrorIs(t, err, ErrDataCorruption)
		})
	}

	t.Run("Property Request Without Owner", func(t *testing.T) {
		var r models.PropertyRequest
		err := decode("k", []byte(`{"docType":"request","requestType":"property","propId":"P1","price":5,"status":"registered","createdAt":`+ts+`}`),
			models.DocTypeRequest, models.RequestTypeProperty, &r)
		assert.ErrorIs(t, err, ErrDataCorruption)
	})

	t.Run("Negative Balance", func(t *testing.T) {
		var u models.User
		err := decode("k", []byte(`{"docType":"user","name":"Alice","upgradCoins":-5,"createdAt":`+ts+`}`), models.DocTypeUser, "", &u)
		assert.ErrorIs(t, err, ErrDataCorruption)
		assert.Contains(t, err.Error(), "negative upgradCoins")
	})

	t.Run("User Request Without Timestamp", func(t *testing.T) {
		var r models.UserRequest
		err := decode("k", []byte(`{"docType":"request","requestType":"user","name":"Alice"}`), models.DocTypeRequest, models.RequestTypeUser, &r)
		assert.ErrorIs(t, err, ErrDataCorruption)
	})
}
