package usecase

import (
	"errors"
	"testing"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
	testhelpers "github.com/petaline/storefront/internal/test"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		ok    bool
	}{
		{"+7(999)-111-22-33", true},
		{"+7(000)-000-00-00", true},
		{"89991112233", false},
		{"+7(999)1112233", false},
		{"+7(99)-111-22-33", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.ok {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.ok)
		}
	}
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"Daisy Flowers", true},
		{"Anna-Maria", true},
		{"Иван Иванов", true},
		{"R2D2", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidateName(tc.name); got != tc.ok {
			t.Errorf("ValidateName(%q) = %v, want %v", tc.name, got, tc.ok)
		}
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"daisy@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"a b@example.com", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := ValidateEmail(tc.email); got != tc.ok {
			t.Errorf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.ok)
		}
	}
}

func TestValidateDelivery(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.DeliveryDetails)
		ok     bool
	}{
		{"valid", func(*model.DeliveryDetails) {}, true},
		{"missing name", func(d *model.DeliveryDetails) { d.RecipientName = " " }, false},
		{"missing address", func(d *model.DeliveryDetails) { d.Address = "" }, false},
		{"missing phone", func(d *model.DeliveryDetails) { d.Phone = "" }, false},
		{"bad phone", func(d *model.DeliveryDetails) { d.Phone = "12345" }, false},
		{"missing date", func(d *model.DeliveryDetails) { d.DeliveryDate = "" }, false},
		{"missing time", func(d *model.DeliveryDetails) { d.DeliveryTime = "" }, false},
		{"bad payment", func(d *model.DeliveryDetails) { d.Payment = "crypto" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := testhelpers.Delivery()
			tc.mutate(&d)

			err := ValidateDelivery(d)
			if tc.ok && err != nil {
				t.Fatalf("expected valid delivery, got %v", err)
			}
			if !tc.ok && !errors.Is(err, domainErrors.ErrInvalidDelivery) {
				t.Fatalf("expected invalid delivery error, got %v", err)
			}
		})
	}
}
