package usecase

import (
	"fmt"
	"regexp"
	"strings"

	domainErrors "github.com/petaline/storefront/internal/domain/errors"
	"github.com/petaline/storefront/internal/domain/model"
)

var (
	phonePattern = regexp.MustCompile(`^\+7\(\d{3}\)-\d{3}-\d{2}-\d{2}$`)
	namePattern  = regexp.MustCompile(`^[\p{L}\s-]+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ValidatePhone checks the +7(XXX)-XXX-XX-XX contact phone format.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateName checks that a name contains only letters, spaces and hyphens.
func ValidateName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateEmail checks the basic user@host.domain shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidateDelivery checks the checkout contact form. Every failure wraps
// ErrInvalidDelivery with the offending field.
func ValidateDelivery(d model.DeliveryDetails) error {
	if strings.TrimSpace(d.RecipientName) == "" {
		return fmt.Errorf("%w: recipient name is required", domainErrors.ErrInvalidDelivery)
	}
	if strings.TrimSpace(d.Address) == "" {
		return fmt.Errorf("%w: address is required", domainErrors.ErrInvalidDelivery)
	}
	if strings.TrimSpace(d.Phone) == "" {
		return fmt.Errorf("%w: phone is required", domainErrors.ErrInvalidDelivery)
	}
	if !ValidatePhone(d.Phone) {
		return fmt.Errorf("%w: phone must match +7(XXX)-XXX-XX-XX", domainErrors.ErrInvalidDelivery)
	}
	if d.DeliveryDate == "" {
		return fmt.Errorf("%w: delivery date is required", domainErrors.ErrInvalidDelivery)
	}
	if d.DeliveryTime == "" {
		return fmt.Errorf("%w: delivery time is required", domainErrors.ErrInvalidDelivery)
	}
	if !d.Payment.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", domainErrors.ErrInvalidDelivery, d.Payment)
	}
	return nil
}
