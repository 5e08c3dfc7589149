package importer

import (
	"fmt"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
)

// ValidateOrderBook checks the order book for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateOrderBook(book *OrderBook) []error {
	var errs []error

	customerRefs := make(map[string]bool)
	errs = append(errs, validateCustomers(book.Customers, customerRefs)...)

	varietyRefs := make(map[string]bool)
	errs = append(errs, validateVarieties(book.Varieties, varietyRefs)...)

	errs = append(errs, validateOrders(book.Orders, customerRefs, varietyRefs)...)

	return errs
}

func validateCustomers(customers []CustomerImport, refs map[string]bool) []error {
	var errs []error

	for i, c := range customers {
		prefix := fmt.Sprintf("customers[%d]", i)

		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[c.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, c.Ref))
		} else {
			refs[c.Ref] = true
		}

		if c.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	}

	return errs
}

func validateVarieties(varieties []VarietyImport, refs map[string]bool) []error {
	var errs []error

	for i, v := range varieties {
		prefix := fmt.Sprintf("varieties[%d]", i)

		if v.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[v.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, v.Ref))
		} else {
			refs[v.Ref] = true
		}

		if v.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if v.HarvestDays < 0 {
			errs = append(errs, fmt.Errorf("%s.harvest_days must not be negative", prefix))
		}
		if v.BlackoutDays < 0 {
			errs = append(errs, fmt.Errorf("%s.blackout_days must not be negative", prefix))
		}
		if v.SoakHours < 0 {
			errs = append(errs, fmt.Errorf("%s.soak_hours must not be negative", prefix))
		}
	}

	return errs
}

func validateOrders(orders []OrderImport, customerRefs, varietyRefs map[string]bool) []error {
	var errs []error

	for i, o := range orders {
		prefix := fmt.Sprintf("orders[%d]", i)

		if o.CustomerRef == "" {
			errs = append(errs, fmt.Errorf("%s.customer_ref is required", prefix))
		} else if !customerRefs[o.CustomerRef] {
			errs = append(errs, fmt.Errorf("%s.customer_ref: ref %q not found in customers", prefix, o.CustomerRef))
		}

		if o.VarietyRef == "" {
			errs = append(errs, fmt.Errorf("%s.variety_ref is required", prefix))
		} else if !varietyRefs[o.VarietyRef] {
			errs = append(errs, fmt.Errorf("%s.variety_ref: ref %q not found in varieties", prefix, o.VarietyRef))
		}

		if o.Quantity <= 0 {
			errs = append(errs, fmt.Errorf("%s.quantity must be positive", prefix))
		}

		if o.DeliveryDate == "" {
			errs = append(errs, fmt.Errorf("%s.delivery_date is required", prefix))
		} else if _, err := domain.ParseDay(o.DeliveryDate); err != nil {
			errs = append(errs, fmt.Errorf("%s.delivery_date: invalid date format %q (expected YYYY-MM-DD)", prefix, o.DeliveryDate))
		}

		if o.Status != "" && !domain.ValidOrderStatuses[o.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, o.Status))
		}
	}

	return errs
}
