package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/service"
	"github.com/charmbracelet/huh"
)

// runOrderForm collects order-entry input interactively: customer and
// variety pickers plus quantity and delivery date fields.
func runOrderForm(ctx context.Context, app *App) (service.CreateOrderRequest, error) {
	var req service.CreateOrderRequest

	customers, err := app.Customers.List(ctx)
	if err != nil {
		return req, err
	}
	if len(customers) == 0 {
		return req, errors.New("no customers yet; add one with `trayflow customer add`")
	}
	varieties, err := app.Varieties.List(ctx)
	if err != nil {
		return req, err
	}
	if len(varieties) == 0 {
		return req, errors.New("no varieties yet; add one with `trayflow variety add`")
	}

	customerOpts := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		customerOpts = append(customerOpts, huh.NewOption(c.Name, c.ID))
	}
	varietyOpts := make([]huh.Option[string], 0, len(varieties))
	for _, v := range varieties {
		label := fmt.Sprintf("%s (%dd)", v.Name, v.HarvestDays)
		varietyOpts = append(varietyOpts, huh.NewOption(label, v.ID))
	}

	var qtyStr, dateStr string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Customer").
				Options(customerOpts...).
				Value(&req.CustomerID),
			huh.NewSelect[string]().
				Title("Variety").
				Options(varietyOpts...).
				Value(&req.VarietyID),
			huh.NewInput().
				Title("Trays").
				Placeholder("4").
				Value(&qtyStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Delivery Date (YYYY-MM-DD)").
				Placeholder(domain.Today().AddDays(7).String()).
				Value(&dateStr).
				Validate(validateDate),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return req, err
	}

	req.Quantity, _ = strconv.Atoi(qtyStr)
	req.DeliveryDate, err = domain.ParseDay(dateStr)
	if err != nil {
		return req, err
	}
	return req, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errors.New("enter a positive whole number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := domain.ParseDay(s); err != nil {
		return errors.New("use YYYY-MM-DD")
	}
	return nil
}
