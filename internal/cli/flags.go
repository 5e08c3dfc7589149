package cli

import (
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/spf13/pflag"
)

// dayFlag is a pflag.Value for YYYY-MM-DD flags, so malformed dates fail at
// flag parse time instead of mid-command. Zero value means "not set";
// commands substitute today.
type dayFlag struct {
	day domain.Day
}

var _ pflag.Value = (*dayFlag)(nil)

func (f *dayFlag) Set(s string) error {
	d, err := domain.ParseDay(s)
	if err != nil {
		return err
	}
	f.day = d
	return nil
}

func (f *dayFlag) String() string {
	if f.day.IsZero() {
		return ""
	}
	return f.day.String()
}

func (f *dayFlag) Type() string { return "date" }

// orToday returns the flag's day, or today when the flag was not given.
func (f *dayFlag) orToday() domain.Day {
	if f.day.IsZero() {
		return domain.Today()
	}
	return f.day
}
