// Package skillsheet renders skill sheet records to xlsx workbooks and reads
// them back.
package skillsheet

import (
	"time"

	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/layout"
	"github.com/ukaji3/skillsheet-go/pkg/skillsheet/writer"
)

// Options configures rendering.
type Options struct {
	// FontFamily is the font of every cell. Empty means layout.FontFamily.
	FontFamily string
	// Now returns the current time used for ongoing entries. Nil means time.Now.
	Now func() time.Time
	// FillDuration computes missing duration labels.
	// If nil, defaults to true.
	FillDuration *bool
	// PrintSetup defines the print area and the page layout.
	// If nil, defaults to true.
	PrintSetup *bool
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		FontFamily: layout.FontFamily,
	}
}

// ShouldFillDuration returns whether missing duration labels are computed.
func (o Options) ShouldFillDuration() bool {
	if o.FillDuration != nil {
		return *o.FillDuration
	}
	return true
}

// ShouldSetupPrint returns whether the print area and page layout are set.
func (o Options) ShouldSetupPrint() bool {
	if o.PrintSetup != nil {
		return *o.PrintSetup
	}
	return true
}

func (o Options) writerOptions() writer.Options {
	wo := writer.DefaultOptions()
	if o.FontFamily != "" {
		wo.FontFamily = o.FontFamily
	}
	if o.Now != nil {
		wo.Now = o.Now
	}
	wo.FillDuration = o.ShouldFillDuration()
	wo.PrintSetup = o.ShouldSetupPrint()
	return wo
}
