package app

import (
	"context"
	"fmt"
	"time"

	"github.com/promptlab/promptlab/internal/models"
	"github.com/promptlab/promptlab/internal/optimizer"
	"github.com/promptlab/promptlab/internal/promptcodec"
)

// Optimize is the form surface: it gathers the seven fields and publishes
// them on the bus. Rendering happens in the subscribed output surface.
func (a *App) Optimize(ctx context.Context) error {
	fields, err := a.readFields()
	if err != nil {
		return err
	}

	a.bus.Publish(fields)
	return nil
}

// renderOptimized is the output surface. It encodes the submitted fields
// and renders the original block next to the enhanced version. The pacing
// delay is cosmetic and always runs to completion once started.
func (a *App) renderOptimized(fields models.PromptFields) {
	original := promptcodec.Encode(fields)

	if d := a.config.OptimizeDelay; d > 0 {
		time.Sleep(d)
	}

	fmt.Fprintln(a.out, "--- original ---")
	fmt.Fprint(a.out, original)
	fmt.Fprintln(a.out, "--- optimized ---")
	fmt.Fprintln(a.out, optimizer.Enhance(original))
}
