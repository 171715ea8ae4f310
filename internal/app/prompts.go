package app

import (
	"context"
	"fmt"
	"time"

	"github.com/promptlab/promptlab/internal/models"
	"github.com/promptlab/promptlab/internal/promptcodec"
	"github.com/promptlab/promptlab/internal/services"
)

// readFields walks the user through the seven prompt fields. Input and
// context may span multiple lines; everything is optional.
func (a *App) readFields() (models.PromptFields, error) {
	var f models.PromptFields
	var err error

	if f.Role, err = getSimpleText(a.reader, "Role (who should the AI be?)", a.out); err != nil {
		return f, err
	}
	if f.Goal, err = getSimpleText(a.reader, "Goal (what should it achieve?)", a.out); err != nil {
		return f, err
	}
	if f.Input, err = getMultiline(a.reader, "Input (the material to work on)", a.out); err != nil {
		return f, err
	}
	if f.Context, err = getMultiline(a.reader, "Context (background information)", a.out); err != nil {
		return f, err
	}
	if f.Constraints, err = getSimpleText(a.reader, "Constraints", a.out); err != nil {
		return f, err
	}
	if f.Tone, err = getSimpleText(a.reader, "Tone", a.out); err != nil {
		return f, err
	}
	if f.Format, err = getSimpleText(a.reader, "Format", a.out); err != nil {
		return f, err
	}

	return f, nil
}

func (a *App) reportOutcome(outcome services.Outcome) {
	if outcome == services.Applied {
		fmt.Fprintln(a.out, "Done.")
		return
	}
	fmt.Fprintln(a.out, outcome.String())
}

// Save gathers the fields, encodes them, and stores the result under a
// user-chosen title.
func (a *App) Save(ctx context.Context) error {
	fields, err := a.readFields()
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}

	outcome, err := a.prompts.Save(ctx, title, promptcodec.Encode(fields))
	if err != nil {
		a.log.Error(ctx, "save failed", "error", err)
		return err
	}

	a.reportOutcome(outcome)
	return nil
}

// List prints the active identity's prompts in insertion order.
func (a *App) List(ctx context.Context) error {
	prompts, err := a.prompts.List(ctx)
	if err != nil {
		a.log.Error(ctx, "list failed", "error", err)
		return err
	}

	if len(prompts) == 0 {
		fmt.Fprintln(a.out, "No saved prompts.")
		return nil
	}

	for _, p := range prompts {
		fmt.Fprintf(a.out, "%s  %s  %s\n", p.ID, p.CreatedAt.Format(time.RFC3339), p.Title)
	}
	return nil
}

// Show decodes one saved prompt back into its fields and prints them.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter prompt id", a.out)
	if err != nil {
		return err
	}

	prompt, ok, err := a.prompts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "No such prompt.")
		return nil
	}

	fields := promptcodec.Decode(prompt.Content)
	fmt.Fprintf(a.out, "Title: %s (created %s)\n", prompt.Title, prompt.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(a.out, "  role: %s\n", fields.Role)
	fmt.Fprintf(a.out, "  goal: %s\n", fields.Goal)
	fmt.Fprintf(a.out, "  input: %s\n", fields.Input)
	fmt.Fprintf(a.out, "  context: %s\n", fields.Context)
	fmt.Fprintf(a.out, "  constraints: %s\n", fields.Constraints)
	fmt.Fprintf(a.out, "  tone: %s\n", fields.Tone)
	fmt.Fprintf(a.out, "  format: %s\n", fields.Format)
	return nil
}

// Rename changes a saved prompt's title.
func (a *App) Rename(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter prompt id", a.out)
	if err != nil {
		return err
	}

	title, err := getSimpleText(a.reader, "Enter new title", a.out)
	if err != nil {
		return err
	}

	outcome, err := a.prompts.RenameTitle(ctx, id, title)
	if err != nil {
		a.log.Error(ctx, "rename failed", "error", err)
		return err
	}

	a.reportOutcome(outcome)
	return nil
}

// Delete removes a saved prompt.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter prompt id", a.out)
	if err != nil {
		return err
	}

	outcome, err := a.prompts.Delete(ctx, id)
	if err != nil {
		a.log.Error(ctx, "delete failed", "error", err)
		return err
	}

	a.reportOutcome(outcome)
	return nil
}
