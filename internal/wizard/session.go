package wizard

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"

	"github.com/commitwiz/commitwiz/internal/config"
	"github.com/commitwiz/commitwiz/internal/gitmoji"
	"github.com/commitwiz/commitwiz/internal/log"
	"github.com/commitwiz/commitwiz/internal/ui"
	"github.com/commitwiz/commitwiz/pkg/convcommit"
)

// bodyWidth is the column limit commit bodies are wrapped to
const bodyWidth = 72

// Step identifies one stage of the wizard
type Step int

const (
	StepType Step = iota
	StepScope
	StepEmoji
	StepDescription
	StepJira
	StepBreaking
	StepDone
)

// String returns the step name for diagnostics
func (s Step) String() string {
	switch s {
	case StepType:
		return "type"
	case StepScope:
		return "scope"
	case StepEmoji:
		return "emoji"
	case StepDescription:
		return "description"
	case StepJira:
		return "jira"
	case StepBreaking:
		return "breaking"
	case StepDone:
		return "done"
	default:
		return "unknown"
	}
}

// BranchReader supplies the current branch name for issue-slug extraction
type BranchReader interface {
	CurrentBranch(ctx context.Context) (string, error)
}

// Wizard walks the user through the commit message prompts in a fixed
// forward-only order and returns the finished message
type Wizard struct {
	cfg      *config.Config
	paths    config.Paths
	prompter ui.Prompter
	branches BranchReader
	printer  *ui.StepPrinter
	catalog  []gitmoji.Record
	step     Step
}

// Option is a functional option for Wizard
type Option func(*Wizard)

// WithCatalog supplies the emoji catalog; without one the emoji step is skipped
func WithCatalog(records []gitmoji.Record) Option {
	return func(w *Wizard) {
		w.catalog = records
	}
}

// WithPrinter overrides where step confirmations are written
func WithPrinter(printer *ui.StepPrinter) Option {
	return func(w *Wizard) {
		w.printer = printer
	}
}

// New creates a Wizard
func New(cfg *config.Config, paths config.Paths, prompter ui.Prompter, branches BranchReader, opts ...Option) *Wizard {
	w := &Wizard{
		cfg:      cfg,
		paths:    paths,
		prompter: prompter,
		branches: branches,
		printer:  ui.NewStepPrinter(os.Stdout),
		step:     StepType,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run drives the prompt sequence and returns the completed message.
// The step cursor only moves forward; conditional steps advance without
// prompting when their precondition does not hold.
func (w *Wizard) Run(ctx context.Context) (convcommit.Message, error) {
	var msg convcommit.Message

	for w.step != StepDone {
		if ctx.Err() != nil {
			return convcommit.Message{}, ui.ErrCancelled
		}

		var err error
		switch w.step {
		case StepType:
			err = w.pickType(&msg)
		case StepScope:
			err = w.pickScope(&msg)
		case StepEmoji:
			err = w.pickEmoji(&msg)
		case StepDescription:
			err = w.pickDescription(&msg)
		case StepJira:
			err = w.resolveJira(ctx, &msg)
		case StepBreaking:
			err = w.resolveBreaking(&msg)
		}
		if err != nil {
			return convcommit.Message{}, err
		}

		log.Debug("completed wizard step: %s", w.step)
		w.step++
	}

	if err := msg.Validate(); err != nil {
		return convcommit.Message{}, err
	}
	return msg, nil
}

// typeChoices builds the selectable type list, optionally without the
// BREAKING CHANGE marker for the second selection round
func typeChoices(custom []string, includeBreaking bool) []ui.Option {
	types := convcommit.TypeOptions(custom)
	choices := make([]ui.Option, 0, len(types))
	for _, t := range types {
		if !includeBreaking && t.Name == convcommit.BreakingChangeName {
			continue
		}
		choices = append(choices, ui.Option{Title: t.Name, Description: t.Description})
	}
	return choices
}

func (w *Wizard) pickType(msg *convcommit.Message) error {
	choices := typeChoices(w.cfg.CustomCommitTypes, true)

	idx, err := w.prompter.ChooseOne("Select the type of change you are committing:", choices)
	if err != nil {
		return err
	}

	breaking := false
	if choices[idx].Title == convcommit.BreakingChangeName {
		// Second round over the remaining types, result marked breaking
		breaking = true
		choices = typeChoices(w.cfg.CustomCommitTypes, false)
		idx, err = w.prompter.ChooseOne("Select the type of the breaking change:", choices)
		if err != nil {
			return err
		}
	}

	msg.Type = choices[idx].Title
	if breaking {
		msg.Type += convcommit.BreakingSuffix
	}

	_ = w.printer.PrintStep("type", msg.Type)
	return nil
}

func (w *Wizard) pickScope(msg *convcommit.Message) error {
	options := make([]ui.Option, 0, len(w.cfg.Scopes)+3)
	options = append(options, ui.Option{Title: "None"})
	for _, scope := range w.cfg.Scopes {
		options = append(options, ui.Option{Title: scope})
	}
	options = append(options,
		ui.Option{Title: "New scope (saved for reuse)"},
		ui.Option{Title: "New scope (this commit only)"},
	)

	idx, err := w.prompter.ChooseOne("Select the scope of this change:", options)
	if err != nil {
		return err
	}

	savedIdx := len(options) - 2
	onceIdx := len(options) - 1

	switch {
	case idx == 0:
		msg.Scope = ""
	case idx == savedIdx || idx == onceIdx:
		scope, err := w.prompter.TextInput("Enter the new scope:", "e.g. api, auth, parser")
		if err != nil {
			return err
		}
		msg.Scope = scope

		if idx == savedIdx && scope != "" {
			if err := config.AddScope(scope, w.cfg, w.paths); err != nil {
				// The commit still carries the scope; only reuse is lost
				log.Warn("failed to save scope %q: %v", scope, err)
				_ = w.printer.PrintWarning(fmt.Sprintf("Could not save scope for reuse: %v", err))
			}
		}
	default:
		msg.Scope = options[idx].Title
	}

	if msg.Scope != "" {
		_ = w.printer.PrintStep("scope", msg.Scope)
	}
	return nil
}

func (w *Wizard) pickEmoji(msg *convcommit.Message) error {
	if len(w.catalog) == 0 {
		// Catalog unavailable; the commit simply goes out without a marker
		return nil
	}

	options := make([]ui.Option, 0, len(w.catalog)+1)
	options = append(options, ui.Option{Title: "None"})
	for _, record := range w.catalog {
		options = append(options, ui.Option{
			Title:       record.Marker(w.cfg.EmojiFormat),
			Description: record.Description,
		})
	}

	idx, err := w.prompter.FilterableChooseOne("Select an emoji for this change:", options)
	if err != nil {
		return err
	}

	if idx > 0 {
		msg.Marker = options[idx].Title
		_ = w.printer.PrintStep("emoji", msg.Marker)
	}
	return nil
}

func (w *Wizard) pickDescription(msg *convcommit.Message) error {
	for {
		text, err := w.prompter.TextInput(
			"Write a short description of the change:",
			"imperative mood, ideally under 50 characters",
		)
		if err != nil {
			return err
		}

		text = strings.TrimSpace(text)
		if text != "" {
			msg.Description = text
			break
		}
		_ = w.printer.PrintWarning("A description is required")
	}
	_ = w.printer.PrintStep("description", msg.Description)

	body, err := w.prompter.MultilineInput(
		"Provide a longer description of the change (optional):",
		"Press Ctrl+D when finished.",
	)
	if err != nil {
		return err
	}

	if strings.TrimSpace(body) != "" {
		msg.Body = wordwrap.String(body, bodyWidth)
	}
	return nil
}

func (w *Wizard) resolveJira(ctx context.Context, msg *convcommit.Message) error {
	if !w.cfg.IncludeJiraSlug {
		return nil
	}

	branch, err := w.branches.CurrentBranch(ctx)
	if err != nil {
		// The trailer is a convenience; a detached HEAD should not stop the commit
		log.Warn("failed to read current branch: %v", err)
		return nil
	}

	slug := IssueSlug(branch)
	if slug == "" {
		return nil
	}

	ok, err := w.prompter.Confirm(fmt.Sprintf("Attach issue %s to this commit?", slug), true)
	if err != nil {
		return err
	}
	if ok {
		msg.JiraIssue = slug
		_ = w.printer.PrintStep("issue", slug)
	}
	return nil
}

func (w *Wizard) resolveBreaking(msg *convcommit.Message) error {
	if !msg.Breaking() {
		return nil
	}

	details, err := w.prompter.TextInput(
		"Describe the breaking change:",
		"what breaks and how to migrate",
	)
	if err != nil {
		return err
	}

	msg.BreakingDetails = strings.TrimSpace(details)
	return nil
}
