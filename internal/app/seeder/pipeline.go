package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/studynotes-backend/internal/domain"
	"github.com/heartmarshall/studynotes-backend/internal/service/generation/prompt"
	"github.com/heartmarshall/studynotes-backend/internal/service/subject"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"subjects", "templates"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Upserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline upserts a Catalog phase by phase. Rows are matched by name, so
// running it twice is harmless.
type Pipeline struct {
	log       *slog.Logger
	subjects  SubjectUpserter
	templates TemplateUpserter
	cfg       Config
	results   map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, subjects SubjectUpserter, templates TemplateUpserter, cfg Config) *Pipeline {
	return &Pipeline{
		log:       log,
		subjects:  subjects,
		templates: templates,
		cfg:       cfg,
		results:   make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, catalog *Catalog, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no known phases in %v (known: %v)", phases, allPhases)
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "subjects":
			result = p.runSubjects(ctx, catalog.Subjects)
		case "templates":
			result = p.runTemplates(ctx, catalog.Templates)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("upserted", result.Upserted),
			slog.Int("skipped", result.Skipped),
			slog.Int("errors", result.Errors),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) runSubjects(ctx context.Context, seeds []SubjectSeed) PhaseResult {
	var result PhaseResult
	for _, seed := range seeds {
		in := subject.CreateSubjectInput{Name: seed.Name, Description: seed.Description, Color: seed.Color}
		if err := in.Validate(); err != nil {
			p.log.Warn("invalid subject", slog.String("name", seed.Name), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		color := strings.TrimSpace(seed.Color)
		if color == "" {
			color = subject.DefaultColor
		}
		_, err := p.subjects.Upsert(ctx, &domain.Subject{
			Name:        strings.TrimSpace(seed.Name),
			Description: strings.TrimSpace(seed.Description),
			Color:       color,
		})
		if err != nil {
			// Cancelled: every remaining row would fail the same way.
			if ctx.Err() != nil {
				result.Err = fmt.Errorf("upsert subject %q: %w", seed.Name, err)
				return result
			}
			p.log.Warn("upsert subject failed", slog.String("name", seed.Name), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Upserted++
	}
	return result
}

func (p *Pipeline) runTemplates(ctx context.Context, seeds []TemplateSeed) PhaseResult {
	var result PhaseResult
	for _, seed := range seeds {
		if err := validateTemplate(seed); err != nil {
			p.log.Warn("invalid template", slog.String("name", seed.Name), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		active := seed.Active == nil || *seed.Active
		_, err := p.templates.Upsert(ctx, &domain.Template{
			Name:        strings.TrimSpace(seed.Name),
			Type:        domain.TemplateType(seed.Type),
			Body:        seed.Template,
			Description: strings.TrimSpace(seed.Description),
			IsActive:    active,
		})
		if err != nil {
			if ctx.Err() != nil {
				result.Err = fmt.Errorf("upsert template %q: %w", seed.Name, err)
				return result
			}
			p.log.Warn("upsert template failed", slog.String("name", seed.Name), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Upserted++
	}
	return result
}

func validateTemplate(seed TemplateSeed) error {
	var errs []domain.FieldError

	if strings.TrimSpace(seed.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if !domain.TemplateType(seed.Type).IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be academic, casual, technical, simple, or detailed"})
	}
	if strings.TrimSpace(seed.Template) == "" {
		errs = append(errs, domain.FieldError{Field: "template", Message: "required"})
	} else if !strings.Contains(seed.Template, prompt.PlaceholderTitle) {
		errs = append(errs, domain.FieldError{Field: "template", Message: "must reference " + prompt.PlaceholderTitle})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
