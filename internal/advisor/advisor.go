// Package advisor turns typed planning requests into prompts, sends them
// through the generation gateway and coerces the model's text output back
// into typed application data.
package advisor

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/pathwise-app/pathwise/internal/payload"
)

// Generator delivers a prompt to the external text-generation service.
// *textgen.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor is stateless; every call is an independent single pass through
// build, generate, extract, parse and map.
type Advisor struct {
	gen Generator
}

func New(gen Generator) *Advisor {
	return &Advisor{gen: gen}
}

// structured runs the JSON half of the pipeline for one call.
func (a *Advisor) structured(ctx context.Context, kind PromptKind, prompt string) (any, error) {
	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	extracted := payload.Extract(raw)
	v, err := payload.Parse(extracted.Candidate, raw)
	if err != nil {
		log.Warn().Str("kind", string(kind)).Bool("fenced", extracted.Fenced).Msg("model response not parseable")
		return nil, err
	}
	return v, nil
}

// prose runs a plain-text generation; no extraction or parsing is applied.
func (a *Advisor) prose(ctx context.Context, prompt string) (string, error) {
	raw, err := a.gen.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// GenerateSemesterPlan produces the multi-semester study roadmap for a profile.
func (a *Advisor) GenerateSemesterPlan(ctx context.Context, profile UserProfile) ([]SemesterPlan, error) {
	v, err := a.structured(ctx, KindSemesterPlan, semesterPlanPrompt(profile))
	if err != nil {
		return nil, err
	}
	return mapSemesterPlans(v)
}

// GenerateProjectDetails expands a project stub into a detailed project.
func (a *Advisor) GenerateProjectDetails(ctx context.Context, project Project) (Project, error) {
	v, err := a.structured(ctx, KindProjectDetails, projectDetailsPrompt(project))
	if err != nil {
		return Project{}, err
	}
	return mapProject(v)
}

// GenerateRepoStructure suggests a repository skeleton for a project.
func (a *Advisor) GenerateRepoStructure(ctx context.Context, project Project) (RepoStructure, error) {
	v, err := a.structured(ctx, KindRepoStructure, repoStructurePrompt(project))
	if err != nil {
		return RepoStructure{}, err
	}
	return mapRepoStructure(v)
}

// GenerateNoteSuggestions produces improvement suggestions for a note.
func (a *Advisor) GenerateNoteSuggestions(ctx context.Context, noteText string) ([]string, error) {
	v, err := a.structured(ctx, KindNoteSuggestions, noteSuggestionsPrompt(noteText))
	if err != nil {
		return nil, err
	}
	return mapSuggestions(v)
}

// GenerateNoteSummary summarizes a note. The response is plain prose and is
// returned verbatim, bypassing JSON extraction entirely.
func (a *Advisor) GenerateNoteSummary(ctx context.Context, noteText string) (string, error) {
	return a.prose(ctx, noteSummaryPrompt(noteText))
}

// GenerateProgressNudge produces a short motivational message.
func (a *Advisor) GenerateProgressNudge(ctx context.Context, profile UserProfile) (string, error) {
	return a.prose(ctx, progressNudgePrompt(profile))
}

// GenerateCourseRecommendations produces study aids for a single course.
func (a *Advisor) GenerateCourseRecommendations(ctx context.Context, title, description string) (CourseRecommendations, error) {
	v, err := a.structured(ctx, KindCourseRecommendations, courseRecommendationsPrompt(title, description))
	if err != nil {
		return CourseRecommendations{}, err
	}
	return mapCourseRecommendations(v)
}
