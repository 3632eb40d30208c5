// Package morphology attaches affixes to generated roots: it plans the
// word template, resolves phonologically conditioned allomorphs,
// splices affix phonemes or syllables onto the root, and applies affix
// stress effects.
package morphology

import (
	"math/rand"

	"github.com/unglish/unglish-go/internal/wrand"
	"github.com/unglish/unglish-go/language"
)

// Template names the four word shapes the planner chooses between.
type Template string

const (
	TemplateBare     Template = "bare"
	TemplatePrefixed Template = "prefixed"
	TemplateSuffixed Template = "suffixed"
	TemplateBoth     Template = "both"
)

// Plan is the resolved morphological intent for one word.
type Plan struct {
	Template Template
	Prefix   *language.Affix
	Suffix   *language.Affix
	// SyllableReduction is how many syllables shorter the root should
	// be generated to compensate for the affixes' own syllables.
	SyllableReduction int
}

// MaxAffixSyllables returns the largest whole-syllable contribution
// the planned affixes can make, counting conditionally syllabic
// allomorphs at their widest realization. SyllableReduction budgets
// only for the base forms, so this is the bound the root length must
// leave room for.
func (p *Plan) MaxAffixSyllables() int {
	return maxAffixSyllables(p.Prefix) + maxAffixSyllables(p.Suffix)
}

func maxAffixSyllables(a *language.Affix) int {
	if a == nil {
		return 0
	}
	n := a.SyllableCount()
	for _, v := range a.Variants {
		if len(v.Syllables) > n {
			n = len(v.Syllables)
		}
	}
	return n
}

// PlanWord chooses a template by the mode-keyed weight table and
// resolves the affixes to attach. With no morphology configured the
// plan is always bare.
func PlanWord(r *rand.Rand, m *language.Model, mode language.Mode) *Plan {
	cfg := m.Config.Morphology
	plan := &Plan{Template: TemplateBare}

	tw, ok := cfg.Templates[mode]
	if !ok {
		tw, ok = cfg.Templates[language.ModeText]
	}
	if !ok {
		return plan
	}

	templates := []Template{TemplateBare, TemplatePrefixed, TemplateSuffixed, TemplateBoth}
	weights := []float64{tw.Bare, tw.Prefixed, tw.Suffixed, tw.Both}
	if i := wrand.Index(r, weights); i >= 0 {
		plan.Template = templates[i]
	}

	pickAffix := func(pool []*language.Affix) *language.Affix {
		a, ok := wrand.Pick(r, pool, func(a *language.Affix) float64 { return a.Frequency })
		if !ok {
			return nil
		}
		return a
	}

	if plan.Template == TemplatePrefixed || plan.Template == TemplateBoth {
		plan.Prefix = pickAffix(cfg.Prefixes)
	}
	if plan.Template == TemplateSuffixed || plan.Template == TemplateBoth {
		plan.Suffix = pickAffix(cfg.Suffixes)
	}
	if plan.Prefix == nil && plan.Suffix == nil {
		plan.Template = TemplateBare
		return plan
	}

	if plan.Prefix != nil {
		plan.SyllableReduction += plan.Prefix.SyllableCount()
	}
	if plan.Suffix != nil {
		plan.SyllableReduction += plan.Suffix.SyllableCount()
	}
	return plan
}
