package patchEngine

import (
	"github.com/rotisserie/eris"
	"github.com/t-kuni/jobconf/domain/model/patch"
)

type PatchEngine struct {
	syntax patch.Syntax
}

func NewPatchEngine(syntax patch.Syntax) *PatchEngine {
	return &PatchEngine{
		syntax: syntax,
	}
}

func (e *PatchEngine) Syntax() patch.Syntax {
	return e.syntax
}

// Apply replaces the value of the field described by rule and returns the new document.
// The field is searched only among the direct children of the section matched by
// rule.Scope, so same-named keys of other sections are never touched. On error the
// original document is returned.
func (e *PatchEngine) Apply(doc string, rule patch.Rule, answer string) (string, patch.Result, error) {
	result := patch.Result{
		Rule:   rule.Name,
		Status: patch.StatusNotFound,
	}

	start, end, ok := e.locateSection(doc, rule)
	if !ok {
		return doc, result, eris.Wrapf(patch.ErrFieldNotFound, "no section for %s", rule.Name)
	}

	loc := e.locateField(doc, rule, start, end)
	if loc == nil {
		return doc, result, eris.Wrapf(patch.ErrFieldNotFound, "%s", rule.Name)
	}

	before := doc[loc[2]:loc[3]]
	after := rule.Replacement(answer)
	result.Before = before
	result.After = after

	if before == after {
		result.Status = patch.StatusUnchanged
		return doc, result, nil
	}

	patched := doc[:loc[2]] + after + doc[loc[3]:]

	// only a valid document has to stay valid
	if e.syntax.Validate(doc) == nil {
		if err := e.syntax.Validate(patched); err != nil {
			result.Status = patch.StatusUnchanged
			return doc, result, eris.Wrapf(patch.ErrMalformedDocument, "%s: %s", rule.Name, err.Error())
		}
	}

	result.Status = patch.StatusPatched
	return patched, result, nil
}

func (e *PatchEngine) locateSection(doc string, rule patch.Rule) (int, int, bool) {
	rootStart, rootEnd, ok := e.syntax.Root(doc)
	if !ok {
		return 0, 0, false
	}
	if rule.Scope == nil {
		return rootStart, rootEnd, true
	}

	for _, header := range rule.Scope.FindAllStringSubmatchIndex(doc[rootStart:rootEnd], -1) {
		header = shift(header, rootStart)
		if !e.syntax.Direct(doc, rootStart, rootEnd, header[0]) {
			continue
		}
		if start, end, ok := e.syntax.Section(doc, header); ok {
			return start, end, true
		}
	}
	return 0, 0, false
}

func (e *PatchEngine) locateField(doc string, rule patch.Rule, start, end int) []int {
	for _, loc := range rule.Field.FindAllStringSubmatchIndex(doc[start:end], -1) {
		if len(loc) < 4 || loc[2] < 0 {
			continue
		}
		loc = shift(loc, start)
		if e.syntax.Direct(doc, start, end, loc[0]) {
			return loc
		}
	}
	return nil
}

func shift(loc []int, by int) []int {
	shifted := make([]int, len(loc))
	for i, v := range loc {
		if v < 0 {
			shifted[i] = v
			continue
		}
		shifted[i] = v + by
	}
	return shifted
}
