package patch

import (
	"fmt"
	"io"

	"github.com/viant/gpmldiff/delta"
	"github.com/viant/gpmldiff/diff"
	"github.com/viant/gpmldiff/model"
	"go.uber.org/zap"
)

// DefaultThreshold is minimum score of a recorded and live element pair
const DefaultThreshold = 70

// Patch represents recorded deletions, modifications and insertions
type Patch struct {
	ModDels    []*ModDel
	Insertions []*model.Element
	threshold  int
	differ     *diff.Differ
	logger     *zap.Logger
}

// Report summarizes patch application
type Report struct {
	Inserted int
	Modified int
	Deleted  int
	Rejected []*ModDel
}

func (r *Report) String() string {
	return fmt.Sprintf("inserted: %d, modified: %d, deleted: %d, rejected: %d", r.Inserted, r.Modified, r.Deleted, len(r.Rejected))
}

// Apply matches recorded elements against the pathway and mutates it.
// Every replacement is built before the pathway is changed, so a failing change leaves the pathway untouched.
// Insertions are added last, ids released by replaced or deleted elements are free to reuse.
func (p *Patch) Apply(pathway *model.Pathway) (*Report, error) {
	records := make([]*model.Element, len(p.ModDels))
	byRecord := make(map[*model.Element]*ModDel, len(p.ModDels))
	for i, modDel := range p.ModDels {
		records[i] = modDel.Old
		byRecord[modDel.Old] = modDel
	}
	match, _ := p.differ.Correspond(records, pathway.Elements, p.threshold)
	live := map[*ModDel]*model.Element{}
	for _, node := range match.Pairs() {
		live[byRecord[node.Old]] = node.New
	}

	report := &Report{}
	replacements := map[*model.Element]*model.Element{}
	var deletions []*model.Element
	for _, modDel := range p.ModDels {
		target, ok := live[modDel]
		if !ok {
			report.Rejected = append(report.Rejected, modDel)
			p.logger.Warn("no matching element", zap.Stringer("entry", modDel))
			continue
		}
		if modDel.Deleted {
			deletions = append(deletions, target)
			continue
		}
		replacement, err := modDel.Build()
		if err != nil {
			p.logger.Error("failed to build replacement", zap.Stringer("entry", modDel), zap.Error(err))
			return nil, err
		}
		replacements[target] = replacement
	}

	for target, replacement := range replacements {
		if pathway.Replace(target, replacement) {
			report.Modified++
		}
	}
	for _, target := range deletions {
		if pathway.Remove(target) {
			report.Deleted++
		}
	}
	for _, insertion := range p.Insertions {
		element := insertion.Copy()
		if id := element.GraphID(); id != "" && pathway.ElementByID(id) != nil {
			fresh := pathway.UniqueGraphID()
			p.logger.Debug("graph id collision", zap.String("id", id), zap.String("fresh", fresh))
			if err := element.SetText(model.GraphID, fresh); err != nil {
				return nil, err
			}
		}
		pathway.Add(element)
		report.Inserted++
	}
	p.logger.Info("applied patch",
		zap.Int("inserted", report.Inserted),
		zap.Int("modified", report.Modified),
		zap.Int("deleted", report.Deleted),
		zap.Int("rejected", len(report.Rejected)))
	return report, nil
}

// Reverse returns a patch undoing this one
func (p *Patch) Reverse() (*Patch, error) {
	result := &Patch{threshold: p.threshold, differ: p.differ, logger: p.logger}
	for _, insertion := range p.Insertions {
		result.ModDels = append(result.ModDels, &ModDel{Old: insertion, Deleted: true})
	}
	for _, modDel := range p.ModDels {
		if modDel.Deleted {
			result.Insertions = append(result.Insertions, modDel.Old)
			continue
		}
		updated, err := modDel.Build()
		if err != nil {
			return nil, err
		}
		reversed := &ModDel{Old: updated}
		for _, change := range modDel.Changes {
			reversed.Changes = append(reversed.Changes, &delta.Change{Attr: change.Attr, Old: change.New, New: change.Old})
		}
		result.ModDels = append(result.ModDels, reversed)
	}
	return result, nil
}

// Document returns delta document of the patch
func (p *Patch) Document() *delta.Document {
	result := &delta.Document{}
	for _, modDel := range p.ModDels {
		if modDel.Deleted {
			result.Add(delta.Delete, modDel.Old)
			continue
		}
		entry := result.Add(delta.Modify, modDel.Old)
		entry.Changes = modDel.Changes
	}
	for _, insertion := range p.Insertions {
		result.Add(delta.Insert, insertion)
	}
	return result
}

// Read reads a delta document
func Read(r io.Reader, options ...Option) (*Patch, error) {
	document, err := delta.Decode(r)
	if err != nil {
		return nil, err
	}
	return New(document, options...)
}

// New creates a patch from a delta document
func New(document *delta.Document, options ...Option) (*Patch, error) {
	result := &Patch{threshold: DefaultThreshold, logger: zap.NewNop()}
	for _, option := range options {
		option(result)
	}
	if result.differ == nil {
		result.differ = diff.New(diff.WithLogger(result.logger))
	}
	for _, entry := range document.Entries {
		if entry.Element == nil {
			result.logger.Warn("skipping entry without element", zap.String("entry", entry.Kind()))
			continue
		}
		element, err := entry.Element.Element()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", delta.ErrInvalidDelta, err)
		}
		switch entry.Kind() {
		case delta.Insert:
			result.Insertions = append(result.Insertions, element)
		case delta.Delete:
			result.ModDels = append(result.ModDels, &ModDel{Old: element, Deleted: true})
		case delta.Modify:
			result.ModDels = append(result.ModDels, &ModDel{Old: element, Changes: entry.AllChanges()})
		}
	}
	return result, nil
}
