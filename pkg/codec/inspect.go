package codec

import (
	"fmt"
	"sort"
)

// MinTemplateSize is the smallest template length not reported as too small
const MinTemplateSize = 100

// IssueKind classifies a degenerate template
type IssueKind string

const (
	IssueEmpty    IssueKind = "empty"
	IssueErased   IssueKind = "erased"
	IssueTooSmall IssueKind = "too small"
)

// Issue is an advisory finding about a single template
type Issue struct {
	ID   int
	Kind IssueKind
	Size int // Template size at the time of the check
}

// String returns a human-readable description of the issue
func (i Issue) String() string {
	switch i.Kind {
	case IssueEmpty:
		return "Empty template (all zeros)"
	case IssueErased:
		return "Erased template (all 0xFF)"
	case IssueTooSmall:
		return fmt.Sprintf("Template too small (%d bytes)", i.Size)
	default:
		return string(i.Kind)
	}
}

// Validate checks every template for degenerate content. A template may
// produce several issues; they are reported in the order empty, erased, too small.
func Validate(templates []Template) []Issue {
	var issues []Issue
	for _, t := range templates {
		if isFilled(t.Data, 0x00) {
			issues = append(issues, Issue{ID: t.ID, Kind: IssueEmpty, Size: t.Size()})
		}
		if isFilled(t.Data, 0xFF) {
			issues = append(issues, Issue{ID: t.ID, Kind: IssueErased, Size: t.Size()})
		}
		if t.Size() < MinTemplateSize {
			issues = append(issues, Issue{ID: t.ID, Kind: IssueTooSmall, Size: t.Size()})
		}
	}
	return issues
}

// Stats summarizes template sizes and IDs
type Stats struct {
	Count     int
	AvgSize   int // Floor of TotalSize / Count
	MinSize   int
	MaxSize   int
	TotalSize int
	IDs       []int // Ascending
}

// Statistics computes size statistics over templates
func Statistics(templates []Template) Stats {
	s := Stats{
		Count: len(templates),
		IDs:   make([]int, 0, len(templates)),
	}
	if s.Count == 0 {
		return s
	}

	s.MinSize = templates[0].Size()
	s.MaxSize = templates[0].Size()
	for _, t := range templates {
		size := t.Size()
		s.TotalSize += size
		s.MinSize = min(s.MinSize, size)
		s.MaxSize = max(s.MaxSize, size)
		s.IDs = append(s.IDs, t.ID)
	}
	s.AvgSize = s.TotalSize / s.Count
	sort.Ints(s.IDs)

	return s
}
