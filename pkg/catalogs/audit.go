package catalogs

import (
	"fmt"
	"regexp"
	"strconv"
)

// AuditKind names a class of consistency issue.
type AuditKind string

// Audit issue kinds.
const (
	// AuditSpotCountDrift means stats.spots disagrees with the spots actually in the region.
	AuditSpotCountDrift AuditKind = "spot-count-drift"
	// AuditSpotCountUnparsed means stats.spots carries no number.
	AuditSpotCountUnparsed AuditKind = "spot-count-unparsed"
	// AuditTopSpotMissing means a topSpots id matches no spot.
	AuditTopSpotMissing AuditKind = "top-spot-missing"
	// AuditTopSpotForeign means a topSpots id belongs to a different region.
	AuditTopSpotForeign AuditKind = "top-spot-foreign"
)

// AuditIssue is one inconsistency between a region's authored fields and the spot collection.
type AuditIssue struct {
	Region  RegionID  `json:"region" yaml:"region"`
	Kind    AuditKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
}

// AuditReport lists the issues found by Audit.
type AuditReport struct {
	Regions int          `json:"regions" yaml:"regions"`
	Spots   int          `json:"spots" yaml:"spots"`
	Issues  []AuditIssue `json:"issues" yaml:"issues"`
}

// OK reports whether no issues were found.
func (r *AuditReport) OK() bool {
	return len(r.Issues) == 0
}

// ByRegion returns the issues for one region.
func (r *AuditReport) ByRegion(id RegionID) []AuditIssue {
	var out []AuditIssue
	for _, issue := range r.Issues {
		if issue.Region == id {
			out = append(out, issue)
		}
	}
	return out
}

var firstNumber = regexp.MustCompile(`\d+`)

// Audit compares the authored derived fields of each region (stats.spots and
// topSpots) with the spot collection. The authored values are left untouched;
// disagreements are only reported.
func Audit(r Reader) *AuditReport {
	report := &AuditReport{
		Regions: r.Regions().Len(),
		Spots:   r.Spots().Len(),
		Issues:  []AuditIssue{},
	}

	for _, region := range r.AllRegions() {
		inRegion, err := r.SpotsInRegion(region.ID)
		if err != nil {
			continue
		}
		report.Issues = append(report.Issues, auditSpotCount(region, len(inRegion))...)
		report.Issues = append(report.Issues, auditTopSpots(r, region)...)
	}
	return report
}

func auditSpotCount(region *Region, actual int) []AuditIssue {
	match := firstNumber.FindString(region.Stats.Spots)
	if match == "" {
		return []AuditIssue{{
			Region:  region.ID,
			Kind:    AuditSpotCountUnparsed,
			Message: fmt.Sprintf("stats.spots %q has no count", region.Stats.Spots),
		}}
	}
	authored, err := strconv.Atoi(match)
	if err != nil || authored == actual {
		return nil
	}
	return []AuditIssue{{
		Region:  region.ID,
		Kind:    AuditSpotCountDrift,
		Message: fmt.Sprintf("stats.spots says %d but the catalog has %d", authored, actual),
	}}
}

func auditTopSpots(r Reader, region *Region) []AuditIssue {
	var issues []AuditIssue
	for _, id := range region.TopSpots {
		spot, err := r.Spot(id)
		if err != nil {
			issues = append(issues, AuditIssue{
				Region:  region.ID,
				Kind:    AuditTopSpotMissing,
				Message: fmt.Sprintf("top spot %s does not exist", id),
			})
			continue
		}
		if spot.Prefecture != region.ID {
			issues = append(issues, AuditIssue{
				Region:  region.ID,
				Kind:    AuditTopSpotForeign,
				Message: fmt.Sprintf("top spot %s belongs to %s", id, spot.Prefecture),
			})
		}
	}
	return issues
}
