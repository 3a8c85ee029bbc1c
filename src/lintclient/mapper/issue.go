package mapper

import (
	"time"

	"github.com/uber/lint-client/src/lintclient/entity"
	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
)

const _headerTimeLayout = "Jan 2, 2006 15:04"

// TextRangeToProtocol converts a server text range, with 1-based lines, into a protocol range with 0-based lines.
func TextRangeToProtocol(r *entity.TextRange) protocol.Range {
	if r == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: protocol.Position{Line: zeroBased(r.StartLine), Character: r.StartLineOffset},
		End:   protocol.Position{Line: zeroBased(r.EndLine), Character: r.EndLineOffset},
	}
}

func zeroBased(line uint32) uint32 {
	if line == 0 {
		return 0
	}
	return line - 1
}

// IssueToSecondaryLocations flattens the flows of an issue in the order the server supplied them.
// Index is the 1-based position of a location within its flow.
func IssueToSecondaryLocations(issue *entity.Issue) []entity.SecondaryLocation {
	var out []entity.SecondaryLocation
	for _, flow := range issue.Flows {
		for i, loc := range flow.Locations {
			out = append(out, entity.SecondaryLocation{
				URI:     locationURI(loc, issue.FileURI),
				Range:   TextRangeToProtocol(loc.TextRange),
				Index:   i + 1,
				Message: loc.Message,
			})
		}
	}
	return out
}

func locationURI(loc entity.IssueLocation, fallback string) uri.URI {
	switch {
	case loc.URI != "":
		return uri.URI(loc.URI)
	case loc.FilePath != "":
		return CodeToProtocol(loc.FilePath)
	default:
		return uri.URI(fallback)
	}
}

// CreationDateToHeader formats the creation date of an issue as a location tree header.
// It returns nil when the date is absent or cannot be parsed.
func CreationDateToHeader(creationDate *string) *string {
	if creationDate == nil || *creationDate == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *creationDate)
	if err != nil {
		return nil
	}
	header := "Analyzed " + t.Format(_headerTimeLayout)
	return &header
}

// IssueToDisplayed builds the location tree content for an issue.
func IssueToDisplayed(issue *entity.Issue) entity.DisplayedIssue {
	return entity.DisplayedIssue{
		Issue:     *issue,
		Locations: IssueToSecondaryLocations(issue),
		Header:    CreationDateToHeader(issue.CreationDate),
	}
}
