package facetfish

import (
	"fmt"

	"github.com/google/uuid"
)

var colorAliases = map[uuid.UUID][]string{
	Red.ID:    {"red", "赤"},
	Blue.ID:   {"blue", "青"},
	Yellow.ID: {"yellow", "黄色"},
	White.ID:  {"white", "白"},
	Black.ID:  {"black", "黒"},
}

var sizeAliases = map[uuid.UUID][]string{
	Small.ID:  {"small", "s", "sm"},
	Medium.ID: {"medium", "m", "med"},
	Large.ID:  {"large", "l", "lg"},
}

// QueryParser turns free text such as "red or black, small" into SearchOptions.
type QueryParser struct {
	analyzer Analyzer
	colors   map[string]Color
	sizes    map[string]Size
}

// NewQueryParser indexes every color and size alias through analyzer, so query
// words are compared with aliases after the same normalization.
func NewQueryParser(analyzer Analyzer) *QueryParser {
	p := &QueryParser{
		analyzer: analyzer,
		colors:   make(map[string]Color),
		sizes:    make(map[string]Size),
	}
	for _, c := range allColors {
		for _, term := range p.aliasTerms(c.Name, colorAliases[c.ID]) {
			if _, ok := p.colors[term]; !ok {
				p.colors[term] = c
			}
		}
	}
	for _, s := range allSizes {
		for _, term := range p.aliasTerms(s.Name, sizeAliases[s.ID]) {
			if _, ok := p.sizes[term]; !ok {
				p.sizes[term] = s
			}
		}
	}
	return p
}

// aliases that analyze to more than one term cannot be matched word by word and are skipped
func (p *QueryParser) aliasTerms(name string, aliases []string) []string {
	var terms []string
	for _, alias := range append([]string{name}, aliases...) {
		ts := p.analyzer.Analyze(alias)
		if ts.Size() == 1 {
			terms = append(terms, ts.Tokens[0].Term)
		}
	}
	return terms
}

// Parse returns options whose filters hold every color and size named in text.
// Empty text gives unrestricted options.
func (p *QueryParser) Parse(text string) (*SearchOptions, error) {
	options := NewSearchOptions()
	seenColors := make(map[uuid.UUID]struct{})
	seenSizes := make(map[uuid.UUID]struct{})
	for _, token := range p.analyzer.Analyze(text).Tokens {
		if c, ok := p.colors[token.Term]; ok {
			if _, dup := seenColors[c.ID]; !dup {
				seenColors[c.ID] = struct{}{}
				options.Colors = append(options.Colors, c)
			}
			continue
		}
		if s, ok := p.sizes[token.Term]; ok {
			if _, dup := seenSizes[s.ID]; !dup {
				seenSizes[s.ID] = struct{}{}
				options.Sizes = append(options.Sizes, s)
			}
			continue
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerm, token.Term)
	}
	return options, nil
}
