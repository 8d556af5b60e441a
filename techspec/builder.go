package techspec

import (
	"strings"

	"tsg/config"
	"tsg/markup"
)

// Builder turns text nodes into specification rows.
type Builder struct {
	// FunctionName is the middle part of every label id.
	FunctionName string
	// Prefixes are checked in order, first class found in element class list
	// wins.
	Prefixes []config.ClassPrefix
	// DefaultPrefix is used when no class from Prefixes matches.
	DefaultPrefix    string
	PlaceholderClass string
	CTAClass         string
}

// NewBuilder creates Builder from document configuration.
func NewBuilder(cfg *config.DocumentConfig) *Builder {
	return &Builder{
		FunctionName:     cfg.FunctionName,
		Prefixes:         cfg.ClassPrefixes,
		DefaultPrefix:    cfg.DefaultPrefix,
		PlaceholderClass: cfg.PlaceholderClass,
		CTAClass:         cfg.CTAClass,
	}
}

// Build returns rows for all nodes in document order.
func (b *Builder) Build(nodes []markup.TextNode) []Row {
	var rows []Row
	for _, n := range nodes {
		rows = append(rows, b.Rows(n)...)
	}
	return rows
}

// Rows returns rows produced by a single text node: none when node has no
// classed parent or no text, one row otherwise and two when parent classes
// contain placeholder class.
func (b *Builder) Rows(n markup.TextNode) []Row {
	content := strings.TrimSpace(n.Content)
	if !n.HasParent || len(n.ParentClasses) == 0 || len(content) == 0 {
		return nil
	}
	className := n.ClassName()

	row := Row{
		ScreenElement:     content,
		LabelID:           b.LabelID(className, content),
		CTA:               NA,
		ContentBizManaged: NA,
		DataTypeInput:     NA,
	}
	if strings.Contains(className, b.CTAClass) {
		row.CTA = Yes
	}
	if row.LabelID != NA {
		row.ContentBizManaged = Yes
	}

	if !strings.Contains(className, b.PlaceholderClass) {
		return []Row{row}
	}
	return []Row{row, b.PlaceholderRow()}
}

// LabelID derives label identifier for content of element with given
// (space joined) class list.
func (b *Builder) LabelID(className, content string) string {
	text := strings.ReplaceAll(content, " ", "_")
	for _, p := range b.Prefixes {
		if !strings.Contains(className, p.Class) {
			continue
		}
		switch {
		case p.Prefix != nil:
			return *p.Prefix + "_" + b.FunctionName + "_" + text
		case p.Class == b.PlaceholderClass:
			return "Lbl_" + b.FunctionName + "_" + text + "_Placeholder"
		default:
			return NA
		}
	}
	return b.DefaultPrefix + "_" + b.FunctionName + "_" + text
}

// PlaceholderRow is the synthetic row following every placeholder element.
func (b *Builder) PlaceholderRow() Row {
	return Row{
		ScreenElement:     b.placeholderElement(),
		LabelID:           NA,
		CTA:               NA,
		ContentBizManaged: NA,
		DataTypeInput:     NA,
		DisplayIf:         NA,
		Country:           NA,
		Channel:           NA,
		API:               NA,
	}
}

func (b *Builder) placeholderElement() string {
	return "{{" + b.PlaceholderClass + "}}"
}

// Stats summarizes produced rows.
type Stats struct {
	Rows         int
	Labelled     int
	CTA          int
	Placeholders int
}

// Summarize counts rows by kind.
func (b *Builder) Summarize(rows []Row) Stats {
	st := Stats{Rows: len(rows)}
	placeholder := b.placeholderElement()
	for _, r := range rows {
		switch {
		case r.ScreenElement == placeholder && r.LabelID == NA:
			st.Placeholders++
		case r.LabelID != NA:
			st.Labelled++
		}
		if r.CTA == Yes {
			st.CTA++
		}
	}
	return st
}
