package domain

import "strings"

// Rich-text node types.
const (
	BlockParagraph = "paragraph"
	NodeText       = "text"
)

// RichText is a structured description: an ordered list of blocks.
type RichText []Block

// Block is a single paragraph of rich text.
type Block struct {
	Type     string     `json:"type"`
	Children []TextNode `json:"children"`
}

// TextNode is a leaf holding literal text.
type TextNode struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToRichText converts newline-separated plain text into paragraph blocks,
// one per line, each holding the line verbatim. Lines are not trimmed, so a
// trailing newline yields a trailing empty paragraph. Empty input yields a
// single empty paragraph.
func ToRichText(text string) RichText {
	if text == "" {
		return RichText{paragraph("")}
	}

	lines := strings.Split(text, "\n")
	blocks := make(RichText, len(lines))
	for i, line := range lines {
		blocks[i] = paragraph(line)
	}
	return blocks
}

func paragraph(text string) Block {
	return Block{
		Type:     BlockParagraph,
		Children: []TextNode{{Type: NodeText, Text: text}},
	}
}
