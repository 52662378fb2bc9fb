package scheme

import (
	"regexp"
	"strings"
)

// Block is one labeled scheme section cut out of a completion.
type Block struct {
	Label string
	Body  string
}

// segmentStrategy recognizes one family of scheme headings. label must
// capture the title line, which may be empty; terminator marks where a body
// ends and is not consumed.
type segmentStrategy struct {
	name       string
	label      *regexp.Regexp
	terminator *regexp.Regexp
}

var segmentStrategies = []segmentStrategy{
	{
		name:       "heading",
		label:      regexp.MustCompile(`###\s*(?:方案[一二三123]|(?i:scheme)\s*[123])\s*[：:][ \t]*([^\n]*)\n`),
		terminator: regexp.MustCompile(`\n###\s*(?:方案|(?i:scheme))|##`),
	},
	{
		name:       "plain",
		label:      regexp.MustCompile(`(?:方案[一二三123]|(?i:scheme)\s*[123])\s*[：:][ \t]*([^\n]*)\n`),
		terminator: regexp.MustCompile(`\n(?:方案[一二三123]|(?i:scheme)\s*[123])|##`),
	},
	{
		name:       "bracket",
		label:      regexp.MustCompile(`【(?:方案[一二三123]|(?i:scheme)\s*[123])】[ \t]*([^\n]*)\n`),
		terminator: regexp.MustCompile(`\n【(?:方案|(?i:scheme))|##`),
	},
	{
		name:       "loose",
		label:      regexp.MustCompile(`(?:方案|搭配|(?i:scheme|outfit)\s*)[一二三123][：:][ \t]*([^\n]*)\n`),
		terminator: regexp.MustCompile(`(?:方案|搭配|(?i:scheme|outfit)\s*)[一二三123]|##`),
	},
}

// Segment splits text into scheme blocks. The first strategy producing at
// least one block wins; no blocks at all is a valid result.
func Segment(text string) []Block {
	for _, st := range segmentStrategies {
		if blocks := st.scan(text); len(blocks) > 0 {
			return blocks
		}
	}
	return nil
}

func (st segmentStrategy) scan(text string) []Block {
	var blocks []Block
	pos := 0
	for pos < len(text) {
		loc := st.label.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		label := strings.TrimSpace(text[pos+loc[2] : pos+loc[3]])
		bodyStart := pos + loc[1]

		bodyEnd := len(text)
		if t := st.terminator.FindStringIndex(text[bodyStart:]); t != nil {
			bodyEnd = bodyStart + t[0]
		}

		blocks = append(blocks, Block{
			Label: label,
			Body:  strings.TrimSpace(text[bodyStart:bodyEnd]),
		})
		// bodyStart is past the label, so pos always advances
		pos = bodyEnd
	}
	return blocks
}
